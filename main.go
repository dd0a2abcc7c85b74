package main

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	cfg "github.com/hollowgrove/ravine/config"
	"github.com/hollowgrove/ravine/scenes"
	"github.com/hollowgrove/ravine/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewWorldScene(g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()

	if world, ok := g.scene.(*scenes.WorldScene); ok && world.Finished() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, cfg.Window.Width, cfg.Window.Height)
	return cfg.Window.Width, cfg.Window.Height
}

func main() {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	game := NewGame()
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}

	// Persist the player after the window closes or the win fade ends.
	if world, ok := game.scene.(*scenes.WorldScene); ok {
		if world.Won() {
			log.Println("All coins collected, you win!")
		}
		world.SaveState()
	}
}
