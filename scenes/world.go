package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowgrove/ravine/assets"
	"github.com/hollowgrove/ravine/components"
	cfg "github.com/hollowgrove/ravine/config"
	"github.com/hollowgrove/ravine/systems"
	"github.com/hollowgrove/ravine/systems/factory"
)

// SceneChanger switches the active scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// WorldScene runs the platformer session: one level, one player, pooled
// enemies, until the player wins or quits.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
	quit         bool
}

func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{sceneChanger: sc}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)

	if inputEntry, ok := components.Input.First(ws.ecs.World); ok {
		if components.Input.Get(inputEntry).Action(cfg.ActionQuit).JustPressed {
			ws.quit = true
		}
	}

	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

// Finished reports whether the session should end: the player quit, or the
// win fade reached full cover.
func (ws *WorldScene) Finished() bool {
	if ws.quit {
		return true
	}
	if ws.ecs == nil {
		return false
	}
	roundEntry, ok := components.Round.First(ws.ecs.World)
	if !ok {
		return false
	}
	return components.Round.Get(roundEntry).Terminated
}

// Won reports whether the session ended on the win fade rather than a quit.
func (ws *WorldScene) Won() bool {
	if ws.ecs == nil {
		return false
	}
	roundEntry, ok := components.Round.First(ws.ecs.World)
	if !ok {
		return false
	}
	round := components.Round.Get(roundEntry)
	return round.Terminated && round.HasWon
}

// SaveState persists the player's position and health. Called once after
// the session ends.
func (ws *WorldScene) SaveState() {
	if ws.ecs == nil {
		return
	}
	systems.SavePlayerState(ws.ecs)
}

func (ws *WorldScene) configure() {
	systems.PreloadAllSFX()

	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateInput)

	// Simulation systems hold still during round fades.
	e.AddSystem(systems.WithRoundGate(systems.UpdateEnemies))
	e.AddSystem(systems.WithRoundGate(systems.UpdatePlayer))
	e.AddSystem(systems.WithRoundGate(systems.UpdateCombat))
	e.AddSystem(systems.WithRoundGate(systems.UpdateCamera))

	// The round system always runs: it drives the fades themselves.
	e.AddSystem(systems.UpdateRound)
	e.AddSystem(systems.UpdateAudio)

	e.AddRenderer(cfg.Default, systems.DrawWorld)

	ws.ecs = e

	factory.CreateClock(e)
	factory.CreateEvents(e)
	factory.CreateInput(e)
	factory.CreateRound(e)
	factory.CreateAudio(e)

	level := assets.MustLoadLevel("ravine")
	factory.CreateLevel(e, level)

	// Resume from the save when one exists; a save written mid-death
	// (health at zero) retriggers the death fade on load.
	spawnX, spawnY := level.PlayerSpawn.X, level.PlayerSpawn.Y
	health := cfg.Player.MaxHealth
	if saved := systems.LoadSavedPlayer(); saved != nil {
		spawnX, spawnY = saved.X, saved.Y
		health = saved.Health
	}
	player := factory.CreatePlayer(e, spawnX, spawnY, health)

	if components.Health.Get(player).Current <= 0 {
		systems.TriggerPlayerDeath(e)
	}

	factory.CreateCamera(e)

	systems.PlayMusic()
}
