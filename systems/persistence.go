package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowgrove/ravine/components"
	"github.com/hollowgrove/ravine/tags"
)

// SavedPlayer is the player state stored on disk between sessions.
type SavedPlayer struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Health int     `json:"health"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence opens the gdata manager for save storage. Failure is not
// fatal: the game runs with defaults and simply doesn't persist.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "ravine",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// DecodeSavedPlayer parses a save record. Callers treat any error as "no
// save" and fall back to defaults.
func DecodeSavedPlayer(data []byte) (*SavedPlayer, error) {
	var saved SavedPlayer
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// EncodeSavedPlayer serializes a save record.
func EncodeSavedPlayer(s *SavedPlayer) ([]byte, error) {
	return json.Marshal(s)
}

// LoadSavedPlayer loads the save record from disk, or nil when absent or
// unreadable.
func LoadSavedPlayer() *SavedPlayer {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := gdataManager.LoadItem("player")
	if err != nil {
		log.Printf("Warning: Could not load save: %v", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	saved, err := DecodeSavedPlayer(data)
	if err != nil {
		log.Printf("Warning: Could not parse save: %v", err)
		return nil
	}
	return saved
}

// SavePlayerState writes the player's current position and health to disk.
// Called once when the session ends.
func SavePlayerState(e *ecs.ECS) {
	if !gdataInitialized || gdataManager == nil {
		return
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)
	health := components.Health.Get(playerEntry)

	data, err := EncodeSavedPlayer(&SavedPlayer{
		X:      obj.X,
		Y:      obj.Y,
		Health: health.Current,
	})
	if err != nil {
		log.Printf("Warning: Could not serialize save: %v", err)
		return
	}

	if err := gdataManager.SaveItem("player", data); err != nil {
		log.Printf("Warning: Could not save player data: %v", err)
	}
}
