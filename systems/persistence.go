package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/trianglejam/components"
	cfg "github.com/automoto/trianglejam/config"
	"github.com/automoto/trianglejam/levelflow"
	gm "github.com/automoto/trianglejam/shared/gamemath"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
)

const progressKey = "progress"

// SavedProgress is the game progress stored on disk
type SavedProgress struct {
	Level         string           `json:"level"`
	Checkpoint    string           `json:"checkpoint,omitempty"`
	CheckpointPos *gm.Vec3         `json:"checkpointPos,omitempty"`
	Memory        levelflow.Memory `json:"memory"`
}

// progressStore is the part of gdata.Manager the save code uses.
type progressStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store progressStore

// InitPersistence opens the save storage. Saving stays off when it fails.
func InitPersistence() error {
	if !cfg.Save.Enabled {
		return nil
	}
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Save.AppName,
	})
	if err != nil {
		return err
	}
	store = m
	return nil
}

// StartupProgress returns the progress to resume from. Starting at a level
// picked from the environment wipes any saved progress instead.
func StartupProgress(levelFromEnv bool) *SavedProgress {
	if levelFromEnv {
		_ = ClearGameProgress()
		return nil
	}
	progress, _ := LoadGameProgress()
	return progress
}

func LoadGameProgress() (*SavedProgress, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(progressKey)
	if err != nil {
		log.Printf("Warning: Could not load game progress: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var progress SavedProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		log.Printf("Warning: Could not parse saved progress: %v", err)
		return nil, err
	}
	return &progress, nil
}

func SaveGameProgress(progress *SavedProgress) error {
	if store == nil || progress == nil {
		return nil
	}

	data, err := json.Marshal(progress)
	if err != nil {
		log.Printf("Warning: Could not serialize game progress: %v", err)
		return err
	}
	if err := store.SaveItem(progressKey, data); err != nil {
		log.Printf("Warning: Could not save game progress: %v", err)
		return err
	}
	return nil
}

// ClearGameProgress removes any saved game progress
func ClearGameProgress() error {
	if store == nil {
		return nil
	}
	if err := store.SaveItem(progressKey, nil); err != nil {
		log.Printf("Warning: Could not clear game progress: %v", err)
		return err
	}
	return nil
}

func onCheckpointReached(w donburi.World, ev components.CheckpointReachedEvent) {
	level := getLevel(w)
	if level == nil || level.Memory == nil {
		return
	}
	spawn := ev.Spawn
	_ = SaveGameProgress(&SavedProgress{
		Level:         ev.Level,
		Checkpoint:    ev.Name,
		CheckpointPos: &spawn,
		Memory:        *level.Memory,
	})
}
