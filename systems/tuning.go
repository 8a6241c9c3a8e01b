package systems

import (
	"log"
	"path/filepath"

	"github.com/automoto/trianglejam/components"
	cfg "github.com/automoto/trianglejam/config"
	"github.com/automoto/trianglejam/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	tuningWatcher *cfg.TuningWatcher
	tuningPath    string
)

// WatchTuning makes UpdateTuning reload path whenever w reports it changed.
func WatchTuning(w *cfg.TuningWatcher, path string) {
	tuningWatcher = w
	tuningPath = filepath.Clean(path)
}

// UpdateTuning applies edits to the tuning file without restarting. A file
// that fails to parse leaves the running values alone.
func UpdateTuning(ecs *ecs.ECS) {
	if tuningWatcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-tuningWatcher.Events:
			if !ok {
				tuningWatcher = nil
				return
			}
			if filepath.Clean(path) != tuningPath {
				continue
			}
			tf, err := cfg.LoadTuning(path)
			if err != nil {
				log.Printf("Warning: %v", err)
				continue
			}
			tf.Apply()
			ApplyTuning(ecs.World)
			log.Printf("tuning reloaded from %s", path)
		case err, ok := <-tuningWatcher.Errors:
			if !ok {
				tuningWatcher = nil
				return
			}
			log.Printf("Warning: tuning watcher: %v", err)
		default:
			return
		}
	}
}

// ApplyTuning pushes the global tuning into the running level.
func ApplyTuning(w donburi.World) {
	if world := getPhysicsWorld(w); world != nil {
		world.Settings = cfg.Physics
	}
	tags.Player.Each(w, func(e *donburi.Entry) {
		components.Character.Get(e).SetTuning(cfg.Player)
	})
}
