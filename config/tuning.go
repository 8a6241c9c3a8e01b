package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/automoto/trianglejam/character"
	"github.com/automoto/trianglejam/physics"
	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// TuningFile is the YAML override file. Missing keys keep their defaults.
type TuningFile struct {
	Player  character.Tuning `yaml:"player"`
	Physics physics.Settings `yaml:"physics"`
}

// DefaultTuningFile returns the built-in values.
func DefaultTuningFile() TuningFile {
	return TuningFile{
		Player:  character.DefaultTuning(),
		Physics: physics.DefaultSettings(),
	}
}

// ParseTuning decodes YAML over the built-in defaults.
func ParseTuning(data []byte) (TuningFile, error) {
	tf := DefaultTuningFile()
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return tf, fmt.Errorf("tuning: parse: %w", err)
	}
	if tf.Player.MaxHealth <= 0 {
		return tf, fmt.Errorf("tuning: player.max_health must be positive, got %d", tf.Player.MaxHealth)
	}
	return tf, nil
}

// LoadTuning reads and parses a tuning file.
func LoadTuning(path string) (TuningFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultTuningFile(), fmt.Errorf("tuning: load %s: %w", path, err)
	}
	tf, err := ParseTuning(data)
	if err != nil {
		return tf, fmt.Errorf("tuning: load %s: %w", path, err)
	}
	return tf, nil
}

// Apply stores the tuning in the global configuration.
func (tf TuningFile) Apply() {
	Player = tf.Player
	Physics = tf.Physics
}

// TuningWatcher reports edits to YAML files in the watched directories.
type TuningWatcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewTuningWatcher(dirs ...string) (*TuningWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &TuningWatcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *TuningWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *TuningWatcher) run() {
	defer close(w.done)
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isTuningFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < 100*time.Millisecond {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- event.Name:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func isTuningFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
