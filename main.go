package main

import (
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/trianglejam/assets"
	"github.com/automoto/trianglejam/character"
	"github.com/automoto/trianglejam/config"
	"github.com/automoto/trianglejam/fonts"
	"github.com/automoto/trianglejam/levelflow"
	"github.com/automoto/trianglejam/scenes"
	"github.com/automoto/trianglejam/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
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

// NewGame starts at the configured level, or at the saved checkpoint when
// the save belongs to it.
func NewGame(progress *systems.SavedProgress, levelFromEnv bool) *Game {
	if err := fonts.LoadFontWithSize(fonts.Debug, goregular.TTF, 12); err != nil {
		log.Printf("Warning: %v", err)
	}
	if err := fonts.LoadFontWithSize(fonts.DebugSmall, goregular.TTF, 9); err != nil {
		log.Printf("Warning: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	// Created once; every level reads and writes the same memory
	mem := levelflow.NewMemory()
	loader := assets.NewLevelLoader()
	level := config.C.StartLevel

	if progress != nil && !levelFromEnv {
		if _, err := loader.Load(progress.Level); err == nil {
			*mem = progress.Memory
			level = progress.Level
			g.scene = scenes.NewResumedWorldScene(g, loader, mem, level, progress)
			return g
		}
		log.Printf("Warning: saved level %q is unavailable, starting fresh", progress.Level)
	}

	g.scene = scenes.NewWorldScene(g, loader, mem, level)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}
	if config.Debug.LogMovement {
		character.SetLogOutput(os.Stderr)
	}

	if settings.TuningFile != "" {
		tf, err := config.LoadTuning(settings.TuningFile)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		tf.Apply()

		if settings.WatchTuning {
			watcher, err := config.NewTuningWatcher(filepath.Dir(settings.TuningFile))
			if err != nil {
				log.Printf("Warning: Could not watch tuning file: %v", err)
			} else {
				defer watcher.Close()
				systems.WatchTuning(watcher, settings.TuningFile)
			}
		}
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved progress
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	progress := systems.StartupProgress(settings.Level != "")

	if err := ebiten.RunGame(NewGame(progress, settings.Level != "")); err != nil {
		log.Fatal(err)
	}
}
