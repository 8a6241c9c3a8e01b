package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/trianglejam/assets"
	"github.com/automoto/trianglejam/components"
	cfg "github.com/automoto/trianglejam/config"
	"github.com/automoto/trianglejam/levelflow"
	"github.com/automoto/trianglejam/systems"
	"github.com/automoto/trianglejam/systems/factory"
	"github.com/automoto/trianglejam/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene plays one level. Level triggers hand over to a fresh WorldScene
// for the next level, sharing the loader and the game-instance memory.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	loader       *assets.LevelLoader
	memory       *levelflow.Memory
	levelName    string
	resume       *systems.SavedProgress
	fadeIn       bool
	once         sync.Once
}

// levelFadeIn is how long a level entered through a trigger takes to appear.
const levelFadeIn = 0.5

func NewWorldScene(sc SceneChanger, loader *assets.LevelLoader, mem *levelflow.Memory, levelName string) *WorldScene {
	return &WorldScene{
		sceneChanger: sc,
		loader:       loader,
		memory:       mem,
		levelName:    levelName,
	}
}

// NewResumedWorldScene starts at a saved checkpoint when the save belongs to
// levelName.
func NewResumedWorldScene(sc SceneChanger, loader *assets.LevelLoader, mem *levelflow.Memory, levelName string, progress *systems.SavedProgress) *WorldScene {
	ws := NewWorldScene(sc, loader, mem, levelName)
	ws.resume = progress
	return ws
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	levelEntry, ok := components.Level.First(ws.ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.PendingLoad != "" {
		ws.changeLevel(level)
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	lvl, err := ws.loader.Load(ws.levelName)
	if err != nil {
		panic("failed to load level: " + err.Error())
	}

	ecs := ecs.NewECS(donburi.NewWorld())
	systems.RegisterEvents(ecs.World)

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateTuning)

	// Character first so a falling character grabs ledges before it moves
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateMontages)
	ecs.AddSystem(systems.UpdatePlatforms)
	ecs.AddSystem(systems.UpdatePhysics)

	// Volumes react to where physics left the player
	ecs.AddSystem(systems.UpdateHazards)
	ecs.AddSystem(systems.UpdateCheckpoints)
	ecs.AddSystem(systems.UpdateTriggers)
	ecs.AddSystem(systems.UpdateClock)

	ecs.AddSystem(systems.UpdateFade)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateEvents)
	ecs.AddSystem(systems.UpdateHUD)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawFade)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)

	ws.ecs = ecs

	factory.CreateLevel(ws.ecs, lvl, ws.memory)
	ws.applyResume()

	if ws.fadeIn {
		fadeEntry, _ := components.Fade.First(ws.ecs.World)
		fade := components.Fade.Get(fadeEntry)
		fade.Alpha = 1
		fade.FadeTo(0, levelFadeIn)
	}
}

// applyResume moves the player to the saved checkpoint.
func (ws *WorldScene) applyResume() {
	if ws.resume == nil || ws.resume.Level != ws.levelName || ws.resume.CheckpointPos == nil {
		return
	}
	playerEntry, ok := tags.Player.First(ws.ecs.World)
	if !ok {
		return
	}
	pos := *ws.resume.CheckpointPos
	body := components.Body.Get(playerEntry)
	body.Teleport(pos, body.Rotation())
	components.Character.Get(playerEntry).UpdateCheckpoint(pos)

	if cameraEntry, ok := components.Camera.First(ws.ecs.World); ok {
		camera := components.Camera.Get(cameraEntry)
		camera.Position.X, camera.Position.Y = pos.X, pos.Z
	}
}

// changeLevel tears down this level and hands over to the next. A level
// that cannot be loaded is skipped and play resumes here.
func (ws *WorldScene) changeLevel(level *components.LevelData) {
	next := level.PendingLoad
	level.PendingLoad = ""

	if _, err := ws.loader.Load(next); err != nil {
		log.Printf("Warning: %v", err)
		ws.resumeAfterFailedLoad()
		return
	}

	if playerEntry, ok := tags.Player.First(ws.ecs.World); ok {
		components.Character.Get(playerEntry).EndPlay()
	}
	_ = systems.SaveGameProgress(&systems.SavedProgress{
		Level:  next,
		Memory: *ws.memory,
	})
	nextScene := NewWorldScene(ws.sceneChanger, ws.loader, ws.memory, next)
	nextScene.fadeIn = true
	ws.sceneChanger.ChangeScene(nextScene)
}

func (ws *WorldScene) resumeAfterFailedLoad() {
	playerEntry, ok := tags.Player.First(ws.ecs.World)
	if !ok {
		return
	}
	components.Controller.Get(playerEntry).InputEnabled = true
	if fadeEntry, ok := components.Fade.First(ws.ecs.World); ok {
		components.Fade.Get(fadeEntry).FadeTo(0, levelFadeIn)
	}
	components.Trigger.Each(ws.ecs.World, func(e *donburi.Entry) {
		components.Trigger.Get(e).Running = false
	})
}
