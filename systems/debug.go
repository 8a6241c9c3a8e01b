package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/trianglejam/components"
	cfg "github.com/automoto/trianglejam/config"
	"github.com/automoto/trianglejam/fonts"
	gm "github.com/automoto/trianglejam/shared/gamemath"
	"github.com/automoto/trianglejam/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces need text v1
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowColliders {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	world := getPhysicsWorld(ecs.World)
	if world == nil {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	// Draw all collision objects in the space, side-on
	for _, obj := range world.Space().Objects() {
		left, top := world.FromScreen(obj.X, obj.Y)
		x0, y0 := project(camera, gm.V(left, 0, top), width, height, true)
		x1, y1 := project(camera, gm.V(left+obj.W, 0, top-obj.H), width, height, true)

		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvSolid) {
			c = color.RGBA{100, 100, 100, 255} // Grey
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		} else if obj.HasTags(tags.ResolvHazard) {
			c = color.RGBA{255, 0, 0, 255} // Red
		} else if obj.HasTags(tags.ResolvCheckpoint) {
			c = color.RGBA{0, 255, 0, 255} // Green
		} else if obj.HasTags(tags.ResolvTrigger) {
			c = color.RGBA{255, 0, 255, 255} // Magenta
		}
		vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1, c, false)
	}

	if fonts.DebugSmall.Loaded() {
		drawTriggerLabels(ecs.World, screen, camera)
	}
}

func drawTriggerLabels(w donburi.World, screen *ebiten.Image, camera *components.CameraData) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	face := fonts.DebugSmall.Get()
	components.Trigger.Each(w, func(e *donburi.Entry) {
		t := components.Trigger.Get(e)
		b := t.Box()
		x, y := project(camera, gm.V(b.Min.X, 0, b.Max.Z), width, height, true)
		label := fmt.Sprintf("%s [%s]", t.Name, t.Variant)
		if t.Running {
			label += " *"
		}
		text.Draw(screen, label, face, int(x)+2, int(y)+10, cfg.Magenta)
	})
}
