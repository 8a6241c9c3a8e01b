package systems

import (
	"github.com/automoto/trianglejam/components"
	cfg "github.com/automoto/trianglejam/config"
	"github.com/automoto/trianglejam/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// viewIsFlat reports whether the level is drawn side-on.
func viewIsFlat(w donburi.World) bool {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return false
	}
	return components.Character.Get(playerEntry).IsSideScroll()
}

// DrawLevel renders the level geometry and volumes.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Background)

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	flat := viewIsFlat(ecs.World)

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		s := components.Surface.Get(e)
		drawBox(screen, camera, s.Box(), solidColor, flat)
		if s.HasTag(tags.ResolvCanMantle) {
			drawLedge(screen, camera, s.Box(), flat)
		}
	})
	tags.MovingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		s := components.Surface.Get(e)
		drawBox(screen, camera, s.Box(), platformColor, flat)
		if s.HasTag(tags.ResolvCanMantle) {
			drawLedge(screen, camera, s.Box(), flat)
		}
	})
	tags.Hazard.Each(ecs.World, func(e *donburi.Entry) {
		drawBox(screen, camera, components.Surface.Get(e).Box(), hazardColor, flat)
	})
	tags.Checkpoint.Each(ecs.World, func(e *donburi.Entry) {
		c := checkpointColor
		if components.Checkpoint.Get(e).Activated {
			c = activeColor
		}
		drawOutline(screen, camera, components.Surface.Get(e).Box(), c, flat)
	})
}
