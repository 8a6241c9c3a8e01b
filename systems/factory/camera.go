package factory

import (
	"github.com/automoto/trianglejam/archetypes"
	"github.com/automoto/trianglejam/components"
	gm "github.com/automoto/trianglejam/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera creates the view target, already centred on start.
func CreateCamera(ecs *ecs.ECS, start gm.Vec3) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.Vec2{X: start.X, Y: start.Z},
		Zoom:     1,
	})
	return camera
}

// CreateFade creates the screen fade overlay, fully clear.
func CreateFade(ecs *ecs.ECS) *donburi.Entry {
	fade := archetypes.Fade.Spawn(ecs)
	components.Fade.Set(fade, &components.FadeData{})
	return fade
}

func CreateHUD(ecs *ecs.ECS) *donburi.Entry {
	hud := archetypes.HUD.Spawn(ecs)
	components.HUD.Set(hud, &components.HUDData{Dirty: true})
	return hud
}
