package factory

import (
	"github.com/automoto/trianglejam/archetypes"
	"github.com/automoto/trianglejam/components"
	"github.com/automoto/trianglejam/shared/leveldata"
	"github.com/automoto/trianglejam/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHazard creates a volume that damages the player on entry.
func CreateHazard(ecs *ecs.ECS, r leveldata.Rect) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)

	surface := mustWorld(ecs).AddSurface(r.Box(), tags.ResolvHazard)
	surface.Owner = hazard.Entity()
	components.Surface.Set(hazard, &components.SurfaceData{Surface: surface})
	components.Hazard.SetValue(hazard, components.HazardData{Name: r.Name})
	return hazard
}
