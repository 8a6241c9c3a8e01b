package factory

import (
	"github.com/automoto/trianglejam/archetypes"
	"github.com/automoto/trianglejam/components"
	"github.com/automoto/trianglejam/shared/leveldata"
	"github.com/automoto/trianglejam/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func solidTags(s leveldata.Solid) []string {
	if s.CanMantle {
		return []string{tags.ResolvSolid, tags.ResolvCanMantle}
	}
	return []string{tags.ResolvSolid}
}

func CreateWall(ecs *ecs.ECS, s leveldata.Solid) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	surface := mustWorld(ecs).AddSurface(s.Box(), solidTags(s)...)
	surface.Owner = wall.Entity() // Link for O(1) lookup

	components.Surface.Set(wall, &components.SurfaceData{Surface: surface})
	return wall
}
