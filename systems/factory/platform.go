package factory

import (
	"github.com/automoto/trianglejam/archetypes"
	"github.com/automoto/trianglejam/components"
	"github.com/automoto/trianglejam/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform creates a solid that travels to its offset and back.
func CreatePlatform(ecs *ecs.ECS, p leveldata.Platform) *donburi.Entry {
	platform := archetypes.MovingPlatform.Spawn(ecs)

	surface := mustWorld(ecs).AddSurface(p.Box(), solidTags(p.Solid)...)
	surface.Owner = platform.Entity()
	components.Surface.Set(platform, &components.SurfaceData{Surface: surface})

	components.Platform.Set(platform, &components.PlatformData{
		Origin:   surface.Box().Center(),
		Offset:   p.Offset,
		Duration: p.Duration,
		Pause:    p.Pause,
		Outbound: true,
	})
	return platform
}
