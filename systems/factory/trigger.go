package factory

import (
	"github.com/automoto/trianglejam/archetypes"
	"github.com/automoto/trianglejam/components"
	"github.com/automoto/trianglejam/shared/leveldata"
	"github.com/automoto/trianglejam/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateTrigger(ecs *ecs.ECS, t leveldata.CameraTrigger) *donburi.Entry {
	trigger := archetypes.Trigger.Spawn(ecs)

	surface := mustWorld(ecs).AddSurface(t.Box(), tags.ResolvTrigger)
	surface.Owner = trigger.Entity()
	components.Surface.Set(trigger, &components.SurfaceData{Surface: surface})
	components.Trigger.SetValue(trigger, components.TriggerData{CameraTrigger: t})
	return trigger
}
