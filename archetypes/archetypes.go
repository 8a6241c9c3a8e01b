package archetypes

import (
	"github.com/automoto/trianglejam/components"
	cfg "github.com/automoto/trianglejam/config"
	"github.com/automoto/trianglejam/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Space = newArchetype(
		components.Space,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Surface,
	)
	MovingPlatform = newArchetype(
		tags.MovingPlatform,
		components.Surface,
		components.Platform,
	)
	Player = newArchetype(
		tags.Player,
		components.Body,
		components.Character,
		components.Controller,
		components.Animation,
		components.Input,
	)
	Trigger = newArchetype(
		tags.Trigger,
		components.Surface,
		components.Trigger,
	)
	Checkpoint = newArchetype(
		tags.Checkpoint,
		components.Surface,
		components.Checkpoint,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Surface,
		components.Hazard,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Fade = newArchetype(
		components.Fade,
	)
	HUD = newArchetype(
		components.HUD,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
