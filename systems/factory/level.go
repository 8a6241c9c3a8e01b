package factory

import (
	"github.com/automoto/trianglejam/archetypes"
	"github.com/automoto/trianglejam/components"
	"github.com/automoto/trianglejam/levelflow"
	"github.com/automoto/trianglejam/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds every entity of lvl and starts play. The spawn point
// and the starting view mode come from mem.
func CreateLevel(ecs *ecs.ECS, lvl *leveldata.Level, mem *levelflow.Memory) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		CurrentLevel: lvl,
		Memory:       mem,
	})

	CreateSpace(ecs, lvl.Width, lvl.Height)
	CreateClock(ecs)

	for _, s := range lvl.Solids {
		CreateWall(ecs, s)
	}
	for _, p := range lvl.Platforms {
		CreatePlatform(ecs, p)
	}
	for _, h := range lvl.Hazards {
		CreateHazard(ecs, h)
	}
	for _, c := range lvl.Checkpoints {
		CreateCheckpoint(ecs, c)
	}
	for _, t := range lvl.Triggers {
		CreateTrigger(ecs, t)
	}

	CreateFade(ecs)
	CreateHUD(ecs)

	spawn := levelflow.ChooseSpawn(mem, lvl.SpawnPoints, lvl.DefaultSpawn())
	player := CreatePlayer(ecs, spawn)
	c := components.Character.Get(player)
	c.BeginPlay()
	c.ToggleSideScrollMode(mem.IsCharacter2D)

	CreateCamera(ecs, components.Body.Get(player).Location())
	return level
}
