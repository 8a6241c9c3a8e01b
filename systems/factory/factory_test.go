package factory

import (
	"testing"

	"github.com/automoto/trianglejam/components"
	cfg "github.com/automoto/trianglejam/config"
	"github.com/automoto/trianglejam/levelflow"
	gm "github.com/automoto/trianglejam/shared/gamemath"
	"github.com/automoto/trianglejam/shared/leveldata"
	"github.com/automoto/trianglejam/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func testLevel() *leveldata.Level {
	r := func(x, z, w, h float64) leveldata.Rect {
		return leveldata.Rect{X: x, Z: z, W: w, H: h, DepthMin: -200, DepthMax: 200}
	}
	return &leveldata.Level{
		Name:   "factory",
		Width:  1000,
		Height: 600,
		Solids: []leveldata.Solid{
			{Rect: r(0, 0, 1000, 100)},
			{Rect: r(600, 100, 100, 300), CanMantle: true},
		},
		Platforms:   []leveldata.Platform{{Solid: leveldata.Solid{Rect: r(200, 300, 100, 20)}, Offset: gm.V(100, 0, 0), Duration: 2}},
		Hazards:     []leveldata.Rect{r(400, 100, 50, 20)},
		Checkpoints: []leveldata.Rect{r(500, 100, 20, 200)},
		Triggers:    []leveldata.CameraTrigger{{Rect: r(800, 100, 50, 200)}},
		SpawnPoints: []leveldata.SpawnPoint{
			{Name: "left", Position: gm.V(50, 0, 100)},
			{Name: "right", Position: gm.V(900, 0, 100), Yaw: 180, Tags: []string{"Spawn_Right"}, Default: true},
			{Name: "door", Position: gm.V(300, 0, 100), Yaw: 90, Tags: []string{"Spawn_Door"}},
		},
	}
}

func build(t *testing.T, mem *levelflow.Memory) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	CreateLevel(e, testLevel(), mem)
	return e
}

func TestCreateLevelEntities(t *testing.T) {
	e := build(t, levelflow.NewMemory())

	cases := []struct {
		name string
		tag  *donburi.ComponentType[donburi.Tag]
		want int
	}{
		{"walls", tags.Wall, 2},
		{"platforms", tags.MovingPlatform, 1},
		{"hazards", tags.Hazard, 1},
		{"checkpoints", tags.Checkpoint, 1},
		{"triggers", tags.Trigger, 1},
		{"players", tags.Player, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := 0
			c.tag.Each(e.World, func(*donburi.Entry) { got++ })
			if got != c.want {
				t.Fatalf("%s = %d, want %d", c.name, got, c.want)
			}
		})
	}

	mantle := 0
	for _, s := range mustWorld(e).Surfaces() {
		if s.HasTag(tags.ResolvCanMantle) {
			mantle++
		}
	}
	if mantle != 1 {
		t.Fatalf("can_mantle surfaces = %d, want 1", mantle)
	}
}

func TestCreateLevelChoosesSpawn(t *testing.T) {
	cases := []struct {
		name  string
		mem   *levelflow.Memory
		wantX float64
		yaw   float64
	}{
		{"no_tag_uses_default", &levelflow.Memory{}, 900, 180},
		{"tag_match", &levelflow.Memory{TargetSpawnTag: "Spawn_Door"}, 300, 90},
		{"unknown_tag_uses_default", &levelflow.Memory{TargetSpawnTag: "Spawn_Nowhere"}, 900, 180},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := build(t, c.mem)
			p, _ := tags.Player.First(e.World)
			body := components.Body.Get(p)
			want := gm.V(c.wantX, 0, 100+cfg.Player.CapsuleHalfHeight+spawnClearance)
			if got := body.Location(); got != want {
				t.Fatalf("spawned at %v, want %v", got, want)
			}
			if got := body.Rotation().Yaw; got != c.yaw {
				t.Fatalf("yaw = %v, want %v", got, c.yaw)
			}
			if got := components.Character.Get(p).InitialSpawn(); got != want {
				t.Fatalf("initial spawn = %v, want %v", got, want)
			}
		})
	}
}

func TestCreateLevelStartsInMemoryMode(t *testing.T) {
	e := build(t, &levelflow.Memory{IsCharacter2D: true})
	p, _ := tags.Player.First(e.World)
	c := components.Character.Get(p)
	if !c.IsSideScroll() || !c.Is2D() {
		t.Fatalf("side scroll = %t, 2D = %t, want both", c.IsSideScroll(), c.Is2D())
	}
	if c.Health() != cfg.Player.MaxHealth {
		t.Fatalf("health = %d, want full", c.Health())
	}
}

func TestCheckpointSpawnIsBodyCentre(t *testing.T) {
	e := build(t, levelflow.NewMemory())
	entry, ok := components.Checkpoint.First(e.World)
	if !ok {
		t.Fatalf("no checkpoint")
	}
	cp := components.Checkpoint.Get(entry)
	want := gm.V(510, 0, 100+cfg.Player.CapsuleHalfHeight+spawnClearance)
	if cp.Spawn != want {
		t.Fatalf("spawn = %v, want %v", cp.Spawn, want)
	}
}
