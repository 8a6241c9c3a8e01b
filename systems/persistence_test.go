package systems

import (
	"testing"

	"github.com/automoto/trianglejam/components"
	"github.com/automoto/trianglejam/levelflow"
	gm "github.com/automoto/trianglejam/shared/gamemath"
	"github.com/automoto/trianglejam/shared/leveldata"
)

type memStore map[string][]byte

func (m memStore) LoadItem(key string) ([]byte, error) { return m[key], nil }

func (m memStore) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

func useStore(t *testing.T) memStore {
	t.Helper()
	m := memStore{}
	saved := store
	store = m
	t.Cleanup(func() { store = saved })
	return m
}

func TestSaveAndLoadProgress(t *testing.T) {
	useStore(t)
	pos := gm.V(1, 2, 3)
	want := SavedProgress{
		Level:         "book1",
		Checkpoint:    "cp1",
		CheckpointPos: &pos,
		Memory:        levelflow.Memory{TargetSpawnTag: "Spawn_Back", IsCharacter2D: true},
	}
	if err := SaveGameProgress(&want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadGameProgress()
	if err != nil || got == nil {
		t.Fatalf("load = %v, %v", got, err)
	}
	if got.Level != want.Level || got.Checkpoint != want.Checkpoint || *got.CheckpointPos != pos || got.Memory != want.Memory {
		t.Fatalf("loaded %+v, want %+v", got, want)
	}
}

func TestStartupProgress(t *testing.T) {
	cases := []struct {
		name         string
		levelFromEnv bool
		wantResume   bool
	}{
		{"resumes_save", false, true},
		{"env_level_clears_save", true, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := useStore(t)
			if err := SaveGameProgress(&SavedProgress{Level: "hub"}); err != nil {
				t.Fatalf("save: %v", err)
			}

			got := StartupProgress(c.levelFromEnv)
			if (got != nil) != c.wantResume {
				t.Fatalf("StartupProgress(%t) = %+v", c.levelFromEnv, got)
			}
			if c.levelFromEnv && len(m[progressKey]) != 0 {
				t.Fatalf("saved progress should be wiped, still %q", m[progressKey])
			}
			if c.levelFromEnv {
				if again, _ := LoadGameProgress(); again != nil {
					t.Fatalf("progress survived the wipe: %+v", again)
				}
			}
		})
	}
}

func TestLoadProgressWithoutStore(t *testing.T) {
	saved := store
	store = nil
	t.Cleanup(func() { store = saved })

	if got, err := LoadGameProgress(); got != nil || err != nil {
		t.Fatalf("load = %+v, %v, want nothing", got, err)
	}
	if err := ClearGameProgress(); err != nil {
		t.Fatalf("clear: %v", err)
	}
}

func TestCheckpointSavesProgress(t *testing.T) {
	useStore(t)
	lvl := testLevel()
	lvl.Checkpoints = []leveldata.Rect{rect("cp1", 300, 100, 50, 200)}
	e := newTestWorld(t, lvl, nil)

	run(e, 90, func(in *components.InputData) { in.MoveY = 1 })

	got, _ := LoadGameProgress()
	if got == nil || got.Level != "test" || got.Checkpoint != "cp1" || got.CheckpointPos == nil {
		t.Fatalf("saved progress = %+v", got)
	}
	if got.CheckpointPos.X != 325 {
		t.Fatalf("saved checkpoint x = %v, want 325", got.CheckpointPos.X)
	}
}
