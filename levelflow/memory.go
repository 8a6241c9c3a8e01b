// Package levelflow holds the state that survives level loads and the spawn
// point chooser that consumes it.
package levelflow

// Memory is created once at startup and passed by pointer to whatever reads
// or writes it. It outlives every level and character.
type Memory struct {
	// TargetSpawnTag names the spawn point to use after the next level load.
	// Empty means no preference.
	TargetSpawnTag string `json:"targetSpawnTag"`
	IsCharacter2D  bool   `json:"isCharacter2D"`
}

func NewMemory() *Memory {
	return &Memory{}
}

// PrepareLevelLoad records where and in which mode the character should
// appear in the next level. An empty returnTag leaves the stored tag alone.
func (m *Memory) PrepareLevelLoad(returnTag string, is2D bool) {
	if returnTag != "" {
		m.TargetSpawnTag = returnTag
	}
	m.IsCharacter2D = is2D
}

// Tagged is a spawn candidate that may carry tags.
type Tagged interface {
	HasTag(tag string) bool
}

// ChooseSpawn returns the first candidate carrying the remembered tag. With
// no tag or no match it returns fallback.
func ChooseSpawn[T Tagged](m *Memory, candidates []T, fallback T) T {
	if m == nil || m.TargetSpawnTag == "" {
		return fallback
	}
	for _, c := range candidates {
		if c.HasTag(m.TargetSpawnTag) {
			return c
		}
	}
	return fallback
}
