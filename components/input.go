package components

import (
	cfg "github.com/automoto/trianglejam/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// InputData stores the current and previous frame's pressed state for all
// actions plus the analog axes. JustPressed/JustReleased are computed
// on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	MoveX, MoveY    float64               // Left stick or keys, -1..1, +Y forward
	LookX, LookY    float64               // Degrees this frame, +X turns right
	LastInputMethod InputMethod           // Most recently used input method
}

var Input = donburi.NewComponentType[InputData]()

func (d *InputData) Pressed(a cfg.ActionID) bool {
	return d.Current[a]
}

func (d *InputData) JustPressed(a cfg.ActionID) bool {
	return d.Current[a] && !d.Previous[a]
}

func (d *InputData) JustReleased(a cfg.ActionID) bool {
	return !d.Current[a] && d.Previous[a]
}
