package character

// Intent is one tick of normalized player input: axes plus action edges.
type Intent struct {
	Right, Forward     float64
	LookYaw, LookPitch float64

	JumpPressed    bool
	JumpReleased   bool
	DashPressed    bool
	SprintPressed  bool
	SprintReleased bool
}

// Route dispatches an intent in a fixed order. Move runs every tick, even with
// neutral axes, so the climb hold resets when input is released.
func (c *Character) Route(in Intent) {
	c.Look(in.LookYaw, in.LookPitch)
	if in.JumpPressed {
		c.JumpStart()
	}
	if in.JumpReleased {
		c.JumpEnd()
	}
	if in.DashPressed {
		c.Dash()
	}
	if in.SprintPressed {
		c.Sprint()
	}
	if in.SprintReleased {
		c.StopSprint()
	}
	c.Move(in.Right, in.Forward)
}
