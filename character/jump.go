package character

import gm "github.com/automoto/trianglejam/shared/gamemath"

// RequestJump resolves a jump press. On the ground it always jumps. In the air
// it tries a wall jump first, then falls through to the coyote window and
// finally to the double jump.
func (c *Character) RequestJump() {
	if c.IsMantled() {
		return
	}
	if c.loco.Mode() == ModeWalking {
		c.loco.Jump()
		return
	}

	if !c.hasWallJumped {
		c.tryWallJump()
	}
	if c.hasWallJumped {
		return
	}

	if c.now()-c.lastFallTime < c.tuning.MaxCoyoteTime {
		Log.Printf("coyote jump %.3fs after leaving ground", c.now()-c.lastFallTime)
		c.loco.Jump()
		return
	}
	if !c.hasDoubleJumped {
		c.hasDoubleJumped = true
		Log.Printf("double jump")
		c.loco.Jump()
	}
}

// JumpStart is the rising edge of the jump input.
func (c *Character) JumpStart() {
	c.RequestJump()
}

// JumpEnd is the falling edge of the jump input; it cuts a held jump short.
func (c *Character) JumpEnd() {
	c.loco.StopJumping()
}

func (c *Character) tryWallJump() {
	start := c.loco.Location()
	end := start.Add(c.facing().Scale(c.tuning.WallJumpTraceDistance))
	hit, ok := c.probe.Sweep(Sphere(c.tuning.WallJumpTraceRadius), start, end)
	if !ok {
		return
	}

	face := gm.RotatorOf(hit.Normal)
	face.Pitch, face.Roll = 0, 0
	c.loco.SetRotation(face)

	impulse := hit.Normal.Scale(c.tuning.WallJumpBounceImpulse).
		Add(gm.Up.Scale(c.tuning.WallJumpVerticalImpulse))
	c.loco.Launch(impulse, true, true)

	c.hasWallJumped = true
	c.wallJumpTimer = c.timers.Schedule(c.tuning.DelayBetweenWallJumps, c.ResetWallJump)
	Log.Printf("wall jump off normal %+v", hit.Normal)
}

// ResetWallJump re-arms the wall jump. Only the wall jump timer calls it.
func (c *Character) ResetWallJump() {
	c.hasWallJumped = false
	c.wallJumpTimer = 0
}

// Landed is the locomotion callback for touching walkable ground.
func (c *Character) Landed() {
	c.hasDoubleJumped = false
	c.hasDashed = false
}
