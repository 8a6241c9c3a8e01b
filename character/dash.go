package character

import gm "github.com/automoto/trianglejam/shared/gamemath"

// Dash starts a dash: velocity and gravity are cut and the dash montage
// carries the motion. A dash re-arms on landing, or when it ends on the ground.
func (c *Character) Dash() {
	if c.hasDashed || c.IsDashing() || c.IsMantled() {
		return
	}
	c.stance = StanceDashing
	c.hasDashed = true
	c.loco.SetVelocity(gm.Zero)
	c.loco.SetGravityScale(0)
	Log.Printf("dash")

	if c.playing(MontageDash) {
		return
	}
	if c.anim != nil && c.anim.Play(MontageDash, false) > 0 {
		c.anim.OnEnd(MontageDash, c.DashEnded)
		return
	}

	// No montage to end the dash, so end it on a timer instead.
	c.dashTimer = c.timers.Schedule(c.tuning.DashFallbackDuration, func() {
		c.dashTimer = 0
		c.DashEnded(false)
	})
}

// DashEnded is the dash montage end callback. It fires for both completed
// and interrupted montages.
func (c *Character) DashEnded(interrupted bool) {
	c.loco.SetGravityScale(c.tuning.GravityScale)
	if c.stance != StanceDashing {
		return
	}
	c.stance = StanceNormal
	if !c.falling() {
		c.hasDashed = false
	}
}
