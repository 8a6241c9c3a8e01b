package character

import gm "github.com/automoto/trianglejam/shared/gamemath"

// CheckForMantle probes for a grabbable ledge in front of the head and grabs
// it. It is skipped during the re-grab cooldown after letting go.
func (c *Character) CheckForMantle() {
	if c.IsMantled() || c.now()-c.lastLedgeReleaseTime < c.tuning.LedgeRegrabDelay {
		return
	}
	t := c.tuning

	head := c.loco.Location().Add(gm.Up.Scale(t.MantleHeadHeight))
	wall, ok := c.probe.Sweep(Box(t.MantleProbeHalf), head, head.Add(c.facing().Scale(t.MantleReach)))
	if !ok || wall.Surface == nil || !wall.Surface.HasTag(TagCanMantle) {
		return
	}
	normal := wall.Normal.Flat().Normalize()
	if normal.IsZero() {
		return
	}

	// Drop a small box just behind the wall face to find the ledge top. Starting
	// inside the wall means there is no open top within reach.
	inside := wall.Point.Sub(normal.Scale(t.MantleAlignInset))
	top, ok := c.probe.Sweep(Box(t.MantleAlignHalf),
		inside.Add(gm.Up.Scale(t.MantleSearchAbove)),
		inside.Sub(gm.Up.Scale(t.MantleSearchBelow)))
	if !ok || top.Distance <= 0 || top.Normal.Z < 0.7 {
		return
	}

	ledge := gm.V(wall.Point.X, wall.Point.Y, top.Point.Z)
	grab := ledge.Add(normal.Scale(t.MantleWallOffset)).Sub(gm.Up.Scale(t.MantleHangOffset))
	c.climbTarget = ledge.Sub(normal.Scale(t.ClimbInset)).Add(gm.Up.Scale(t.CapsuleHalfHeight))
	c.grabbed = wall.Surface
	c.StartLedgeGrab(grab, gm.RotatorOf(normal.Neg()))
}

// StartLedgeGrab snaps to the grab pose and suspends locomotion. The body is
// attached to the grabbed surface so it rides moving platforms.
func (c *Character) StartLedgeGrab(loc gm.Vec3, rot gm.Rotator) {
	c.loco.Teleport(loc, rot)
	c.loco.SetVelocity(gm.Zero)
	c.loco.SetMode(ModeNone)
	if c.grabbed != nil {
		c.loco.AttachTo(c.grabbed)
	}
	c.climbHoldStart = Never
	c.stance = StanceLedgeGrab
	if c.anim != nil && !c.anim.IsPlaying(MontageLedgeGrab) {
		c.anim.Play(MontageLedgeGrab, true)
	}
	Log.Printf("ledge grab at %+v", loc)
}

// StopLedgeGrab lets go of the ledge. Unless the body is already falling it
// returns to walking and starts the re-grab cooldown.
func (c *Character) StopLedgeGrab() {
	c.loco.Detach()
	c.grabbed = nil
	if c.falling() {
		return
	}
	c.stopMontage(MontageLedgeGrab, c.tuning.LedgeReleaseBlendOut)
	c.loco.SetMode(ModeWalking)
	c.stance = StanceNormal
	c.climbHoldStart = Never
	c.lastLedgeReleaseTime = c.now()
}

// climb interprets climb input while hanging: positive climbs after a
// sustained hold, negative drops, zero resets the hold.
func (c *Character) climb(input float64) {
	if c.stance != StanceLedgeGrab {
		return
	}
	switch {
	case input > 0:
		if c.climbHoldStart == Never {
			c.climbHoldStart = c.now()
			return
		}
		if c.now()-c.climbHoldStart >= c.tuning.ClimbUpHoldThreshold {
			c.climbHoldStart = Never
			c.stance = StanceClimbing
			Log.Printf("climb up")
			if c.climber != nil {
				c.climber.ClimbUpLedge(c)
			}
		}
	case input < 0:
		c.StopLedgeGrab()
	default:
		c.climbHoldStart = Never
	}
}

// climbInput maps raw move axes to climb intent for the current view mode.
func (c *Character) climbInput(right, forward float64) float64 {
	dz := c.tuning.ClimbInputDeadzone
	if c.sideScroll {
		if right > dz || right < -dz {
			return 1
		}
		if forward < -dz {
			return -1
		}
		return 0
	}
	if forward > dz {
		return 1
	}
	if forward < -dz {
		return -1
	}
	return 0
}

// CompleteClimb finishes a climb started by the LedgeClimber: the body is put
// on top of the ledge and released.
func (c *Character) CompleteClimb() {
	if c.stance != StanceClimbing {
		return
	}
	c.loco.Teleport(c.climbTarget, c.loco.Rotation())
	c.StopLedgeGrab()
}
