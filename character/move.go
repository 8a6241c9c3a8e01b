package character

import gm "github.com/automoto/trianglejam/shared/gamemath"

// Move applies the move axes for this tick. Without a controller the input is
// dropped. Right after a wall jump it is ignored. While mantled it becomes
// climb input and never reaches locomotion.
func (c *Character) Move(right, forward float64) {
	if c.ctrl == nil || c.hasWallJumped {
		return
	}
	if c.IsMantled() {
		c.climb(c.climbInput(right, forward))
		return
	}
	if c.sideScroll {
		c.loco.AddMovementInput(gm.AxisX, right)
		return
	}
	basis := c.ctrl.ControlRotation().YawOnly()
	c.loco.AddMovementInput(basis.Forward(), forward)
	c.loco.AddMovementInput(basis.Right(), right)
}

// Look feeds the look axes to the controller.
func (c *Character) Look(yaw, pitch float64) {
	if c.ctrl == nil {
		return
	}
	c.ctrl.AddYawInput(yaw)
	c.ctrl.AddPitchInput(pitch)
}

// ToggleSideScrollMode switches between planar 2D movement and free 3D
// movement. Leaving 2D only lifts the plane constraint.
func (c *Character) ToggleSideScrollMode(enable bool) {
	c.sideScroll = enable
	c.is2D = enable
	if !enable {
		c.loco.SetPlaneConstraint(PlaneNone)
		return
	}
	c.loco.SetPlaneConstraint(PlaneDepth)
	// Facing must follow lateral motion so the forward probes still work.
	c.loco.SetOrientToMovement(true)
	c.loco.SetUseControllerYaw(false)
}

func (c *Character) Sprint() {
	c.sprinting = true
	c.loco.SetMaxWalkSpeed(c.tuning.SprintSpeed)
}

func (c *Character) StopSprint() {
	c.sprinting = false
	c.loco.SetMaxWalkSpeed(c.tuning.MaxWalkSpeed)
}
