package physics

import (
	"math"

	"github.com/automoto/trianglejam/character"
	gm "github.com/automoto/trianglejam/shared/gamemath"
	"github.com/automoto/trianglejam/tags"
	"github.com/solarlune/resolv"
)

// Body is a box-shaped character mover. It implements character.Locomotion.
type Body struct {
	// Owner is free for the caller, usually the ECS entry that spawned it.
	Owner any

	// ControlYaw reports the possessing controller's yaw, used while
	// controller yaw is enabled.
	ControlYaw func() float64
	// OnLanded fires when the body touches ground while falling.
	OnLanded func()
	// OnModeChanged fires after every movement mode transition.
	OnModeChanged func(prev, next character.MovementMode)

	world *World
	obj   *resolv.Object
	half  gm.Vec3

	pos  gm.Vec3
	rot  gm.Rotator
	vel  gm.Vec3
	mode character.MovementMode

	input        gm.Vec3
	gravityScale float64
	maxWalkSpeed float64

	plane      character.PlaneAxis
	planeDepth float64

	orientToMovement bool
	useControllerYaw bool

	jumping  bool
	jumpHeld float64

	attached *Surface
	ground   *Surface
}

var _ character.Locomotion = (*Body)(nil)

func newBody(w *World, pos, half gm.Vec3) *Body {
	b := &Body{
		world:        w,
		half:         half,
		pos:          pos,
		mode:         character.ModeFalling,
		gravityScale: 1,
		maxWalkSpeed: 600,
	}
	b.obj = w.newObject(b.Box(), tags.ResolvPlayer)
	b.obj.Data = b
	return b
}

func (b *Body) Box() gm.Box3 {
	return gm.BoxAt(b.pos, b.half)
}

func (b *Body) Object() *resolv.Object {
	return b.obj
}

func (b *Body) Ground() *Surface {
	return b.ground
}

func (b *Body) Attached() *Surface {
	return b.attached
}

func (b *Body) setPosition(p gm.Vec3) {
	b.pos = p
	b.world.syncObject(b.obj, b.Box())
}

func (b *Body) Location() gm.Vec3 {
	return b.pos
}

func (b *Body) Rotation() gm.Rotator {
	return b.rot
}

func (b *Body) SetRotation(r gm.Rotator) {
	b.rot = r
}

func (b *Body) Teleport(loc gm.Vec3, rot gm.Rotator) {
	b.rot = rot
	b.ground = nil
	b.setPosition(loc)
	if b.plane == character.PlaneDepth {
		b.planeDepth = loc.Y
	}
}

func (b *Body) Velocity() gm.Vec3 {
	return b.vel
}

func (b *Body) SetVelocity(v gm.Vec3) {
	b.vel = v
}

func (b *Body) Launch(impulse gm.Vec3, overrideXY, overrideZ bool) {
	if overrideXY {
		b.vel.X, b.vel.Y = impulse.X, impulse.Y
	} else {
		b.vel.X += impulse.X
		b.vel.Y += impulse.Y
	}
	if overrideZ {
		b.vel.Z = impulse.Z
	} else {
		b.vel.Z += impulse.Z
	}
	b.jumping = false
	if b.mode != character.ModeNone {
		b.SetMode(character.ModeFalling)
	}
}

// Jump starts a jump from wherever the body is. Holding it keeps the upward
// velocity for up to JumpMaxHoldTime.
func (b *Body) Jump() {
	if b.mode == character.ModeNone {
		return
	}
	b.vel.Z = b.world.Settings.JumpZVelocity
	b.jumping = true
	b.jumpHeld = 0
	b.SetMode(character.ModeFalling)
}

func (b *Body) StopJumping() {
	b.jumping = false
}

func (b *Body) IsJumping() bool {
	return b.jumping
}

func (b *Body) AddMovementInput(dir gm.Vec3, scale float64) {
	b.input = b.input.Add(dir.Scale(scale))
}

func (b *Body) Mode() character.MovementMode {
	return b.mode
}

func (b *Body) SetMode(m character.MovementMode) {
	if m == b.mode {
		return
	}
	prev := b.mode
	b.mode = m
	switch m {
	case character.ModeWalking:
		b.vel.Z = 0
		b.jumping = false
	case character.ModeNone:
		b.jumping = false
		b.ground = nil
	}
	if b.OnModeChanged != nil {
		b.OnModeChanged(prev, m)
	}
}

func (b *Body) SetGravityScale(s float64) {
	b.gravityScale = s
}

func (b *Body) GravityScale() float64 {
	return b.gravityScale
}

func (b *Body) SetPlaneConstraint(axis character.PlaneAxis) {
	b.plane = axis
	if axis == character.PlaneDepth {
		b.planeDepth = b.pos.Y
		b.vel.Y = 0
	}
}

func (b *Body) PlaneConstraint() character.PlaneAxis {
	return b.plane
}

func (b *Body) SetOrientToMovement(on bool) {
	b.orientToMovement = on
}

func (b *Body) SetUseControllerYaw(on bool) {
	b.useControllerYaw = on
}

func (b *Body) SetMaxWalkSpeed(speed float64) {
	b.maxWalkSpeed = speed
}

func (b *Body) MaxWalkSpeed() float64 {
	return b.maxWalkSpeed
}

func (b *Body) AttachTo(s character.Surface) {
	if ps, ok := s.(*Surface); ok {
		b.attached = ps
	}
}

func (b *Body) Detach() {
	b.attached = nil
}

// Step integrates one tick. Bodies in ModeNone stay put apart from
// following an attached surface.
func (b *Body) Step(dt float64) {
	in := b.input
	b.input = gm.Zero
	if b.mode == character.ModeNone || dt <= 0 {
		return
	}
	st := b.world.Settings

	in.Z = 0
	if b.plane == character.PlaneDepth {
		in.Y = 0
	}
	if l := in.Len(); l > 1 {
		in = in.Scale(1 / l)
	}

	if !in.IsZero() {
		control := 1.0
		if b.mode == character.ModeFalling {
			control = st.AirControl
		}
		horiz := b.vel.Flat().Add(in.Scale(st.MaxAcceleration * control * dt))
		horiz = gm.ClampLen2D(horiz, b.maxWalkSpeed)
		b.vel.X, b.vel.Y = horiz.X, horiz.Y
	} else {
		decel := st.BrakingWalking
		if b.mode == character.ModeFalling {
			decel = st.BrakingFalling
		}
		b.vel = gm.BrakeHorizontal(b.vel, decel, dt)
	}

	if b.mode == character.ModeFalling {
		b.vel.Z -= st.Gravity * b.gravityScale * dt
		b.vel.Z = math.Max(b.vel.Z, -st.MaxFallSpeed)
	}
	if b.jumping {
		b.jumpHeld += dt
		if b.jumpHeld < st.JumpMaxHoldTime {
			b.vel.Z = math.Max(b.vel.Z, st.JumpZVelocity)
		} else {
			b.jumping = false
		}
	}
	if b.plane == character.PlaneDepth {
		b.vel.Y = 0
	}

	switch {
	case b.orientToMovement && !in.IsZero():
		b.rot.Yaw = gm.RotateYawToward(b.rot.Yaw, gm.RotatorOf(in).Yaw, st.RotationRate*dt)
	case b.useControllerYaw && b.ControlYaw != nil:
		b.rot.Yaw = b.ControlYaw()
	}

	b.moveAxis(0, b.vel.X*dt)
	b.moveAxis(1, b.vel.Y*dt)
	b.moveAxis(2, b.vel.Z*dt)
	if b.plane == character.PlaneDepth && b.pos.Y != b.planeDepth {
		b.setPosition(gm.V(b.pos.X, b.planeDepth, b.pos.Z))
	}

	b.updateGround()
}

func (b *Body) updateGround() {
	probe := b.Box().Translate(gm.V(0, 0, -b.world.Settings.GroundProbeDepth))
	b.ground = b.world.blocked(probe)

	switch {
	case b.mode == character.ModeWalking && b.ground == nil:
		b.SetMode(character.ModeFalling)
	case b.mode == character.ModeFalling && b.ground != nil && b.vel.Z <= 0:
		b.moveAxis(2, -b.world.Settings.GroundProbeDepth)
		b.SetMode(character.ModeWalking)
		if b.OnLanded != nil {
			b.OnLanded()
		}
	}
}

// moveAxis moves along one axis and stops flush against the first solid
// surface in the way.
func (b *Body) moveAxis(axis int, d float64) {
	if d == 0 {
		return
	}
	var step gm.Vec3
	switch axis {
	case 0:
		step = gm.V(d, 0, 0)
	case 1:
		step = gm.V(0, d, 0)
	default:
		step = gm.V(0, 0, d)
	}
	current := shrink(b.Box(), contactSkin)
	target := b.Box().Translate(step)
	for _, s := range b.world.candidates(target, tags.ResolvSolid) {
		if !s.box.Overlaps(target) || s.box.Overlaps(current) {
			continue
		}
		switch axis {
		case 0:
			step.X = clampStep(step.X, b.pos.X, b.half.X, s.box.Min.X, s.box.Max.X)
		case 1:
			step.Y = clampStep(step.Y, b.pos.Y, b.half.Y, s.box.Min.Y, s.box.Max.Y)
		default:
			step.Z = clampStep(step.Z, b.pos.Z, b.half.Z, s.box.Min.Z, s.box.Max.Z)
		}
		target = b.Box().Translate(step)
	}
	if step.X != d && axis == 0 {
		b.vel.X = 0
	}
	if step.Y != d && axis == 1 {
		b.vel.Y = 0
	}
	if step.Z != d && axis == 2 {
		b.vel.Z = 0
	}
	b.setPosition(b.pos.Add(step))
}

// contactSkin absorbs rounding when a body rests flush against a surface.
const contactSkin = 1e-6

func shrink(b gm.Box3, by float64) gm.Box3 {
	e := gm.V(by, by, by)
	return gm.Box3{Min: b.Min.Add(e), Max: b.Max.Sub(e)}
}

func clampStep(d, center, half, lo, hi float64) float64 {
	if d > 0 {
		return math.Max(0, math.Min(d, lo-(center+half)))
	}
	return math.Min(0, math.Max(d, hi-(center-half)))
}

// carry shifts a grounded body with the platform it stands on.
func (b *Body) carry(d gm.Vec3) {
	b.moveAxis(0, d.X)
	b.moveAxis(1, d.Y)
	if d.Z > 0 {
		b.setPosition(b.pos.Add(gm.V(0, 0, d.Z)))
	} else {
		b.moveAxis(2, d.Z)
	}
}
