package character

import (
	gm "github.com/automoto/trianglejam/shared/gamemath"
	"github.com/automoto/trianglejam/timer"
)

// MovementMode is the locomotion integration mode.
type MovementMode int

const (
	ModeWalking MovementMode = iota
	ModeFalling
	// ModeNone suspends gravity and collision driven integration.
	ModeNone
)

func (m MovementMode) String() string {
	switch m {
	case ModeWalking:
		return "Walking"
	case ModeFalling:
		return "Falling"
	case ModeNone:
		return "None"
	}
	return "Unknown"
}

// PlaneAxis selects which world axis is locked by a plane constraint.
type PlaneAxis int

const (
	PlaneNone PlaneAxis = iota
	// PlaneDepth locks the Y axis, leaving lateral and vertical motion.
	PlaneDepth
)

// TagCanMantle marks surfaces whose top edge can be grabbed.
const TagCanMantle = "can_mantle"

// Surface is anything a probe can hit or a character can attach to.
type Surface interface {
	HasTag(tag string) bool
}

// Shape is the swept volume, described by its half extents. Spheres are swept
// as their bounding box.
type Shape struct {
	HalfExtent gm.Vec3
}

func Sphere(radius float64) Shape {
	return Shape{HalfExtent: gm.V(radius, radius, radius)}
}

func Box(half gm.Vec3) Shape {
	return Shape{HalfExtent: half}
}

// Hit describes the first blocking contact of a sweep.
type Hit struct {
	Point    gm.Vec3
	Normal   gm.Vec3
	Distance float64
	Surface  Surface
}

// Probe answers sweep queries. Implementations never report the querying
// character's own body.
type Probe interface {
	Sweep(shape Shape, start, end gm.Vec3) (Hit, bool)
}

// Locomotion owns position, orientation and velocity integration. The
// character only commands it.
type Locomotion interface {
	Location() gm.Vec3
	Rotation() gm.Rotator
	SetRotation(r gm.Rotator)
	Teleport(loc gm.Vec3, rot gm.Rotator)
	Velocity() gm.Vec3
	SetVelocity(v gm.Vec3)
	// Launch adds impulse to the velocity, replacing the horizontal and/or
	// vertical parts instead when the override flags are set.
	Launch(impulse gm.Vec3, overrideXY, overrideZ bool)
	Jump()
	StopJumping()
	AddMovementInput(dir gm.Vec3, scale float64)
	Mode() MovementMode
	SetMode(m MovementMode)
	SetGravityScale(s float64)
	SetPlaneConstraint(axis PlaneAxis)
	SetOrientToMovement(on bool)
	SetUseControllerYaw(on bool)
	SetMaxWalkSpeed(speed float64)
	// AttachTo makes the body follow s, keeping its world transform.
	AttachTo(s Surface)
	Detach()
}

// Montage names an animation clip played by the Animator.
type Montage string

const (
	MontageDash      Montage = "dash"
	MontageLedgeGrab Montage = "ledge_grab_idle"
	MontageClimbUp   Montage = "climb_up"
)

// Animator plays montages. OnEnd callbacks fire exactly once per Play,
// with interrupted set when the montage was stopped or replaced.
type Animator interface {
	Play(m Montage, loop bool) float64
	IsPlaying(m Montage) bool
	Stop(m Montage, blendOut float64)
	OnEnd(m Montage, fn func(interrupted bool))
}

type Timers interface {
	Schedule(delay float64, fn func()) timer.Handle
	Cancel(h timer.Handle)
}

type Clock interface {
	Now() float64
}

// Controller is the possessing player controller. It owns the view rotation.
type Controller interface {
	ControlRotation() gm.Rotator
	AddYawInput(v float64)
	AddPitchInput(v float64)
}

// Listener receives UI notifications.
type Listener interface {
	HealthChanged(health int)
	PlayerDied()
}

// Fader drives the screen fade used by the full respawn.
type Fader interface {
	FadeOut(seconds float64)
	FadeIn(seconds float64)
}

// LedgeClimber performs the climb from a ledge onto its top. Implementations
// call CompleteClimb once the climb has finished.
type LedgeClimber interface {
	ClimbUpLedge(c *Character)
}

// Deps bundles the collaborators a Character needs. Locomotion, Probe, Timers
// and Clock are required; the rest may be nil.
type Deps struct {
	Locomotion Locomotion
	Probe      Probe
	Timers     Timers
	Clock      Clock
	Animator   Animator
	Controller Controller
	Listener   Listener
	Fader      Fader
	Climber    LedgeClimber
}
