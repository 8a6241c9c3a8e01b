// Package character implements the player movement state machine: jumps,
// wall jumps, coyote time, dash, ledge mantling, the 2D/3D mode switch and
// health with respawn. It owns no integration; every effect goes through the
// collaborators in Deps.
package character

import (
	"io"
	"log"
	"math"

	gm "github.com/automoto/trianglejam/shared/gamemath"
	"github.com/automoto/trianglejam/timer"
)

// Never is the timestamp of an event that has not happened yet.
var Never = math.Inf(-1)

// Log receives gameplay event lines. It discards output until SetLogOutput
// is called.
var Log = log.New(io.Discard, "character: ", log.Lmicroseconds)

// SetLogOutput sends movement logging to w.
func SetLogOutput(w io.Writer) {
	Log.SetOutput(w)
}

// Stance is the exclusive high-level mode of the character.
type Stance int

const (
	StanceNormal Stance = iota
	StanceDashing
	StanceLedgeGrab
	// StanceClimbing is the climb from the ledge onto its top, driven by the
	// LedgeClimber.
	StanceClimbing
)

func (s Stance) String() string {
	switch s {
	case StanceNormal:
		return "Normal"
	case StanceDashing:
		return "Dashing"
	case StanceLedgeGrab:
		return "LedgeGrab"
	case StanceClimbing:
		return "Climbing"
	}
	return "Unknown"
}

type Character struct {
	loco     Locomotion
	probe    Probe
	timers   Timers
	clock    Clock
	anim     Animator
	ctrl     Controller
	listener Listener
	fader    Fader
	climber  LedgeClimber

	tuning Tuning
	stance Stance

	hasWallJumped   bool
	hasDoubleJumped bool
	hasDashed       bool
	sprinting       bool
	sideScroll      bool
	is2D            bool

	lastFallTime         float64
	lastLedgeReleaseTime float64
	climbHoldStart       float64

	health          int
	lastCheckpoint  gm.Vec3
	initialSpawn    gm.Vec3
	respawnRotation gm.Rotator
	respawnPending  bool

	grabbed     Surface
	climbTarget gm.Vec3

	wallJumpTimer timer.Handle
	dashTimer     timer.Handle
	respawnTimer  timer.Handle
}

// New builds a character. It panics when a required collaborator is missing.
func New(deps Deps, tuning Tuning) *Character {
	if deps.Locomotion == nil || deps.Probe == nil || deps.Timers == nil || deps.Clock == nil {
		panic("character: Locomotion, Probe, Timers and Clock are required")
	}
	return &Character{
		loco:                 deps.Locomotion,
		probe:                deps.Probe,
		timers:               deps.Timers,
		clock:                deps.Clock,
		anim:                 deps.Animator,
		ctrl:                 deps.Controller,
		listener:             deps.Listener,
		fader:                deps.Fader,
		climber:              deps.Climber,
		tuning:               tuning,
		lastFallTime:         Never,
		lastLedgeReleaseTime: Never,
		climbHoldStart:       Never,
		health:               tuning.MaxHealth,
	}
}

// BeginPlay records the spawn pose and applies the movement defaults. Call it
// once the body is at its spawn point.
func (c *Character) BeginPlay() {
	c.initialSpawn = c.loco.Location()
	c.respawnRotation = c.loco.Rotation()
	c.lastCheckpoint = c.initialSpawn
	c.health = c.tuning.MaxHealth
	c.loco.SetGravityScale(c.tuning.GravityScale)
	c.loco.SetMaxWalkSpeed(c.tuning.MaxWalkSpeed)
	c.notifyHealth()
}

// EndPlay cancels every pending timer owned by the character.
func (c *Character) EndPlay() {
	for _, h := range []*timer.Handle{&c.wallJumpTimer, &c.dashTimer, &c.respawnTimer} {
		if *h != 0 {
			c.timers.Cancel(*h)
			*h = 0
		}
	}
}

// Tick runs the per-frame checks. It must run before locomotion integrates
// the frame so a falling character can grab a ledge first.
func (c *Character) Tick() {
	if c.loco.Mode() == ModeFalling && !c.IsMantled() {
		c.CheckForMantle()
	}
}

// Possess sets or clears the controller that feeds view rotation.
func (c *Character) Possess(ctrl Controller) {
	c.ctrl = ctrl
}

// SetTuning swaps in new tuning and reapplies speed and gravity.
func (c *Character) SetTuning(t Tuning) {
	c.tuning = t
	if c.sprinting {
		c.loco.SetMaxWalkSpeed(t.SprintSpeed)
	} else {
		c.loco.SetMaxWalkSpeed(t.MaxWalkSpeed)
	}
	if c.stance != StanceDashing {
		c.loco.SetGravityScale(t.GravityScale)
	}
}

// MovementModeChanged is the locomotion callback for mode transitions.
func (c *Character) MovementModeChanged(prev, next MovementMode) {
	if next == ModeFalling {
		c.lastFallTime = c.clock.Now()
	}
}

func (c *Character) Tuning() Tuning { return c.tuning }

func (c *Character) Stance() Stance { return c.stance }

func (c *Character) IsDashing() bool { return c.stance == StanceDashing }

// IsMantled reports whether the character hangs on or climbs a ledge.
func (c *Character) IsMantled() bool {
	return c.stance == StanceLedgeGrab || c.stance == StanceClimbing
}

func (c *Character) HasWallJumped() bool { return c.hasWallJumped }

func (c *Character) HasDoubleJumped() bool { return c.hasDoubleJumped }

func (c *Character) HasDashed() bool { return c.hasDashed }

func (c *Character) IsSprinting() bool { return c.sprinting }

func (c *Character) IsSideScroll() bool { return c.sideScroll }

// Is2D is the 2D flag mirrored into level-flow memory across level loads.
func (c *Character) Is2D() bool { return c.is2D }

func (c *Character) Health() int { return c.health }

func (c *Character) MaxHealth() int { return c.tuning.MaxHealth }

func (c *Character) LastCheckpoint() gm.Vec3 { return c.lastCheckpoint }

func (c *Character) InitialSpawn() gm.Vec3 { return c.initialSpawn }

func (c *Character) RespawnPending() bool { return c.respawnPending }

// Grabbed is the surface currently held, or nil.
func (c *Character) Grabbed() Surface { return c.grabbed }

func (c *Character) Locomotion() Locomotion { return c.loco }

func (c *Character) now() float64 { return c.clock.Now() }

func (c *Character) falling() bool { return c.loco.Mode() == ModeFalling }

func (c *Character) facing() gm.Vec3 {
	return c.loco.Rotation().YawOnly().Forward()
}

func (c *Character) playing(m Montage) bool {
	return c.anim != nil && c.anim.IsPlaying(m)
}

func (c *Character) stopMontage(m Montage, blend float64) {
	if c.anim != nil {
		c.anim.Stop(m, blend)
	}
}
