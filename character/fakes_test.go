package character

import (
	gm "github.com/automoto/trianglejam/shared/gamemath"
	"github.com/automoto/trianglejam/timer"
)

type fakeLoco struct {
	loc          gm.Vec3
	rot          gm.Rotator
	vel          gm.Vec3
	mode         MovementMode
	gravity      float64
	plane        PlaneAxis
	orient       bool
	ctrlYaw      bool
	maxWalk      float64
	attached     Surface
	jumps        int
	stopJumps    int
	launches     []gm.Vec3
	inputs       []gm.Vec3
	teleports    []gm.Vec3
	modeChanges  []MovementMode
	onModeChange func(prev, next MovementMode)
}

func (l *fakeLoco) Location() gm.Vec3        { return l.loc }
func (l *fakeLoco) Rotation() gm.Rotator     { return l.rot }
func (l *fakeLoco) SetRotation(r gm.Rotator) { l.rot = r }
func (l *fakeLoco) Velocity() gm.Vec3        { return l.vel }
func (l *fakeLoco) SetVelocity(v gm.Vec3)    { l.vel = v }
func (l *fakeLoco) Jump()                    { l.jumps++ }
func (l *fakeLoco) StopJumping()             { l.stopJumps++ }
func (l *fakeLoco) Mode() MovementMode       { return l.mode }
func (l *fakeLoco) SetGravityScale(s float64) {
	l.gravity = s
}
func (l *fakeLoco) SetPlaneConstraint(a PlaneAxis) { l.plane = a }
func (l *fakeLoco) SetOrientToMovement(on bool)    { l.orient = on }
func (l *fakeLoco) SetUseControllerYaw(on bool)    { l.ctrlYaw = on }
func (l *fakeLoco) SetMaxWalkSpeed(s float64)      { l.maxWalk = s }
func (l *fakeLoco) AttachTo(s Surface)             { l.attached = s }
func (l *fakeLoco) Detach()                        { l.attached = nil }

func (l *fakeLoco) Teleport(loc gm.Vec3, rot gm.Rotator) {
	l.loc, l.rot = loc, rot
	l.teleports = append(l.teleports, loc)
}

func (l *fakeLoco) Launch(impulse gm.Vec3, overrideXY, overrideZ bool) {
	l.launches = append(l.launches, impulse)
}

func (l *fakeLoco) AddMovementInput(dir gm.Vec3, scale float64) {
	l.inputs = append(l.inputs, dir.Scale(scale))
}

func (l *fakeLoco) SetMode(m MovementMode) {
	prev := l.mode
	l.mode = m
	l.modeChanges = append(l.modeChanges, m)
	if l.onModeChange != nil && prev != m {
		l.onModeChange(prev, m)
	}
}

type fakeSurface struct {
	tags map[string]bool
}

func (s *fakeSurface) HasTag(tag string) bool { return s.tags[tag] }

func mantleable() *fakeSurface {
	return &fakeSurface{tags: map[string]bool{TagCanMantle: true}}
}

// fakeProbe answers sweeps from a scripted function and counts calls.
type fakeProbe struct {
	calls int
	shape []Shape
	fn    func(shape Shape, start, end gm.Vec3) (Hit, bool)
}

func (p *fakeProbe) Sweep(shape Shape, start, end gm.Vec3) (Hit, bool) {
	p.calls++
	p.shape = append(p.shape, shape)
	if p.fn == nil {
		return Hit{}, false
	}
	return p.fn(shape, start, end)
}

type fakeAnim struct {
	duration float64
	playing  map[Montage]bool
	plays    map[Montage]int
	stops    map[Montage]int
	onEnd    map[Montage]func(bool)
}

func newFakeAnim(duration float64) *fakeAnim {
	return &fakeAnim{
		duration: duration,
		playing:  map[Montage]bool{},
		plays:    map[Montage]int{},
		stops:    map[Montage]int{},
		onEnd:    map[Montage]func(bool){},
	}
}

func (a *fakeAnim) Play(m Montage, loop bool) float64 {
	if a.duration <= 0 {
		return 0
	}
	a.playing[m] = true
	a.plays[m]++
	return a.duration
}

func (a *fakeAnim) IsPlaying(m Montage) bool { return a.playing[m] }

func (a *fakeAnim) Stop(m Montage, blendOut float64) {
	a.stops[m]++
	a.finish(m, true)
}

func (a *fakeAnim) OnEnd(m Montage, fn func(bool)) { a.onEnd[m] = fn }

func (a *fakeAnim) finish(m Montage, interrupted bool) {
	a.playing[m] = false
	if fn := a.onEnd[m]; fn != nil {
		delete(a.onEnd, m)
		fn(interrupted)
	}
}

type fakeController struct {
	rot        gm.Rotator
	yaw, pitch float64
}

func (c *fakeController) ControlRotation() gm.Rotator { return c.rot }
func (c *fakeController) AddYawInput(v float64)       { c.yaw += v }
func (c *fakeController) AddPitchInput(v float64)     { c.pitch += v }

type fakeListener struct {
	health []int
	deaths int
}

func (l *fakeListener) HealthChanged(h int) { l.health = append(l.health, h) }
func (l *fakeListener) PlayerDied()         { l.deaths++ }

type fakeFader struct {
	outs, ins int
}

func (f *fakeFader) FadeOut(float64) { f.outs++ }
func (f *fakeFader) FadeIn(float64)  { f.ins++ }

type fakeClimber struct {
	calls int
}

func (cl *fakeClimber) ClimbUpLedge(c *Character) { cl.calls++ }

type rig struct {
	c        *Character
	loco     *fakeLoco
	probe    *fakeProbe
	clock    *timer.Queue
	anim     *fakeAnim
	ctrl     *fakeController
	listener *fakeListener
	fader    *fakeFader
	climber  *fakeClimber
}

func newRig() *rig {
	r := &rig{
		loco:     &fakeLoco{mode: ModeWalking},
		probe:    &fakeProbe{},
		clock:    timer.NewQueue(),
		anim:     newFakeAnim(0.5),
		ctrl:     &fakeController{},
		listener: &fakeListener{},
		fader:    &fakeFader{},
		climber:  &fakeClimber{},
	}
	r.c = New(Deps{
		Locomotion: r.loco,
		Probe:      r.probe,
		Timers:     r.clock,
		Clock:      r.clock,
		Animator:   r.anim,
		Controller: r.ctrl,
		Listener:   r.listener,
		Fader:      r.fader,
		Climber:    r.climber,
	}, DefaultTuning())
	r.loco.onModeChange = r.c.MovementModeChanged
	r.c.BeginPlay()
	return r
}

// fall puts the body in the air at the current time.
func (r *rig) fall() {
	r.loco.SetMode(ModeFalling)
}

// wallAhead makes every sphere sweep hit a wall facing -X.
func (r *rig) wallAhead() {
	r.probe.fn = func(shape Shape, start, end gm.Vec3) (Hit, bool) {
		return Hit{Point: end, Normal: gm.V(-1, 0, 0), Distance: 40, Surface: &fakeSurface{}}, true
	}
}
