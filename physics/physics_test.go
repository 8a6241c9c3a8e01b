package physics

import (
	"math"
	"testing"

	"github.com/automoto/trianglejam/character"
	gm "github.com/automoto/trianglejam/shared/gamemath"
	"github.com/automoto/trianglejam/tags"
	"github.com/automoto/trianglejam/timer"
)

const dt = 1.0 / 60

var capsule = gm.V(35, 35, 90)

func box(minX, minZ, maxX, maxZ float64) gm.Box3 {
	return gm.Box3{Min: gm.V(minX, -200, minZ), Max: gm.V(maxX, 200, maxZ)}
}

func newTestWorld() *World {
	return NewWorld(2000, 1000, DefaultSettings())
}

func steps(w *World, n int) {
	for i := 0; i < n; i++ {
		w.Step(dt)
	}
}

func TestBodyLandsOnFloor(t *testing.T) {
	w := newTestWorld()
	w.AddSurface(box(0, 0, 2000, 50), tags.ResolvSolid)
	b := w.AddBody(gm.V(100, 0, 300), capsule)

	landed := 0
	var modes []character.MovementMode
	b.OnLanded = func() { landed++ }
	b.OnModeChanged = func(_, next character.MovementMode) { modes = append(modes, next) }

	steps(w, 120)

	if b.Mode() != character.ModeWalking {
		t.Fatalf("mode = %v, want Walking", b.Mode())
	}
	if math.Abs(b.Location().Z-140) > 1e-6 {
		t.Fatalf("resting height = %v, want 140", b.Location().Z)
	}
	if landed != 1 || len(modes) != 1 {
		t.Fatalf("landed=%d modes=%v", landed, modes)
	}
}

func TestWallBlocksLateralMovement(t *testing.T) {
	w := newTestWorld()
	w.AddSurface(box(0, 0, 2000, 50), tags.ResolvSolid)
	w.AddSurface(box(300, 50, 400, 600), tags.ResolvSolid)
	b := w.AddBody(gm.V(200, 0, 140), capsule)
	b.SetMode(character.ModeWalking)
	b.SetMaxWalkSpeed(600)

	for i := 0; i < 60; i++ {
		b.AddMovementInput(gm.AxisX, 1)
		w.Step(dt)
	}
	if got := b.Location().X; math.Abs(got-265) > 1e-9 {
		t.Fatalf("x = %v, want flush against the wall at 265", got)
	}
	if b.Velocity().X != 0 {
		t.Fatalf("blocked axis should lose its velocity")
	}
}

func TestBrakingStopsWalkingBody(t *testing.T) {
	w := newTestWorld()
	w.AddSurface(box(0, 0, 2000, 50), tags.ResolvSolid)
	b := w.AddBody(gm.V(200, 0, 140), capsule)
	b.SetMode(character.ModeWalking)
	b.SetVelocity(gm.V(500, 0, 0))

	steps(w, 30)
	if b.Velocity().X != 0 {
		t.Fatalf("velocity = %+v, expected to brake to rest", b.Velocity())
	}
}

func TestJumpHold(t *testing.T) {
	w := newTestWorld()
	w.AddSurface(box(0, 0, 2000, 50), tags.ResolvSolid)
	b := w.AddBody(gm.V(200, 0, 140), capsule)
	b.SetMode(character.ModeWalking)

	b.Jump()
	if b.Mode() != character.ModeFalling {
		t.Fatalf("jump should leave the ground")
	}
	steps(w, 12)
	if got := b.Velocity().Z; got != w.Settings.JumpZVelocity {
		t.Fatalf("held jump velocity = %v, want %v", got, w.Settings.JumpZVelocity)
	}
	b.StopJumping()
	w.Step(dt)
	if b.Velocity().Z >= w.Settings.JumpZVelocity {
		t.Fatalf("released jump should decelerate")
	}
}

func TestLaunchOverrides(t *testing.T) {
	w := newTestWorld()
	b := w.AddBody(gm.V(200, 0, 500), capsule)
	b.SetVelocity(gm.V(10, 20, 30))

	b.Launch(gm.V(1, 1, 1), false, false)
	if b.Velocity() != gm.V(11, 21, 31) {
		t.Fatalf("additive launch = %+v", b.Velocity())
	}
	b.Launch(gm.V(-800, 0, 900), true, true)
	if b.Velocity() != gm.V(-800, 0, 900) {
		t.Fatalf("override launch = %+v", b.Velocity())
	}
}

func TestPlaneConstraintLocksDepth(t *testing.T) {
	w := newTestWorld()
	w.AddSurface(box(0, 0, 2000, 50), tags.ResolvSolid)
	b := w.AddBody(gm.V(200, 12, 140), capsule)
	b.SetMode(character.ModeWalking)
	b.SetPlaneConstraint(character.PlaneDepth)

	for i := 0; i < 30; i++ {
		b.AddMovementInput(gm.V(0.5, 0.5, 0), 1)
		w.Step(dt)
	}
	if b.Location().Y != 12 {
		t.Fatalf("depth drifted to %v", b.Location().Y)
	}
	if b.Location().X <= 200 {
		t.Fatalf("lateral input should still move the body")
	}
}

func TestOrientToMovementTurnsAtRotationRate(t *testing.T) {
	w := newTestWorld()
	b := w.AddBody(gm.V(200, 0, 500), capsule)
	b.SetOrientToMovement(true)

	b.AddMovementInput(gm.V(-1, 0, 0), 1)
	w.Step(0.1)
	if got := math.Abs(b.Rotation().Yaw); math.Abs(got-50) > 1e-9 {
		t.Fatalf("yaw = %v after 0.1s, want 50 degrees of turn", b.Rotation().Yaw)
	}
}

func TestControllerYaw(t *testing.T) {
	w := newTestWorld()
	b := w.AddBody(gm.V(200, 0, 500), capsule)
	b.ControlYaw = func() float64 { return 90 }

	w.Step(dt)
	if b.Rotation().Yaw != 0 {
		t.Fatalf("controller yaw applied while disabled")
	}
	b.SetUseControllerYaw(true)
	w.Step(dt)
	if b.Rotation().Yaw != 90 {
		t.Fatalf("yaw = %v, want 90", b.Rotation().Yaw)
	}
}

func TestModeNoneFreezes(t *testing.T) {
	w := newTestWorld()
	b := w.AddBody(gm.V(200, 0, 500), capsule)
	b.SetMode(character.ModeNone)
	b.AddMovementInput(gm.AxisX, 1)

	steps(w, 30)
	if b.Location() != gm.V(200, 0, 500) {
		t.Fatalf("body moved while suspended: %+v", b.Location())
	}
}

func TestPlatformCarriesBodies(t *testing.T) {
	w := newTestWorld()
	platform := w.AddSurface(box(100, 0, 400, 50), tags.ResolvSolid)
	rider := w.AddBody(gm.V(200, 0, 140), capsule)
	steps(w, 2)
	if rider.Ground() != platform {
		t.Fatalf("rider should stand on the platform")
	}

	hanger := w.AddBody(gm.V(500, 0, 500), capsule)
	hanger.SetMode(character.ModeNone)
	hanger.AttachTo(platform)

	platform.MoveBy(gm.V(30, 0, 0))
	if rider.Location().X != 230 {
		t.Fatalf("rider x = %v, want 230", rider.Location().X)
	}
	if hanger.Location().X != 530 {
		t.Fatalf("attached body x = %v, want 530", hanger.Location().X)
	}

	hanger.Detach()
	platform.MoveBy(gm.V(30, 0, 0))
	if hanger.Location().X != 530 {
		t.Fatalf("detached body should stay put")
	}
}

func TestSweep(t *testing.T) {
	w := newTestWorld()
	wall := w.AddSurface(box(200, 0, 250, 300), tags.ResolvSolid, tags.ResolvCanMantle)
	w.AddSurface(gm.Box3{Min: gm.V(500, 500, 0), Max: gm.V(600, 600, 300)}, tags.ResolvSolid)
	w.AddSurface(box(700, 0, 800, 300), tags.ResolvTrigger)

	cases := []struct {
		name       string
		shape      character.Shape
		start, end gm.Vec3
		hit        bool
		point      gm.Vec3
		normal     gm.Vec3
		distance   float64
	}{
		{"hits_face", character.Sphere(10), gm.V(100, 0, 100), gm.V(300, 0, 100), true, gm.V(200, 0, 100), gm.V(-1, 0, 0), 90},
		{"hits_back_face", character.Sphere(10), gm.V(400, 0, 100), gm.V(100, 0, 100), true, gm.V(250, 0, 100), gm.V(1, 0, 0), 140},
		{"down_onto_top", character.Box(gm.V(5, 5, 5)), gm.V(220, 0, 400), gm.V(220, 0, 200), true, gm.V(220, 0, 300), gm.V(0, 0, 1), 95},
		{"short", character.Sphere(10), gm.V(100, 0, 100), gm.V(150, 0, 100), false, gm.Vec3{}, gm.Vec3{}, 0},
		{"starts_inside", character.Sphere(10), gm.V(220, 0, 100), gm.V(400, 0, 100), true, gm.V(230, 0, 100), gm.V(-1, 0, 0), 0},
		{"starts_flush", character.Sphere(10), gm.V(190, 0, 100), gm.V(300, 0, 100), true, gm.V(200, 0, 100), gm.V(-1, 0, 0), 0},
		{"leaving_wall", character.Sphere(10), gm.V(245, 0, 100), gm.V(400, 0, 100), false, gm.Vec3{}, gm.Vec3{}, 0},
		{"slides_along_top", character.Sphere(10), gm.V(220, 0, 310), gm.V(400, 0, 310), false, gm.Vec3{}, gm.Vec3{}, 0},
		{"depth_miss", character.Sphere(10), gm.V(400, 300, 100), gm.V(700, 300, 100), false, gm.Vec3{}, gm.Vec3{}, 0},
		{"ignores_non_solid", character.Sphere(10), gm.V(650, 0, 100), gm.V(900, 0, 100), false, gm.Vec3{}, gm.Vec3{}, 0},
		{"zero_length", character.Sphere(10), gm.V(100, 0, 100), gm.V(100, 0, 100), false, gm.Vec3{}, gm.Vec3{}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			hit, ok := w.Sweep(c.shape, c.start, c.end)
			if ok != c.hit {
				t.Fatalf("hit = %v, want %v", ok, c.hit)
			}
			if !ok {
				return
			}
			if !hit.Point.NearlyEqual(c.point, 1e-9) || hit.Normal != c.normal {
				t.Fatalf("hit point %+v normal %+v, want %+v %+v", hit.Point, hit.Normal, c.point, c.normal)
			}
			if math.Abs(hit.Distance-c.distance) > 1e-9 {
				t.Fatalf("distance = %v, want %v", hit.Distance, c.distance)
			}
			if hit.Surface != wall {
				t.Fatalf("unexpected surface %+v", hit.Surface)
			}
			if !hit.Surface.HasTag(character.TagCanMantle) {
				t.Fatalf("wall should be mantleable")
			}
		})
	}
}

func TestOverlappingFiltersByTag(t *testing.T) {
	w := newTestWorld()
	trig := w.AddSurface(box(100, 0, 200, 100), tags.ResolvTrigger)
	w.AddSurface(box(100, 0, 200, 100), tags.ResolvHazard)

	got := w.Overlapping(box(150, 50, 160, 60), tags.ResolvTrigger)
	if len(got) != 1 || got[0] != trig {
		t.Fatalf("Overlapping() = %v", got)
	}
	if got := w.Overlapping(box(300, 50, 310, 60), tags.ResolvTrigger); len(got) != 0 {
		t.Fatalf("expected nothing, got %v", got)
	}

	w.RemoveSurface(trig)
	if got := w.Overlapping(box(150, 50, 160, 60), tags.ResolvTrigger); len(got) != 0 {
		t.Fatalf("removed surface still reported")
	}
}

func TestCharacterGrabsLedgeWithRealSweeps(t *testing.T) {
	w := newTestWorld()
	ledge := w.AddSurface(box(100, 0, 300, 150), tags.ResolvSolid, tags.ResolvCanMantle)
	b := w.AddBody(gm.V(45, 0, 60), capsule)
	clock := timer.NewQueue()

	c := character.New(character.Deps{
		Locomotion: b,
		Probe:      w,
		Timers:     clock,
		Clock:      clock,
	}, character.DefaultTuning())
	b.OnModeChanged = c.MovementModeChanged
	b.OnLanded = c.Landed
	c.BeginPlay()

	c.Tick()
	if c.Stance() != character.StanceLedgeGrab {
		t.Fatalf("stance = %v, want LedgeGrab", c.Stance())
	}
	if !b.Location().NearlyEqual(gm.V(60, 0, 60), 1e-9) {
		t.Fatalf("hang position = %+v, want (60,0,60)", b.Location())
	}
	if b.Mode() != character.ModeNone || b.Attached() != ledge {
		t.Fatalf("body should be suspended and attached to the ledge")
	}
	if c.Grabbed() != ledge {
		t.Fatalf("character should remember the grabbed surface")
	}
}

func TestCharacterWallJumpsWithRealSweeps(t *testing.T) {
	cases := []struct {
		name string
		gap  float64
	}{
		{"flush", 0},
		{"small_gap", 5},
		{"inside_trace_radius", 14},
		{"far_end_of_trace", 40},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld()
			// Body spans x 65..135; the wall starts gap units past it.
			w.AddSurface(box(135+tc.gap, 0, 400, 800), tags.ResolvSolid)
			b := w.AddBody(gm.V(100, 0, 300), capsule)
			clock := timer.NewQueue()

			c := character.New(character.Deps{
				Locomotion: b,
				Probe:      w,
				Timers:     clock,
				Clock:      clock,
			}, character.DefaultTuning())
			b.OnModeChanged = c.MovementModeChanged
			b.OnLanded = c.Landed
			c.BeginPlay()
			clock.Advance(1)

			c.JumpStart()
			if !c.HasWallJumped() {
				t.Fatalf("gap %v: expected a wall jump", tc.gap)
			}
			if c.HasDoubleJumped() {
				t.Fatalf("gap %v: wall jump must not spend the double jump", tc.gap)
			}
			tun := character.DefaultTuning()
			want := gm.V(-tun.WallJumpBounceImpulse, 0, tun.WallJumpVerticalImpulse)
			if got := b.Velocity(); !got.NearlyEqual(want, 1e-9) {
				t.Fatalf("launch velocity = %+v, want %+v", got, want)
			}
		})
	}
}

func TestCharacterDoubleJumpsAwayFromWall(t *testing.T) {
	w := newTestWorld()
	w.AddSurface(box(300, 0, 400, 800), tags.ResolvSolid)
	b := w.AddBody(gm.V(100, 0, 300), capsule)
	clock := timer.NewQueue()

	c := character.New(character.Deps{
		Locomotion: b,
		Probe:      w,
		Timers:     clock,
		Clock:      clock,
	}, character.DefaultTuning())
	c.BeginPlay()
	clock.Advance(1)

	c.JumpStart()
	if c.HasWallJumped() || !c.HasDoubleJumped() {
		t.Fatalf("wallJumped=%t doubleJumped=%t, want a double jump", c.HasWallJumped(), c.HasDoubleJumped())
	}
}
