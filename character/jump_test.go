package character

import (
	"math"
	"testing"

	gm "github.com/automoto/trianglejam/shared/gamemath"
)

func TestGroundedJumpIsUnconditional(t *testing.T) {
	r := newRig()
	r.wallAhead()
	r.c.RequestJump()
	if r.loco.jumps != 1 {
		t.Fatalf("expected a grounded jump, got %d jumps", r.loco.jumps)
	}
	if r.probe.calls != 0 {
		t.Fatalf("grounded jump must not probe for walls")
	}
	if r.c.HasDoubleJumped() || r.c.HasWallJumped() {
		t.Fatalf("grounded jump must not set flags")
	}
}

func TestCoyoteWindow(t *testing.T) {
	cases := []struct {
		name       string
		airborne   float64
		wantDouble bool
	}{
		{"inside_window", 0.10, false},
		{"just_inside", 0.15, false},
		{"at_limit", 0.16, true},
		{"after_window", 0.20, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newRig()
			r.fall()
			r.clock.Advance(c.airborne)
			r.c.RequestJump()
			if r.loco.jumps != 1 {
				t.Fatalf("expected one jump, got %d", r.loco.jumps)
			}
			if r.c.HasDoubleJumped() != c.wantDouble {
				t.Fatalf("hasDoubleJumped = %v, want %v", r.c.HasDoubleJumped(), c.wantDouble)
			}
		})
	}
}

func TestDoubleJumpOnlyOnce(t *testing.T) {
	r := newRig()
	r.fall()
	r.clock.Advance(0.5)
	r.c.RequestJump()
	r.c.RequestJump()
	if r.loco.jumps != 1 {
		t.Fatalf("second airborne jump must be a no-op, got %d jumps", r.loco.jumps)
	}

	r.loco.SetMode(ModeWalking)
	r.c.Landed()
	if r.c.HasDoubleJumped() {
		t.Fatalf("landing must re-arm the double jump")
	}
}

func TestWallJump(t *testing.T) {
	r := newRig()
	r.loco.rot = gm.Rotator{Yaw: 0}
	r.wallAhead()
	r.fall()
	r.clock.Advance(0.5)

	r.c.RequestJump()

	if !r.c.HasWallJumped() {
		t.Fatalf("expected a wall jump")
	}
	if r.loco.jumps != 0 {
		t.Fatalf("wall jump must not also perform a standard jump")
	}
	if r.c.HasDoubleJumped() {
		t.Fatalf("wall jump must not consume the double jump")
	}
	if len(r.loco.launches) != 1 {
		t.Fatalf("expected one launch, got %d", len(r.loco.launches))
	}
	tun := DefaultTuning()
	want := gm.V(-tun.WallJumpBounceImpulse, 0, tun.WallJumpVerticalImpulse)
	if !r.loco.launches[0].NearlyEqual(want, 1e-9) {
		t.Fatalf("launch = %+v, want %+v", r.loco.launches[0], want)
	}
	if yaw := math.Abs(gm.NormalizeAngle(r.loco.rot.Yaw)); math.Abs(yaw-180) > 1e-9 || r.loco.rot.Pitch != 0 || r.loco.rot.Roll != 0 {
		t.Fatalf("character should face along the wall normal, got %+v", r.loco.rot)
	}
	if r.probe.shape[0] != Sphere(tun.WallJumpTraceRadius) {
		t.Fatalf("wall probe should sweep a sphere, got %+v", r.probe.shape[0])
	}
}

func TestWallJumpLockout(t *testing.T) {
	r := newRig()
	r.wallAhead()
	r.fall()
	r.clock.Advance(0.5)
	r.c.RequestJump()
	probes := r.probe.calls

	// Within the delay: no probe, no jump of any kind.
	r.clock.Advance(0.05)
	r.c.RequestJump()
	if r.probe.calls != probes {
		t.Fatalf("wall probe must not run while the wall jump is locked")
	}
	if r.loco.jumps != 0 || len(r.loco.launches) != 1 || r.c.HasDoubleJumped() {
		t.Fatalf("jump during lockout must be a no-op")
	}

	// Movement is locked too.
	r.c.Move(1, 1)
	if len(r.loco.inputs) != 0 {
		t.Fatalf("movement must be suppressed right after a wall jump")
	}

	r.clock.Advance(0.06)
	if r.c.HasWallJumped() {
		t.Fatalf("timer should have cleared the wall jump flag")
	}
	r.c.RequestJump()
	if len(r.loco.launches) != 2 {
		t.Fatalf("wall jump should be available again, got %d launches", len(r.loco.launches))
	}
}

func TestWallMissFallsThroughToDoubleJump(t *testing.T) {
	r := newRig()
	r.fall()
	r.clock.Advance(0.5)
	r.c.RequestJump()
	if r.probe.calls != 1 {
		t.Fatalf("expected one wall probe, got %d", r.probe.calls)
	}
	if !r.c.HasDoubleJumped() || r.loco.jumps != 1 {
		t.Fatalf("missed wall probe must fall through to the double jump")
	}
}

func TestJumpEndStopsJumping(t *testing.T) {
	r := newRig()
	r.c.Route(Intent{JumpPressed: true})
	r.c.Route(Intent{JumpReleased: true})
	if r.loco.jumps != 1 || r.loco.stopJumps != 1 {
		t.Fatalf("jumps=%d stops=%d", r.loco.jumps, r.loco.stopJumps)
	}
}

func TestEndPlayCancelsWallJumpTimer(t *testing.T) {
	r := newRig()
	r.wallAhead()
	r.fall()
	r.clock.Advance(0.5)
	r.c.RequestJump()
	r.c.EndPlay()
	if r.clock.Len() != 0 {
		t.Fatalf("EndPlay should cancel pending timers, %d left", r.clock.Len())
	}
}
