package character

import (
	"reflect"
	"testing"

	gm "github.com/automoto/trianglejam/shared/gamemath"
)

func TestDamageToZeroRestartsFromSpawn(t *testing.T) {
	r := newRig()
	spawn := r.c.InitialSpawn()
	r.loco.loc = gm.V(500, 0, 0)
	r.c.UpdateCheckpoint(gm.V(400, 0, 0))

	r.c.TakeDamage()
	r.c.TakeDamage()
	if r.loco.loc != gm.V(400, 0, 0) {
		t.Fatalf("soft respawn should go to the checkpoint, at %+v", r.loco.loc)
	}

	r.c.TakeDamage()
	if want := []int{3, 2, 1, 0}; !reflect.DeepEqual(r.listener.health, want) {
		t.Fatalf("health notifications = %v, want %v", r.listener.health, want)
	}
	if r.listener.deaths != 1 || r.fader.outs != 1 {
		t.Fatalf("death should notify and fade out, deaths=%d outs=%d", r.listener.deaths, r.fader.outs)
	}
	if !r.c.RespawnPending() {
		t.Fatalf("restart should be pending")
	}

	tun := DefaultTuning()
	r.clock.Advance(tun.RespawnFadeDuration + tun.RespawnDelay)
	if r.c.Health() != tun.MaxHealth {
		t.Fatalf("health should be restored, got %d", r.c.Health())
	}
	if r.loco.loc != spawn {
		t.Fatalf("restart should teleport to the spawn, at %+v", r.loco.loc)
	}
	if r.fader.ins != 1 {
		t.Fatalf("restart should fade back in")
	}
	if r.c.LastCheckpoint() != gm.V(400, 0, 0) {
		t.Fatalf("zero-health restart keeps the checkpoint")
	}
}

func TestHealthNeverNegative(t *testing.T) {
	r := newRig()
	for i := 0; i < 10; i++ {
		r.c.TakeDamage()
		if r.c.Health() < 0 || r.c.Health() > r.c.MaxHealth() {
			t.Fatalf("health out of range: %d", r.c.Health())
		}
		if i%4 == 3 {
			r.clock.Advance(5)
		}
	}
}

func TestDamageIgnoredWhileRestartPending(t *testing.T) {
	r := newRig()
	for i := 0; i < 3; i++ {
		r.c.TakeDamage()
	}
	notified := len(r.listener.health)
	r.c.TakeDamage()
	if len(r.listener.health) != notified || r.listener.deaths != 1 {
		t.Fatalf("damage during the restart must be ignored")
	}
}

func TestFinalizeRespawn(t *testing.T) {
	r := newRig()
	spawn := r.c.InitialSpawn()
	r.c.UpdateCheckpoint(gm.V(10, 20, 30))
	r.c.TakeDamage()
	r.loco.loc = gm.V(99, 0, 0)

	r.c.FinalizeRespawn()
	if r.loco.loc != spawn || r.c.LastCheckpoint() != spawn {
		t.Fatalf("FinalizeRespawn should reset position and checkpoint")
	}
	if r.c.Health() != r.c.MaxHealth() {
		t.Fatalf("FinalizeRespawn should heal")
	}
}

func TestDamageWhileMantledReleasesLedge(t *testing.T) {
	r := newRig()
	r.grabLedge(t)
	r.c.TakeDamage()
	if r.c.IsMantled() || r.loco.attached != nil {
		t.Fatalf("respawn should let go of the ledge")
	}
	if r.loco.loc != r.c.LastCheckpoint() {
		t.Fatalf("expected teleport to the checkpoint")
	}
}

func TestEndPlayCancelsRestart(t *testing.T) {
	r := newRig()
	for i := 0; i < 3; i++ {
		r.c.TakeDamage()
	}
	r.c.EndPlay()
	r.clock.Advance(10)
	if r.fader.ins != 0 {
		t.Fatalf("restart fired after EndPlay")
	}
}
