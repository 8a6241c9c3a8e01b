package physics

import (
	"github.com/automoto/trianglejam/character"
	gm "github.com/automoto/trianglejam/shared/gamemath"
	"github.com/solarlune/resolv"
)

// Surface is an axis-aligned box registered with the world. Solid surfaces
// block bodies and sweeps; the rest are volumes queried with Overlapping.
type Surface struct {
	// Owner is free for the caller, usually the ECS entry that spawned it.
	Owner any

	world *World
	box   gm.Box3
	obj   *resolv.Object
}

func (s *Surface) Box() gm.Box3 {
	return s.box
}

func (s *Surface) Object() *resolv.Object {
	return s.obj
}

func (s *Surface) HasTag(tag string) bool {
	return s.obj.HasTags(tag)
}

// MoveTo places the surface's centre at c.
func (s *Surface) MoveTo(c gm.Vec3) {
	s.MoveBy(c.Sub(s.box.Center()))
}

// MoveBy translates the surface and carries bodies attached to it or standing
// on it.
func (s *Surface) MoveBy(d gm.Vec3) {
	if d.IsZero() {
		return
	}
	s.box = s.box.Translate(d)
	s.world.syncObject(s.obj, s.box)

	for _, b := range s.world.bodies {
		switch {
		case b.attached == s:
			b.setPosition(b.pos.Add(d))
		case b.ground == s && b.mode != character.ModeNone:
			b.carry(d)
		}
	}
}
