// Package physics implements the character's locomotion and sweep queries on
// top of a resolv space. The resolv space covers the lateral/vertical plane;
// depth extents are kept per surface and tested by hand.
package physics

import (
	gm "github.com/automoto/trianglejam/shared/gamemath"
	"github.com/automoto/trianglejam/tags"
	"github.com/solarlune/resolv"
)

// Settings are the integration constants shared by every body.
type Settings struct {
	Gravity          float64 `yaml:"gravity"`
	MaxAcceleration  float64 `yaml:"max_acceleration"`
	BrakingWalking   float64 `yaml:"braking_walking"`
	BrakingFalling   float64 `yaml:"braking_falling"`
	AirControl       float64 `yaml:"air_control"`
	JumpZVelocity    float64 `yaml:"jump_z_velocity"`
	JumpMaxHoldTime  float64 `yaml:"jump_max_hold_time"`
	RotationRate     float64 `yaml:"rotation_rate"`
	MaxFallSpeed     float64 `yaml:"max_fall_speed"`
	GroundProbeDepth float64 `yaml:"ground_probe_depth"`
	SpacePadding     float64 `yaml:"space_padding"`
	CellSize         int     `yaml:"cell_size"`
}

func DefaultSettings() Settings {
	return Settings{
		Gravity:          980,
		MaxAcceleration:  1500,
		BrakingWalking:   2500,
		BrakingFalling:   750,
		AirControl:       1,
		JumpZVelocity:    350,
		JumpMaxHoldTime:  0.4,
		RotationRate:     500,
		MaxFallSpeed:     4000,
		GroundProbeDepth: 2,
		SpacePadding:     512,
		CellSize:         32,
	}
}

// World owns the resolv space plus every surface and body in a level.
type World struct {
	Settings Settings

	space    *resolv.Space
	width    float64
	height   float64
	pad      float64
	surfaces []*Surface
	bodies   []*Body
}

// NewWorld creates a world covering x in [0, width] and z in [0, height].
// Objects may stray up to Settings.SpacePadding outside of it.
func NewWorld(width, height float64, s Settings) *World {
	cell := s.CellSize
	if cell <= 0 {
		cell = 32
	}
	return &World{
		Settings: s,
		space:    resolv.NewSpace(int(width+2*s.SpacePadding), int(height+2*s.SpacePadding), cell, cell),
		width:    width,
		height:   height,
		pad:      s.SpacePadding,
	}
}

// Space exposes the underlying resolv space for debug drawing.
func (w *World) Space() *resolv.Space {
	return w.space
}

func (w *World) Width() float64  { return w.width }
func (w *World) Height() float64 { return w.height }

// ToScreen maps a world X/Z point to resolv space coordinates (Y down).
func (w *World) ToScreen(x, z float64) (float64, float64) {
	return x + w.pad, w.height + w.pad - z
}

// FromScreen is the inverse of ToScreen.
func (w *World) FromScreen(x, y float64) (float64, float64) {
	return x - w.pad, w.height + w.pad - y
}

func (w *World) rect(b gm.Box3) (x, y, width, height float64) {
	x, y = w.ToScreen(b.Min.X, b.Max.Z)
	return x, y, b.Max.X - b.Min.X, b.Max.Z - b.Min.Z
}

func (w *World) newObject(b gm.Box3, objTags ...string) *resolv.Object {
	x, y, bw, bh := w.rect(b)
	obj := resolv.NewObject(x, y, bw, bh, objTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, bw, bh))
	return obj
}

func (w *World) syncObject(obj *resolv.Object, b gm.Box3) {
	obj.X, obj.Y = w.ToScreen(b.Min.X, b.Max.Z)
	obj.Update()
}

// AddSurface registers a static or kinematic box.
func (w *World) AddSurface(box gm.Box3, surfaceTags ...string) *Surface {
	s := &Surface{world: w, box: box}
	s.obj = w.newObject(box, surfaceTags...)
	s.obj.Data = s
	w.space.Add(s.obj)
	w.surfaces = append(w.surfaces, s)
	return s
}

func (w *World) RemoveSurface(s *Surface) {
	for i, o := range w.surfaces {
		if o == s {
			w.surfaces = append(w.surfaces[:i], w.surfaces[i+1:]...)
			break
		}
	}
	for _, b := range w.bodies {
		if b.attached == s {
			b.attached = nil
		}
		if b.ground == s {
			b.ground = nil
		}
	}
	w.space.Remove(s.obj)
}

func (w *World) Surfaces() []*Surface {
	return w.surfaces
}

// AddBody creates a character body centred at pos with the given half size.
func (w *World) AddBody(pos, half gm.Vec3) *Body {
	b := newBody(w, pos, half)
	w.space.Add(b.obj)
	w.bodies = append(w.bodies, b)
	return b
}

func (w *World) Bodies() []*Body {
	return w.bodies
}

// Step integrates every body by dt seconds.
func (w *World) Step(dt float64) {
	for _, b := range w.bodies {
		b.Step(dt)
	}
}

// candidates returns the surfaces whose cells touch box, filtered by tag.
func (w *World) candidates(box gm.Box3, tag string) []*Surface {
	probe := w.newObject(box, tags.ResolvProbe)
	w.space.Add(probe)
	defer w.space.Remove(probe)

	col := probe.Check(0, 0, tag)
	if col == nil {
		return nil
	}
	out := make([]*Surface, 0, len(col.Objects))
	for _, o := range col.Objects {
		if s, ok := o.Data.(*Surface); ok {
			out = append(out, s)
		}
	}
	return out
}

// Overlapping returns every surface carrying tag whose box overlaps box.
func (w *World) Overlapping(box gm.Box3, tag string) []*Surface {
	var out []*Surface
	for _, s := range w.candidates(box, tag) {
		if s.box.Overlaps(box) {
			out = append(out, s)
		}
	}
	return out
}

func (w *World) blocked(box gm.Box3) *Surface {
	for _, s := range w.candidates(box, tags.ResolvSolid) {
		if s.box.Overlaps(box) {
			return s
		}
	}
	return nil
}
