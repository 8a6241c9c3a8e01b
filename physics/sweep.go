package physics

import (
	"math"

	"github.com/automoto/trianglejam/character"
	gm "github.com/automoto/trianglejam/shared/gamemath"
	"github.com/automoto/trianglejam/tags"
)

// Sweep moves shape from start to end and reports the first solid surface it
// enters. A surface the shape already touches at start, on the side it moves
// towards, is a hit at distance 0. Surfaces it is moving out of are ignored.
func (w *World) Sweep(shape character.Shape, start, end gm.Vec3) (character.Hit, bool) {
	delta := end.Sub(start)
	dist := delta.Len()
	if dist == 0 {
		return character.Hit{}, false
	}
	half := shape.HalfExtent
	startBox := gm.BoxAt(start, half)
	endBox := gm.BoxAt(end, half)
	bounds := gm.Box3{
		Min: gm.V(math.Min(startBox.Min.X, endBox.Min.X), math.Min(startBox.Min.Y, endBox.Min.Y), math.Min(startBox.Min.Z, endBox.Min.Z)),
		Max: gm.V(math.Max(startBox.Max.X, endBox.Max.X), math.Max(startBox.Max.Y, endBox.Max.Y), math.Max(startBox.Max.Z, endBox.Max.Z)),
	}

	var (
		best     *Surface
		bestT    = math.Inf(1)
		bestAxis int
	)
	for _, s := range w.candidates(bounds, tags.ResolvSolid) {
		if s.box.Overlaps(grow(startBox, contactSkin)) {
			if axis, ok := startPenetration(startBox, s.box, delta); ok && bestT > 0 {
				best, bestT, bestAxis = s, 0, axis
			}
			continue
		}
		expanded := gm.Box3{Min: s.box.Min.Sub(half), Max: s.box.Max.Add(half)}
		t, axis, ok := rayBox(start, delta, expanded)
		if ok && t < bestT {
			best, bestT, bestAxis = s, t, axis
		}
	}
	if best == nil {
		return character.Hit{}, false
	}

	normal := axisNormal(bestAxis, delta)
	center := start.Add(delta.Scale(bestT))
	point := center.Sub(gm.V(normal.X*half.X, normal.Y*half.Y, normal.Z*half.Z))
	return character.Hit{
		Point:    point,
		Normal:   normal,
		Distance: bestT * dist,
		Surface:  best,
	}, true
}

// rayBox intersects the segment origin+t*delta, t in [0,1], with b using the
// slab method. It returns the entry time and the axis that was crossed last.
func rayBox(origin, delta gm.Vec3, b gm.Box3) (float64, int, bool) {
	o := [3]float64{origin.X, origin.Y, origin.Z}
	d := [3]float64{delta.X, delta.Y, delta.Z}
	lo := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	hi := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}

	tEnter, tExit := 0.0, 1.0
	axis := -1
	for i := 0; i < 3; i++ {
		if d[i] == 0 {
			if o[i] <= lo[i] || o[i] >= hi[i] {
				return 0, 0, false
			}
			continue
		}
		t1 := (lo[i] - o[i]) / d[i]
		t2 := (hi[i] - o[i]) / d[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tEnter {
			tEnter, axis = t1, i
		}
		if t2 < tExit {
			tExit = t2
		}
		if tEnter >= tExit {
			return 0, 0, false
		}
	}
	if axis < 0 {
		return 0, 0, false
	}
	return tEnter, axis, true
}

// startPenetration picks the axis of least penetration among those where
// shape is pushed out against the sweep direction. A surface that only
// touches the shape must touch it on a moving axis, ahead of the sweep. It
// fails when the surface lies behind the shape on every moving axis.
func startPenetration(shape, surface gm.Box3, delta gm.Vec3) (int, bool) {
	smin := [3]float64{shape.Min.X, shape.Min.Y, shape.Min.Z}
	smax := [3]float64{shape.Max.X, shape.Max.Y, shape.Max.Z}
	bmin := [3]float64{surface.Min.X, surface.Min.Y, surface.Min.Z}
	bmax := [3]float64{surface.Max.X, surface.Max.Y, surface.Max.Z}
	d := [3]float64{delta.X, delta.Y, delta.Z}

	touching := -1
	for i := 0; i < 3; i++ {
		if math.Min(smax[i], bmax[i])-math.Max(smin[i], bmin[i]) > contactSkin {
			continue
		}
		if touching >= 0 {
			return 0, false // edge or corner contact
		}
		touching = i
	}

	axis, least := -1, math.Inf(1)
	for i := 0; i < 3; i++ {
		if d[i] == 0 || (touching >= 0 && i != touching) {
			continue
		}
		ahead := smax[i] - bmin[i] // push out towards -d
		behind := bmax[i] - smin[i]
		if d[i] < 0 {
			ahead, behind = behind, ahead
		}
		if ahead > behind {
			continue
		}
		if ahead < least {
			axis, least = i, ahead
		}
	}
	return axis, axis >= 0
}

func grow(b gm.Box3, by float64) gm.Box3 {
	e := gm.V(by, by, by)
	return gm.Box3{Min: b.Min.Sub(e), Max: b.Max.Add(e)}
}

func axisNormal(axis int, delta gm.Vec3) gm.Vec3 {
	switch axis {
	case 0:
		return gm.V(-sign(delta.X), 0, 0)
	case 1:
		return gm.V(0, -sign(delta.Y), 0)
	default:
		return gm.V(0, 0, -sign(delta.Z))
	}
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
