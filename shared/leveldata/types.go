// Package leveldata turns TMX level files into plain data. It has no
// dependencies on ebitengine, donburi, or resolv.
//
// Tiled maps are drawn as a side view: tile X is world X and tile Y grows
// downwards, so world Z = map height - Y. Depth (world Y) comes from object
// properties.
package leveldata

import (
	"strings"

	gm "github.com/automoto/trianglejam/shared/gamemath"
)

const (
	defaultDepthMin = -200
	defaultDepthMax = 200
)

// Level holds everything the scene needs to build a world.
type Level struct {
	Name   string
	Width  float64
	Height float64

	Solids      []Solid
	SpawnPoints []SpawnPoint
	Triggers    []CameraTrigger
	Cameras     []FixedCamera
	Checkpoints []Rect
	Hazards     []Rect
	Platforms   []Platform
}

// Rect is an axis-aligned volume in world units.
type Rect struct {
	Name     string
	X, Z     float64
	W, H     float64
	DepthMin float64
	DepthMax float64
}

func (r Rect) Box() gm.Box3 {
	return gm.Box3{
		Min: gm.V(r.X, r.DepthMin, r.Z),
		Max: gm.V(r.X+r.W, r.DepthMax, r.Z+r.H),
	}
}

type Solid struct {
	Rect
	CanMantle bool
}

// SpawnPoint is a player start. Position is at the feet.
type SpawnPoint struct {
	Name     string
	Position gm.Vec3
	Yaw      float64
	Tags     []string
	Default  bool
}

func (s SpawnPoint) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

type TriggerVariant int

const (
	// TriggerView swaps the camera between the player and a fixed camera.
	TriggerView TriggerVariant = iota
	// TriggerLevel loads another level.
	TriggerLevel
)

func (v TriggerVariant) String() string {
	if v == TriggerLevel {
		return "level"
	}
	return "view"
}

// CameraTrigger is a camera transition volume.
type CameraTrigger struct {
	Rect
	Variant TriggerVariant

	// View variant.
	SwitchToFixedCamera bool
	Camera              string
	BlendTime           float64

	// Level variant.
	Level          string
	ReturnSpawnTag string

	FadeDuration float64
}

// FixedCamera is a named side-on camera position.
type FixedCamera struct {
	Name     string
	Position gm.Vec3
	Zoom     float64
}

// Platform is a solid box that travels to Offset and back.
type Platform struct {
	Solid
	Offset   gm.Vec3
	Duration float64
	Pause    float64
}

func splitTags(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
