package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the view target. Position is in world X/Z.
type CameraData struct {
	Position   math.Vec2
	Zoom       float64
	LookAheadX float64 // Current smoothed X offset for look-ahead

	// Fixed is set while the view belongs to a fixed camera.
	Fixed     bool
	FixedName string
	FixedPos  math.Vec2
	FixedZoom float64

	// Blend runs from 0 to 1 while the view moves between targets.
	Blend     *gween.Tween
	BlendFrom math.Vec2
	BlendZoom float64
}

var Camera = donburi.NewComponentType[CameraData]()

// Blending reports whether a view-target blend is running.
func (c *CameraData) Blending() bool {
	return c.Blend != nil
}
