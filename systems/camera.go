package systems

import (
	"math"

	"github.com/automoto/trianglejam/components"
	"github.com/automoto/trianglejam/config"
	gm "github.com/automoto/trianglejam/shared/gamemath"
	"github.com/automoto/trianglejam/shared/leveldata"
	"github.com/automoto/trianglejam/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the player, or holds a fixed camera, blending between
// the two when a trigger swaps the view target.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	target, zoom, ok := cameraTarget(e.World, camera)
	if !ok {
		return // no player, hold the current view
	}

	if camera.Blend != nil {
		t, done := camera.Blend.Update(float32(deltaTime()))
		camera.Position.X = lerp(camera.BlendFrom.X, target.X, float64(t))
		camera.Position.Y = lerp(camera.BlendFrom.Y, target.Y, float64(t))
		camera.Zoom = lerp(camera.BlendZoom, zoom, float64(t))
		if done {
			camera.Blend = nil
		}
		return
	}

	if camera.Fixed {
		camera.Position = target
		camera.Zoom = zoom
		return
	}

	// Center the camera on the target position, with some smoothing.
	camera.Position.X += (target.X - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (target.Y - camera.Position.Y) * config.Camera.FollowSmoothing
	camera.Zoom = zoom
}

// cameraTarget returns where the view should be this frame, in world X/Z.
func cameraTarget(w donburi.World, camera *components.CameraData) (dmath.Vec2, float64, bool) {
	if camera.Fixed {
		return camera.FixedPos, camera.FixedZoom, true
	}

	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return dmath.Vec2{}, 0, false
	}
	body := components.Body.Get(playerEntry)
	pos := body.Location()

	// Only update look-ahead when player is moving - freeze offset when idle
	if vx := body.Velocity().X; math.Abs(vx) > config.Camera.LookAheadSpeedThreshold {
		targetLookAhead := math.Copysign(config.Camera.LookAheadDistanceX, vx)
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	target := dmath.Vec2{X: pos.X + camera.LookAheadX, Y: pos.Z}
	if level := getLevel(w); level != nil && level.CurrentLevel != nil {
		target = clampToLevel(target, 1, level.CurrentLevel)
	}
	return target, 1, true
}

// clampToLevel keeps the view inside the level. A level smaller than the
// view is centred instead.
func clampToLevel(p dmath.Vec2, zoom float64, lvl *leveldata.Level) dmath.Vec2 {
	scale := config.Camera.PixelsPerUnit * zoom
	halfW := float64(config.C.Width) / 2 / scale
	halfH := float64(config.C.Height) / 2 / scale
	return dmath.Vec2{
		X: clampAxis(p.X, halfW, lvl.Width),
		Y: clampAxis(p.Y, halfH, lvl.Height),
	}
}

func clampAxis(v, half, size float64) float64 {
	if size <= 2*half {
		return size / 2
	}
	return gm.Clamp(v, half, size-half)
}

// BlendToFixedCamera hands the view to a fixed camera over blendTime seconds.
func BlendToFixedCamera(w donburi.World, cam leveldata.FixedCamera, blendTime float64) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.Fixed = true
	camera.FixedName = cam.Name
	camera.FixedPos = dmath.Vec2{X: cam.Position.X, Y: cam.Position.Z}
	camera.FixedZoom = cam.Zoom
	if camera.FixedZoom <= 0 {
		camera.FixedZoom = 1
	}
	startBlend(camera, blendTime)
}

// BlendToPlayer hands the view back to the follow camera.
func BlendToPlayer(w donburi.World, blendTime float64) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.Fixed = false
	camera.FixedName = ""
	startBlend(camera, blendTime)
}

func startBlend(camera *components.CameraData, blendTime float64) {
	if blendTime <= 0 {
		camera.Blend = nil
		return
	}
	camera.BlendFrom = camera.Position
	camera.BlendZoom = camera.Zoom
	camera.Blend = gween.New(0, 1, float32(blendTime), ease.InOutCubic)
}

// project maps a world point to screen pixels. Depth is skewed up and to
// the right unless the view is flat.
func project(camera *components.CameraData, p gm.Vec3, screenW, screenH int, flat bool) (float32, float32) {
	zoom := camera.Zoom
	if zoom == 0 {
		zoom = 1
	}
	scale := config.Camera.PixelsPerUnit * zoom
	x := float64(screenW)/2 + (p.X-camera.Position.X)*scale
	y := float64(screenH)/2 - (p.Z-camera.Position.Y)*scale
	if !flat {
		skew := config.Camera.DepthSkew * zoom
		x += p.Y * skew
		y -= p.Y * skew
	}
	return float32(x), float32(y)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
