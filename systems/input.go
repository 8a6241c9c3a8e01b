package systems

import (
	"math"

	"github.com/automoto/trianglejam/character"
	"github.com/automoto/trianglejam/components"
	cfg "github.com/automoto/trianglejam/config"
	"github.com/automoto/trianglejam/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cursor position from the previous frame, for mouse look
var (
	lastCursorX, lastCursorY int
	cursorTracked            bool
)

// UpdateInput polls raw input into the player's InputData.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(playerEntry)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	dt := deltaTime()
	input.MoveX = axis(input.Current[cfg.ActionMoveRight], input.Current[cfg.ActionMoveLeft])
	input.MoveY = axis(input.Current[cfg.ActionMoveForward], input.Current[cfg.ActionMoveBack])
	input.LookX = axis(input.Current[cfg.ActionLookRight], input.Current[cfg.ActionLookLeft]) * cfg.Camera.StickLookRate * dt
	input.LookY = axis(input.Current[cfg.ActionLookUp], input.Current[cfg.ActionLookDown]) * cfg.Camera.StickLookRate * dt

	// Analog sticks win over digital input when deflected further
	moveX, moveY, lookX, lookY := getAnalogSticks(gamepadIDs)
	if math.Abs(moveX) > math.Abs(input.MoveX) || math.Abs(moveY) > math.Abs(input.MoveY) {
		input.MoveX, input.MoveY = moveX, moveY
		gamepadUsed = true
	}
	if lookX != 0 || lookY != 0 {
		input.LookX += lookX * cfg.Camera.StickLookRate * dt
		input.LookY += lookY * cfg.Camera.StickLookRate * dt
		gamepadUsed = true
	}

	mx, my := ebiten.CursorPosition()
	if cursorTracked && ebiten.IsMouseButtonPressed(cfg.Input.MouseLookButton) {
		input.LookX += float64(mx-lastCursorX) * cfg.Camera.MouseYawSensitivity
		input.LookY -= float64(my-lastCursorY) * cfg.Camera.MousePitchSensitivity
		keyboardUsed = true
	}
	lastCursorX, lastCursorY, cursorTracked = mx, my, true

	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}

	if input.JustPressed(cfg.ActionToggleDebug) {
		cfg.Debug.ShowColliders = !cfg.Debug.ShowColliders
		cfg.Debug.ShowState = cfg.Debug.ShowColliders
	}
}

func axis(positive, negative bool) float64 {
	v := 0.0
	if positive {
		v++
	}
	if negative {
		v--
	}
	return v
}

// getAnalogSticks reads both sticks of the first gamepad that is deflected
// past the deadzone. Stick Y is flipped so pushing up is positive.
func getAnalogSticks(gamepads []ebiten.GamepadID) (moveX, moveY, lookX, lookY float64) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		lx := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := -ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		rx := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := -ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical)

		moveX, moveY = applyDeadzone(lx, deadzone), applyDeadzone(ly, deadzone)
		lookX, lookY = applyDeadzone(rx, deadzone), applyDeadzone(ry, deadzone)
		if moveX != 0 || moveY != 0 || lookX != 0 || lookY != 0 {
			return
		}
	}
	return 0, 0, 0, 0
}

func applyDeadzone(v, deadzone float64) float64 {
	if math.Abs(v) < deadzone {
		return 0
	}
	return v
}

// BuildIntent turns one frame of input into a character intent.
func BuildIntent(in *components.InputData) character.Intent {
	return character.Intent{
		Right:          in.MoveX,
		Forward:        in.MoveY,
		LookYaw:        in.LookX,
		LookPitch:      in.LookY,
		JumpPressed:    in.JustPressed(cfg.ActionJump),
		JumpReleased:   in.JustReleased(cfg.ActionJump),
		DashPressed:    in.JustPressed(cfg.ActionDash),
		SprintPressed:  in.JustPressed(cfg.ActionSprint),
		SprintReleased: in.JustReleased(cfg.ActionSprint),
	}
}
