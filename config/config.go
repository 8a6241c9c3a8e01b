package config

import (
	"image/color"

	"github.com/automoto/trianglejam/character"
	"github.com/automoto/trianglejam/physics"
)

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	PixelsPerUnit           float64 // Screen pixels per world unit
	DepthSkew               float64 // Screen pixels per unit of depth in the 3D view
	FollowSmoothing         float64 // How fast camera follows player (0.0-1.0)
	LookAheadDistanceX      float64 // Max horizontal look-ahead offset in world units
	LookAheadSmoothing      float64 // How fast look-ahead offset changes (0.0-1.0)
	LookAheadSpeedThreshold float64 // Minimum speed to update look-ahead
	DefaultBlendTime        float64 // Seconds, used when a trigger has none
	MouseYawSensitivity     float64 // Degrees per pixel
	MousePitchSensitivity   float64 // Degrees per pixel
	StickLookRate           float64 // Degrees per second at full deflection
	MinPitch                float64
	MaxPitch                float64
}

// MontageConfig contains montage lengths and root motion
type MontageConfig struct {
	Durations map[character.Montage]float64 // Seconds; 0 means the montage is missing
	DashSpeed float64                       // Root motion speed while the dash plays
}

// FadeConfig contains screen fade configuration
type FadeConfig struct {
	Color color.RGBA
}

// UIConfig contains HUD configuration
type UIConfig struct {
	FontSize      float64
	Margin        int
	HeartFull     string
	HeartEmpty    string
	HealthColor   color.RGBA
	DeathColor    color.RGBA
	DeathMessage  string
	DeathMsgTicks int // Frames the death message stays up
}

// DebugConfig contains debug toggles
type DebugConfig struct {
	ShowColliders bool // Draw resolv objects and trigger volumes
	ShowState     bool // Print stance and movement mode
	LogMovement   bool // Route character logs to stderr
}

// SaveConfig contains persistence configuration
type SaveConfig struct {
	AppName string
	Enabled bool
}

// Config holds general game configuration
type Config struct {
	Width      int
	Height     int
	Title      string
	StartLevel string
	TPS        int
}

// Global configuration instances
var C *Config
var Player character.Tuning
var Physics physics.Settings
var Camera CameraConfig
var Montages MontageConfig
var Fade FadeConfig
var UI UIConfig
var Debug DebugConfig
var Save SaveConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Gray         = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Background   = color.RGBA{R: 24, G: 22, B: 34, A: 255}
)

func init() {
	C = &Config{
		Width:      640,
		Height:     360,
		Title:      "Triangle Jam",
		StartLevel: "hub",
		TPS:        60,
	}

	Player = character.DefaultTuning()
	Physics = physics.DefaultSettings()

	Camera = CameraConfig{
		PixelsPerUnit:           0.4,
		DepthSkew:               0.25,
		FollowSmoothing:         0.1,
		LookAheadDistanceX:      120.0,
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 50.0,
		DefaultBlendTime:        1.5,
		MouseYawSensitivity:     0.2,
		MousePitchSensitivity:   0.2,
		StickLookRate:           180,
		MinPitch:                -80,
		MaxPitch:                60,
	}

	Montages = MontageConfig{
		Durations: map[character.Montage]float64{
			character.MontageDash:      0.25,
			character.MontageLedgeGrab: 1.0,
			character.MontageClimbUp:   0.6,
		},
		DashSpeed: 1600,
	}

	Fade = FadeConfig{
		Color: Black,
	}

	UI = UIConfig{
		FontSize:      16,
		Margin:        12,
		HeartFull:     "♥",
		HeartEmpty:    "·",
		HealthColor:   LightRed,
		DeathColor:    White,
		DeathMessage:  "You fell apart...",
		DeathMsgTicks: 90,
	}

	Debug = DebugConfig{
		ShowColliders: false,
		ShowState:     false,
		LogMovement:   false,
	}

	Save = SaveConfig{
		AppName: "trianglejam",
		Enabled: true,
	}
}
