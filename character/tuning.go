package character

import gm "github.com/automoto/trianglejam/shared/gamemath"

// Tuning holds every gameplay constant of the character. Distances are world
// units, times are seconds, impulses are units per second.
type Tuning struct {
	GravityScale float64 `yaml:"gravity_scale"`
	MaxWalkSpeed float64 `yaml:"max_walk_speed"`
	SprintSpeed  float64 `yaml:"sprint_speed"`

	CapsuleRadius     float64 `yaml:"capsule_radius"`
	CapsuleHalfHeight float64 `yaml:"capsule_half_height"`

	MaxCoyoteTime           float64 `yaml:"max_coyote_time"`
	WallJumpTraceDistance   float64 `yaml:"wall_jump_trace_distance"`
	WallJumpTraceRadius     float64 `yaml:"wall_jump_trace_radius"`
	WallJumpBounceImpulse   float64 `yaml:"wall_jump_bounce_impulse"`
	WallJumpVerticalImpulse float64 `yaml:"wall_jump_vertical_impulse"`
	DelayBetweenWallJumps   float64 `yaml:"delay_between_wall_jumps"`

	// DashFallbackDuration ends a dash when no dash montage could be played.
	DashFallbackDuration float64 `yaml:"dash_fallback_duration"`

	LedgeRegrabDelay     float64 `yaml:"ledge_regrab_delay"`
	ClimbUpHoldThreshold float64 `yaml:"climb_up_hold_threshold"`
	ClimbInputDeadzone   float64 `yaml:"climb_input_deadzone"`
	LedgeReleaseBlendOut float64 `yaml:"ledge_release_blend_out"`
	MantleHeadHeight     float64 `yaml:"mantle_head_height"`
	MantleReach          float64 `yaml:"mantle_reach"`
	MantleProbeHalf      gm.Vec3 `yaml:"mantle_probe_half"`
	MantleAlignHalf      gm.Vec3 `yaml:"mantle_align_half"`
	MantleAlignInset     float64 `yaml:"mantle_align_inset"`
	MantleSearchAbove    float64 `yaml:"mantle_search_above"`
	MantleSearchBelow    float64 `yaml:"mantle_search_below"`
	MantleWallOffset     float64 `yaml:"mantle_wall_offset"`
	MantleHangOffset     float64 `yaml:"mantle_hang_offset"`
	ClimbInset           float64 `yaml:"climb_inset"`

	MaxHealth           int     `yaml:"max_health"`
	RespawnFadeDuration float64 `yaml:"respawn_fade_duration"`
	RespawnDelay        float64 `yaml:"respawn_delay"`
}

func DefaultTuning() Tuning {
	return Tuning{
		GravityScale: 2.5,
		MaxWalkSpeed: 750,
		SprintSpeed:  800,

		CapsuleRadius:     35,
		CapsuleHalfHeight: 90,

		MaxCoyoteTime:           0.16,
		WallJumpTraceDistance:   50,
		WallJumpTraceRadius:     50,
		WallJumpBounceImpulse:   800,
		WallJumpVerticalImpulse: 900,
		DelayBetweenWallJumps:   0.1,

		DashFallbackDuration: 0.3,

		LedgeRegrabDelay:     0.25,
		ClimbUpHoldThreshold: 0.4,
		ClimbInputDeadzone:   0.1,
		LedgeReleaseBlendOut: 0.2,
		MantleHeadHeight:     70,
		MantleReach:          60,
		MantleProbeHalf:      gm.V(10, 10, 10),
		MantleAlignHalf:      gm.V(5, 5, 5),
		MantleAlignInset:     15,
		MantleSearchAbove:    60,
		MantleSearchBelow:    40,
		MantleWallOffset:     40,
		MantleHangOffset:     90,
		ClimbInset:           40,

		MaxHealth:           3,
		RespawnFadeDuration: 1.0,
		RespawnDelay:        0.5,
	}
}
