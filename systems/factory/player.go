package factory

import (
	"github.com/automoto/trianglejam/archetypes"
	"github.com/automoto/trianglejam/assets/animations"
	"github.com/automoto/trianglejam/character"
	"github.com/automoto/trianglejam/components"
	cfg "github.com/automoto/trianglejam/config"
	gm "github.com/automoto/trianglejam/shared/gamemath"
	"github.com/automoto/trianglejam/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the character standing on spawn and wires it to the
// level's physics world, clock, fade and HUD.
func CreatePlayer(ecs *ecs.ECS, spawn leveldata.SpawnPoint) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	world := mustWorld(ecs)
	clockEntry, ok := components.Clock.First(ecs.World)
	if !ok {
		panic("factory: create the clock first")
	}
	clock := components.Clock.Get(clockEntry).Queue

	tuning := cfg.Player
	half := gm.V(tuning.CapsuleRadius, tuning.CapsuleRadius, tuning.CapsuleHalfHeight)
	body := world.AddBody(BodyCentre(spawn.Position), half)
	body.Owner = player.Entity()
	rot := gm.Rotator{Yaw: spawn.Yaw}
	body.SetRotation(rot)

	ctrl := components.NewPlayerController(spawn.Yaw, cfg.Camera.MinPitch, cfg.Camera.MaxPitch)
	anim := animations.NewPlayer(cfg.Montages.Durations)

	c := character.New(character.Deps{
		Locomotion: body,
		Probe:      world,
		Timers:     clock,
		Clock:      clock,
		Animator:   anim,
		Controller: ctrl,
		Listener:   hudListener{world: ecs.World},
		Fader:      screenFader{world: ecs.World},
		Climber:    montageClimber{anim: anim},
	}, tuning)

	body.OnLanded = c.Landed
	body.OnModeChanged = c.MovementModeChanged
	body.ControlYaw = func() float64 { return ctrl.Rotation.Yaw }

	components.Body.Set(player, &components.BodyData{Body: body})
	components.Character.Set(player, &components.CharacterData{Character: c})
	components.Controller.Set(player, &components.ControllerData{PlayerController: ctrl})
	components.Animation.Set(player, &components.AnimationData{Player: anim})

	return player
}

// hudListener forwards character notifications as world events.
type hudListener struct {
	world donburi.World
}

func (l hudListener) HealthChanged(health int) {
	components.HealthChanged.Publish(l.world, components.HealthChangedEvent{
		Health: health,
		Max:    cfg.Player.MaxHealth,
	})
}

func (l hudListener) PlayerDied() {
	components.PlayerDied.Publish(l.world, components.PlayerDiedEvent{})
}

// screenFader drives the level's fade overlay.
type screenFader struct {
	world donburi.World
}

func (f screenFader) FadeOut(seconds float64) {
	if fade, ok := components.Fade.First(f.world); ok {
		components.Fade.Get(fade).FadeTo(1, seconds)
	}
}

func (f screenFader) FadeIn(seconds float64) {
	if fade, ok := components.Fade.First(f.world); ok {
		components.Fade.Get(fade).FadeTo(0, seconds)
	}
}

// montageClimber plays the climb montage and completes the climb when it
// ends. Without the montage the climb completes at once.
type montageClimber struct {
	anim *animations.Player
}

func (m montageClimber) ClimbUpLedge(c *character.Character) {
	if m.anim.Play(character.MontageClimbUp, false) <= 0 {
		c.CompleteClimb()
		return
	}
	m.anim.OnEnd(character.MontageClimbUp, func(bool) { c.CompleteClimb() })
}
