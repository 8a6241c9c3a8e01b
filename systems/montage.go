package systems

import (
	"github.com/automoto/trianglejam/character"
	"github.com/automoto/trianglejam/components"
	cfg "github.com/automoto/trianglejam/config"
	"github.com/automoto/trianglejam/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMontages advances every animation player. End callbacks fire from
// here, so a finished dash or climb is applied before physics runs.
func UpdateMontages(ecs *ecs.ECS) {
	dt := deltaTime()
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		components.Animation.Get(e).Update(dt)
	})
	applyRootMotion(ecs.World)
}

// applyRootMotion drives the body along its facing while the dash montage
// plays.
func applyRootMotion(w donburi.World) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	c := components.Character.Get(playerEntry)
	anim := components.Animation.Get(playerEntry)
	if !c.IsDashing() || !anim.IsPlaying(character.MontageDash) {
		return
	}
	body := components.Body.Get(playerEntry)
	dir := body.Rotation().Forward().Flat().Normalize()
	body.SetVelocity(dir.Scale(cfg.Montages.DashSpeed))
}
