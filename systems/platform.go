package systems

import (
	"github.com/automoto/trianglejam/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms moves platforms back and forth, pausing at each end.
// Bodies riding or hanging from them are carried by the physics world.
func UpdatePlatforms(ecs *ecs.ECS) {
	dt := deltaTime()
	components.Platform.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Platform.Get(e)
		if p.Offset.IsZero() || p.Duration <= 0 {
			return
		}
		if p.PauseLeft > 0 {
			p.PauseLeft -= dt
			return
		}
		if p.Tween == nil {
			from, to := float32(0), float32(1)
			if !p.Outbound {
				from, to = 1, 0
			}
			p.Tween = gween.New(from, to, float32(p.Duration), ease.InOutSine)
		}

		t, done := p.Tween.Update(float32(dt))
		components.Surface.Get(e).MoveTo(p.Origin.Add(p.Offset.Scale(float64(t))))
		if done {
			p.Tween = nil
			p.Outbound = !p.Outbound
			p.PauseLeft = p.Pause
		}
	})
}
