package systems

import (
	"fmt"

	"github.com/automoto/trianglejam/components"
	cfg "github.com/automoto/trianglejam/config"
	"github.com/automoto/trianglejam/tags"
	"github.com/automoto/trianglejam/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var hudUI *ui.HUDUI

func onHealthChanged(w donburi.World, ev components.HealthChangedEvent) {
	entry, ok := components.HUD.First(w)
	if !ok {
		return
	}
	hud := components.HUD.Get(entry)
	hud.Health = ev.Health
	hud.Max = ev.Max
	hud.Dirty = true
}

func onPlayerDied(w donburi.World, _ components.PlayerDiedEvent) {
	entry, ok := components.HUD.First(w)
	if !ok {
		return
	}
	hud := components.HUD.Get(entry)
	hud.DeathTicks = cfg.UI.DeathMsgTicks
	hud.Dirty = true
}

// UpdateHUD counts down the death message and pushes changes into the UI.
func UpdateHUD(ecs *ecs.ECS) {
	entry, ok := components.HUD.First(ecs.World)
	if !ok {
		return
	}
	hud := components.HUD.Get(entry)
	if hud.DeathTicks > 0 {
		hud.DeathTicks--
		if hud.DeathTicks == 0 {
			hud.Dirty = true
		}
	}

	if hudUI == nil {
		return // built on first draw
	}
	if hud.Dirty || cfg.Debug.ShowState {
		hudUI.Refresh(hud, debugState(ecs.World))
		hud.Dirty = false
	}
	hudUI.Update()
}

// DrawHUD renders the health display and the death message.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.HUD.First(ecs.World)
	if !ok {
		return
	}
	if hudUI == nil {
		hudUI = ui.NewHUDUI()
		hudUI.Refresh(components.HUD.Get(entry), debugState(ecs.World))
	}
	hudUI.Draw(screen)
}

func debugState(w donburi.World) string {
	if !cfg.Debug.ShowState {
		return ""
	}
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return ""
	}
	c := components.Character.Get(playerEntry)
	body := components.Body.Get(playerEntry)
	return fmt.Sprintf("%s %s 2D=%t dash=%t wall=%t double=%t",
		c.Stance(), body.Mode(), c.Is2D(), c.HasDashed(), c.HasWallJumped(), c.HasDoubleJumped())
}
