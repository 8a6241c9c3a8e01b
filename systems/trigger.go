package systems

import (
	"github.com/automoto/trianglejam/character"
	"github.com/automoto/trianglejam/components"
	"github.com/automoto/trianglejam/shared/leveldata"
	"github.com/automoto/trianglejam/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTriggers starts a transition when the player enters a camera
// trigger. A trigger fires again only after the player has left it and its
// transition has finished.
func UpdateTriggers(ecs *ecs.ECS) {
	inside, ok := overlappingPlayer(ecs.World, tags.ResolvTrigger)
	if !ok {
		return
	}
	components.Trigger.Each(ecs.World, func(e *donburi.Entry) {
		t := components.Trigger.Get(e)
		now := inside[e.Entity()]
		if now && !t.Occupied && !t.Running {
			startTransition(ecs.World, e.Entity())
		}
		t.Occupied = now
	})
}

// startTransition freezes player input and fades out. The rest happens once
// the screen is covered.
func startTransition(w donburi.World, trigger donburi.Entity) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	clock := getClock(w)
	if clock == nil {
		return
	}
	t := components.Trigger.Get(w.Entry(trigger))
	t.Running = true
	components.Controller.Get(playerEntry).InputEnabled = false
	fadeTo(w, 1, t.FadeDuration)
	clock.Schedule(t.FadeDuration, func() { finishTransition(w, trigger) })
}

func finishTransition(w donburi.World, trigger donburi.Entity) {
	if !w.Valid(trigger) {
		return
	}
	t := components.Trigger.Get(w.Entry(trigger))
	playerEntry, ok := tags.Player.First(w)
	level := getLevel(w)
	if !ok || level == nil {
		t.Running = false
		return
	}
	c := components.Character.Get(playerEntry)

	if t.Variant == leveldata.TriggerLevel {
		// The world is rebuilt before the next frame; the screen stays dark
		// and input stays off until then.
		level.Memory.PrepareLevelLoad(t.ReturnSpawnTag, c.Is2D())
		level.PendingLoad = t.Level
		character.Log.Printf("loading level %s (spawn tag %q)", t.Level, t.ReturnSpawnTag)
		return
	}

	cam, found := level.CurrentLevel.Camera(t.Camera)
	if t.SwitchToFixedCamera && found {
		c.ToggleSideScrollMode(true)
		BlendToFixedCamera(w, cam, t.BlendTime)
	} else {
		c.ToggleSideScrollMode(false)
		BlendToPlayer(w, t.BlendTime)
	}
	level.Memory.IsCharacter2D = c.Is2D()

	components.Controller.Get(playerEntry).InputEnabled = true
	fadeTo(w, 0, t.FadeDuration)
	t.Running = false
}
