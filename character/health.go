package character

import gm "github.com/automoto/trianglejam/shared/gamemath"

// TakeDamage removes one point of health. Above zero the character goes back
// to the last checkpoint. At zero the screen fades out and the character
// restarts at its spawn with full health. Damage is ignored while that
// restart is pending.
func (c *Character) TakeDamage() {
	if c.respawnPending {
		return
	}
	c.health--
	if c.health < 0 {
		c.health = 0
	}
	c.notifyHealth()

	if c.health > 0 {
		c.placeAt(c.lastCheckpoint, c.loco.Rotation())
		return
	}

	c.respawnPending = true
	Log.Printf("died, restarting from spawn")
	if c.listener != nil {
		c.listener.PlayerDied()
	}
	if c.fader != nil {
		c.fader.FadeOut(c.tuning.RespawnFadeDuration)
	}
	c.respawnTimer = c.timers.Schedule(c.tuning.RespawnFadeDuration+c.tuning.RespawnDelay, c.restart)
}

func (c *Character) restart() {
	c.respawnTimer = 0
	c.respawnPending = false
	c.placeAt(c.initialSpawn, c.respawnRotation)
	c.health = c.tuning.MaxHealth
	c.notifyHealth()
	if c.fader != nil {
		c.fader.FadeIn(c.tuning.RespawnFadeDuration)
	}
}

// UpdateCheckpoint overwrites the soft respawn location.
func (c *Character) UpdateCheckpoint(loc gm.Vec3) {
	c.lastCheckpoint = loc
}

// FinalizeRespawn resets the character to its spawn, checkpoint included.
func (c *Character) FinalizeRespawn() {
	c.placeAt(c.initialSpawn, c.respawnRotation)
	c.lastCheckpoint = c.initialSpawn
	c.health = c.tuning.MaxHealth
	c.notifyHealth()
}

// placeAt teleports with zero velocity, letting go of any ledge first.
func (c *Character) placeAt(loc gm.Vec3, rot gm.Rotator) {
	if c.IsMantled() {
		c.StopLedgeGrab()
	}
	c.loco.Teleport(loc, rot)
	c.loco.SetVelocity(gm.Zero)
}

func (c *Character) notifyHealth() {
	if c.listener != nil {
		c.listener.HealthChanged(c.health)
	}
}
