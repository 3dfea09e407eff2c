package sentinel

import (
	"github.com/vovakirdan/f47-sentinel/internal/core"
)

// collectPowerUps drifts pickups, culls escaped ones and applies those touching the player.
func (e *Engine) collectPowerUps(dt float64, sets tickSets) {
	st := &e.st
	p := &st.player

	kept := st.powerUps[:0]
	var collected []PowerUp
	for _, pu := range st.powerUps {
		pu.Position.Z += pu.Velocity.Z * dt
		if core.IsOutOfBounds(pu.Position, cullMargin) {
			continue
		}
		if core.Overlaps(pu.Position, pu.Size, p.Position, pickupRadius) {
			collected = append(collected, pu)
			continue
		}
		kept = append(kept, pu)
	}
	st.powerUps = kept

	for _, pu := range collected {
		e.applyPowerUp(pu.Type, sets)
	}
}

func (e *Engine) applyPowerUp(kind PowerUpType, sets tickSets) {
	st := &e.st
	p := &st.player
	caps := e.cfg.Player

	switch kind {
	case PowerUpWeapon:
		p.WeaponLevel = min(p.WeaponLevel+1, MaxWeaponLevel)
	case PowerUpShield:
		p.ShieldHP = min(p.ShieldHP+1, p.MaxShield)
	case PowerUpSpeed:
		p.Speed = min(p.Speed+speedPickupAmount, caps.SpeedCap)
	case PowerUpLife:
		p.Lives = min(p.Lives+1, caps.LivesCap)
	case PowerUpXP:
		st.xp += xpPickupAmount
	case PowerUpNuke:
		e.nuke(sets)
	}
}

// nuke destroys every live non-boss enemy with full score, XP and kill credit
// and chips bosses without killing them. Combo is untouched.
func (e *Engine) nuke(sets tickSets) {
	st := &e.st
	st.nukeFlash = e.cfg.Engine.NukeFlash
	st.shake = 1

	for i := range st.enemies {
		en := &st.enemies[i]
		if sets.dead(en.ID) {
			continue
		}
		if en.Type == EnemyBoss {
			en.HP = max(1, en.HP-nukeBossDamage)
			continue
		}
		sets.deadEnemies[en.ID] = struct{}{}
		st.score += en.Points
		st.xp += en.XP
		st.kills++
		st.waveRemaining = max(0, st.waveRemaining-1)
		e.spawnExplosion(en.Position, 1.5, hitColor)
	}
}

// levelUp raises the XP level while the next threshold is met, granting
// drones and shield capacity on the way.
func (e *Engine) levelUp() {
	st := &e.st
	p := &st.player

	for st.xpLevel < MaxXPLevel && st.xp >= xpTable[st.xpLevel] {
		st.xpLevel++

		for _, g := range droneGrants {
			if st.xpLevel == g.Level && len(p.Drones) < g.Owned {
				p.Drones = append(p.Drones, Drone{
					ID:     e.newID(),
					Offset: core.V3(g.Offset[0], g.Offset[1], g.Offset[2]),
				})
			}
		}
		if st.xpLevel%2 == 0 {
			p.MaxShield = min(p.MaxShield+1, e.cfg.Player.ShieldCap)
		}
		e.logger.Debug("xp level up", "xp_level", st.xpLevel, "drones", len(p.Drones))
	}
}

// XPBounds reports the XP at which xpLevel was reached and the XP needed for
// the next level. next is -1 at the top level.
func XPBounds(xpLevel int) (floor, next int) {
	if xpLevel >= 1 && xpLevel <= MaxXPLevel {
		floor = xpTable[xpLevel-1]
	}
	return floor, XPThreshold(xpLevel)
}
