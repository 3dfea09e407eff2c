package sentinel

import (
	"math"

	"github.com/vovakirdan/f47-sentinel/internal/core"
)

// resolvePlayerFire applies player bullets to enemies. A bullet is spent on its first hit.
func (e *Engine) resolvePlayerFire(sets tickSets) {
	st := &e.st

	for bi := range st.bullets {
		b := &st.bullets[bi]
		if !b.IsPlayer {
			continue
		}
		for ei := range st.enemies {
			en := &st.enemies[ei]
			if sets.dead(en.ID) {
				continue
			}
			if !core.Overlaps(b.Position, b.Size, en.Position, en.Size) {
				continue
			}

			sets.spentBullets[b.ID] = struct{}{}
			en.HP -= b.Damage
			st.shake = math.Max(st.shake, 0.1)
			if en.HP <= 0 {
				sets.deadEnemies[en.ID] = struct{}{}
				e.killEnemy(en)
			}
			break
		}
	}
}

// killEnemy credits a kill made by player fire.
func (e *Engine) killEnemy(en *Enemy) {
	st := &e.st

	st.combo++
	st.comboTimer = e.cfg.Engine.ComboWindow
	st.score += comboScore(en.Points, st.combo)
	st.xp += en.XP
	st.kills++
	st.waveRemaining = max(0, st.waveRemaining-1)

	if en.Type == EnemyBoss {
		e.spawnExplosion(en.Position, 4, bossKillColor)
		st.shake = 1
		e.logger.Info("boss destroyed", "level", st.level, "score", st.score)
	} else {
		e.spawnExplosion(en.Position, 1.5, killColor)
	}

	e.rollDrop(en)
}

// comboScore returns ceil(points * (1 + 0.1*min(combo,20))) using integer tenths
// so that e.g. 100 points at combo 1 is exactly 110.
func comboScore(points, combo int) int {
	tenths := 10 + min(combo, maxComboSteps)
	return (points*tenths + 9) / 10
}

// rollDrop spawns a pickup with the enemy's drop probability.
func (e *Engine) rollDrop(en *Enemy) {
	if e.rng.Float64() >= en.DropChance {
		return
	}
	kind, ok := WeightedChoice(e.rng, powerUpWeights)
	if !ok {
		return
	}
	e.st.powerUps = append(e.st.powerUps, PowerUp{
		ID:       e.newID(),
		Type:     kind,
		Position: en.Position,
		Velocity: core.V3(0, 0, powerUpDriftSpeed),
		Size:     powerUpSize,
	})
}

// resolvePlayerHits applies enemy bullets and enemy bodies to the player.
// Once a life is lost the remaining hits of the tick are ignored.
// Returns true when the run ended.
func (e *Engine) resolvePlayerHits(sets tickSets) bool {
	st := &e.st
	p := &st.player

	for bi := range st.bullets {
		if p.InvincibleTimer > 0 {
			break
		}
		b := &st.bullets[bi]
		if b.IsPlayer || sets.spent(b.ID) {
			continue
		}
		if !core.Overlaps(b.Position, b.Size, p.Position, playerHitRadius) {
			continue
		}

		sets.spentBullets[b.ID] = struct{}{}
		if e.hitPlayer(0.3, true) {
			return true
		}
	}

	for ei := range st.enemies {
		if p.InvincibleTimer > 0 {
			break
		}
		en := &st.enemies[ei]
		if sets.dead(en.ID) {
			continue
		}
		if !core.Overlaps(en.Position, en.Size, p.Position, playerHitRadius) {
			continue
		}

		sets.deadEnemies[en.ID] = struct{}{}
		st.waveRemaining = max(0, st.waveRemaining-1)
		e.spawnExplosion(en.Position, 1.5, hitColor)
		if e.hitPlayer(0.4, false) {
			return true
		}
	}

	return false
}

// hitPlayer absorbs one hit with the shield or costs a life.
// Returns true when the hit was fatal and the run is over.
func (e *Engine) hitPlayer(shieldShake float64, explode bool) bool {
	st := &e.st
	p := &st.player

	if p.ShieldHP > 0 {
		p.ShieldHP--
		st.shake = shieldShake
		return false
	}

	p.Lives = max(0, p.Lives-1)
	p.InvincibleTimer = e.cfg.Engine.InvincibleTime
	st.shake = 0.8
	if explode {
		e.spawnExplosion(p.Position, 2, hitColor)
	}

	if p.Lives == 0 {
		e.gameOver()
		return true
	}
	return false
}
