package sentinel

import (
	"math"

	"github.com/vovakirdan/f47-sentinel/internal/core"
)

// directWaves spawns the queue head when the throttle allows and starts the
// next wave once the current one is fully resolved.
func (e *Engine) directWaves(dt float64) {
	st := &e.st

	if len(st.queue) > 0 {
		st.spawnTimer -= dt
		if st.spawnTimer <= 0 {
			next := st.queue[0]
			st.queue = st.queue[1:]
			st.enemies = append(st.enemies, e.spawnEnemy(next))
			st.spawnTimer = e.cfg.Engine.SpawnInterval
		}
	}

	// A wave with pending spawns can never complete
	if len(st.queue) == 0 && len(st.enemies) == 0 && st.waveRemaining <= 0 {
		e.advanceWave()
	}
}

// advanceWave moves to the next wave, rolling into the next level when the
// authored level is exhausted and into generated waves after the campaign.
func (e *Engine) advanceWave() {
	st := &e.st
	st.wave++

	var w Wave
	if st.level <= CampaignLevels() {
		if cw, ok := CampaignWave(st.level, st.wave); ok {
			w = cw
		} else {
			st.level++
			st.wave = 1
			e.logger.Debug("level advanced", "level", st.level)
			if cw, ok := CampaignWave(st.level, 1); ok {
				w = cw
			} else {
				w = GenerateWave(st.wave)
			}
		}
	} else {
		w = GenerateWave(st.wave)
	}

	st.queue = w.Queue()
	st.waveRemaining = len(st.queue)
	st.spawnTimer = e.cfg.Engine.WaveStartDelay
	e.logger.Debug("wave started", "level", st.level, "wave", st.wave, "enemies", st.waveRemaining, "boss", w.Boss)

	if w.Boss && e.cfg.Engine.BossWarning > 0 {
		st.bossWarning = e.cfg.Engine.BossWarning
		st.phase = PhaseBossWarning
		e.logger.Info("boss incoming", "level", st.level, "wave", st.wave)
	}
}

// spawnEnemy builds an enemy at the far edge with stats scaled by the level multiplier.
func (e *Engine) spawnEnemy(entry SpawnEntry) Enemy {
	stats := StatsFor(entry.Type)
	m := e.cfg.Difficulty.LevelMultiplier(e.st.level)

	x := (e.rng.Float64() - 0.5) * spawnWidth
	shootTimer := stats.ShootInterval * (0.5 + e.rng.Float64()*0.5)
	phase := e.rng.Float64() * math.Pi * 2

	hp := scaleCeil(stats.HP, m)
	return Enemy{
		ID:            e.newID(),
		Type:          entry.Type,
		Position:      core.V3(x, 0, spawnEdgeZ),
		Velocity:      core.V3(0, 0, -stats.Speed*m),
		HP:            hp,
		MaxHP:         hp,
		Points:        scaleCeil(stats.Points, m),
		XP:            scaleCeil(stats.XP, m),
		ShootTimer:    shootTimer,
		ShootInterval: stats.ShootInterval / m,
		Size:          stats.Size,
		Pattern:       entry.Pattern,
		PatternPhase:  phase,
		DropChance:    stats.DropChance,
	}
}

// scaleCeil returns ceil(v*m), ignoring float noise below 1e-9.
func scaleCeil(v int, m float64) int {
	return int(math.Ceil(float64(v)*m - 1e-9))
}

// advanceEnemies moves every enemy along its pattern and lets it shoot.
func (e *Engine) advanceEnemies(dt float64) {
	st := &e.st
	target := st.player.Position

	for i := range st.enemies {
		en := &st.enemies[i]
		moveEnemy(en, target, dt)

		en.ShootTimer -= dt
		if en.ShootTimer <= 0 && en.Type != EnemyKamikaze {
			en.ShootTimer = en.ShootInterval
			e.enemyFire(en, target)
		}
	}
}

// moveEnemy applies one movement pattern step.
func moveEnemy(en *Enemy, target core.Vec3, dt float64) {
	en.PatternPhase += dt * patternPhaseRate
	vz := en.Velocity.Z

	switch en.Pattern {
	case PatternSine:
		en.Position.X += math.Sin(en.PatternPhase) * lateralPatternRate * dt
		en.Position.Z += vz * dt
	case PatternZigzag:
		dir := lateralPatternRate
		if int64(math.Floor(en.PatternPhase))%2 != 0 {
			dir = -dir
		}
		en.Position.X += dir * dt
		en.Position.Z += vz * dt
	case PatternCircle:
		en.Position.X += math.Cos(en.PatternPhase) * 4 * dt
		en.Position.Z += math.Sin(en.PatternPhase) * 2 * dt
		en.Position.Z = core.ClampF(en.Position.Z, circleMinZ, circleMaxZ)
	case PatternDive:
		dx, dz, _ := en.Position.PlanarDir(target)
		speed := math.Abs(vz)
		en.Position.X += dx * speed * dt
		en.Position.Z += dz * speed * dt
	default:
		en.Position.Z += vz * dt
	}

	en.Position.X = core.ClampF(en.Position.X, -enemyLateralLimit, enemyLateralLimit)
}

// enemyFire shoots at the player: a five-bullet fan for bosses, one aimed bullet otherwise.
func (e *Engine) enemyFire(en *Enemy, target core.Vec3) {
	st := &e.st

	if en.Type == EnemyBoss {
		aim := math.Atan2(target.X-en.Position.X, target.Z-en.Position.Z)
		for i := -2; i <= 2; i++ {
			angle := aim + float64(i)*bossFanStep
			st.bullets = append(st.bullets, Bullet{
				ID:       e.newID(),
				Position: en.Position,
				Velocity: core.V3(math.Sin(angle)*bossBulletSpeed, 0, math.Cos(angle)*bossBulletSpeed),
				Damage:   1,
				Size:     bossBulletSize,
				Color:    bossBulletColor,
				Kind:     BulletNormal,
			})
		}
		return
	}

	dx, dz, _ := en.Position.PlanarDir(target)
	st.bullets = append(st.bullets, Bullet{
		ID:       e.newID(),
		Position: en.Position,
		Velocity: core.V3(dx*enemyBulletSpeed, 0, dz*enemyBulletSpeed),
		Damage:   1,
		Size:     enemyBulletSize,
		Color:    StatsFor(en.Type).Color,
		Kind:     BulletNormal,
	})
}
