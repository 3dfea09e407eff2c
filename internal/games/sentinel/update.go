package sentinel

import (
	"math"

	"github.com/vovakirdan/f47-sentinel/internal/core"
)

// Update advances the simulation by dt seconds.
// dt is clamped to the configured maximum; non-positive steps do nothing.
// Outside the playing and boss-warning phases Update is a no-op.
func (e *Engine) Update(dt float64) {
	in := e.Input()

	e.mu.Lock()
	defer e.mu.Unlock()

	if dt > e.cfg.Engine.MaxDelta {
		dt = e.cfg.Engine.MaxDelta
	}
	if !(dt > 0) {
		return
	}

	switch e.st.phase {
	case PhaseBossWarning:
		e.st.bossWarning -= dt
		if e.st.bossWarning > 0 {
			e.publish()
			return
		}
		// Warning over: the rest of this tick runs normally
		e.st.bossWarning = 0
		e.st.phase = PhasePlaying
	case PhasePlaying:
	default:
		return
	}

	e.step(dt, in)
	e.publish()
}

// tickSets tracks entities consumed during one tick.
type tickSets struct {
	spentBullets map[uint64]struct{}
	deadEnemies  map[uint64]struct{}
}

func (t tickSets) dead(id uint64) bool {
	_, ok := t.deadEnemies[id]
	return ok
}

func (t tickSets) spent(id uint64) bool {
	_, ok := t.spentBullets[id]
	return ok
}

// step runs one playing tick in the fixed order described by the package docs.
func (e *Engine) step(dt float64, in Input) {
	st := &e.st
	st.tick++
	st.elapsed += dt

	e.decayEffects(dt)
	e.movePlayer(dt, in)
	if st.player.InvincibleTimer > 0 {
		st.player.InvincibleTimer = math.Max(0, st.player.InvincibleTimer-dt)
	}
	e.fire(dt, in)
	e.directWaves(dt)
	e.decayCombo(dt)
	e.advanceEnemies(dt)
	e.advanceBullets(dt)

	sets := tickSets{
		spentBullets: make(map[uint64]struct{}),
		deadEnemies:  make(map[uint64]struct{}),
	}
	e.resolvePlayerFire(sets)
	if e.resolvePlayerHits(sets) {
		return
	}
	e.collectPowerUps(dt, sets)
	e.levelUp()
	e.cleanup(sets)
	e.advanceExplosions(dt)
}

func (e *Engine) decayEffects(dt float64) {
	st := &e.st
	st.nukeFlash = math.Max(0, st.nukeFlash-dt)
	st.shake *= shakeDecay
	if st.shake < shakeFloor {
		st.shake = 0
	}
}

// movePlayer applies exactly one input source: touch, then gyro, then keys.
func (e *Engine) movePlayer(dt float64, in Input) {
	p := &e.st.player

	switch {
	case in.Touch != nil:
		p.Position.X = core.Lerp(p.Position.X, in.Touch.X, touchLerp)
		p.Position.Z = core.Lerp(p.Position.Z, in.Touch.Z, touchLerp)
	case in.Gyro != nil:
		p.Position.X = core.Lerp(p.Position.X, in.Gyro.X, gyroLerp)
		p.Position.Z = core.Lerp(p.Position.Z, in.Gyro.Z, gyroLerp)
	default:
		step := p.Speed * dt
		if in.Keys.Any(core.KeyArrowLeft, core.KeyA) {
			p.Position.X -= step
		}
		if in.Keys.Any(core.KeyArrowRight, core.KeyD) {
			p.Position.X += step
		}
		if in.Keys.Any(core.KeyArrowUp, core.KeyW) {
			p.Position.Z -= step
		}
		if in.Keys.Any(core.KeyArrowDown, core.KeyS) {
			p.Position.Z += step
		}
	}

	p.Position = core.ClampToPlayer(p.Position)
}

// fire emits the weapon volley when the cooldown allows. Each drone joins the
// volley only once its own timer has run out.
func (e *Engine) fire(dt float64, in Input) {
	st := &e.st
	p := &st.player

	p.ShootCooldown = math.Max(0, p.ShootCooldown-dt)
	for i := range p.Drones {
		p.Drones[i].ShootTimer = math.Max(0, p.Drones[i].ShootTimer-dt)
	}

	if !(in.AutoFire || in.Keys[core.KeyFire]) || p.ShootCooldown > 0 {
		return
	}

	w := Weapon(p.WeaponLevel)
	p.ShootCooldown = w.Cooldown
	kind := BulletKindFor(p.WeaponLevel)

	for i := range w.BulletCount {
		angle := 0.0
		if w.BulletCount > 1 {
			angle = -w.Spread/2 + w.Spread/float64(w.BulletCount-1)*float64(i)
		}
		pos := p.Position
		pos.Z += muzzleOffsetZ
		st.bullets = append(st.bullets, Bullet{
			ID:       e.newID(),
			Position: pos,
			Velocity: core.V3(math.Sin(angle)*w.BulletSpeed, 0, math.Cos(angle)*w.BulletSpeed),
			Damage:   w.Damage,
			IsPlayer: true,
			Size:     kind.Size(),
			Color:    w.Color,
			Kind:     kind,
		})
	}

	for i := range p.Drones {
		d := &p.Drones[i]
		if d.ShootTimer > 0 {
			continue
		}
		d.ShootTimer = w.Cooldown
		st.bullets = append(st.bullets, Bullet{
			ID:       e.newID(),
			Position: p.Position.Add(d.Offset),
			Velocity: core.V3(0, 0, droneBulletSpeed),
			Damage:   1,
			IsPlayer: true,
			Size:     droneBulletSize,
			Color:    droneBulletColor,
			Kind:     BulletNormal,
		})
	}
}

func (e *Engine) decayCombo(dt float64) {
	st := &e.st
	st.comboTimer -= dt
	if st.comboTimer <= 0 {
		st.combo = 0
		st.comboTimer = 0
	}
}

// advanceBullets integrates every bullet and culls those leaving the field.
func (e *Engine) advanceBullets(dt float64) {
	st := &e.st
	kept := st.bullets[:0]
	for _, b := range st.bullets {
		b.Position = b.Position.Add(b.Velocity.Scale(dt))
		if core.IsOutOfBounds(b.Position, cullMargin) {
			continue
		}
		kept = append(kept, b)
	}
	st.bullets = kept
}

// cleanup drops spent bullets, dead enemies and escapees.
// Escapees count against the wave exactly once; enemies already dead this tick are not escapees.
func (e *Engine) cleanup(sets tickSets) {
	st := &e.st

	bullets := st.bullets[:0]
	for _, b := range st.bullets {
		if !sets.spent(b.ID) {
			bullets = append(bullets, b)
		}
	}
	st.bullets = bullets

	enemies := st.enemies[:0]
	for _, en := range st.enemies {
		if sets.dead(en.ID) {
			continue
		}
		if core.IsOutOfBounds(en.Position, cullMargin) {
			st.waveRemaining = max(0, st.waveRemaining-1)
			continue
		}
		enemies = append(enemies, en)
	}
	st.enemies = enemies
}

func (e *Engine) advanceExplosions(dt float64) {
	st := &e.st
	kept := st.explosions[:0]
	for _, x := range st.explosions {
		x.Scale += (x.MaxScale - x.Scale) * explosionEase
		x.Opacity -= dt * explosionFadeRate
		if x.Opacity > 0 {
			kept = append(kept, x)
		}
	}
	st.explosions = kept
}

func (e *Engine) spawnExplosion(pos core.Vec3, maxScale float64, color string) {
	e.st.explosions = append(e.st.explosions, Explosion{
		ID:       e.newID(),
		Position: pos,
		MaxScale: maxScale,
		Opacity:  1,
		Color:    color,
	})
}
