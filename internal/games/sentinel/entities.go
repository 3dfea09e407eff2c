package sentinel

import "github.com/vovakirdan/f47-sentinel/internal/core"

// Phase is the run-level state machine position.
type Phase string

const (
	PhaseMenu        Phase = "menu"         // Before the first run
	PhasePlaying     Phase = "playing"      // Simulation advancing
	PhasePaused      Phase = "paused"       // User pause
	PhaseGameOver    Phase = "gameover"     // Lives exhausted
	PhaseBossWarning Phase = "boss-warning" // Field frozen before a boss wave
)

// EnemyType identifies one of the enemy kinds.
type EnemyType string

const (
	EnemyGrunt    EnemyType = "grunt"
	EnemyFast     EnemyType = "fast"
	EnemyTank     EnemyType = "tank"
	EnemyKamikaze EnemyType = "kamikaze"
	EnemySniper   EnemyType = "sniper"
	EnemyBoss     EnemyType = "boss"
)

// Glyph returns the display character for an enemy type.
func (t EnemyType) Glyph() rune {
	switch t {
	case EnemyGrunt:
		return 'v'
	case EnemyFast:
		return 'y'
	case EnemyTank:
		return 'W'
	case EnemyKamikaze:
		return 'x'
	case EnemySniper:
		return 'Y'
	case EnemyBoss:
		return 'M'
	default:
		return '?'
	}
}

// Pattern is an enemy movement pattern.
type Pattern string

const (
	PatternStraight Pattern = "straight"
	PatternSine     Pattern = "sine"
	PatternZigzag   Pattern = "zigzag"
	PatternCircle   Pattern = "circle"
	PatternDive     Pattern = "dive"
)

// PowerUpType identifies a pickup effect.
type PowerUpType string

const (
	PowerUpWeapon PowerUpType = "weapon"
	PowerUpShield PowerUpType = "shield"
	PowerUpSpeed  PowerUpType = "speed"
	PowerUpNuke   PowerUpType = "nuke"
	PowerUpLife   PowerUpType = "life"
	PowerUpXP     PowerUpType = "xp"
)

// Glyph returns the display character for a pickup.
func (p PowerUpType) Glyph() rune {
	switch p {
	case PowerUpWeapon:
		return 'P'
	case PowerUpShield:
		return 'S'
	case PowerUpSpeed:
		return '>'
	case PowerUpNuke:
		return 'N'
	case PowerUpLife:
		return '♥'
	case PowerUpXP:
		return '*'
	default:
		return '?'
	}
}

// BulletKind is cosmetic; it only selects size and glyph.
type BulletKind string

const (
	BulletNormal  BulletKind = "normal"
	BulletLaser   BulletKind = "laser"
	BulletMissile BulletKind = "missile"
)

// Drone is an escort owned by the player. ShootTimer counts down to its next
// shot; a drone with time left sits out the player's volley.
type Drone struct {
	ID         uint64    `json:"id" msgpack:"id"`
	Offset     core.Vec3 `json:"offset" msgpack:"offset"`
	ShootTimer float64   `json:"shoot_timer" msgpack:"shoot_timer"`
}

// Player is the single ship of a run.
type Player struct {
	Position        core.Vec3 `json:"position" msgpack:"position"`
	Speed           float64   `json:"speed" msgpack:"speed"`
	BaseSpeed       float64   `json:"base_speed" msgpack:"base_speed"`
	WeaponLevel     int       `json:"weapon_level" msgpack:"weapon_level"`
	ShieldHP        int       `json:"shield_hp" msgpack:"shield_hp"`
	MaxShield       int       `json:"max_shield" msgpack:"max_shield"`
	Lives           int       `json:"lives" msgpack:"lives"`
	InvincibleTimer float64   `json:"invincible_timer" msgpack:"invincible_timer"`
	ShootCooldown   float64   `json:"shoot_cooldown" msgpack:"shoot_cooldown"`
	Drones          []Drone   `json:"drones" msgpack:"drones"`
}

// Bullet is a projectile from the player, a drone or an enemy.
type Bullet struct {
	ID       uint64     `json:"id" msgpack:"id"`
	Position core.Vec3  `json:"position" msgpack:"position"`
	Velocity core.Vec3  `json:"velocity" msgpack:"velocity"`
	Damage   int        `json:"damage" msgpack:"damage"`
	IsPlayer bool       `json:"is_player" msgpack:"is_player"`
	Size     float64    `json:"size" msgpack:"size"`
	Color    string     `json:"color" msgpack:"color"`
	Kind     BulletKind `json:"kind" msgpack:"kind"`
}

// Enemy is a hostile ship spawned by the wave director.
type Enemy struct {
	ID            uint64    `json:"id" msgpack:"id"`
	Type          EnemyType `json:"type" msgpack:"type"`
	Position      core.Vec3 `json:"position" msgpack:"position"`
	Velocity      core.Vec3 `json:"velocity" msgpack:"velocity"`
	HP            int       `json:"hp" msgpack:"hp"`
	MaxHP         int       `json:"max_hp" msgpack:"max_hp"`
	Points        int       `json:"points" msgpack:"points"`
	XP            int       `json:"xp" msgpack:"xp"`
	ShootTimer    float64   `json:"shoot_timer" msgpack:"shoot_timer"`
	ShootInterval float64   `json:"shoot_interval" msgpack:"shoot_interval"`
	Size          float64   `json:"size" msgpack:"size"`
	Pattern       Pattern   `json:"pattern" msgpack:"pattern"`
	PatternPhase  float64   `json:"pattern_phase" msgpack:"pattern_phase"`
	DropChance    float64   `json:"drop_chance" msgpack:"drop_chance"`
}

// PowerUp is a pickup drifting toward the player's edge.
type PowerUp struct {
	ID       uint64      `json:"id" msgpack:"id"`
	Type     PowerUpType `json:"type" msgpack:"type"`
	Position core.Vec3   `json:"position" msgpack:"position"`
	Velocity core.Vec3   `json:"velocity" msgpack:"velocity"`
	Size     float64     `json:"size" msgpack:"size"`
}

// Explosion is a visual effect with no gameplay impact.
type Explosion struct {
	ID       uint64    `json:"id" msgpack:"id"`
	Position core.Vec3 `json:"position" msgpack:"position"`
	Scale    float64   `json:"scale" msgpack:"scale"`
	MaxScale float64   `json:"max_scale" msgpack:"max_scale"`
	Opacity  float64   `json:"opacity" msgpack:"opacity"`
	Color    string    `json:"color" msgpack:"color"`
}

// SpawnEntry is one pending enemy in the wave queue.
type SpawnEntry struct {
	Type    EnemyType `json:"type" msgpack:"type"`
	Pattern Pattern   `json:"pattern" msgpack:"pattern"`
	Delay   float64   `json:"delay" msgpack:"delay"`
}
