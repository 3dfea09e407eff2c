package sentinel

import (
	"slices"

	"github.com/vovakirdan/f47-sentinel/internal/core"
)

// Snapshot is the read-only state committed after a tick.
// Every slice is a private copy; readers may hold it across ticks.
type Snapshot struct {
	Tick    uint64  `json:"tick" msgpack:"tick"`
	Elapsed float64 `json:"elapsed" msgpack:"elapsed"`
	Phase   Phase   `json:"phase" msgpack:"phase"`

	Score      int     `json:"score" msgpack:"score"`
	HighScore  int     `json:"high_score" msgpack:"high_score"`
	Combo      int     `json:"combo" msgpack:"combo"`
	ComboTimer float64 `json:"combo_timer" msgpack:"combo_timer"`
	Level      int     `json:"level" msgpack:"level"`
	Wave       int     `json:"wave" msgpack:"wave"`

	WaveRemaining int     `json:"wave_remaining" msgpack:"wave_remaining"`
	PendingSpawns int     `json:"pending_spawns" msgpack:"pending_spawns"`
	SpawnTimer    float64 `json:"spawn_timer" msgpack:"spawn_timer"`

	XP         int `json:"xp" msgpack:"xp"`
	XPLevel    int `json:"xp_level" msgpack:"xp_level"`
	XPFloor    int `json:"xp_floor" msgpack:"xp_floor"`
	XPNext     int `json:"xp_next" msgpack:"xp_next"` // -1 at max level
	TotalKills int `json:"total_kills" msgpack:"total_kills"`

	Player     Player      `json:"player" msgpack:"player"`
	WeaponName string      `json:"weapon_name" msgpack:"weapon_name"`
	Bullets    []Bullet    `json:"bullets" msgpack:"bullets"`
	Enemies    []Enemy     `json:"enemies" msgpack:"enemies"`
	PowerUps   []PowerUp   `json:"power_ups" msgpack:"power_ups"`
	Explosions []Explosion `json:"explosions" msgpack:"explosions"`

	BossWarning float64 `json:"boss_warning" msgpack:"boss_warning"`
	NukeFlash   float64 `json:"nuke_flash" msgpack:"nuke_flash"`
	ScreenShake float64 `json:"screen_shake" msgpack:"screen_shake"`

	ControlMode core.ControlMode `json:"control_mode" msgpack:"control_mode"`
	AutoFire    bool             `json:"auto_fire" msgpack:"auto_fire"`
	TiltX       float64          `json:"tilt_x" msgpack:"tilt_x"`
	TiltY       float64          `json:"tilt_y" msgpack:"tilt_y"`
	TouchTarget *core.Vec3       `json:"touch_target,omitempty" msgpack:"touch_target,omitempty"`
	GyroTarget  *core.Vec3       `json:"gyro_target,omitempty" msgpack:"gyro_target,omitempty"`
}

// publish copies the run state into a fresh snapshot and swaps it in.
// Must be called with e.mu held.
func (e *Engine) publish() {
	st := &e.st
	in := e.Input()

	player := st.player
	player.Drones = slices.Clone(st.player.Drones)
	if player.Drones == nil {
		player.Drones = []Drone{}
	}
	floor, next := XPBounds(st.xpLevel)

	snap := &Snapshot{
		Tick:          st.tick,
		Elapsed:       st.elapsed,
		Phase:         st.phase,
		Score:         st.score,
		HighScore:     st.highScore,
		Combo:         st.combo,
		ComboTimer:    st.comboTimer,
		Level:         st.level,
		Wave:          st.wave,
		WaveRemaining: st.waveRemaining,
		PendingSpawns: len(st.queue),
		SpawnTimer:    st.spawnTimer,
		XP:            st.xp,
		XPLevel:       st.xpLevel,
		XPFloor:       floor,
		XPNext:        next,
		TotalKills:    st.kills,
		Player:        player,
		WeaponName:    Weapon(player.WeaponLevel).Name,
		Bullets:       cloneOrEmpty(st.bullets),
		Enemies:       cloneOrEmpty(st.enemies),
		PowerUps:      cloneOrEmpty(st.powerUps),
		Explosions:    cloneOrEmpty(st.explosions),
		BossWarning:   st.bossWarning,
		NukeFlash:     st.nukeFlash,
		ScreenShake:   st.shake,
		ControlMode:   in.ControlMode,
		AutoFire:      in.AutoFire,
		TiltX:         in.TiltX,
		TiltY:         in.TiltY,
		TouchTarget:   in.Touch,
		GyroTarget:    in.Gyro,
	}
	e.snap.Store(snap)
}

func cloneOrEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return []T{}
	}
	return slices.Clone(s)
}

// BossCount returns the number of bosses on the field.
func (s *Snapshot) BossCount() int {
	n := 0
	for _, en := range s.Enemies {
		if en.Type == EnemyBoss {
			n++
		}
	}
	return n
}
