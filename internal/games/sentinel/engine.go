// Package sentinel implements the F47 Sentinel simulation: a top-down
// arcade shooter advanced by fixed ticks and read through immutable snapshots.
package sentinel

import (
	"io"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/f47-sentinel/internal/config"
	"github.com/vovakirdan/f47-sentinel/internal/core"
	"github.com/vovakirdan/f47-sentinel/internal/storage"
)

// ScoreKeeper is the persistence boundary used for scores.
// *storage.Scores satisfies it.
type ScoreKeeper interface {
	Leaderboard() []storage.Entry
	Add(entry storage.Entry) []storage.Entry
	HighScore() int
	SetHighScore(score int) (best int)
	RecordRun(run storage.RunRecord)
}

// Input is everything a tick reads from the outside world.
type Input struct {
	Keys        core.KeySet
	Touch       *core.Vec3 // absolute drag target, nil when inactive
	Gyro        *core.Vec3 // absolute tilt target, nil when inactive
	AutoFire    bool
	ControlMode core.ControlMode
	TiltX       float64
	TiltY       float64
}

func (in Input) clone() Input {
	out := in
	out.Keys = in.Keys.Clone()
	if in.Touch != nil {
		t := *in.Touch
		out.Touch = &t
	}
	if in.Gyro != nil {
		g := *in.Gyro
		out.Gyro = &g
	}
	return out
}

// state is the run-level simulation state. Only the tick engine writes it.
type state struct {
	phase         Phase
	score         int
	highScore     int
	combo         int
	comboTimer    float64
	level         int
	wave          int
	waveRemaining int
	queue         []SpawnEntry
	spawnTimer    float64
	xp            int
	xpLevel       int
	kills         int
	player        Player
	bullets       []Bullet
	enemies       []Enemy
	powerUps      []PowerUp
	explosions    []Explosion
	bossWarning   float64
	nukeFlash     float64
	shake         float64
	nextID        uint64
	tick          uint64
	elapsed       float64
}

// Engine owns one simulation context. Multiple engines can coexist.
type Engine struct {
	cfg    config.SentinelConfig
	seed   int64
	rng    *rand.Rand
	scores ScoreKeeper
	logger *log.Logger

	inMu sync.Mutex
	in   Input

	mu sync.Mutex // serializes ticks and lifecycle calls
	st state

	snap atomic.Pointer[Snapshot]
}

// Option configures an Engine.
type Option func(*Engine)

// WithConfig sets the tunables.
func WithConfig(cfg config.SentinelConfig) Option {
	return func(e *Engine) {
		cfg.Normalize()
		e.cfg = cfg
	}
}

// WithSeed fixes the random seed. Runs with equal seeds and inputs are identical.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// WithScores sets the score persistence boundary.
func WithScores(s ScoreKeeper) Option {
	return func(e *Engine) {
		if s != nil {
			e.scores = s
		}
	}
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine in the menu phase.
func New(opts ...Option) *Engine {
	e := &Engine{
		cfg:    config.DefaultSentinelConfig(),
		seed:   time.Now().UnixNano(),
		scores: storage.NewScores(nil),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.rng = rand.New(rand.NewSource(e.seed))

	e.in = Input{
		Keys:        core.KeySet{},
		AutoFire:    e.cfg.Engine.AutoFire,
		ControlMode: core.ControlKeyboard,
	}
	e.st = state{
		phase:     PhaseMenu,
		highScore: e.scores.HighScore(),
		level:     1,
		xpLevel:   1,
		player:    e.newPlayer(),
	}
	e.publish()
	return e
}

// Seed returns the seed the engine was created with.
func (e *Engine) Seed() int64 {
	return e.seed
}

// Config returns the engine configuration.
func (e *Engine) Config() config.SentinelConfig {
	return e.cfg
}

func (e *Engine) newPlayer() Player {
	p := e.cfg.Player
	return Player{
		Position:    core.V3(p.StartX, 0, p.StartZ),
		Speed:       p.Speed,
		BaseSpeed:   p.Speed,
		WeaponLevel: MinWeaponLevel,
		MaxShield:   p.MaxShield,
		Lives:       p.Lives,
		Drones:      []Drone{},
	}
}

func (e *Engine) newID() uint64 {
	e.st.nextID++
	return e.st.nextID
}

// StartGame resets all run-level state and enters the playing phase.
// The high score survives.
func (e *Engine) StartGame() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.st = state{
		phase:     PhasePlaying,
		highScore: e.st.highScore,
		level:     1,
		xpLevel:   1,
		player:    e.newPlayer(),
	}
	e.logger.Info("run started", "seed", e.seed)
	e.publish()
}

// PauseGame suspends a playing run. No-op in any other phase.
func (e *Engine) PauseGame() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.st.phase != PhasePlaying {
		return
	}
	e.st.phase = PhasePaused
	e.publish()
}

// ResumeGame continues a paused run. No-op in any other phase.
func (e *Engine) ResumeGame() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.st.phase != PhasePaused {
		return
	}
	e.st.phase = PhasePlaying
	e.publish()
}

// gameOver ends the run and persists the high score when beaten.
func (e *Engine) gameOver() {
	st := &e.st
	st.phase = PhaseGameOver
	st.bullets = st.bullets[:0]
	st.enemies = st.enemies[:0]
	st.powerUps = st.powerUps[:0]

	if st.score > st.highScore {
		st.highScore = max(st.score, e.scores.SetHighScore(st.score))
	}
	e.scores.RecordRun(storage.RunRecord{
		Score:        st.score,
		Level:        st.level,
		Wave:         st.wave,
		Kills:        st.kills,
		XPLevel:      st.xpLevel,
		Seed:         e.seed,
		DurationSecs: st.elapsed,
	})
	e.logger.Info("game over", "score", st.score, "level", st.level, "wave", st.wave, "kills", st.kills)
}

// SetKey records a key as held or released.
func (e *Engine) SetKey(name string, down bool) {
	e.inMu.Lock()
	defer e.inMu.Unlock()

	if down {
		e.in.Keys[name] = true
	} else {
		delete(e.in.Keys, name)
	}
}

// ReleaseAllKeys clears the key-down set.
func (e *Engine) ReleaseAllKeys() {
	e.inMu.Lock()
	defer e.inMu.Unlock()

	e.in.Keys = core.KeySet{}
}

// SetTouchTarget sets an absolute drag target, clamped to the player interior.
// A non-finite coordinate is ignored and the previous target stays.
func (e *Engine) SetTouchTarget(x, z float64) {
	t := core.V3(x, 0, z)
	if !t.IsFinite() {
		return
	}
	t = core.ClampToPlayer(t)

	e.inMu.Lock()
	defer e.inMu.Unlock()
	e.in.Touch = &t
}

// ClearTouchTarget ends a drag.
func (e *Engine) ClearTouchTarget() {
	e.inMu.Lock()
	defer e.inMu.Unlock()
	e.in.Touch = nil
}

// SetGyroTarget sets an absolute tilt target, clamped to the player interior.
// A non-finite coordinate is ignored and the previous target stays.
func (e *Engine) SetGyroTarget(x, z float64) {
	g := core.V3(x, 0, z)
	if !g.IsFinite() {
		return
	}
	g = core.ClampToPlayer(g)

	e.inMu.Lock()
	defer e.inMu.Unlock()
	e.in.Gyro = &g
}

// ClearGyroTarget stops tilt steering.
func (e *Engine) ClearGyroTarget() {
	e.inMu.Lock()
	defer e.inMu.Unlock()
	e.in.Gyro = nil
}

// SetControlMode records the chosen input device. It does not gate input sources.
func (e *Engine) SetControlMode(mode core.ControlMode) {
	e.inMu.Lock()
	defer e.inMu.Unlock()
	e.in.ControlMode = mode
}

// SetAutoFire toggles continuous fire.
func (e *Engine) SetAutoFire(on bool) {
	e.inMu.Lock()
	defer e.inMu.Unlock()
	e.in.AutoFire = on
}

// SetTilt stores raw device tilt for display. Non-finite readings are ignored.
func (e *Engine) SetTilt(x, y float64) {
	if !core.V3(x, y, 0).IsFinite() {
		return
	}
	e.inMu.Lock()
	defer e.inMu.Unlock()
	e.in.TiltX = x
	e.in.TiltY = y
}

// Input returns a copy of the current input state.
func (e *Engine) Input() Input {
	e.inMu.Lock()
	defer e.inMu.Unlock()
	return e.in.clone()
}

// GetLeaderboard returns the stored top runs, highest first.
func (e *Engine) GetLeaderboard() []storage.Entry {
	return e.scores.Leaderboard()
}

// SaveScore stores the current run under name. Names are sanitized;
// an empty name stores nothing.
func (e *Engine) SaveScore(name string) {
	name = SanitizeName(name)
	if name == "" {
		return
	}

	e.mu.Lock()
	entry := storage.Entry{
		Name:  name,
		Score: e.st.score,
		Level: e.st.level,
		Wave:  e.st.wave,
	}
	e.mu.Unlock()

	e.scores.Add(entry)
}

// Snapshot returns the state committed by the last tick or lifecycle call.
// The returned value is shared and must not be modified.
func (e *Engine) Snapshot() *Snapshot {
	return e.snap.Load()
}

// Phase is shorthand for Snapshot().Phase.
func (e *Engine) Phase() Phase {
	return e.Snapshot().Phase
}
