// Package autopilot flies a sentinel engine without a human: it reads the
// latest snapshot and drives the engine through its key setters.
package autopilot

import (
	"context"
	"errors"
	"math"

	"github.com/vovakirdan/f47-sentinel/internal/core"
	"github.com/vovakirdan/f47-sentinel/internal/games/sentinel"
)

// Tuning for the dodge and aim heuristics.
const (
	threatLookahead = 4.0 // z distance in front of the ship that is watched
	threatWidth     = 1.4 // lateral distance at which a bullet is a threat
	ramRadius       = 3.0 // enemies this close are dodged like bullets
	aimDeadZone     = 0.3
	pickupReach     = 5.0 // power-ups closer than this are chased
	wallMargin      = 0.5
	homeZ           = -12.0
)

// Command is one steering decision.
type Command struct {
	Left, Right bool
	Forward     bool // toward the enemy edge (+z)
	Back        bool // away from the enemy edge (-z)
	Fire        bool
}

// Keys converts the command to engine key names.
func (c Command) Keys() []string {
	var keys []string
	if c.Left {
		keys = append(keys, core.KeyArrowLeft)
	}
	if c.Right {
		keys = append(keys, core.KeyArrowRight)
	}
	// ArrowUp moves toward -z
	if c.Back {
		keys = append(keys, core.KeyArrowUp)
	}
	if c.Forward {
		keys = append(keys, core.KeyArrowDown)
	}
	if c.Fire {
		keys = append(keys, core.KeyFire)
	}
	return keys
}

// Pilot is a stateless dodge-and-aim policy.
type Pilot struct{}

// New creates a pilot.
func New() *Pilot {
	return &Pilot{}
}

// Decide picks a command for the given snapshot.
func (p *Pilot) Decide(s *sentinel.Snapshot) Command {
	cmd := Command{Fire: true}
	if s == nil || s.Phase != sentinel.PhasePlaying {
		return cmd
	}
	ship := s.Player.Position

	if threat, ok := nearestThreat(s); ok {
		dodgeLeft := threat.X >= ship.X
		if dodgeLeft && ship.X <= core.PlayerMinX+wallMargin {
			dodgeLeft = false
		} else if !dodgeLeft && ship.X >= core.PlayerMaxX-wallMargin {
			dodgeLeft = true
		}
		cmd.Left = dodgeLeft
		cmd.Right = !dodgeLeft
		cmd.Back = ship.Z > core.PlayerMinZ+wallMargin
		return cmd
	}

	if pu, ok := nearestPickup(s); ok {
		steerX(&cmd, ship.X, pu.X)
		steerZ(&cmd, ship.Z, core.ClampF(pu.Z, core.PlayerMinZ, core.PlayerMaxZ))
		return cmd
	}

	if target, ok := weakestTarget(s); ok {
		steerX(&cmd, ship.X, target.X)
	}
	steerZ(&cmd, ship.Z, homeZ)
	return cmd
}

// Apply decides from e's current snapshot and loads the command into e.
func (p *Pilot) Apply(e *sentinel.Engine) Command {
	cmd := p.Decide(e.Snapshot())
	e.ReleaseAllKeys()
	for _, k := range cmd.Keys() {
		e.SetKey(k, true)
	}
	return cmd
}

func steerX(cmd *Command, from, to float64) {
	switch {
	case to < from-aimDeadZone:
		cmd.Left = true
	case to > from+aimDeadZone:
		cmd.Right = true
	}
}

func steerZ(cmd *Command, from, to float64) {
	switch {
	case to < from-aimDeadZone:
		cmd.Back = true
	case to > from+aimDeadZone:
		cmd.Forward = true
	}
}

// nearestThreat returns the closest hostile bullet or enemy on a collision course.
func nearestThreat(s *sentinel.Snapshot) (core.Vec3, bool) {
	ship := s.Player.Position
	best := math.Inf(1)
	var found core.Vec3

	for _, b := range s.Bullets {
		if b.IsPlayer {
			continue
		}
		dz := b.Position.Z - ship.Z
		if dz < -0.5 || dz > threatLookahead || math.Abs(b.Position.X-ship.X) > threatWidth {
			continue
		}
		if d := core.Distance(b.Position, ship); d < best {
			best, found = d, b.Position
		}
	}
	for _, en := range s.Enemies {
		if d := core.Distance(en.Position, ship); d < ramRadius && d < best {
			best, found = d, en.Position
		}
	}
	return found, !math.IsInf(best, 1)
}

func nearestPickup(s *sentinel.Snapshot) (core.Vec3, bool) {
	ship := s.Player.Position
	best := pickupReach
	var found core.Vec3
	ok := false
	for _, pu := range s.PowerUps {
		if d := core.Distance(pu.Position, ship); d < best {
			best, found, ok = d, pu.Position, true
		}
	}
	return found, ok
}

// weakestTarget prefers the enemy with the fewest hit points, then the closest one.
func weakestTarget(s *sentinel.Snapshot) (core.Vec3, bool) {
	ship := s.Player.Position
	var best *sentinel.Enemy
	bestDist := 0.0
	for i := range s.Enemies {
		en := &s.Enemies[i]
		d := core.Distance(en.Position, ship)
		if best == nil || en.HP < best.HP || (en.HP == best.HP && d < bestDist) {
			best, bestDist = en, d
		}
	}
	if best == nil {
		return core.Vec3{}, false
	}
	return best.Position, true
}

// Options control a headless flight.
type Options struct {
	// DT is the tick length in seconds. Defaults to 1/60.
	DT float64
	// Duration is the simulated flight time in seconds; 0 flies until game over.
	Duration float64
	// Step advances the engine. Defaults to the engine's Update.
	Step func(dt float64)
	// OnTick is called with the snapshot after every tick.
	OnTick func(s *sentinel.Snapshot)
}

// ErrNotRunning is returned by Fly for an engine that has no run in progress.
var ErrNotRunning = errors.New("autopilot: engine is not running")

// Fly steers a running engine every tick until game over, the duration
// elapses or ctx is done, and returns the last snapshot.
func Fly(ctx context.Context, e *sentinel.Engine, p *Pilot, opts Options) (*sentinel.Snapshot, error) {
	if opts.DT <= 0 {
		opts.DT = 1.0 / 60.0
	}
	step := opts.Step
	if step == nil {
		step = e.Update
	}

	elapsed := 0.0
	for i := 0; ; i++ {
		if i%256 == 0 {
			if err := ctx.Err(); err != nil {
				return e.Snapshot(), err
			}
		}
		s := e.Snapshot()
		switch s.Phase {
		case sentinel.PhaseGameOver:
			return s, nil
		case sentinel.PhaseMenu, sentinel.PhasePaused:
			return s, ErrNotRunning
		}
		if opts.Duration > 0 && elapsed >= opts.Duration {
			return s, nil
		}

		p.Apply(e)
		step(opts.DT)
		elapsed += opts.DT

		if opts.OnTick != nil {
			opts.OnTick(e.Snapshot())
		}
	}
}
