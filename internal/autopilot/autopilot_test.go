package autopilot

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/vovakirdan/f47-sentinel/internal/core"
	"github.com/vovakirdan/f47-sentinel/internal/games/sentinel"
	"github.com/vovakirdan/f47-sentinel/internal/replay"
	"github.com/vovakirdan/f47-sentinel/internal/storage"
)

func playing(ship core.Vec3) *sentinel.Snapshot {
	return &sentinel.Snapshot{
		Phase:  sentinel.PhasePlaying,
		Player: sentinel.Player{Position: ship, Lives: 3},
	}
}

func TestDecideDodgesBullets(t *testing.T) {
	tests := []struct {
		name      string
		ship      core.Vec3
		bullet    core.Vec3
		wantLeft  bool
		wantRight bool
	}{
		{"bullet on the right", core.V3(0, 0, -10), core.V3(0.5, 0, -8), true, false},
		{"bullet on the left", core.V3(0, 0, -10), core.V3(-0.5, 0, -8), false, true},
		{"pinned to the left wall", core.V3(core.PlayerMinX, 0, -10), core.V3(core.PlayerMinX+0.2, 0, -8), false, true},
		{"pinned to the right wall", core.V3(core.PlayerMaxX, 0, -10), core.V3(core.PlayerMaxX-0.5, 0, -8), true, false},
	}

	p := New()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := playing(tc.ship)
			s.Bullets = []sentinel.Bullet{{Position: tc.bullet}}

			cmd := p.Decide(s)
			if cmd.Left != tc.wantLeft || cmd.Right != tc.wantRight {
				t.Errorf("Decide() = %+v, expected left=%v right=%v", cmd, tc.wantLeft, tc.wantRight)
			}
			if !cmd.Fire {
				t.Error("pilot should keep firing")
			}
		})
	}
}

func TestDecideIgnoresHarmlessBullets(t *testing.T) {
	s := playing(core.V3(0, 0, -12))
	s.Bullets = []sentinel.Bullet{
		{Position: core.V3(0, 0, -9), IsPlayer: true}, // own bullet
		{Position: core.V3(5, 0, -10)},                // far to the side
		{Position: core.V3(0, 0, -14)},                // already behind
		{Position: core.V3(0, 0, 5)},                  // far ahead
	}

	cmd := New().Decide(s)
	if cmd.Left || cmd.Right {
		t.Errorf("Decide() = %+v, expected no dodge", cmd)
	}
}

func TestDecideAimsAtWeakestEnemy(t *testing.T) {
	s := playing(core.V3(0, 0, -12))
	s.Enemies = []sentinel.Enemy{
		{Position: core.V3(-6, 0, 10), HP: 5},
		{Position: core.V3(4, 0, 12), HP: 1},
	}

	cmd := New().Decide(s)
	if !cmd.Right || cmd.Left {
		t.Errorf("Decide() = %+v, expected to steer right", cmd)
	}
}

func TestDecideChasesPickups(t *testing.T) {
	s := playing(core.V3(0, 0, -12))
	s.PowerUps = []sentinel.PowerUp{{Position: core.V3(-2, 0, -9)}}

	cmd := New().Decide(s)
	if !cmd.Left || !cmd.Forward {
		t.Errorf("Decide() = %+v, expected left and forward", cmd)
	}
}

func TestCommandKeys(t *testing.T) {
	keys := Command{Left: true, Forward: true, Fire: true}.Keys()
	expected := []string{core.KeyArrowLeft, core.KeyArrowDown, core.KeyFire}
	if !slices.Equal(keys, expected) {
		t.Errorf("Keys() = %v, expected %v", keys, expected)
	}
	if len(Command{}.Keys()) != 0 {
		t.Error("empty command should hold no keys")
	}
}

func TestDecideOutsidePlay(t *testing.T) {
	cmd := New().Decide(&sentinel.Snapshot{Phase: sentinel.PhasePaused})
	if cmd.Left || cmd.Right || cmd.Forward || cmd.Back {
		t.Errorf("Decide() = %+v, expected no steering while paused", cmd)
	}
	if cmd = New().Decide(nil); cmd.Left || cmd.Right {
		t.Error("nil snapshot should not steer")
	}
}

func newEngine(seed int64) *sentinel.Engine {
	return sentinel.New(sentinel.WithSeed(seed), sentinel.WithScores(storage.NewScores(storage.NewMemoryStore())))
}

func TestFlyDuration(t *testing.T) {
	e := newEngine(4)
	e.StartGame()

	ticks := 0
	s, err := Fly(context.Background(), e, New(), Options{
		DT:       1.0 / 32,
		Duration: 10,
		OnTick:   func(*sentinel.Snapshot) { ticks++ },
	})
	if err != nil {
		t.Fatalf("Fly() error: %v", err)
	}
	if s.Phase != sentinel.PhaseGameOver && ticks != 320 {
		t.Errorf("ticks = %d, expected 320", ticks)
	}
	if s.TotalKills == 0 {
		t.Error("pilot should kill something in ten seconds")
	}
}

func TestFlyRequiresRun(t *testing.T) {
	e := newEngine(1)
	if _, err := Fly(context.Background(), e, New(), Options{}); !errors.Is(err, ErrNotRunning) {
		t.Errorf("Fly() error = %v, expected ErrNotRunning", err)
	}
}

func TestFlyHonorsContext(t *testing.T) {
	e := newEngine(1)
	e.StartGame()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Fly(ctx, e, New(), Options{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Fly() error = %v, expected context.Canceled", err)
	}
}

func TestRecordedFlightReplays(t *testing.T) {
	e := newEngine(21)
	rec := replay.NewRecorder(e)

	if _, err := Fly(context.Background(), e, New(), Options{DT: 1.0 / 30, Duration: 60, Step: rec.Update}); err != nil {
		t.Fatalf("Fly() error: %v", err)
	}
	if err := replay.Verify(context.Background(), rec.Finish()); err != nil {
		t.Errorf("autopilot flight did not replay: %v", err)
	}
}
