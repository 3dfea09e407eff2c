// Package replay records the input a sentinel engine reads on every tick and
// re-simulates recorded runs. Engines are deterministic for a seed, so a
// recording of (seed, config, frames) reproduces the run exactly.
package replay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/f47-sentinel/internal/config"
	"github.com/vovakirdan/f47-sentinel/internal/core"
	"github.com/vovakirdan/f47-sentinel/internal/games/sentinel"
	"github.com/vovakirdan/f47-sentinel/internal/storage"
)

// FormatVersion is bumped whenever the encoded layout changes.
const FormatVersion = 1

var (
	// ErrVersion is returned when decoding a recording of another format version.
	ErrVersion = errors.New("replay: unsupported format version")
	// ErrMismatch is returned by Verify when a re-simulation diverges.
	ErrMismatch = errors.New("replay: run diverged from recording")
)

// Frame is the input state read by one tick, followed by its delta.
type Frame struct {
	DT       float64    `msgpack:"dt"`
	Keys     []string   `msgpack:"keys,omitempty"`
	Touch    *core.Vec3 `msgpack:"touch,omitempty"`
	Gyro     *core.Vec3 `msgpack:"gyro,omitempty"`
	AutoFire bool       `msgpack:"auto_fire"`
}

// Summary is the outcome a replay must reproduce.
type Summary struct {
	Tick     uint64         `msgpack:"tick"`
	Phase    sentinel.Phase `msgpack:"phase"`
	Score    int            `msgpack:"score"`
	Kills    int            `msgpack:"kills"`
	Level    int            `msgpack:"level"`
	Wave     int            `msgpack:"wave"`
	XPLevel  int            `msgpack:"xp_level"`
	Lives    int            `msgpack:"lives"`
	Position core.Vec3      `msgpack:"position"`
}

// SummaryOf extracts the comparable outcome of a snapshot.
func SummaryOf(s *sentinel.Snapshot) Summary {
	return Summary{
		Tick:     s.Tick,
		Phase:    s.Phase,
		Score:    s.Score,
		Kills:    s.TotalKills,
		Level:    s.Level,
		Wave:     s.Wave,
		XPLevel:  s.XPLevel,
		Lives:    s.Player.Lives,
		Position: s.Player.Position,
	}
}

// Recording is one encoded run.
type Recording struct {
	Version   int                   `msgpack:"version"`
	Seed      int64                 `msgpack:"seed"`
	Config    config.SentinelConfig `msgpack:"config"`
	CreatedAt time.Time             `msgpack:"created_at"`
	Frames    []Frame               `msgpack:"frames"`
	Final     Summary               `msgpack:"final"`
}

// Duration returns the simulated time covered by the frames.
func (r *Recording) Duration() time.Duration {
	total := 0.0
	for _, f := range r.Frames {
		total += f.DT
	}
	return time.Duration(total * float64(time.Second))
}

// Recorder captures frames from a live engine.
type Recorder struct {
	engine *sentinel.Engine
	rec    Recording
}

// NewRecorder starts a run on e and records it. e must be freshly created:
// a previous run would have advanced its random source.
func NewRecorder(e *sentinel.Engine) *Recorder {
	e.StartGame()
	return &Recorder{
		engine: e,
		rec: Recording{
			Version:   FormatVersion,
			Seed:      e.Seed(),
			Config:    e.Config(),
			CreatedAt: time.Now().UTC(),
		},
	}
}

// Update captures the engine's current input and advances it by dt.
func (r *Recorder) Update(dt float64) {
	in := r.engine.Input()
	f := Frame{
		DT:       dt,
		Keys:     in.Keys.Names(),
		Touch:    in.Touch,
		Gyro:     in.Gyro,
		AutoFire: in.AutoFire,
	}
	if len(f.Keys) == 0 {
		f.Keys = nil
	}
	r.rec.Frames = append(r.rec.Frames, f)
	r.engine.Update(dt)
}

// Frames returns the number of captured frames.
func (r *Recorder) Frames() int {
	return len(r.rec.Frames)
}

// Finish seals the recording with the engine's current outcome.
func (r *Recorder) Finish() *Recording {
	rec := r.rec
	rec.Frames = append([]Frame(nil), r.rec.Frames...)
	rec.Final = SummaryOf(r.engine.Snapshot())
	return &rec
}

// apply loads a frame's input into e.
func apply(e *sentinel.Engine, f Frame) {
	e.ReleaseAllKeys()
	for _, k := range f.Keys {
		e.SetKey(k, true)
	}
	if f.Touch != nil {
		e.SetTouchTarget(f.Touch.X, f.Touch.Z)
	} else {
		e.ClearTouchTarget()
	}
	if f.Gyro != nil {
		e.SetGyroTarget(f.Gyro.X, f.Gyro.Z)
	} else {
		e.ClearGyroTarget()
	}
	e.SetAutoFire(f.AutoFire)
}

// Play re-simulates rec on a fresh engine and returns the final snapshot.
// onFrame, if not nil, is called after every tick.
// Scores are never persisted during playback.
func Play(ctx context.Context, rec *Recording, onFrame func(i int, s *sentinel.Snapshot)) (*sentinel.Snapshot, error) {
	e := sentinel.New(
		sentinel.WithConfig(rec.Config),
		sentinel.WithSeed(rec.Seed),
		sentinel.WithScores(storage.NewScores(nil)),
	)
	e.StartGame()

	for i, f := range rec.Frames {
		if i%256 == 0 {
			if err := ctx.Err(); err != nil {
				return e.Snapshot(), err
			}
		}
		apply(e, f)
		e.Update(f.DT)
		if onFrame != nil {
			onFrame(i, e.Snapshot())
		}
	}
	return e.Snapshot(), nil
}

// Verify re-simulates rec and checks the outcome against the recorded summary.
func Verify(ctx context.Context, rec *Recording) error {
	final, err := Play(ctx, rec, nil)
	if err != nil {
		return err
	}
	if got := SummaryOf(final); got != rec.Final {
		return fmt.Errorf("%w: recorded %+v, replayed %+v", ErrMismatch, rec.Final, got)
	}
	return nil
}

// Encode writes rec to w in msgpack.
func Encode(w io.Writer, rec *Recording) error {
	if err := msgpack.NewEncoder(w).Encode(rec); err != nil {
		return fmt.Errorf("replay: encode: %w", err)
	}
	return nil
}

// Decode reads a recording from r.
func Decode(r io.Reader) (*Recording, error) {
	var rec Recording
	if err := msgpack.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("replay: decode: %w", err)
	}
	if rec.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrVersion, rec.Version)
	}
	return &rec, nil
}

// Save writes rec to path, creating parent directories.
func Save(path string, rec *Recording) error {
	path, err := config.ExpandHome(path)
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("replay: create directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("replay: create %s: %w", path, err)
	}
	if err := Encode(f, rec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a recording from path.
func Load(path string) (*Recording, error) {
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: open: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
