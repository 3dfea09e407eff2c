package replay

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/f47-sentinel/internal/core"
	"github.com/vovakirdan/f47-sentinel/internal/games/sentinel"
	"github.com/vovakirdan/f47-sentinel/internal/storage"
)

const testDT = 1.0 / 60.0

// recordScripted plays a short scripted run exercising every input source.
func recordScripted(t *testing.T, seed int64, frames int) (*Recording, *sentinel.Snapshot) {
	t.Helper()
	e := sentinel.New(sentinel.WithSeed(seed), sentinel.WithScores(storage.NewScores(storage.NewMemoryStore())))
	r := NewRecorder(e)

	for i := range frames {
		switch {
		case i == 60:
			e.SetKey(core.KeyArrowLeft, true)
		case i == 200:
			e.SetKey(core.KeyArrowLeft, false)
			e.SetTouchTarget(4, -8)
		case i == 400:
			e.ClearTouchTarget()
			e.SetGyroTarget(-3, -13)
		case i == 600:
			e.ClearGyroTarget()
			e.SetAutoFire(false)
			e.SetKey(core.KeyFire, true)
		}
		r.Update(testDT)
	}
	return r.Finish(), e.Snapshot()
}

func TestPlayReproducesRun(t *testing.T) {
	rec, live := recordScripted(t, 11, 1500)

	replayed, err := Play(context.Background(), rec, nil)
	if err != nil {
		t.Fatalf("Play() error: %v", err)
	}
	if SummaryOf(replayed) != SummaryOf(live) {
		t.Errorf("replay diverged:\nlive     %+v\nreplayed %+v", SummaryOf(live), SummaryOf(replayed))
	}
	if !reflect.DeepEqual(replayed.Enemies, live.Enemies) {
		t.Error("enemy field diverged")
	}
	if err := Verify(context.Background(), rec); err != nil {
		t.Errorf("Verify() error: %v", err)
	}
}

func TestEncodeDecodeReplay(t *testing.T) {
	rec, _ := recordScripted(t, 5, 900)

	var buf bytes.Buffer
	if err := Encode(&buf, rec); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if decoded.Seed != 5 || len(decoded.Frames) != 900 {
		t.Fatalf("decoded seed %d frames %d", decoded.Seed, len(decoded.Frames))
	}
	if decoded.Config != rec.Config {
		t.Error("config did not survive encoding")
	}
	if err := Verify(context.Background(), decoded); err != nil {
		t.Errorf("decoded recording does not verify: %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	rec, _ := recordScripted(t, 3, 300)
	path := filepath.Join(t.TempDir(), "runs", "first.f47")

	if err := Save(path, rec); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Final != rec.Final {
		t.Errorf("final summary = %+v, expected %+v", loaded.Final, rec.Final)
	}
	if d := loaded.Duration().Seconds(); d < 4.99 || d > 5.01 {
		t.Errorf("Duration() = %fs, expected 5s", d)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.f47")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestDecodeRejectsOtherVersions(t *testing.T) {
	data, err := msgpack.Marshal(&Recording{Version: FormatVersion + 1})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	_, err = Decode(bytes.NewReader(data))
	if !errors.Is(err, ErrVersion) {
		t.Errorf("Decode() error = %v, expected ErrVersion", err)
	}
}

func TestVerifyDetectsTampering(t *testing.T) {
	rec, _ := recordScripted(t, 8, 600)
	rec.Final.Score += 10

	if err := Verify(context.Background(), rec); !errors.Is(err, ErrMismatch) {
		t.Errorf("Verify() error = %v, expected ErrMismatch", err)
	}
}

func TestPlayHonorsContext(t *testing.T) {
	rec, _ := recordScripted(t, 1, 600)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Play(ctx, rec, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Play() error = %v, expected context.Canceled", err)
	}
}

func TestPlayCallsOnFrame(t *testing.T) {
	rec, _ := recordScripted(t, 2, 120)

	calls := 0
	_, err := Play(context.Background(), rec, func(i int, s *sentinel.Snapshot) {
		if i != calls {
			t.Fatalf("frame index %d, expected %d", i, calls)
		}
		calls++
	})
	if err != nil {
		t.Fatalf("Play() error: %v", err)
	}
	if calls != 120 {
		t.Errorf("onFrame called %d times, expected 120", calls)
	}
}
