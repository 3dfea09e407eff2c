// Package storage persists the leaderboard, the high score and run history.
// The sqlite backend uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/f47-sentinel/internal/config"
)

// Keys under which the score records live in every backend.
const (
	LeaderboardKey = "f47-leaderboard"
	HighScoreKey   = "f47-highscore"
)

// ErrClosed is returned by backends used after Close.
var ErrClosed = errors.New("storage: store is closed")

// KV is a minimal key-value store. A missing key is reported with ok=false
// and a nil error.
type KV interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
	Close() error
}

// RunHistory is implemented by backends that keep a log of finished runs.
type RunHistory interface {
	SaveRun(run RunRecord) (int64, error)
	RecentRuns(limit int) ([]RunRecord, error)
	RunStats() (*RunStats, error)
}

// OpenBackend opens the backend selected in the storage config.
func OpenBackend(cfg config.StorageConfig) (KV, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return NewMemoryStore(), nil
	case config.BackendGdata:
		g, err := OpenGdata(cfg.AppName)
		if err != nil {
			return nil, err
		}
		return g, nil
	case config.BackendSQLite, "":
		db, err := Open(cfg.Path)
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", cfg.Backend)
	}
}
