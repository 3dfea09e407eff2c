package storage

import (
	"encoding/json"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultLeaderboardSize is the number of entries kept on the board.
const DefaultLeaderboardSize = 10

// Entry is one leaderboard record.
type Entry struct {
	Name  string    `json:"name"`
	Score int       `json:"score"`
	Level int       `json:"level"`
	Wave  int       `json:"wave"`
	Date  time.Time `json:"date"`
}

// Scores is the best-effort score persistence boundary.
// Reads degrade to empty values and writes are dropped when the backend fails;
// failures are logged and never returned.
type Scores struct {
	mu     sync.Mutex // serializes read-modify-write of the board
	kv     KV
	limit  int
	logger *log.Logger
	now    func() time.Time
}

// ScoresOption configures Scores.
type ScoresOption func(*Scores)

// WithLimit sets how many leaderboard entries are kept.
func WithLimit(n int) ScoresOption {
	return func(s *Scores) {
		if n > 0 {
			s.limit = n
		}
	}
}

// WithLogger sets the logger used to report degraded persistence.
func WithLogger(l *log.Logger) ScoresOption {
	return func(s *Scores) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the clock used to date entries.
func WithClock(now func() time.Time) ScoresOption {
	return func(s *Scores) {
		if now != nil {
			s.now = now
		}
	}
}

// NewScores wraps kv. A nil kv behaves as an always-empty store that drops writes.
func NewScores(kv KV, opts ...ScoresOption) *Scores {
	s := &Scores{
		kv:     kv,
		limit:  DefaultLeaderboardSize,
		logger: log.New(io.Discard),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Leaderboard returns the stored entries sorted by score, highest first.
// Absent or corrupt data yields an empty list.
func (s *Scores) Leaderboard() []Entry {
	if s.kv == nil {
		return []Entry{}
	}
	data, ok, err := s.kv.Get(LeaderboardKey)
	if err != nil {
		s.logger.Warn("leaderboard read failed", "err", err)
		return []Entry{}
	}
	if !ok {
		return []Entry{}
	}

	var board []Entry
	if err := json.Unmarshal(data, &board); err != nil {
		s.logger.Warn("leaderboard data corrupt", "err", err)
		return []Entry{}
	}
	sortEntries(board)
	if len(board) > s.limit {
		board = board[:s.limit]
	}
	return board
}

// Add appends entry, keeps the top entries and persists the board.
// The resulting board is returned even when the write fails.
func (s *Scores) Add(entry Entry) []Entry {
	if entry.Date.IsZero() {
		entry.Date = s.now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	board := append(s.Leaderboard(), entry)
	sortEntries(board)
	if len(board) > s.limit {
		board = board[:s.limit]
	}

	if s.kv == nil {
		return board
	}
	data, err := json.Marshal(board)
	if err != nil {
		s.logger.Warn("leaderboard encode failed", "err", err)
		return board
	}
	if err := s.kv.Set(LeaderboardKey, data); err != nil {
		s.logger.Warn("leaderboard write failed", "err", err)
	}
	return board
}

// HighScore returns the persisted best score, or 0.
func (s *Scores) HighScore() int {
	if s.kv == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readHighScore()
}

// readHighScore must be called with s.mu held.
func (s *Scores) readHighScore() int {
	data, ok, err := s.kv.Get(HighScoreKey)
	if err != nil {
		s.logger.Warn("high score read failed", "err", err)
		return 0
	}
	if !ok {
		return 0
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || v < 0 {
		s.logger.Warn("high score data corrupt", "value", string(data))
		return 0
	}
	return v
}

// SetHighScore persists score when it beats the stored best and returns the
// best score after the update. The stored value is never lowered, even when
// several engines share the store.
func (s *Scores) SetHighScore(score int) int {
	if s.kv == nil {
		return score
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	best := s.readHighScore()
	if score <= best {
		return best
	}
	if err := s.kv.Set(HighScoreKey, []byte(strconv.Itoa(score))); err != nil {
		s.logger.Warn("high score write failed", "err", err)
	}
	return score
}

// RecordRun appends run to the history when the backend keeps one.
func (s *Scores) RecordRun(run RunRecord) {
	h := s.History()
	if h == nil {
		return
	}
	if _, err := h.SaveRun(run); err != nil {
		s.logger.Warn("run history write failed", "err", err)
	}
}

// History returns the run history of the backend, or nil.
func (s *Scores) History() RunHistory {
	h, _ := s.kv.(RunHistory)
	return h
}

// sortEntries orders by score descending; ties keep insertion order.
func sortEntries(board []Entry) {
	sort.SliceStable(board, func(i, j int) bool {
		return board[i].Score > board[j].Score
	})
}
