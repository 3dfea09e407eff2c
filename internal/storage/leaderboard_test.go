package storage

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func TestLeaderboardEmpty(t *testing.T) {
	s := NewScores(NewMemoryStore())

	board := s.Leaderboard()
	if board == nil || len(board) != 0 {
		t.Errorf("Leaderboard() = %v, expected empty non-nil slice", board)
	}
	if s.HighScore() != 0 {
		t.Errorf("HighScore() = %d, expected 0", s.HighScore())
	}
}

func TestLeaderboardRoundTrip(t *testing.T) {
	s := NewScores(NewMemoryStore(), WithClock(fixedClock))

	s.Add(Entry{Name: "BOB", Score: 300, Level: 1, Wave: 3})
	s.Add(Entry{Name: "ACE", Score: 1500, Level: 2, Wave: 1})
	s.Add(Entry{Name: "CAT", Score: 900, Level: 1, Wave: 5})

	board := s.Leaderboard()
	if len(board) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(board))
	}

	expected := []string{"ACE", "CAT", "BOB"}
	for i, name := range expected {
		if board[i].Name != name {
			t.Errorf("board[%d].Name = %q, expected %q", i, board[i].Name, name)
		}
	}
	if board[0].Score != 1500 || board[0].Level != 2 || board[0].Wave != 1 {
		t.Errorf("board[0] = %+v", board[0])
	}
	if !board[0].Date.Equal(fixedClock()) {
		t.Errorf("board[0].Date = %v, expected %v", board[0].Date, fixedClock())
	}
}

func TestLeaderboardCapped(t *testing.T) {
	s := NewScores(NewMemoryStore())

	for i := 1; i <= 15; i++ {
		s.Add(Entry{Name: fmt.Sprintf("P%02d", i), Score: i * 100})
	}

	board := s.Leaderboard()
	if len(board) != DefaultLeaderboardSize {
		t.Fatalf("Expected %d entries, got %d", DefaultLeaderboardSize, len(board))
	}
	if board[0].Score != 1500 {
		t.Errorf("top score = %d, expected 1500", board[0].Score)
	}
	if board[len(board)-1].Score != 600 {
		t.Errorf("lowest kept score = %d, expected 600", board[len(board)-1].Score)
	}
	for i := 1; i < len(board); i++ {
		if board[i].Score > board[i-1].Score {
			t.Fatalf("board not sorted at %d: %d > %d", i, board[i].Score, board[i-1].Score)
		}
	}
}

func TestLeaderboardTiesKeepInsertionOrder(t *testing.T) {
	s := NewScores(NewMemoryStore(), WithLimit(3))

	s.Add(Entry{Name: "FIRST", Score: 500})
	s.Add(Entry{Name: "SECOND", Score: 500})

	board := s.Leaderboard()
	if board[0].Name != "FIRST" || board[1].Name != "SECOND" {
		t.Errorf("tie order = %q, %q", board[0].Name, board[1].Name)
	}
}

func TestLeaderboardCorruptData(t *testing.T) {
	kv := NewMemoryStore()
	_ = kv.Set(LeaderboardKey, []byte("{not json"))
	_ = kv.Set(HighScoreKey, []byte("lots"))

	s := NewScores(kv)
	if board := s.Leaderboard(); len(board) != 0 {
		t.Errorf("corrupt board should read as empty, got %v", board)
	}
	if s.HighScore() != 0 {
		t.Error("corrupt high score should read as 0")
	}

	// Writing over corrupt data recovers
	s.Add(Entry{Name: "ACE", Score: 10})
	if board := s.Leaderboard(); len(board) != 1 {
		t.Errorf("Expected 1 entry after recovery, got %d", len(board))
	}
}

func TestSetHighScoreNeverLowers(t *testing.T) {
	s := NewScores(NewMemoryStore())

	if best := s.SetHighScore(500); best != 500 {
		t.Errorf("SetHighScore(500) = %d, expected 500", best)
	}
	if best := s.SetHighScore(100); best != 500 {
		t.Errorf("SetHighScore(100) = %d, expected stored best 500", best)
	}
	if s.HighScore() != 500 {
		t.Errorf("HighScore() = %d, expected 500", s.HighScore())
	}
}

func TestSetHighScoreConcurrent(t *testing.T) {
	s := NewScores(NewMemoryStore())

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			s.SetHighScore(score * 10)
		}(i)
	}
	wg.Wait()

	if s.HighScore() != 500 {
		t.Errorf("HighScore() = %d, expected 500", s.HighScore())
	}
}

func TestScoresFailedWritesAreSwallowed(t *testing.T) {
	kv := NewMemoryStore()
	kv.FailWrites = true
	s := NewScores(kv)

	board := s.Add(Entry{Name: "ACE", Score: 10})
	if len(board) != 1 {
		t.Errorf("Add() should still return the merged board, got %d entries", len(board))
	}
	s.SetHighScore(10)

	if len(s.Leaderboard()) != 0 || s.HighScore() != 0 {
		t.Error("failed writes should leave storage unchanged")
	}
}

func TestScoresNilBackend(t *testing.T) {
	s := NewScores(nil)
	s.Add(Entry{Name: "ACE", Score: 10})
	s.SetHighScore(10)
	s.RecordRun(RunRecord{Score: 10})

	if len(s.Leaderboard()) != 0 || s.HighScore() != 0 || s.History() != nil {
		t.Error("nil backend should behave as empty storage")
	}
}

func TestScoresRecordRunSQLite(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	s := NewScores(store)
	s.RecordRun(RunRecord{Name: "ACE", Score: 777, Level: 2, Wave: 4})

	if s.History() == nil {
		t.Fatal("sqlite backend should expose run history")
	}
	stats, err := s.History().RunStats()
	if err != nil {
		t.Fatalf("RunStats() failed: %v", err)
	}
	if stats.Runs != 1 || stats.BestScore != 777 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestMemoryStoreClosed(t *testing.T) {
	m := NewMemoryStore()
	_ = m.Close()

	if err := m.Set("k", nil); err != ErrClosed {
		t.Errorf("Set after Close = %v, expected ErrClosed", err)
	}
	if _, _, err := m.Get("k"); err != ErrClosed {
		t.Errorf("Get after Close = %v, expected ErrClosed", err)
	}
}
