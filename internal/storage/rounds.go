package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Round outcomes as stored in the rounds table.
const (
	OutcomeWon  = "won"
	OutcomeLost = "lost"
)

// RoundRecord is one finished round. Rounds played in the same session share
// a RunID.
type RoundRecord struct {
	ID        int64
	RunID     uuid.UUID
	GameID    string
	Level     int
	Outcome   string
	Score     int
	CreatedAt time.Time
}

// NewRunID returns an identifier for a play session.
func NewRunID() uuid.UUID {
	return uuid.New()
}

// SaveRound appends a finished round to the log.
func (s *Store) SaveRound(r RoundRecord) (int64, error) {
	if r.RunID == uuid.Nil {
		return 0, fmt.Errorf("storage: round for %s has no run id", r.GameID)
	}
	if r.Outcome != OutcomeWon && r.Outcome != OutcomeLost {
		return 0, fmt.Errorf("storage: invalid round outcome %q", r.Outcome)
	}

	return s.insert("round",
		"INSERT INTO rounds (run_id, game_id, level, outcome, score) VALUES (?, ?, ?, ?, ?)",
		r.RunID.String(), r.GameID, r.Level, r.Outcome, r.Score,
	)
}

// RecentRounds returns the latest logged rounds for a game, newest first.
func (s *Store) RecentRounds(gameID string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRounds(
		`SELECT id, run_id, game_id, level, outcome, score, created_at
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
}

// RunRounds returns every round of one play session in order.
func (s *Store) RunRounds(runID uuid.UUID) ([]RoundRecord, error) {
	return s.queryRounds(
		`SELECT id, run_id, game_id, level, outcome, score, created_at
		 FROM rounds
		 WHERE run_id = ?
		 ORDER BY id`,
		runID.String(),
	)
}

func (s *Store) queryRounds(query string, args ...any) ([]RoundRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var records []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var runID string
		var createdAt any
		if err := rows.Scan(&r.ID, &runID, &r.GameID, &r.Level, &r.Outcome, &r.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if r.RunID, err = uuid.Parse(runID); err != nil {
			return nil, fmt.Errorf("storage: corrupt run id %q: %w", runID, err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}
