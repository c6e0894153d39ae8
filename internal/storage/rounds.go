package storage

import (
	"fmt"
	"time"
)

// RoundEntry is one judged target.
type RoundEntry struct {
	ID        int64
	GameID    string
	Target    string
	Entered   string // dot/dash code as keyed in
	Hit       bool
	CreatedAt time.Time
}

// CharacterStats summarizes how well a target character is known.
type CharacterStats struct {
	Target   string
	Attempts int
	Hits     int
}

// Accuracy returns hits over attempts in [0, 1].
func (c CharacterStats) Accuracy() float64 {
	if c.Attempts == 0 {
		return 0
	}
	return float64(c.Hits) / float64(c.Attempts)
}

// SaveRound records a judged round.
func (s *Store) SaveRound(gameID, target, entered string, hit bool) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO rounds (game_id, target, entered, hit) VALUES (?, ?, ?, ?)",
		gameID, target, entered, hit,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// CharacterStats returns per-target accuracy for gameID, weakest first.
// An empty gameID aggregates every mode.
func (s *Store) CharacterStats(gameID string) ([]CharacterStats, error) {
	query := `SELECT target, COUNT(*), SUM(hit) FROM rounds`
	args := []any{}
	if gameID != "" {
		query += ` WHERE game_id = ?`
		args = append(args, gameID)
	}
	query += ` GROUP BY target
		 ORDER BY CAST(SUM(hit) AS REAL) / COUNT(*) ASC, COUNT(*) DESC, target ASC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query character stats: %w", err)
	}
	defer rows.Close()

	var stats []CharacterStats
	for rows.Next() {
		var c CharacterStats
		if err := rows.Scan(&c.Target, &c.Attempts, &c.Hits); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats = append(stats, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// RecentRounds returns the latest rounds for gameID, newest first.
func (s *Store) RecentRounds(gameID string, limit int) ([]RoundEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, target, entered, hit, created_at
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var entries []RoundEntry
	for rows.Next() {
		var e RoundEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Target, &e.Entered, &e.Hit, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}
