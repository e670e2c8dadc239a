package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"
)

// AnswerEventData records one checked answer.
type AnswerEventData struct {
	SessionID string
	FileName  string
	NodeID    string
	NodeText  string
	Input     string
	Correct   bool
}

// HintEventData records one hint reveal.
type HintEventData struct {
	SessionID string
	FileName  string
	NodeID    string
	HintCount int
}

// FileStats aggregates study activity for one outline file.
type FileStats struct {
	FileName    string
	Attempts    int
	Correct     int
	Hints       int
	LastStudied time.Time
}

// Accuracy returns the fraction of attempts answered correctly.
func (fs FileStats) Accuracy() float64 {
	if fs.Attempts == 0 {
		return 0
	}
	return float64(fs.Correct) / float64(fs.Attempts)
}

// EventRepo provides append-only access to study events and the aggregate
// queries behind `remap stats`.
type EventRepo interface {
	AppendAnswer(ctx context.Context, data AnswerEventData) error
	AppendHint(ctx context.Context, data HintEventData) error
	QueryFileStats(ctx context.Context) ([]FileStats, error)
}

// sequenceCounter hands out one monotonic sequence shared by every event
// type, so hint and answer events interleave in a single global order even
// though they live in separate tables.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO answer_events
			(sequence, timestamp, session_id, file_name, node_id, node_text, input, correct)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, time.Now().UTC(), data.SessionID, data.FileName,
		data.NodeID, data.NodeText, data.Input, data.Correct,
	)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendHint(ctx context.Context, data HintEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO hint_events
			(sequence, timestamp, session_id, file_name, node_id, hint_count)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		seqNum, time.Now().UTC(), data.SessionID, data.FileName,
		data.NodeID, data.HintCount,
	)
	if err != nil {
		return fmt.Errorf("save hint event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryFileStats(ctx context.Context) ([]FileStats, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT a.file_name,
		       COUNT(*) AS attempts,
		       SUM(CASE WHEN a.correct THEN 1 ELSE 0 END) AS correct,
		       COALESCE((SELECT COUNT(*) FROM hint_events h WHERE h.file_name = a.file_name), 0) AS hints,
		       MAX(a.timestamp) AS last_studied
		FROM answer_events a
		GROUP BY a.file_name
		ORDER BY last_studied DESC`)
	if err != nil {
		return nil, fmt.Errorf("query file stats: %w", err)
	}
	defer rows.Close()

	var stats []FileStats
	for rows.Next() {
		var fs FileStats
		if err := rows.Scan(&fs.FileName, &fs.Attempts, &fs.Correct, &fs.Hints, &fs.LastStudied); err != nil {
			return nil, fmt.Errorf("scan file stats: %w", err)
		}
		stats = append(stats, fs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate file stats: %w", err)
	}
	return stats, nil
}
