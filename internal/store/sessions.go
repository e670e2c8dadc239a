package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sidmehta/remap/internal/session"
)

// collectionKey is the fixed blob key the whole session collection lives
// under.
const collectionKey = "sessions"

// sessionRepo implements session.Repo over the blobs table. The collection
// is read and written as one JSON document, most-recent-first.
type sessionRepo struct {
	db *sql.DB
}

func (r *sessionRepo) LoadAll(ctx context.Context) ([]*session.Session, error) {
	var raw []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM blobs WHERE key = ?`, collectionKey,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session blob: %w", err)
	}

	var records []sessionRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		// A corrupt blob must not take the app down. Start over with an
		// empty collection; the next save overwrites the bad data.
		fmt.Fprintln(os.Stderr, "remap: session store corrupt, starting empty:", err)
		return nil, nil
	}

	sessions := make([]*session.Session, 0, len(records))
	for _, rec := range records {
		sessions = append(sessions, fromRecord(rec))
	}
	return sessions, nil
}

func (r *sessionRepo) SaveAll(ctx context.Context, sessions []*session.Session) error {
	records := make([]sessionRecord, 0, len(sessions))
	for _, s := range sessions {
		records = append(records, toRecord(s))
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal sessions: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		collectionKey, raw, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("write session blob: %w", err)
	}
	return nil
}

func (r *sessionRepo) DeleteByID(ctx context.Context, id string) error {
	sessions, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}

	kept := sessions[:0]
	for _, s := range sessions {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(sessions) {
		return nil
	}
	return r.SaveAll(ctx, kept)
}
