package session

import (
	"context"
	"fmt"
)

// Repo persists the session collection. Implementations store the whole
// collection as one unit; the manager is the only caller, and the core
// parser/mask/progress functions never see it.
type Repo interface {
	// LoadAll returns every stored session, most recently studied first.
	LoadAll(ctx context.Context) ([]*Session, error)

	// SaveAll replaces the stored collection.
	SaveAll(ctx context.Context, sessions []*Session) error

	// DeleteByID removes one session from the stored collection. Unknown
	// IDs are a no-op.
	DeleteByID(ctx context.Context, id string) error
}

// Manager owns the in-memory session collection and the active session.
// All access is single-threaded from the UI event loop, so each method is
// one atomic step: mutate the copy, write the whole collection back.
type Manager struct {
	repo     Repo
	sessions []*Session // most-recent-first
	active   *Session
}

// NewManager creates a Manager over the given repository.
func NewManager(repo Repo) *Manager {
	return &Manager{repo: repo}
}

// Load pulls the persisted collection into memory.
func (m *Manager) Load(ctx context.Context) error {
	sessions, err := m.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load sessions: %w", err)
	}
	m.sessions = sessions
	return nil
}

// Sessions returns the in-memory collection, most recently studied first.
func (m *Manager) Sessions() []*Session {
	return m.sessions
}

// Active returns the currently open session, or nil.
func (m *Manager) Active() *Session {
	return m.active
}

// StartNew parses text into a fresh session and opens it for study. The
// session joins the collection only when CloseActive writes it back.
func (m *Manager) StartNew(fileName, text string) *Session {
	s := New(fileName, text)
	s.Activate()
	m.active = s
	return s
}

// Open re-opens a stored session for study using its persisted snapshot.
// Returns nil if the ID is not in the collection.
func (m *Manager) Open(id string) *Session {
	for _, s := range m.sessions {
		if s.ID == id {
			s.Activate()
			m.active = s
			return s
		}
	}
	return nil
}

// CloseActive writes the active session over its slot in the collection —
// inserting if absent — moves it to the front, and persists the whole
// collection. The session becomes Persisted and the active pointer clears.
func (m *Manager) CloseActive(ctx context.Context) error {
	if m.active == nil {
		return nil
	}

	kept := make([]*Session, 0, len(m.sessions)+1)
	kept = append(kept, m.active)
	for _, s := range m.sessions {
		if s.ID != m.active.ID {
			kept = append(kept, s)
		}
	}
	m.sessions = kept

	if err := m.repo.SaveAll(ctx, m.sessions); err != nil {
		return fmt.Errorf("persist sessions: %w", err)
	}
	m.active.phase = PhasePersisted
	m.active = nil
	return nil
}

// Delete removes a session from the collection in any phase, including the
// active one, in which case the active pointer clears.
func (m *Manager) Delete(ctx context.Context, id string) error {
	kept := m.sessions[:0]
	var deleted *Session
	for _, s := range m.sessions {
		if s.ID == id {
			deleted = s
			continue
		}
		kept = append(kept, s)
	}
	m.sessions = kept

	if m.active != nil && m.active.ID == id {
		deleted = m.active
		m.active = nil
	}
	if deleted != nil {
		deleted.phase = PhaseDeleted
	}

	if err := m.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteAll wipes the collection, both in memory and on disk.
func (m *Manager) DeleteAll(ctx context.Context) error {
	m.sessions = nil
	m.active = nil
	if err := m.repo.SaveAll(ctx, nil); err != nil {
		return fmt.Errorf("clear sessions: %w", err)
	}
	return nil
}
