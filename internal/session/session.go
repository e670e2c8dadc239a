// Package session ties one parsed outline to its difficulty setting and
// recall state, and manages the persisted collection of such sessions.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/sidmehta/remap/internal/mask"
	"github.com/sidmehta/remap/internal/outline"
	"github.com/sidmehta/remap/internal/recall"
)

// Phase tracks where a session sits in its lifecycle.
type Phase int

const (
	PhaseDraft     Phase = iota // parsed, not yet persisted
	PhaseActive                 // open for study, may have diverged from disk
	PhasePersisted              // written back into the collection
	PhaseDeleted                // removed from the collection; terminal
)

// Session is one study instance: a parsed outline, the chosen difficulty,
// and the per-node recall overlay. A session owns its tree and state map
// exclusively.
type Session struct {
	ID          string
	FileName    string
	Root        *outline.Node
	Difficulty  mask.Difficulty
	States      recall.StateMap
	LastUpdated time.Time

	// Progress caches the latest ComputeProgress result. Every mutation
	// through the methods below recomputes it; read it, don't trust it
	// across direct field writes.
	Progress int

	phase Phase
}

// New parses raw outline text and wraps it in a Draft session at the
// default difficulty.
func New(fileName, text string) *Session {
	s := &Session{
		ID:          uuid.NewString(),
		FileName:    fileName,
		Root:        outline.Parse(text),
		Difficulty:  mask.Basic,
		States:      recall.StateMap{},
		LastUpdated: time.Now(),
		phase:       PhaseDraft,
	}
	s.Progress = ComputeProgress(s.Root, s.Difficulty, s.States)
	return s
}

// Snapshot is the persisted shape of a session, used to rebuild one from
// storage.
type Snapshot struct {
	ID          string
	FileName    string
	Root        *outline.Node
	Difficulty  mask.Difficulty
	States      recall.StateMap
	LastUpdated time.Time
	Progress    int
}

// Restore rebuilds a Persisted session from its stored snapshot. Nothing
// is reparsed; the stored tree is the tree.
func Restore(snap Snapshot) *Session {
	states := snap.States
	if states == nil {
		states = recall.StateMap{}
	}
	return &Session{
		ID:          snap.ID,
		FileName:    snap.FileName,
		Root:        snap.Root,
		Difficulty:  snap.Difficulty,
		States:      states,
		LastUpdated: snap.LastUpdated,
		Progress:    snap.Progress,
		phase:       PhasePersisted,
	}
}

// Phase returns the session's lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Activate opens the session for study.
func (s *Session) Activate() { s.phase = PhaseActive }

// touch stamps the session and refreshes the cached progress. Called after
// every state-affecting mutation.
func (s *Session) touch() {
	s.LastUpdated = time.Now()
	s.Progress = ComputeProgress(s.Root, s.Difficulty, s.States)
}

// SetDifficulty switches the tier. Solved nodes stay solved; only the set
// of nodes newly subject to masking changes.
func (s *Session) SetDifficulty(d mask.Difficulty) {
	s.Difficulty = d
	s.touch()
}

// ApplyState merges a patch into one node's recall state.
func (s *Session) ApplyState(nodeID string, p recall.Patch) {
	s.States = s.States.Apply(nodeID, p)
	s.touch()
}

// CheckAnswer verifies input against the node's true label. On a match the
// node is marked solved and true is returned; on a mismatch nothing is
// mutated and false is returned — the transient error display is the
// caller's concern.
func (s *Session) CheckAnswer(nodeID, input string) bool {
	n := s.Root.Find(nodeID)
	if n == nil || !recall.Check(input, n.Text) {
		return false
	}
	s.States = s.States.MarkSolved(nodeID)
	s.touch()
	return true
}

// ToggleStar flips the node's review star.
func (s *Session) ToggleStar(nodeID string) {
	s.States = s.States.ToggleStarred(nodeID)
	s.touch()
}

// ToggleCollapse flips the node's fold flag. Collapsing a leaf is a
// permitted no-op at this layer; the UI hides the control for leaves.
func (s *Session) ToggleCollapse(nodeID string) {
	s.States = s.States.ToggleCollapsed(nodeID)
	s.touch()
}

// AddHint reveals one more hint for the node and returns the new count.
func (s *Session) AddHint(nodeID string) int {
	s.States = s.States.AddHint(nodeID)
	s.touch()
	return s.States.Get(nodeID).Hints
}

// ResetProgress forgets every node's state at once and drives progress
// back to zero. Distinct from per-node updates by design.
func (s *Session) ResetProgress() {
	s.States = recall.Reset()
	s.touch()
}
