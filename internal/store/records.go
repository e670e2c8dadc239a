package store

import (
	"time"

	"github.com/sidmehta/remap/internal/mask"
	"github.com/sidmehta/remap/internal/outline"
	"github.com/sidmehta/remap/internal/recall"
	"github.com/sidmehta/remap/internal/session"
)

// sessionRecord is the serialized form of one session. The tree and state
// types carry their own JSON tags, so the record is a thin envelope.
type sessionRecord struct {
	ID          string                      `json:"id"`
	FileName    string                      `json:"fileName"`
	Data        *outline.Node               `json:"data"`
	Difficulty  int                         `json:"difficulty"`
	NodeStates  map[string]recall.NodeState `json:"nodeStates"`
	LastUpdated time.Time                   `json:"lastUpdated"`
	Progress    int                         `json:"progress"`
}

func toRecord(s *session.Session) sessionRecord {
	return sessionRecord{
		ID:          s.ID,
		FileName:    s.FileName,
		Data:        s.Root,
		Difficulty:  s.Difficulty.Int(),
		NodeStates:  s.States,
		LastUpdated: s.LastUpdated,
		Progress:    s.Progress,
	}
}

func fromRecord(r sessionRecord) *session.Session {
	root := r.Data
	if root == nil {
		root = outline.Parse("")
	}
	return session.Restore(session.Snapshot{
		ID:          r.ID,
		FileName:    r.FileName,
		Root:        root,
		Difficulty:  mask.FromInt(r.Difficulty),
		States:      recall.StateMap(r.NodeStates),
		LastUpdated: r.LastUpdated,
		Progress:    r.Progress,
	})
}
