package study

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/sidmehta/remap/internal/mask"
	"github.com/sidmehta/remap/internal/outline"
	"github.com/sidmehta/remap/internal/router"
	"github.com/sidmehta/remap/internal/screen"
	"github.com/sidmehta/remap/internal/session"
	"github.com/sidmehta/remap/internal/store"
	"github.com/sidmehta/remap/internal/ui/components"
	"github.com/sidmehta/remap/internal/ui/layout"
)

// wrongFlashDuration is how long the wrong-answer marker stays on screen.
const wrongFlashDuration = 500 * time.Millisecond

// StudyScreen runs a recall session over the active outline: it renders
// the tree with masked labels and checks typed answers against them.
type StudyScreen struct {
	manager *session.Manager
	events  store.EventRepo
	sess    *session.Session

	// visible is the flattened tree in render order, honoring collapsed
	// branches and the star filter. cursor indexes into it.
	visible []*outline.Node
	cursor  int

	input      components.TextInput
	answering  bool
	wrongFlash bool

	starOnly     bool
	confirmReset bool
	errMsg       string
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)
var _ screen.ProgressProvider = (*StudyScreen)(nil)

// New creates a StudyScreen over the manager's active session.
func New(manager *session.Manager, events store.EventRepo) *StudyScreen {
	s := &StudyScreen{
		manager: manager,
		events:  events,
		sess:    manager.Active(),
	}
	s.refreshVisible()
	return s
}

func (s *StudyScreen) Init() tea.Cmd {
	return nil
}

func (s *StudyScreen) Title() string {
	if s.sess == nil {
		return "Study"
	}
	return s.sess.FileName
}

func (s *StudyScreen) HeaderProgress() int {
	if s.sess == nil {
		return -1
	}
	return s.sess.Progress
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	if s.confirmReset {
		return []layout.KeyHint{
			{Key: "y", Description: "Reset"},
			{Key: "n", Description: "Keep"},
		}
	}
	if s.answering {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Answer"},
		{Key: "h", Description: "Hint"},
		{Key: "s", Description: "Star"},
		{Key: "c", Description: "Fold"},
		{Key: "f", Description: "★ only"},
		{Key: "1-3", Description: "Level"},
		{Key: "r", Description: "Reset"},
		{Key: "Esc", Description: "Save"},
	}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.sess == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch msg := msg.(type) {
	case wrongFlashClearMsg:
		s.wrongFlash = false
		s.input.Reset()
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.answering {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *StudyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.confirmReset {
		switch msg.String() {
		case "y":
			s.confirmReset = false
			s.sess.ResetProgress()
			s.starOnly = false
			s.refreshVisible()
		case "n", "esc":
			s.confirmReset = false
		}
		return s, nil
	}

	if s.answering {
		return s.handleAnswerKey(msg)
	}

	switch msg.String() {
	case "esc":
		if err := s.manager.CloseActive(context.Background()); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.visible)-1 {
			s.cursor++
		}

	case "enter":
		node := s.current()
		if node != nil && s.hidden(node) {
			s.answering = true
			s.input = components.NewTextInput("recall this label", 0)
			return s, s.input.Init()
		}

	case "h":
		node := s.current()
		if node != nil && s.hidden(node) {
			count := s.sess.AddHint(node.ID)
			if s.events != nil {
				_ = s.events.AppendHint(context.Background(), store.HintEventData{
					SessionID: s.sess.ID,
					FileName:  s.sess.FileName,
					NodeID:    node.ID,
					HintCount: count,
				})
			}
		}

	case "s":
		if node := s.current(); node != nil {
			s.sess.ToggleStar(node.ID)
			if s.starOnly {
				s.refreshVisible()
			}
		}

	case "c":
		node := s.current()
		if node != nil && len(node.Children) > 0 {
			s.sess.ToggleCollapse(node.ID)
			s.refreshVisible()
		}

	case "f":
		s.starOnly = !s.starOnly
		s.refreshVisible()

	case "1":
		s.sess.SetDifficulty(mask.Basic)
	case "2":
		s.sess.SetDifficulty(mask.Intermediate)
	case "3":
		s.sess.SetDifficulty(mask.Master)

	case "r":
		s.confirmReset = true
	}
	return s, nil
}

func (s *StudyScreen) handleAnswerKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.answering = false
		s.wrongFlash = false
		s.input.Reset()
		return s, nil

	case "enter":
		node := s.current()
		if node == nil {
			s.answering = false
			return s, nil
		}
		correct := s.sess.CheckAnswer(node.ID, s.input.Value())
		if s.events != nil {
			_ = s.events.AppendAnswer(context.Background(), store.AnswerEventData{
				SessionID: s.sess.ID,
				FileName:  s.sess.FileName,
				NodeID:    node.ID,
				NodeText:  node.Text,
				Input:     s.input.Value(),
				Correct:   correct,
			})
		}
		if correct {
			s.answering = false
			s.input.Reset()
			return s, nil
		}
		s.input.Submit(false)
		s.wrongFlash = true
		return s, tea.Tick(wrongFlashDuration, func(time.Time) tea.Msg {
			return wrongFlashClearMsg{}
		})
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// current returns the node under the cursor, or nil when the list is empty.
func (s *StudyScreen) current() *outline.Node {
	if s.cursor < 0 || s.cursor >= len(s.visible) {
		return nil
	}
	return s.visible[s.cursor]
}

// hidden reports whether the node's label is currently concealed.
func (s *StudyScreen) hidden(n *outline.Node) bool {
	return mask.Hidden(n, s.sess.Difficulty, s.sess.States.Get(n.ID).Solved)
}

// refreshVisible rebuilds the flattened render list. Collapsed branches
// contribute only their own node; with the star filter on, a branch is
// kept only while a starred node is reachable below it. The root always
// shows.
func (s *StudyScreen) refreshVisible() {
	s.visible = s.visible[:0]

	var walk func(n *outline.Node)
	walk = func(n *outline.Node) {
		if s.starOnly && n.Level > 0 && !session.HasStarredDescendant(n, s.sess.States) {
			return
		}
		s.visible = append(s.visible, n)
		if s.sess.States.Get(n.ID).Collapsed {
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(s.sess.Root)

	if s.cursor >= len(s.visible) {
		s.cursor = len(s.visible) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}
