package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/sidmehta/remap/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	updates int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPushAndPop(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)

	study := &stubScreen{title: "study"}
	r.Push(study)

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "study" {
		t.Errorf("active = %q, want study", r.Active().Title())
	}
	if !study.initRan {
		t.Error("Init() did not run on pushed screen")
	}

	r.Pop()
	if r.Active().Title() != "home" {
		t.Errorf("active after pop = %q, want home", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("depth after pop at bottom = %d, want 1", r.Depth())
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "library"})

	study := &stubScreen{title: "study"}
	r.Replace(study)

	if r.Depth() != 2 {
		t.Errorf("depth after replace = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "study" {
		t.Errorf("active = %q, want study", r.Active().Title())
	}
	if !study.initRan {
		t.Error("Init() did not run on replacement screen")
	}
}

func TestUpdateNavigationMessages(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	study := &stubScreen{title: "study"}
	r.Update(PushScreenMsg{Screen: study})
	if r.Active().Title() != "study" {
		t.Error("PushScreenMsg not handled")
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "home" {
		t.Error("PopScreenMsg not handled")
	}

	next := &stubScreen{title: "next"}
	r.Update(ReplaceScreenMsg{Screen: next})
	if r.Active().Title() != "next" || r.Depth() != 1 {
		t.Error("ReplaceScreenMsg not handled")
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	home := &stubScreen{title: "home"}
	top := &stubScreen{title: "top"}
	r := New(home)
	r.Push(top)

	r.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if top.updates != 1 {
		t.Errorf("active screen updates = %d, want 1", top.updates)
	}
	if home.updates != 0 {
		t.Error("message leaked to inactive screen")
	}
}
