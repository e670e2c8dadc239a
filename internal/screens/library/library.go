package library

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sidmehta/remap/internal/router"
	"github.com/sidmehta/remap/internal/screen"
	"github.com/sidmehta/remap/internal/screens/study"
	"github.com/sidmehta/remap/internal/session"
	"github.com/sidmehta/remap/internal/store"
	"github.com/sidmehta/remap/internal/ui/layout"
	"github.com/sidmehta/remap/internal/ui/theme"
)

// LibraryScreen lists saved sessions and opens them for study.
type LibraryScreen struct {
	manager       *session.Manager
	events        store.EventRepo
	selected      int
	confirmDelete bool
	errMsg        string
}

var _ screen.Screen = (*LibraryScreen)(nil)
var _ screen.KeyHintProvider = (*LibraryScreen)(nil)

// New creates a new LibraryScreen.
func New(manager *session.Manager, events store.EventRepo) *LibraryScreen {
	return &LibraryScreen{
		manager: manager,
		events:  events,
	}
}

func (s *LibraryScreen) Init() tea.Cmd {
	return nil
}

func (s *LibraryScreen) Title() string {
	return "Library"
}

func (s *LibraryScreen) KeyHints() []layout.KeyHint {
	if s.confirmDelete {
		return []layout.KeyHint{
			{Key: "y", Description: "Delete"},
			{Key: "n", Description: "Keep"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Study"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "d", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LibraryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	sessions := s.manager.Sessions()

	if s.confirmDelete {
		switch kmsg.String() {
		case "y":
			s.confirmDelete = false
			if s.selected < len(sessions) {
				if err := s.manager.Delete(context.Background(), sessions[s.selected].ID); err != nil {
					s.errMsg = err.Error()
				}
				if n := len(s.manager.Sessions()); s.selected >= n && n > 0 {
					s.selected = n - 1
				}
			}
		case "n", "esc":
			s.confirmDelete = false
		}
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(sessions)-1 {
			s.selected++
		}
	case "d":
		if len(sessions) > 0 {
			s.confirmDelete = true
		}
	case "enter":
		if s.selected < len(sessions) {
			opened := s.manager.Open(sessions[s.selected].ID)
			if opened != nil {
				return s, func() tea.Msg {
					return router.PushScreenMsg{Screen: study.New(s.manager, s.events)}
				}
			}
		}
	}
	return s, nil
}

func (s *LibraryScreen) View(width, height int) string {
	sessions := s.manager.Sessions()

	if len(sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing saved yet. Run `remap study <file>` to start.")
	}

	var b strings.Builder
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render("Error: "+s.errMsg)))
		b.WriteString("\n\n")
	}

	for i, sess := range sessions {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%-28s  %-12s  %3d%%  %s",
			prefix,
			truncate(sess.FileName, 28),
			sess.Difficulty.String(),
			sess.Progress,
			sess.LastUpdated.Format("Jan 02 15:04"))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if s.confirmDelete && s.selected < len(sessions) {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render(fmt.Sprintf("Delete %q? (y/n)", sessions[s.selected].FileName))))
		b.WriteString("\n")
	}

	return b.String()
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
