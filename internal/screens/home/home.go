package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sidmehta/remap/internal/router"
	"github.com/sidmehta/remap/internal/screen"
	"github.com/sidmehta/remap/internal/screens/library"
	"github.com/sidmehta/remap/internal/session"
	"github.com/sidmehta/remap/internal/store"
	"github.com/sidmehta/remap/internal/ui/components"
	"github.com/sidmehta/remap/internal/ui/theme"
)

// HomeScreen is the landing screen of the application.
type HomeScreen struct {
	manager *session.Manager
	menu    components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(manager *session.Manager, events store.EventRepo) *HomeScreen {
	items := []components.MenuItem{
		{Label: "LIBRARY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: library.New(manager, events)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		manager: manager,
		menu:    components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	banner := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("◈ R E M A P")
	tagline := theme.Subtitle.Render("recall your mind maps from memory")
	sections = append(sections, banner, tagline, "")

	sections = append(sections, h.statsLine(), "")
	sections = append(sections, h.menu.View())
	sections = append(sections,
		theme.Hint.Render("start a new session:  remap study <file>"))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// statsLine summarizes the stored collection in one line.
func (h *HomeScreen) statsLine() string {
	sessions := h.manager.Sessions()
	if len(sessions) == 0 {
		return theme.Hint.Render("no saved sessions yet")
	}

	total := 0
	for _, s := range sessions {
		total += s.Progress
	}
	avg := total / len(sessions)

	noun := "sessions"
	if len(sessions) == 1 {
		noun = "session"
	}
	return theme.Body.Render(fmt.Sprintf("%d saved %s · %d%% average recall", len(sessions), noun, avg))
}
