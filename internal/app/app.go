package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sidmehta/remap/internal/router"
	"github.com/sidmehta/remap/internal/screen"
	"github.com/sidmehta/remap/internal/screens/home"
	"github.com/sidmehta/remap/internal/screens/study"
	"github.com/sidmehta/remap/internal/session"
	"github.com/sidmehta/remap/internal/store"
	"github.com/sidmehta/remap/internal/ui/layout"
)

// Options configures the TUI entry point.
type Options struct {
	Manager *session.Manager
	Events  store.EventRepo

	// StartStudy opens the study screen over the manager's active session
	// immediately, as `remap study <file>` does.
	StartStudy bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen at the bottom of
// the stack.
func newAppModel(opts Options) AppModel {
	r := router.New(home.New(opts.Manager, opts.Events))
	if opts.StartStudy && opts.Manager.Active() != nil {
		r.Push(study.New(opts.Manager, opts.Events))
	}
	return AppModel{router: r}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Esc is not handled here: screens own it, because leaving the
		// study screen has to persist the session first.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	progress := -1
	if active != nil {
		title = active.Title()
		if pp, ok := active.(screen.ProgressProvider); ok {
			progress = pp.HeaderProgress()
		}
	}

	header := layout.RenderHeader(title, progress, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
