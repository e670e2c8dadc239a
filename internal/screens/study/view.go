package study

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"charm.land/lipgloss/v2"

	"github.com/sidmehta/remap/internal/mask"
	"github.com/sidmehta/remap/internal/outline"
	"github.com/sidmehta/remap/internal/recall"
	"github.com/sidmehta/remap/internal/ui/components"
	"github.com/sidmehta/remap/internal/ui/theme"
)

// maskRunLimit caps how many blanks stand in for a hidden label, so the
// blank run does not leak long label lengths too precisely.
const maskRunLimit = 18

func (s *StudyScreen) View(width, height int) string {
	if s.sess == nil {
		return ""
	}
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}

	var b strings.Builder
	b.WriteString("\n")

	treeHeight := height - 7
	if treeHeight < 5 {
		treeHeight = 5
	}
	start := 0
	if s.cursor >= treeHeight {
		start = s.cursor - treeHeight + 1
	}
	end := start + treeHeight
	if end > len(s.visible) {
		end = len(s.visible)
	}

	for i := start; i < end; i++ {
		b.WriteString("  " + s.renderNode(s.visible[i], i == s.cursor))
		b.WriteString("\n")
	}
	if len(s.visible) == 0 {
		b.WriteString(theme.Hint.Render("  nothing to show — press f to clear the star filter"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.renderBottom(width))
	return b.String()
}

// renderNode draws one tree row: cursor marker, indent, fold marker, and
// the label in whatever state it is in (hidden, hinted, solved, plain).
func (s *StudyScreen) renderNode(n *outline.Node, selected bool) string {
	prefix := "  "
	if selected {
		prefix = theme.Selected.Render("❯ ")
	}

	indent := strings.Repeat("  ", n.Level)

	marker := "• "
	if len(n.Children) > 0 {
		if s.sess.States.Get(n.ID).Collapsed {
			marker = "▸ "
		} else {
			marker = "▾ "
		}
	}

	state := s.sess.States.Get(n.ID)
	var label string
	switch {
	case s.hidden(n) && state.Hints > 0:
		label = theme.Hint.Render(recall.HintText(n.Text, state.Hints))
	case s.hidden(n):
		runs := utf8.RuneCountInString(n.Text)
		if runs > maskRunLimit {
			runs = maskRunLimit
		}
		label = theme.MaskedLabel.Render(strings.Repeat("▁", runs))
	case state.Solved && mask.ShouldMask(n, s.sess.Difficulty):
		label = theme.SolvedLabel.Render(n.Text + " ✓")
	case n.Level == 0:
		label = theme.Title.Render(n.Text)
	default:
		label = theme.Body.Render(n.Text)
	}

	if state.Starred {
		label += theme.StarMark.Render(" ★")
	}
	return prefix + indent + marker + label
}

// renderBottom draws the interaction strip: confirm prompt, answer input,
// or the progress bar with the difficulty readout.
func (s *StudyScreen) renderBottom(width int) string {
	if s.confirmReset {
		return "  " + theme.Incorrect.Render("Reset all recall progress? (y/n)")
	}

	var b strings.Builder
	if s.answering {
		b.WriteString("  Recall: " + s.input.View())
		if s.wrongFlash {
			b.WriteString("  " + theme.Incorrect.Render("not quite"))
		}
		b.WriteString("\n\n")
	}

	barWidth := width - 24
	if barWidth > 50 {
		barWidth = 50
	}
	bar := components.NewProgressBar(s.sess.Difficulty.String(), float64(s.sess.Progress)/100, true, barWidth)
	b.WriteString("  " + bar.View())
	return b.String()
}
