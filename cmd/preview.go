package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sidmehta/remap/internal/mask"
	"github.com/sidmehta/remap/internal/outline"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Show how an outline parses and which labels get hidden (no database)",
	Long: `Parse an outline file and print the resulting tree with the labels a
recall session would hide at the chosen difficulty.

This is a stateless developer tool — no database, no saved session, no events.
Useful for checking how an outline's indentation nests before studying it.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("difficulty", 1, "Difficulty tier: 1 (basic), 2 (intermediate), 3 (master)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	level, _ := cmd.Flags().GetInt("difficulty")
	if level < 1 || level > 3 {
		return fmt.Errorf("invalid difficulty %d: must be 1, 2, or 3", level)
	}
	difficulty := mask.FromInt(level)

	text, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read outline: %w", err)
	}

	root := outline.Parse(string(text))

	total := 0
	masked := 0
	root.Walk(func(n *outline.Node) {
		total++

		marker := " "
		if mask.ShouldMask(n, difficulty) {
			marker = "▭"
			masked++
		}
		fmt.Printf("%s %s%s\n", marker, strings.Repeat("  ", n.Level), n.Text)
	})

	fmt.Printf("\n%d nodes, %d hidden at %s\n", total, masked, difficulty.String())
	return nil
}
