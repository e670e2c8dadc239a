package cmd

import (
	"github.com/spf13/cobra"
)

var studyCmd = &cobra.Command{
	Use:   "study <file>",
	Short: "Start a recall session over an outline file",
	Long: `Parse an indented outline (plain text or markdown-style) into a tree
and open it for study. The session is saved when you leave the study screen.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, args[0])
	},
}
