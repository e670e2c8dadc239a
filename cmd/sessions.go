package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sidmehta/remap/internal/session"
	"github.com/sidmehta/remap/internal/store"
	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List saved sessions without opening the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		manager := session.NewManager(st.SessionRepo())
		if err := manager.Load(cmd.Context()); err != nil {
			return err
		}

		sessions := manager.Sessions()
		if len(sessions) == 0 {
			fmt.Println("No saved sessions.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "FILE\tDIFFICULTY\tPROGRESS\tLAST STUDIED\tNODES")
		for _, s := range sessions {
			fmt.Fprintf(w, "%s\t%s\t%d%%\t%s\t%d\n",
				s.FileName,
				s.Difficulty.String(),
				s.Progress,
				s.LastUpdated.Format("2006-01-02 15:04"),
				s.Root.Count())
		}
		return w.Flush()
	},
}
