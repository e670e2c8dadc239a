package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sidmehta/remap/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recall statistics per outline file",
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

		stats, err := st.EventRepo().QueryFileStats(cmd.Context())
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("No study activity recorded yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "FILE\tATTEMPTS\tCORRECT\tACCURACY\tHINTS\tLAST STUDIED")
		for _, fs := range stats {
			fmt.Fprintf(w, "%s\t%d\t%d\t%.0f%%\t%d\t%s\n",
				fs.FileName,
				fs.Attempts,
				fs.Correct,
				fs.Accuracy()*100,
				fs.Hints,
				fs.LastStudied.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}
