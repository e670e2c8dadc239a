package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sidmehta/remap/internal/session"
	"github.com/sidmehta/remap/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every saved session",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Print("Delete all saved sessions? This cannot be undone. [y/N] ")
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.ToLower(strings.TrimSpace(line)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

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
		n := len(manager.Sessions())
		if err := manager.DeleteAll(cmd.Context()); err != nil {
			return err
		}

		fmt.Printf("Deleted %d session(s).\n", n)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
