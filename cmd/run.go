package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sidmehta/remap/internal/app"
	"github.com/sidmehta/remap/internal/session"
	"github.com/sidmehta/remap/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, loads the session collection, and launches the
// TUI. With a non-empty outlinePath it starts studying that file right away.
func runApp(cmd *cobra.Command, outlinePath string) error {
	ctx := cmd.Context()

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
	if err := manager.Load(ctx); err != nil {
		return err
	}

	opts := app.Options{
		Manager: manager,
		Events:  st.EventRepo(),
	}

	if outlinePath != "" {
		text, err := os.ReadFile(outlinePath)
		if err != nil {
			return fmt.Errorf("read outline: %w", err)
		}
		manager.StartNew(filepath.Base(outlinePath), string(text))
		opts.StartStudy = true
	}

	return app.Run(opts)
}
