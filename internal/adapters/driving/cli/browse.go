package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pantrykit/pantry-cli/internal/adapters/driving/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog interactively",
	Long: `Launch the interactive terminal browser for the catalog.

Type to filter by keyword; results update on every keystroke.
Edits to the catalog file are picked up while the browser is open.

Controls:
  type     - Filter by keyword
  tab      - Cycle the first person's category filter
  shift+tab - Cycle the second person's category filter
  ctrl+s   - Cycle the sort field
  esc      - Clear filters / Quit
  ctrl+c   - Quit`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	// Panic recovery keeps a stack trace visible after the alt screen
	// is torn down.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in browser: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	svc, err := ensureCatalogService(cmd.Context())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// The browser is long-running: follow catalog file edits while
	// it is open. Watch errors must not take the browser down.
	if watcher, ok := svc.(interface{ WatchStore(context.Context) error }); ok {
		go func() {
			if err := watcher.WatchStore(ctx); err != nil && ctx.Err() == nil {
				fmt.Fprintf(os.Stderr, "catalog watch stopped: %v\n", err)
			}
		}()
	}

	app := tui.NewApp(svc)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser error: %w", err)
	}
	return nil
}
