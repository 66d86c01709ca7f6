// Package cmd wires the command tree. The root command launches the TUI;
// the subcommands expose the same stores for scripting.
package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tablero/internal/auth"
	"tablero/internal/board"
	"tablero/internal/config"
	"tablero/internal/logging"
	"tablero/internal/storage"
	"tablero/internal/tui"
)

var ephemeral bool

var rootCmd = &cobra.Command{
	Use:   "tablero",
	Short: "Tablero - a personal kanban board in the terminal",
	Long: `Tablero is a single-user kanban board. Tasks move across three fixed
columns (To Do, Doing, Done) with filtering, sorting, and an activity log.
All state lives in a local store.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Init(); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		store, authStore, boardStore, err := openStores()
		if err != nil {
			return err
		}
		defer store.Close()

		model := tui.NewModel(cfg, authStore, boardStore)
		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false,
		"keep all state in memory and discard it on exit")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// openStores opens the blob store and initializes both domain stores on top
// of it. The caller owns closing the returned storage.Store.
func openStores() (storage.Store, *auth.Store, *board.Store, error) {
	var store storage.Store
	if ephemeral {
		store = storage.NewMemStore()
	} else {
		path, err := storage.DefaultPath()
		if err != nil {
			return nil, nil, nil, err
		}
		store, err = storage.OpenSQLite(path)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	authStore := auth.NewStore(store)
	authStore.Init()

	boardStore := board.NewStore(store)
	boardStore.Init()

	return store, authStore, boardStore, nil
}

// requireSession is used by headless subcommands that read or mutate the
// board. It fails with a hint instead of silently operating logged out.
func requireSession(authStore *auth.Store) error {
	if !authStore.LoggedIn() {
		return fmt.Errorf("not logged in: run 'tablero login' first")
	}
	return nil
}
