package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear all tasks and the activity log",
	Long: `Remove every task and activity entry and delete the persisted board
state. Requires --force.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetForce {
			return fmt.Errorf("refusing to reset without --force")
		}

		store, authStore, boardStore, err := openStores()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := requireSession(authStore); err != nil {
			return err
		}

		boardStore.Reset()
		fmt.Fprintln(cmd.OutOrStdout(), "Board reset")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "confirm the reset")
	rootCmd.AddCommand(resetCmd)
}
