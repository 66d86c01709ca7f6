package cmd

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show the recent activity log",
	Long:  `Print the last 50 board mutations, newest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, authStore, boardStore, err := openStores()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := requireSession(authStore); err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"When", "Event", "Task"})

		for _, a := range boardStore.Activities() {
			t.AppendRow(table.Row{
				a.Timestamp.Format("2006-01-02 15:04"),
				a.Type.Verb(),
				a.TaskTitle,
			})
		}
		t.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(activityCmd)
}
