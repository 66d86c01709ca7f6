package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"tablero/internal/models"
	"tablero/internal/view"
)

var (
	tasksSearch   string
	tasksPriority string
	tasksSort     string
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List tasks grouped by column",
	Long: `Print the board as a table, one section per column. The same filter and
sort options as the TUI apply.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, authStore, boardStore, err := openStores()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := requireSession(authStore); err != nil {
			return err
		}

		sortBy := view.SortByCreated
		if tasksSort == string(view.SortByDueDate) {
			sortBy = view.SortByDueDate
		} else if tasksSort != "" && tasksSort != string(view.SortByCreated) {
			return fmt.Errorf("unknown sort key %q (use createdAt or dueDate)", tasksSort)
		}

		if tasksPriority != view.PriorityAll {
			if _, ok := models.ParsePriority(tasksPriority); !ok {
				return fmt.Errorf("unknown priority %q (use low, medium, high, or all)", tasksPriority)
			}
		}

		grouped := view.Apply(boardStore.Tasks(), view.Params{
			Search:   tasksSearch,
			Priority: tasksPriority,
			SortBy:   sortBy,
		})

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"Column", "Title", "Priority", "Due", "Tags", "Created"})

		for _, status := range models.Statuses {
			for _, task := range grouped[status] {
				t.AppendRow(table.Row{
					status.Title(),
					task.Title,
					task.Priority,
					task.DueDate,
					joinTags(task.Tags),
					task.CreatedAt.Format("2006-01-02 15:04"),
				})
			}
		}
		t.Render()
		return nil
	},
}

func joinTags(tags []string) string {
	out := ""
	for i, tag := range tags {
		if i > 0 {
			out += ", "
		}
		out += tag
	}
	return out
}

func init() {
	tasksCmd.Flags().StringVar(&tasksSearch, "search", "", "filter by title substring")
	tasksCmd.Flags().StringVar(&tasksPriority, "priority", view.PriorityAll, "filter by priority (low, medium, high, all)")
	tasksCmd.Flags().StringVar(&tasksSort, "sort", string(view.SortByCreated), "sort key (createdAt or dueDate)")

	rootCmd.AddCommand(tasksCmd)
}
