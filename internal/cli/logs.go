package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/git-todo/internal/app"
	"github.com/runoshun/git-todo/internal/usecase"
)

// newLogsCommand creates the logs command.
func newLogsCommand(c *app.Container) *cobra.Command {
	var opts struct {
		TaskID int
		Lines  int
	}

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the application log",
		Long: `Show the log file configured by [log] file.

Use --task to show only entries about one task.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowLogsUseCase().Execute(cmd.Context(), usecase.ShowLogsInput{
				TaskID: opts.TaskID,
				Lines:  opts.Lines,
			})
			if err != nil {
				return err
			}
			if out.Content == "" {
				return nil
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Content)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.TaskID, "task", 0, "Show only entries for this task ID")
	cmd.Flags().IntVarP(&opts.Lines, "lines", "n", 0, "Number of lines to show from the end (0 = all)")

	return cmd
}
