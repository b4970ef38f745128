package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/runoshun/git-todo/internal/app"
	"github.com/runoshun/git-todo/internal/domain"
	"github.com/runoshun/git-todo/internal/usecase"
)

// newReplayCommand creates the replay command.
func newReplayCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Filter string
		JSON   bool
	}

	cmd := &cobra.Command{
		Use:   "replay <file>",
		Short: "Run an action script and print the resulting list",
		Long: `Run a YAML or JSON action script through the store and print the
resulting task list. Use "-" to read the script from stdin.

Script format:
  actions:
    - {type: add, text: buy milk}
    - {type: toggle, id: 1}
    - {type: toggle_all, completed: true}
    - {type: edit, id: 1, text: buy oat milk}
    - {type: remove, id: 2}
    - {type: clear_completed}
    - {type: filter, filter: active}
    - {type: set, tasks: [{id: 5, text: seeded, completed: false}]}`,
		Example: `  todo replay script.yaml
  todo replay script.yaml --filter active
  cat script.json | todo replay - --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseFilterFlag(opts.Filter)
			if err != nil {
				return err
			}

			content, err := readScript(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			out, err := c.ReplayUseCase().Execute(cmd.Context(), usecase.ReplayInput{
				Filter:  filter,
				Content: content,
			})
			if err != nil {
				return err
			}

			if opts.JSON {
				return printViewJSON(cmd.OutOrStdout(), out.View)
			}
			printView(cmd.OutOrStdout(), out.View)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "Show only tasks matching the filter (all, active, completed)")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")

	return cmd
}

// parseFilterFlag parses an optional --filter value. Empty means "keep the store's filter".
func parseFilterFlag(s string) (domain.VisibilityFilter, error) {
	if s == "" {
		return "", nil
	}
	return domain.ParseVisibilityFilter(s)
}

// readScript reads the script from path, or from stdin when path is "-".
func readScript(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return content, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return content, nil
}

// printView prints the visible tasks and footer in TSV format.
func printView(w io.Writer, v domain.View) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)

	_, _ = fmt.Fprintln(tw, "ID\tSTATUS\tTEXT")
	for _, task := range v.Visible {
		status := string(domain.FilterActive)
		if task.Completed {
			status = string(domain.FilterCompleted)
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\n", task.ID, status, task.Text)
	}
	_ = tw.Flush()

	_, _ = fmt.Fprintf(w, "\n%s (filter: %s, %d completed)\n", v.ItemsLeftLabel(), v.Filter, v.CompletedCount)
}

// printViewJSON prints the view as indented JSON.
func printViewJSON(w io.Writer, v domain.View) error {
	type jsonView struct {
		Filter         domain.VisibilityFilter `json:"filter"`
		Tasks          domain.TaskList         `json:"tasks"`
		Total          int                     `json:"total"`
		ActiveCount    int                     `json:"active_count"`
		CompletedCount int                     `json:"completed_count"`
		NextID         int                     `json:"next_id"`
		AllCompleted   bool                    `json:"all_completed"`
	}

	jv := jsonView{
		Filter:         v.Filter,
		Tasks:          v.Visible,
		Total:          v.Total,
		ActiveCount:    v.ActiveCount,
		CompletedCount: v.CompletedCount,
		NextID:         v.NextID,
		AllCompleted:   v.AllCompleted,
	}
	if jv.Tasks == nil {
		jv.Tasks = domain.TaskList{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jv)
}
