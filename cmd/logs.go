package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nurullahMencik/taskapp-cli/internal/adapters/render/views"
)

func newLogsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logs <task-id>",
		Short: "Show a task and its change history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runFetchSpinner(cmd.Context(), cmd.OutOrStdout(), "Loading task history...", func(ctx context.Context) error {
				return app.logs.FetchTaskAndLogs(ctx, args[0])
			})
			if err != nil {
				return friendlyAuthError(err)
			}

			state := app.logs.State()
			if state.Task == nil {
				return fmt.Errorf("task %s not found", args[0])
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), views.RenderLogs(*state.Task, state.Logs))
			return nil
		},
	}
}
