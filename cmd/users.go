package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nurullahMencik/taskapp-cli/internal/adapters/render/views"
)

func newUsersCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List users available for task assignment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.tasks.FetchUsers(cmd.Context()); err != nil {
				return friendlyAuthError(err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), views.RenderUsers(app.tasks.State().Users))
			return nil
		},
	}
}
