package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nurullahMencik/taskapp-cli/internal/adapters/render/views"
	"github.com/nurullahMencik/taskapp-cli/internal/application"
)

func newProjectCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectListCmd(app),
		newProjectCreateCmd(app),
		newProjectShowCmd(app),
		newProjectUpdateCmd(app),
		newProjectDeleteCmd(app),
	)

	return cmd
}

func newProjectListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := runFetchSpinner(cmd.Context(), cmd.OutOrStdout(), "Loading projects...", app.projects.FetchAll)
			if err != nil {
				return friendlyAuthError(err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), views.RenderProjects(app.projects.State().Projects))
			return nil
		},
	}
}

func newProjectCreateCmd(app *app) *cobra.Command {
	var title, description string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := app.projects.Create(cmd.Context(), application.CreateProjectInput{
				Title:       title,
				Description: description,
			})
			if err != nil {
				return friendlyAuthError(err)
			}

			state := app.projects.State()
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), views.RenderOutcome(state.Snapshot))
			if state.Project != nil {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), views.RenderProject(*state.Project, nil))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Project title")
	cmd.Flags().StringVar(&description, "description", "", "Project description")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newProjectShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show one project and its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID := args[0]

			if err := app.projects.FetchByID(cmd.Context(), projectID); err != nil {
				return friendlyAuthError(err)
			}
			if err := app.tasks.FetchProjectTasks(cmd.Context(), projectID); err != nil {
				return friendlyAuthError(err)
			}

			state := app.projects.State()
			if state.Project == nil {
				return fmt.Errorf("project %s not found", projectID)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), views.RenderProject(*state.Project, app.tasks.State().Tasks))
			return nil
		},
	}
}

func newProjectUpdateCmd(app *app) *cobra.Command {
	var title, description string

	cmd := &cobra.Command{
		Use:   "update <project-id>",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.projects.Update(cmd.Context(), args[0], application.UpdateProjectInput{
				Title:       title,
				Description: description,
			})
			if err != nil {
				return friendlyAuthError(err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), views.RenderOutcome(app.projects.State().Snapshot))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Project title")
	cmd.Flags().StringVar(&description, "description", "", "Project description")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newProjectDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <project-id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.projects.Delete(cmd.Context(), args[0]); err != nil {
				return friendlyAuthError(err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), views.RenderOutcome(app.projects.State().Snapshot))
			return nil
		},
	}
}
