package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nurullahMencik/taskapp-cli/internal/adapters/render/views"
	"github.com/nurullahMencik/taskapp-cli/internal/application"
	"github.com/nurullahMencik/taskapp-cli/internal/domain"
)

func newTaskCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskListCmd(app),
		newTaskCreateCmd(app),
		newTaskShowCmd(app),
		newTaskUpdateCmd(app),
		newTaskCycleCmd(app),
		newTaskDeleteCmd(app),
	)

	return cmd
}

func newTaskListCmd(app *app) *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the tasks of a project",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := runFetchSpinner(cmd.Context(), cmd.OutOrStdout(), "Loading tasks...", func(ctx context.Context) error {
				return app.tasks.FetchProjectTasks(ctx, projectID)
			})
			if err != nil {
				return friendlyAuthError(err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), views.RenderTasks(app.tasks.State().Tasks))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Project ID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newTaskCreateCmd(app *app) *cobra.Command {
	var projectID, title, description, assignedTo string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task in a project",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := app.tasks.Create(cmd.Context(), application.CreateTaskInput{
				ProjectID:   projectID,
				Title:       title,
				Description: description,
				AssignedTo:  assignedTo,
			})
			if err != nil {
				return friendlyAuthError(err)
			}

			state := app.tasks.State()
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), views.RenderOutcome(state.Snapshot))
			if state.Task != nil {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), views.RenderTask(*state.Task))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Project ID")
	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().StringVar(&assignedTo, "assigned-to", "", "User ID to assign the task to")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newTaskShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.tasks.FetchByID(cmd.Context(), args[0]); err != nil {
				return friendlyAuthError(err)
			}

			state := app.tasks.State()
			if state.Task == nil {
				return fmt.Errorf("task %s not found", args[0])
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), views.RenderTask(*state.Task))
			return nil
		},
	}
}

func newTaskUpdateCmd(app *app) *cobra.Command {
	var title, description, status, priority, assignedTo string

	cmd := &cobra.Command{
		Use:   "update <task-id>",
		Short: "Update task fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := application.UpdateTaskInput{}
			if cmd.Flags().Changed("title") {
				input.Title = &title
			}
			if cmd.Flags().Changed("description") {
				input.Description = &description
			}
			if cmd.Flags().Changed("status") {
				taskStatus := domain.TaskStatus(status)
				input.Status = &taskStatus
			}
			if cmd.Flags().Changed("priority") {
				taskPriority := domain.TaskPriority(priority)
				input.Priority = &taskPriority
			}
			if cmd.Flags().Changed("assigned-to") {
				input.AssignedTo = &assignedTo
			}

			if err := app.tasks.Update(cmd.Context(), args[0], input); err != nil {
				return friendlyAuthError(err)
			}

			state := app.tasks.State()
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), views.RenderOutcome(state.Snapshot))
			if state.Task != nil {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), views.RenderTask(*state.Task))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().StringVar(&status, "status", "", "Task status: pending, in-progress or completed")
	cmd.Flags().StringVar(&priority, "priority", "", "Task priority: low, medium or high")
	cmd.Flags().StringVar(&assignedTo, "assigned-to", "", "User ID to assign the task to")

	return cmd
}

func newTaskCycleCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cycle <task-id>",
		Short: "Advance a task to its next status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID := args[0]

			if err := app.tasks.FetchByID(cmd.Context(), taskID); err != nil {
				return friendlyAuthError(err)
			}
			state := app.tasks.State()
			if state.Task == nil {
				return fmt.Errorf("task %s not found", taskID)
			}

			if err := app.tasks.CycleStatus(cmd.Context(), taskID, state.Task.Status); err != nil {
				return friendlyAuthError(err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), views.RenderOutcome(app.tasks.State().Snapshot))
			return nil
		},
	}
}

func newTaskDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.tasks.Delete(cmd.Context(), args[0]); err != nil {
				return friendlyAuthError(err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), views.RenderOutcome(app.tasks.State().Snapshot))
			return nil
		},
	}
}
