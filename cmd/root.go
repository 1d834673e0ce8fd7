package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ta",
		Short:         "Task tracker CLI (ta): projects, tasks and task history",
		Long:          "ta talks to the task tracker API from the terminal: register or log in, manage projects and their tasks, cycle task statuses, and inspect a task's change history.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRegisterCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newProjectCmd(app),
		newTaskCmd(app),
		newUsersCmd(app),
		newLogsCmd(app),
	)

	return rootCmd
}
