package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nurullahMencik/taskapp-cli/internal/adapters/render/views"
	"github.com/nurullahMencik/taskapp-cli/internal/application"
	"github.com/nurullahMencik/taskapp-cli/internal/domain"
)

func newRegisterCmd(app *app) *cobra.Command {
	var username, email, password, role string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account and log in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := app.auth.Register(cmd.Context(), application.RegisterInput{
				Username: username,
				Email:    email,
				Password: password,
				Role:     domain.Role(role),
			})
			if err != nil {
				return err
			}

			state := app.auth.State()
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), views.RenderOutcome(state.Snapshot))
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), views.RenderSession(state.Session))
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	cmd.Flags().StringVar(&role, "role", "", "Role: admin, manager or developer (default developer)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLoginCmd(app *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := app.auth.Login(cmd.Context(), application.LoginInput{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}

			state := app.auth.State()
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), views.RenderOutcome(state.Snapshot))
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), views.RenderSession(state.Session))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.auth.Logout(cmd.Context()); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored session identity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.auth.LoadPersisted(cmd.Context()); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), views.RenderSession(app.auth.State().Session))
			return nil
		},
	}
}
