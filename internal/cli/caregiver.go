package cli

import (
	"context"

	"github.com/spf13/cobra"
)

func newCaregiverCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "caregiver",
		Short: "Caregiver portal",
	}
	cmd.AddCommand(
		newCaregiverLoginCmd(app),
		newCaregiverLogoutCmd(app),
		newCaregiverStatusCmd(app),
		newCaregiverDashboardCmd(app),
	)
	return cmd
}

func newCaregiverLoginCmd(app *App) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the caregiver portal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Caregiver.Login(context.Background(), email, password)
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "Caregiver email (required)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newCaregiverLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out of the caregiver portal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Caregiver.Logout(context.Background())
		},
	}
}

func newCaregiverStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show caregiver login state",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Caregiver.LoggedIn() {
				cmd.Printf("Logged in as %s\n", app.Caregiver.Email())
			} else {
				cmd.Println("Not logged in.")
			}
			return nil
		},
	}
}

func newCaregiverDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the patient's readings",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The gate is only this flag. There is no server-side check.
			if !app.Caregiver.LoggedIn() {
				cmd.Println("Please log in first: glucotrack caregiver login")
				return nil
			}
			profile := app.Profile.Get()
			cmd.Printf("Patient: %s\n", profile.Name)
			readings := app.Readings.List()
			if len(readings) == 0 {
				cmd.Println("No readings recorded.")
				return nil
			}
			for _, r := range readings {
				printReading(cmd, r, false)
			}
			return nil
		},
	}
}
