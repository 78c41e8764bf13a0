package cli

import (
	"context"

	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View or update the user profile",
	}
	cmd.AddCommand(newProfileShowCmd(app), newProfileSetCmd(app))
	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := app.Profile.Get()
			cmd.Printf("Name:                %s\n", p.Name)
			if p.Email != "" {
				cmd.Printf("Email:               %s\n", p.Email)
			}
			if p.Age > 0 {
				cmd.Printf("Age:                 %d\n", p.Age)
			}
			if p.CaregiverEmail != "" {
				cmd.Printf("Caregiver email:     %s\n", p.CaregiverEmail)
			}
			cmd.Printf("Notifications:       %v\n", p.NotificationsEnabled)
			cmd.Printf("Email notifications: %v\n", p.EmailNotificationsEnabled)
			return nil
		},
	}
}

func newProfileSetCmd(app *App) *cobra.Command {
	var (
		name               string
		email              string
		age                int
		caregiverEmail     string
		notifications      bool
		emailNotifications bool
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update the profile (replaces the stored record)",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Start from the current record so unset flags keep their
			// values; the store itself still replaces wholesale.
			p := app.Profile.Get()
			if cmd.Flags().Changed("name") {
				p.Name = name
			}
			if cmd.Flags().Changed("email") {
				p.Email = email
			}
			if cmd.Flags().Changed("age") {
				p.Age = age
			}
			if cmd.Flags().Changed("caregiver-email") {
				p.CaregiverEmail = caregiverEmail
			}
			if cmd.Flags().Changed("notifications") {
				p.NotificationsEnabled = notifications
			}
			if cmd.Flags().Changed("email-notifications") {
				p.EmailNotificationsEnabled = emailNotifications
			}
			return app.Profile.Update(context.Background(), p)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().IntVar(&age, "age", 0, "Age")
	cmd.Flags().StringVar(&caregiverEmail, "caregiver-email", "", "Caregiver email address")
	cmd.Flags().BoolVar(&notifications, "notifications", true, "Enable notifications")
	cmd.Flags().BoolVar(&emailNotifications, "email-notifications", true, "Enable caregiver email notifications")
	return cmd
}
