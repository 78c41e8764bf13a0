package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vladimiradmaev/glucose-tracker/internal/domain"
)

func newMedsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meds",
		Short: "Manage medications",
	}
	cmd.AddCommand(newMedsAddCmd(app), newMedsListCmd(app))
	return cmd
}

func newMedsAddCmd(app *App) *cobra.Command {
	var (
		name     string
		dosage   string
		schedule string
		timeStr  string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a medication",
		RunE: func(cmd *cobra.Command, args []string) error {
			med, err := app.Medications.Add(context.Background(), domain.MedicationInput{
				Name:     name,
				Dosage:   dosage,
				Schedule: schedule,
				Time:     timeStr,
			})
			if err != nil {
				return err
			}
			cmd.Printf("Added medication %s: %s\n", med.ID, med.Name)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "Medication name (required)")
	cmd.Flags().StringVarP(&dosage, "dosage", "d", "", "Dosage, e.g. 500mg")
	cmd.Flags().StringVarP(&schedule, "schedule", "s", "", "Schedule, e.g. daily")
	cmd.Flags().StringVarP(&timeStr, "time", "t", "", "Time of day, HH:MM")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newMedsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List medications, oldest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			meds := app.Medications.List()
			if len(meds) == 0 {
				cmd.Println("No medications recorded.")
				return nil
			}
			for _, m := range meds {
				cmd.Printf("%s  %s %s at %s (%s)\n", m.ID, m.Name, m.Dosage, m.Time, m.Schedule)
			}
			return nil
		},
	}
}

func newRemindersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reminders",
		Short: "List medication reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			reminders := app.Medications.Reminders()
			if len(reminders) == 0 {
				cmd.Println("No reminders.")
				return nil
			}
			for _, m := range reminders {
				cmd.Printf("%s %s at %s (%s)\n", m.Name, m.Dosage, m.Time, m.Schedule)
			}
			return nil
		},
	}
}
