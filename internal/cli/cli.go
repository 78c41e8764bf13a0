// Package cli is the view layer: a cobra command tree over the stores.
// It reads from the services and invokes their mutators; it owns no state.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vladimiradmaev/glucose-tracker/internal/domain"
	"github.com/vladimiradmaev/glucose-tracker/internal/storage"
)

// App bundles the services the commands operate on. It is built once by
// the application root and threaded down explicitly; there are no
// package-level singletons.
type App struct {
	Readings    domain.ReadingService
	Medications domain.MedicationService
	Profile     domain.ProfileService
	Caregiver   domain.CaregiverService
	Store       storage.Store
}

// NewRootCmd builds the command tree.
func NewRootCmd(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "glucotrack",
		Short:         "Personal blood sugar tracker",
		Long:          "Track blood sugar readings, medications and caregiver alerts, all stored on this device.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newAddCmd(app),
		newHistoryCmd(app),
		newShowCmd(app),
		newDeleteCmd(app),
		newMedsCmd(app),
		newRemindersCmd(app),
		newNotificationsCmd(app),
		newProfileCmd(app),
		newCaregiverCmd(app),
		newClearDataCmd(app),
	)

	return rootCmd
}

func newClearDataCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear-data",
		Short: "Delete all readings, medications and profile data",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				cmd.Println("Refusing to clear data without --yes.")
				return nil
			}
			if err := app.Store.Clear(context.Background()); err != nil {
				return err
			}
			cmd.Println("All data cleared.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deletion of all stored data")
	return cmd
}
