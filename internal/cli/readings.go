package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vladimiradmaev/glucose-tracker/internal/bloodsugar"
	"github.com/vladimiradmaev/glucose-tracker/internal/domain"
)

func newAddCmd(app *App) *cobra.Command {
	var (
		value    float64
		date     string
		timeStr  string
		testType string
		note     string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a blood sugar reading",
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = time.Now().Format("01/02/2006")
			}
			if timeStr == "" {
				timeStr = time.Now().Format("15:04")
			}
			reading, err := app.Readings.Add(context.Background(), domain.ReadingInput{
				Value:    value,
				Date:     date,
				Time:     timeStr,
				TestType: testType,
				Note:     note,
			})
			if err != nil {
				return err
			}
			cmd.Printf("Saved reading %s: %g mg/dL (%s)\n", reading.ID, reading.Value, reading.Status)
			return nil
		},
	}
	cmd.Flags().Float64VarP(&value, "value", "v", 0, "Blood sugar value in mg/dL (required)")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Reading date, MM/DD/YYYY (default today)")
	cmd.Flags().StringVarP(&timeStr, "time", "t", "", "Reading time, HH:MM (default now)")
	cmd.Flags().StringVar(&testType, "type", domain.TestTypeFingerPrick,
		"Test type: "+strings.Join(domain.TestTypes, ", "))
	cmd.Flags().StringVarP(&note, "note", "n", "", "Optional note")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}

func newHistoryCmd(app *App) *cobra.Command {
	var (
		status string
		mmol   bool
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded readings, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			readings := app.Readings.List()
			if status != "" {
				filtered := readings[:0:0]
				for _, r := range readings {
					if string(r.Status) == status {
						filtered = append(filtered, r)
					}
				}
				readings = filtered
			}
			if len(readings) == 0 {
				cmd.Println("No readings recorded.")
				return nil
			}
			for _, r := range readings {
				printReading(cmd, r, mmol)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&status, "status", "s", "", "Filter by status (normal, high, low)")
	cmd.Flags().BoolVar(&mmol, "mmol", false, "Display values in mmol/L")
	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one reading in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reading, ok := app.Readings.Get(args[0])
			if !ok {
				cmd.Println("Reading not found.")
				return nil
			}
			cmd.Printf("ID:        %s\n", reading.ID)
			cmd.Printf("Value:     %g mg/dL (%.1f mmol/L)\n", reading.Value, bloodsugar.MgdlToMmol(reading.Value))
			cmd.Printf("Status:    %s\n", reading.Status)
			cmd.Printf("Date:      %s %s\n", reading.Date, reading.Time)
			cmd.Printf("Test type: %s\n", reading.TestType)
			if reading.Note != "" {
				cmd.Printf("Note:      %s\n", reading.Note)
			}
			return nil
		},
	}
	return cmd
}

func newDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a reading",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Readings.Delete(context.Background(), args[0])
		},
	}
	return cmd
}

func newNotificationsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "List alerts: abnormal readings and medication reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			abnormal := app.Readings.Abnormal()
			reminders := app.Medications.Reminders()
			if len(abnormal) == 0 && len(reminders) == 0 {
				cmd.Println("No notifications.")
				return nil
			}
			for _, r := range abnormal {
				word := "high"
				if r.Status == domain.StatusLow {
					word = "low"
				}
				cmd.Printf("[alert] %s %s: blood sugar %s (%g mg/dL)\n", r.Date, r.Time, word, r.Value)
			}
			for _, m := range reminders {
				cmd.Printf("[medication] %s %s at %s (%s)\n", m.Name, m.Dosage, m.Time, m.Schedule)
			}
			return nil
		},
	}
	return cmd
}

func printReading(cmd *cobra.Command, r domain.Reading, mmol bool) {
	value := fmt.Sprintf("%g mg/dL", r.Value)
	if mmol {
		value = fmt.Sprintf("%.1f mmol/L", bloodsugar.MgdlToMmol(r.Value))
	}
	note := ""
	if r.Note != "" {
		note = " - " + r.Note
	}
	cmd.Printf("%s  %s %s  %-7s %s  (%s)%s\n", r.ID, r.Date, r.Time, r.Status, value, r.TestType, note)
}
