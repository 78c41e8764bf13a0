package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/vladimiradmaev/glucose-tracker/internal/cli"
	"github.com/vladimiradmaev/glucose-tracker/internal/config"
	"github.com/vladimiradmaev/glucose-tracker/internal/logger"
	"github.com/vladimiradmaev/glucose-tracker/internal/notices"
	"github.com/vladimiradmaev/glucose-tracker/internal/notifier"
	"github.com/vladimiradmaev/glucose-tracker/internal/services"
	"github.com/vladimiradmaev/glucose-tracker/internal/storage/sqlite"
)

func main() {
	// .env is optional; environment variables may be set directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitWithConfig(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	dbPath, err := sqlite.ResolvePath(cfg.Storage.Path)
	if err != nil {
		logger.Fatal("Failed to resolve storage path", "error", err)
	}

	store, err := sqlite.NewFileStore(dbPath)
	if err != nil {
		logger.Fatal("Failed to open local storage", "error", err, "path", dbPath)
	}
	defer store.Close()

	ctx := context.Background()
	sink := &notices.WriterSink{W: os.Stdout}

	// Service wiring: explicit state objects owned by this root, passed
	// down by parameter. No ambient singletons.
	mailer := notifier.NewMailer(cfg.Mailer, sink)
	profileService := services.NewProfileService(ctx, store, sink)
	readingService := services.NewReadingService(ctx, store, sink, profileService, mailer)
	medicationService := services.NewMedicationService(ctx, store, sink)
	caregiverService := services.NewCaregiverService(store, sink)

	app := &cli.App{
		Readings:    readingService,
		Medications: medicationService,
		Profile:     profileService,
		Caregiver:   caregiverService,
		Store:       store,
	}

	rootCmd := cli.NewRootCmd(app)
	cmdErr := rootCmd.Execute()

	// Let a fire-and-forget caregiver dispatch finish before the process
	// ends; the reading it belongs to is already saved either way.
	readingService.Wait()

	if cmdErr != nil {
		fmt.Fprintln(os.Stderr, cmdErr)
		os.Exit(1)
	}
}
