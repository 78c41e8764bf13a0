package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/vladimiradmaev/glucose-tracker/internal/config"
	"github.com/vladimiradmaev/glucose-tracker/internal/storage/sqlite"
)

func main() {
	fmt.Println("Checking configuration...")

	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file found: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Configuration invalid:\n%v\n", err)
		os.Exit(1)
	}

	dbPath, err := sqlite.ResolvePath(cfg.Storage.Path)
	if err != nil {
		fmt.Printf("Cannot resolve storage path: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Configuration OK")
	fmt.Printf("  - Storage path: %s\n", dbPath)
	fmt.Printf("  - Relay URL: %s\n", cfg.Mailer.BaseURL)
	fmt.Printf("  - Relay service ID: %s\n", maskToken(cfg.Mailer.ServiceID))
	fmt.Printf("  - Relay template ID: %s\n", maskToken(cfg.Mailer.TemplateID))
	fmt.Printf("  - Relay public key: %s\n", maskToken(cfg.Mailer.PublicKey))
	fmt.Printf("  - Sender name: %s\n", cfg.Mailer.SenderName)
	fmt.Printf("  - Log level: %v\n", cfg.Logger.Level)
	fmt.Printf("  - Log output: %s\n", cfg.Logger.OutputPath)
	fmt.Printf("  - Log format: %s\n", cfg.Logger.Format)

	if cfg.Mailer.ServiceID == "" || cfg.Mailer.TemplateID == "" || cfg.Mailer.PublicKey == "" {
		fmt.Println("Note: email relay not fully configured; caregiver notifications will be dropped.")
	}
}

func maskToken(token string) string {
	if token == "" {
		return "<not set>"
	}
	if len(token) <= 8 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
