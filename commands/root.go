package commands

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Leerling-hub/Booking/config"
	"github.com/Leerling-hub/Booking/database"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// NewRootCmd builds the booking command tree. Without a subcommand it serves the API.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	var logFile *os.File

	serve := ServeCmd(cfg)
	rootCmd := &cobra.Command{
		Use:           "booking",
		Short:         "Rental booking REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.LogFile == "" {
				return nil
			}
			// keep logging to stderr and copy every line to the file
			f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			logFile = f
			log.SetOutput(io.MultiWriter(os.Stderr, f))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logFile == nil {
				return nil
			}
			log.SetOutput(os.Stderr)
			return logFile.Close()
		},
		RunE: serve.RunE,
	}

	rootCmd.AddCommand(
		serve,
		MigrateCmd(cfg),
		ResetCmd(cfg),
		ClearCmd(cfg),
		OverviewCmd(cfg),
		SecretCmd(),
		TokenCmd(cfg),
		HashCmd(cfg),
		VerifyPasswordCmd(),
	)

	return rootCmd
}

// openDB connects with the configured driver and migrates the schema
func openDB(cfg *config.Config) (*gorm.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	db, err := database.Open(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
