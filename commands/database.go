package commands

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/Leerling-hub/Booking/config"
	"github.com/Leerling-hub/Booking/database"
	"github.com/Leerling-hub/Booking/overview"
	"github.com/Leerling-hub/Booking/utils"
	"github.com/spf13/cobra"
)

func MigrateCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := openDB(cfg); err != nil {
				return err
			}
			log.Println("Migrations applied")
			return nil
		},
	}
}

// ResetCmd empties the database and loads the sample data. It never starts the server.
func ResetCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete every record and seed the sample data",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB(cfg)
			if err != nil {
				return err
			}

			log.Println("Resetting database...")
			if err := database.Teardown(cmd.Context(), db); err != nil {
				return err
			}
			hasher := utils.NewPasswordHasher(cfg.BcryptCost)
			if err := database.Seed(cmd.Context(), db, hasher, rand.New(rand.NewSource(time.Now().UnixNano()))); err != nil {
				return err
			}
			log.Println("Database reset successfully.")
			return nil
		},
	}
}

func ClearCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every record",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			return database.Teardown(cmd.Context(), db)
		},
	}
}

func OverviewCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Print every table as JSON, or export it to an Excel workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			xlsx, _ := cmd.Flags().GetString("xlsx")

			db, err := openDB(cfg)
			if err != nil {
				return err
			}

			snapshot, err := overview.Collect(cmd.Context(), db)
			if err != nil {
				return err
			}

			if xlsx == "" {
				return overview.WriteJSON(cmd.OutOrStdout(), snapshot)
			}
			if err := overview.ExportXLSX(snapshot, xlsx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Overview written to %s\n", xlsx)
			return nil
		},
	}

	cmd.Flags().String("xlsx", "", "Write the overview to this .xlsx file instead of stdout")

	return cmd
}
