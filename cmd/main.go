package main

import (
	"os"

	"hospital-management-api/cmd/bootstrap"
	"hospital-management-api/config"
	"hospital-management-api/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "hospital-api",
		Short:        "Hospital management REST API",
		SilenceUsage: true,
		// Serving is the default action
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		logrus.Errorf("%v", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrations(database.MigrateUp)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back all migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrations(database.MigrateDown)
		},
	})

	return cmd
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo data into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			return bootstrap.Seed(cfg)
		},
	}
}

func runServer() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Initialize application with all dependencies
	app, err := bootstrap.New(cfg)
	if err != nil {
		return err
	}

	return app.Run()
}

func runMigrations(direction database.MigrationDirection) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	return bootstrap.Migrate(cfg, direction)
}
