package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bloghub/internal/app"
	"bloghub/internal/config"
	"bloghub/internal/database"
)

var configPath string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := &cobra.Command{
		Use:   "bloghub",
		Short: "Blogging REST backend",
		// без подкоманды запускаем serve
		RunE: runServe,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "path to config.yaml")

	rootCmd.AddCommand(
		&cobra.Command{Use: "serve", Short: "Start the HTTP server", RunE: runServe},
		createMigrateCmd(),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	return app.Run(cmd.Context(), cfg)
}

func createMigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	migrateCmd.AddCommand(
		migrationCmd("up", "Apply all pending migrations", database.MigrateUp),
		migrationCmd("down", "Roll back the latest migration", database.MigrateDown),
		migrationCmd("status", "Show migration status", database.MigrateStatus),
	)
	return migrateCmd
}

func migrationCmd(use, short string, fn func(context.Context, *sql.DB) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			logger := app.NewLogger(cfg)
			goose.SetLogger(logger)

			db, err := database.Open(cmd.Context(), cfg.Database.DSN)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := fn(cmd.Context(), db); err != nil {
				return err
			}
			logger.WithField("command", use).Info("[migrate] done")
			return nil
		},
	}
}
