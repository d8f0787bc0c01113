package main

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/saas-inventory-backend/internal/adapter/postgres"
	"github.com/heartmarshall/saas-inventory-backend/migrations"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(cmd *cobra.Command, m *postgres.Migrator, logger *slog.Logger) error {
				n, err := m.Up(cmd.Context())
				if err != nil {
					return err
				}
				logger.Info("migrations applied", slog.Int("count", n))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(cmd *cobra.Command, m *postgres.Migrator, logger *slog.Logger) error {
				if err := m.Down(cmd.Context()); err != nil {
					return err
				}
				logger.Info("migration rolled back")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show which migrations are applied",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(cmd *cobra.Command, m *postgres.Migrator, _ *slog.Logger) error {
				statuses, err := m.Status(cmd.Context())
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "VERSION\tSTATE\tSOURCE")
				for _, s := range statuses {
					state := "pending"
					if s.Applied {
						state = "applied"
					}
					fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Version, state, s.Source)
				}
				return tw.Flush()
			}),
		},
	)
	return cmd
}

func withMigrator(fn func(*cobra.Command, *postgres.Migrator, *slog.Logger) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		m, err := postgres.NewMigrator(cmd.Context(), cfg.Database.DSN, migrations.FS)
		if err != nil {
			return fmt.Errorf("open migrator: %w", err)
		}
		defer m.Close()

		return fn(cmd, m, logger)
	}
}
