package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/saas-inventory-backend/internal/adapter/postgres"
	"github.com/heartmarshall/saas-inventory-backend/internal/app"
	"github.com/heartmarshall/saas-inventory-backend/internal/app/seeder"
)

func newSeedCmd() *cobra.Command {
	var (
		file string
		cfg  seeder.Config
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load categories and tools from a YAML fixture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fx, err := seeder.LoadFixture(file)
			if err != nil {
				return err
			}

			appCfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			pool, err := postgres.NewPool(cmd.Context(), appCfg.Database)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer pool.Close()

			svc := app.NewServices(logger, pool, appCfg)
			pipeline := seeder.NewPipeline(logger, svc.Categories, svc.Tools, cfg)
			if err := pipeline.Run(cmd.Context(), fx); err != nil {
				return err
			}

			for _, phase := range []string{seeder.PhaseCategories, seeder.PhaseTools} {
				r := pipeline.Results()[phase]
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s inserted=%d skipped=%d errors=%d (%s)\n",
					phase, r.Inserted, r.Skipped, r.Errors, r.Duration.Round(time.Millisecond))
			}

			if pipeline.HasErrors() {
				logger.Warn("seeding completed with errors", slog.String("file", file))
				return errors.New("some rows were rejected")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the YAML fixture")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "validate the fixture without writing")
	cmd.Flags().BoolVar(&cfg.StopOnError, "stop-on-error", false, "abort on the first rejected row")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
