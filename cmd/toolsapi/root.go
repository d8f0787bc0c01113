package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/saas-inventory-backend/internal/app"
	"github.com/heartmarshall/saas-inventory-backend/internal/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "toolsapi",
		Short:         "SaaS tool inventory and cost analytics API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newSeedCmd(),
		newVersionCmd(),
	)
	return root
}

// loadConfig reads the application config and builds the process logger.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return cfg, app.NewLogger(cfg.Log), nil
}
