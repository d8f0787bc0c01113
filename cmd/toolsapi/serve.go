package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/saas-inventory-backend/internal/app"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API until SIGINT or SIGTERM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			return app.Serve(cmd.Context(), cfg, logger)
		},
	}
}
