package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/guttosm/cart-service/config"
	"github.com/guttosm/cart-service/internal/app"
)

func newServeCmd(port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), loadConfig(*port))
		},
	}
}

func runServe(ctx context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	a := app.InitializeApp(ctx, cfg)
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		a.Close(closeCtx)
	}()

	server := app.NewServer(a.Router, cfg.Server.Port, cfg.Server.RequestTimeout)
	if err := server.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Server error")
		return err
	}
	return nil
}
