package main

import (
	"github.com/spf13/cobra"

	"github.com/guttosm/cart-service/config"
)

func newRootCmd() *cobra.Command {
	var port string

	root := &cobra.Command{
		Use:          "cart-service",
		Short:        "Session-scoped shopping cart service",
		Long:         `cart-service keeps one cart per storefront session, persists it as a snapshot after every change and submits it to the order API at checkout.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), loadConfig(port))
		},
	}
	root.PersistentFlags().StringVar(&port, "port", "", "HTTP port (overrides PORT)")

	root.AddCommand(newServeCmd(&port), newSnapshotCmd())
	return root
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig(port string) config.Config {
	cfg := config.Load()
	if port != "" {
		cfg.Server.Port = port
	}
	return cfg
}
