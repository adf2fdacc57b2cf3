package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/guttosm/cart-service/config"
	"github.com/guttosm/cart-service/internal/app"
	"github.com/guttosm/cart-service/internal/cart"
	"github.com/guttosm/cart-service/internal/domain/model"
	"github.com/guttosm/cart-service/internal/logger"
	"github.com/guttosm/cart-service/internal/repository"
	"github.com/guttosm/cart-service/internal/service"
)

var errNoDurableStore = errors.New("snapshot commands need STORAGE_DRIVER=mongodb or postgres")

func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Inspect or delete the stored cart of a session",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get <session-id>",
			Short: "Print the stored cart of a session",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withSnapshotStore(cmd.Context(), func(ctx context.Context, store repository.SnapshotRepositoryInterface, prefix string) error {
					return printSnapshot(ctx, cmd.OutOrStdout(), store, service.SnapshotKey(prefix, args[0]))
				})
			},
		},
		&cobra.Command{
			Use:   "delete <session-id>",
			Short: "Delete the stored cart of a session",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withSnapshotStore(cmd.Context(), func(ctx context.Context, store repository.SnapshotRepositoryInterface, prefix string) error {
					key := service.SnapshotKey(prefix, args[0])
					if err := store.Delete(ctx, key); err != nil {
						return fmt.Errorf("delete %s: %w", key, err)
					}
					_, err := fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", key)
					return err
				})
			},
		},
	)
	return cmd
}

func withSnapshotStore(ctx context.Context, fn func(context.Context, repository.SnapshotRepositoryInterface, string) error) error {
	cfg := config.Load()
	if cfg.Storage.Driver == config.DriverMemory {
		return errNoDurableStore
	}
	logger.Init("error", true)

	storage := app.InitializeStorage(ctx, cfg.Storage)
	defer storage.Close(context.Background())
	if storage.Driver == config.DriverMemory {
		return fmt.Errorf("cannot reach %s snapshot store", cfg.Storage.Driver)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return fn(ctx, storage.Snapshots, cfg.Storage.KeyPrefix)
}

// printSnapshot writes the cart stored under key as indented JSON.
func printSnapshot(ctx context.Context, out io.Writer, store repository.SnapshotRepositoryInterface, key string) error {
	payload, err := store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}
	if payload == nil {
		return fmt.Errorf("no snapshot stored under %s", key)
	}

	items, err := cart.DecodeSnapshot(payload)
	if err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(model.NewCart(items))
}
