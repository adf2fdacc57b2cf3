//go:build integration

package app

import (
	"context"
	"os"
	"testing"

	"github.com/guttosm/cart-service/internal/testutil"
	"github.com/rs/zerolog"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(testutil.RunWithContainers(context.Background(), m, testutil.WithMongoDB(), testutil.WithPostgres()))
}
