//go:build !integration

package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySnapshotRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySnapshotRepository()

	t.Run("missing key returns nil without error", func(t *testing.T) {
		got, err := repo.Get(ctx, "cart:none")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("put then get", func(t *testing.T) {
		require.NoError(t, repo.Put(ctx, "cart:a", []byte(`[]`)))

		got, err := repo.Get(ctx, "cart:a")
		require.NoError(t, err)
		assert.Equal(t, `[]`, string(got))
		assert.Equal(t, 1, repo.Len())
	})

	t.Run("put overwrites", func(t *testing.T) {
		require.NoError(t, repo.Put(ctx, "cart:a", []byte(`[{"id":"x"}]`)))

		got, err := repo.Get(ctx, "cart:a")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":"x"}]`, string(got))
		assert.Equal(t, 1, repo.Len())
	})

	t.Run("stored bytes are not aliased", func(t *testing.T) {
		payload := []byte(`abc`)
		require.NoError(t, repo.Put(ctx, "cart:b", payload))
		payload[0] = 'z'

		got, _ := repo.Get(ctx, "cart:b")
		assert.Equal(t, "abc", string(got))

		got[1] = 'z'
		again, _ := repo.Get(ctx, "cart:b")
		assert.Equal(t, "abc", string(again))
	})

	t.Run("delete removes key and is idempotent", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "cart:a"))
		require.NoError(t, repo.Delete(ctx, "cart:a"))

		got, err := repo.Get(ctx, "cart:a")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, repo.Ping(ctx))
	})
}

func TestMemorySnapshotRepository_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySnapshotRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Put(ctx, "cart:shared", []byte(`[]`))
			_, _ = repo.Get(ctx, "cart:shared")
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, repo.Len())
}
