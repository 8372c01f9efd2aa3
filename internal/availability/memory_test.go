package availability

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreClaimAndRelease(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	key := "2025-06-10|10:00-10:30"

	// chave nunca vista é implicitamente livre
	free, err := store.IsFree(ctx, key)
	require.NoError(t, err)
	assert.True(t, free)

	claimed, err := store.TryClaim(ctx, key)
	require.NoError(t, err)
	assert.True(t, claimed)

	free, err = store.IsFree(ctx, key)
	require.NoError(t, err)
	assert.False(t, free)

	// segundo claim na mesma chave perde
	claimed, err = store.TryClaim(ctx, key)
	require.NoError(t, err)
	assert.False(t, claimed)

	// release devolve a chave ao estado livre e um claim novo funciona
	require.NoError(t, store.Release(ctx, key))

	free, err = store.IsFree(ctx, key)
	require.NoError(t, err)
	assert.True(t, free)

	claimed, err = store.TryClaim(ctx, key)
	require.NoError(t, err)
	assert.True(t, claimed)
}

func TestMemoryStoreUnrelatedKeys(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	claimed, err := store.TryClaim(ctx, "2025-06-10|10:00-10:30")
	require.NoError(t, err)
	require.True(t, claimed)

	// slots de outras datas/horários não são afetados
	for _, key := range []string{
		"2025-06-10|10:30-11:00",
		"2025-06-11|10:00-10:30",
	} {
		free, err := store.IsFree(ctx, key)
		require.NoError(t, err)
		assert.True(t, free, key)
	}
}

func TestMemoryStoreConcurrentClaims(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	key := "2025-06-10|10:00-10:30"

	const n = 100

	var (
		start   sync.WaitGroup
		done    sync.WaitGroup
		winners int64
		mu      sync.Mutex
	)

	start.Add(1)
	done.Add(n)

	for i := 0; i < n; i++ {
		go func() {
			defer done.Done()
			start.Wait()

			claimed, err := store.TryClaim(ctx, key)
			assert.NoError(t, err)

			if claimed {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}

	start.Done()
	done.Wait()

	// exatamente um vencedor, todos os outros veem AlreadyClaimed
	assert.EqualValues(t, 1, winners)
}

func TestMemoryStoreConcurrentDistinctKeys(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	const n = 50

	var wg sync.WaitGroup
	wg.Add(n)

	for i := 0; i < n; i++ {
		key := fmt.Sprintf("2025-06-%02d|09:00-09:30", (i%28)+1)
		go func(key string, i int) {
			defer wg.Done()
			_, err := store.TryClaim(ctx, key)
			assert.NoError(t, err)
		}(key, i)
	}

	wg.Wait()

	// as 28 chaves distintas acabam todas ocupadas
	for day := 1; day <= 28; day++ {
		key := fmt.Sprintf("2025-06-%02d|09:00-09:30", day)
		free, err := store.IsFree(ctx, key)
		require.NoError(t, err)
		assert.False(t, free, key)
	}
}
