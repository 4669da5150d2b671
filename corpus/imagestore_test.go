/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package corpus

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageStore_PutOncePerHash(t *testing.T) {
	store, err := NewImageStore(filepath.Join(t.TempDir(), "images"))
	require.NoError(t, err)

	raw := []byte{1, 2, 3}
	hash, err := store.Put(raw)
	require.NoError(t, err)
	assert.Equal(t, HashImage(raw), hash)

	// Second writer for the same hash observes the existing artifact.
	again, err := store.Put(raw)
	require.NoError(t, err)
	assert.Equal(t, hash, again)

	data, err := os.ReadFile(store.Path(hash))
	require.NoError(t, err)
	assert.Equal(t, raw, data)
}

func TestImageStore_ConcurrentWritersFirstWins(t *testing.T) {
	store, err := NewImageStore(t.TempDir())
	require.NoError(t, err)

	raw := []byte("the same logo in every document")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Put(raw)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	data, err := os.ReadFile(store.Path(HashImage(raw)))
	require.NoError(t, err)
	assert.Equal(t, raw, data)
}
