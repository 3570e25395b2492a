package util

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULID_Valid(t *testing.T) {
	id := NewULID()
	assert.Len(t, id, 26)
	assert.True(t, IsULID(id))
	assert.False(t, IsULID("not-a-ulid"))
}

func TestNewULID_Monotonic(t *testing.T) {
	ids := make([]string, 100)
	for i := range ids {
		ids[i] = NewULID()
	}
	assert.True(t, sort.StringsAreSorted(ids))
}

func TestNewRequestID_UniqueUnderConcurrency(t *testing.T) {
	const n = 200
	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, n)
		wg   sync.WaitGroup
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := NewRequestID()
			mu.Lock()
			seen[id] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()
	require.Len(t, seen, n)
}
