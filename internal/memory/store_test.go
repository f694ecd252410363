package memory

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(ttl time.Duration) *Store {
	return NewStore(ttl, zap.NewNop().Sugar())
}

func TestGetOrCreateIsLazy(t *testing.T) {
	store := newTestStore(0)
	assert.Equal(t, 0, store.Len())

	rec := store.GetOrCreate("mehmet")
	require.NotNil(t, rec)
	assert.Equal(t, "mehmet", rec.Name)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, 1, store.Len())

	// Same identity returns the same record.
	again := store.GetOrCreate("mehmet")
	assert.Same(t, rec, again)
	assert.Equal(t, 1, store.Len())
}

func TestGetDoesNotCreate(t *testing.T) {
	store := newTestStore(0)
	_, ok := store.Get("nobody")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestAllReturnsPreviews(t *testing.T) {
	store := newTestStore(0)
	store.GetOrCreate("a").MergeSymptoms([]string{"headache"}, nil)
	store.GetOrCreate("b")

	previews := store.All()
	require.Len(t, previews, 2)
	byName := map[string]int{}
	for _, p := range previews {
		byName[p.Name] = p.SymptomCount
	}
	assert.Equal(t, 1, byName["a"])
	assert.Equal(t, 0, byName["b"])
}

func TestGetOrCreateConcurrentSameIdentity(t *testing.T) {
	store := newTestStore(0)
	const goroutines = 16
	records := make([]*ConversationRecord, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			records[i] = store.GetOrCreate("shared")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, store.Len())
	for _, rec := range records {
		assert.Same(t, records[0], rec)
	}
}

func TestIdleEviction(t *testing.T) {
	store := newTestStore(30 * time.Millisecond)
	store.GetOrCreate("transient")
	require.Equal(t, 1, store.Len())

	time.Sleep(80 * time.Millisecond)
	_, ok := store.Get("transient")
	assert.False(t, ok)
}
