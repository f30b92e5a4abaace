package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gewei11/multichat/core"
)

var _ Store = (*InMemoryStore)(nil)

func TestInMemoryStore_AppendAndHistory(t *testing.T) {
	store := NewInMemoryStore()

	require.NoError(t, store.Append("s1", core.NewTurn(core.RoleUser, "你好")))
	require.NoError(t, store.Append("s1", core.NewTurn(core.RoleAssistant, "你好！有什么可以帮您？")))

	history, err := store.History("s1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, core.RoleUser, history[0].Role)
	assert.Equal(t, "你好", history[0].Content)
	assert.Equal(t, core.RoleAssistant, history[1].Role)
}

func TestInMemoryStore_HistoryIsSnapshot(t *testing.T) {
	store := NewInMemoryStore()
	require.NoError(t, store.Append("s1", core.NewTurn(core.RoleUser, "第一条")))

	snapshot, err := store.History("s1")
	require.NoError(t, err)

	require.NoError(t, store.Append("s1", core.NewTurn(core.RoleUser, "第二条")))
	assert.Len(t, snapshot, 1, "snapshot must not grow with later appends")

	snapshot[0].Content = "mutated"
	fresh, err := store.History("s1")
	require.NoError(t, err)
	assert.Equal(t, "第一条", fresh[0].Content, "mutating a snapshot must not affect the store")
}

func TestInMemoryStore_UnknownSessionIsEmpty(t *testing.T) {
	store := NewInMemoryStore()
	history, err := store.History("missing")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestInMemoryStore_Clear(t *testing.T) {
	store := NewInMemoryStore()
	require.NoError(t, store.Append("s1", core.NewTurn(core.RoleUser, "你好")))
	require.NoError(t, store.Clear("s1"))

	history, err := store.History("s1")
	require.NoError(t, err)
	assert.Empty(t, history)
	assert.Zero(t, store.Len())
}

func TestInMemoryStore_ConcurrentAppend(t *testing.T) {
	store := NewInMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = store.Append("s1", core.NewTurn(core.RoleUser, fmt.Sprintf("msg-%d", n)))
		}(i)
	}
	wg.Wait()

	history, err := store.History("s1")
	require.NoError(t, err)
	assert.Len(t, history, 20)
}
