package realtime

import (
	"sync"
	"testing"

	"restops/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cashierKey(shopID, branchID uuid.UUID) entity.IdentityKey {
	return entity.NewIdentityKey(entity.RoleCashier, shopID, branchID)
}

func TestConnectionRegistry_RegisterAndLookup(t *testing.T) {
	registry := NewConnectionRegistry()
	key := cashierKey(uuid.New(), uuid.New())
	conn := newFakeConn()

	evicted := registry.Register(key, conn)
	assert.Nil(t, evicted)

	got, ok := registry.Lookup(key)
	require.True(t, ok)
	assert.Equal(t, conn.ID(), got.ID())

	_, ok = registry.Lookup(cashierKey(key.ShopID, uuid.New()))
	assert.False(t, ok)
}

func TestConnectionRegistry_ReRegisterEvictsOlderConnection(t *testing.T) {
	registry := NewConnectionRegistry()
	key := cashierKey(uuid.New(), uuid.New())
	firstTab, secondTab := newFakeConn(), newFakeConn()

	registry.Register(key, firstTab)
	evicted := registry.Register(key, secondTab)

	require.NotNil(t, evicted)
	assert.Equal(t, firstTab.ID(), evicted.ID())

	got, ok := registry.Lookup(key)
	require.True(t, ok)
	assert.Equal(t, secondTab.ID(), got.ID())

	// Closing the first tab must not remove the second tab's registration.
	removed := registry.RemoveByConnection(firstTab)
	assert.Empty(t, removed)

	got, ok = registry.Lookup(key)
	require.True(t, ok)
	assert.Equal(t, secondTab.ID(), got.ID())
}

func TestConnectionRegistry_RegisterSameConnectionTwiceIsNotAnEviction(t *testing.T) {
	registry := NewConnectionRegistry()
	key := cashierKey(uuid.New(), uuid.New())
	conn := newFakeConn()

	registry.Register(key, conn)
	assert.Nil(t, registry.Register(key, conn))
}

func TestConnectionRegistry_RemoveByConnection(t *testing.T) {
	registry := NewConnectionRegistry()
	key := cashierKey(uuid.New(), uuid.New())
	conn := newFakeConn()
	registry.Register(key, conn)

	removed := registry.RemoveByConnection(conn)
	assert.Equal(t, []entity.IdentityKey{key}, removed)

	_, ok := registry.Lookup(key)
	assert.False(t, ok)

	// Idempotent.
	assert.Empty(t, registry.RemoveByConnection(conn))
}

func TestConnectionRegistry_ReRegisterUnderNewKeyMovesConnection(t *testing.T) {
	registry := NewConnectionRegistry()
	shopID := uuid.New()
	oldKey, newKey := cashierKey(shopID, uuid.New()), cashierKey(shopID, uuid.New())
	conn := newFakeConn()

	registry.Register(oldKey, conn)
	registry.Register(newKey, conn)

	_, ok := registry.Lookup(oldKey)
	assert.False(t, ok)
	_, ok = registry.Lookup(newKey)
	assert.True(t, ok)
}

func TestConnectionRegistry_CountOnline(t *testing.T) {
	registry := NewConnectionRegistry()
	shopID, otherShop := uuid.New(), uuid.New()
	branchA, branchB := uuid.New(), uuid.New()

	registry.Register(entity.NewIdentityKey(entity.RoleAdmin, shopID, uuid.Nil), newFakeConn())
	registry.Register(entity.NewIdentityKey(entity.RoleManager, shopID, branchA), newFakeConn())
	registry.Register(entity.NewIdentityKey(entity.RoleManager, shopID, branchB), newFakeConn())
	registry.Register(cashierKey(shopID, branchA), newFakeConn())
	registry.Register(cashierKey(otherShop, uuid.New()), newFakeConn())

	counts := registry.CountOnline(shopID)
	assert.Equal(t, entity.OnlineCounts{Admin: 1, Managers: 2, Cashiers: 1}, counts)
	assert.Equal(t, 4, counts.Total())

	assert.Equal(t, entity.OnlineCounts{Cashiers: 1}, registry.CountOnline(otherShop))
	assert.Equal(t, entity.OnlineCounts{}, registry.CountOnline(uuid.New()))
}

func TestConnectionRegistry_ConcurrentRegisterAndStaleRemove(t *testing.T) {
	registry := NewConnectionRegistry()
	key := cashierKey(uuid.New(), uuid.New())

	const sessions = 64
	conns := make([]*fakeConn, sessions)
	for i := range conns {
		conns[i] = newFakeConn()
	}

	var wg sync.WaitGroup
	for _, conn := range conns {
		wg.Add(1)
		go func() {
			defer wg.Done()
			registry.Register(key, conn)
		}()
	}
	wg.Wait()

	current, ok := registry.Lookup(key)
	require.True(t, ok)

	for _, conn := range conns {
		if conn.ID() == current.ID() {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			registry.RemoveByConnection(conn)
		}()
	}
	wg.Wait()

	got, ok := registry.Lookup(key)
	require.True(t, ok)
	assert.Equal(t, current.ID(), got.ID())
}
