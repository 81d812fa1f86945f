// Package realtime keeps the in-process tables of live connections: the
// identity registry and the topic router.
package realtime

import (
	"sync"

	"restops/internal/domain/entity"
	"restops/internal/domain/service"
	"restops/internal/infra/metrics"

	"github.com/google/uuid"
)

// connectionRegistry maps identity keys to their single live connection.
// Mutations take the write lock; Lookup and CountOnline share the read lock.
type connectionRegistry struct {
	mu     sync.RWMutex
	byKey  map[entity.IdentityKey]service.Connection
	byConn map[string]entity.IdentityKey // connection id -> key it currently holds
}

// NewConnectionRegistry creates an empty registry. One instance serves the whole process.
func NewConnectionRegistry() service.ConnectionRegistry {
	return &connectionRegistry{
		byKey:  make(map[entity.IdentityKey]service.Connection),
		byConn: make(map[string]entity.IdentityKey),
	}
}

// Register binds conn to key. A different connection already holding key is
// evicted and returned so the caller can close its transport.
func (r *connectionRegistry) Register(key entity.IdentityKey, conn service.Connection) service.Connection {
	r.mu.Lock()
	defer r.mu.Unlock()

	// A connection represents one identity; re-registering under a new key moves it.
	if prevKey, ok := r.byConn[conn.ID()]; ok && prevKey != key {
		if r.byKey[prevKey] != nil && r.byKey[prevKey].ID() == conn.ID() {
			delete(r.byKey, prevKey)
			metrics.WSConnections.WithLabelValues(prevKey.Role.String()).Dec()
		}
	}

	var evicted service.Connection
	current, exists := r.byKey[key]
	switch {
	case !exists:
		metrics.WSConnections.WithLabelValues(key.Role.String()).Inc()
	case current.ID() != conn.ID():
		evicted = current
		delete(r.byConn, current.ID())
		metrics.RegistryEvictions.Inc()
	}

	r.byKey[key] = conn
	r.byConn[conn.ID()] = key

	return evicted
}

// Lookup returns the connection currently registered for key.
func (r *connectionRegistry) Lookup(key entity.IdentityKey) (service.Connection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conn, ok := r.byKey[key]

	return conn, ok
}

// RemoveByConnection removes the mapping held by conn. It is a no-op when conn
// was already superseded, so a late disconnect never evicts a newer session.
func (r *connectionRegistry) RemoveByConnection(conn service.Connection) []entity.IdentityKey {
	r.mu.Lock()
	defer r.mu.Unlock()

	key, ok := r.byConn[conn.ID()]
	if !ok {
		return nil
	}
	delete(r.byConn, conn.ID())

	current, exists := r.byKey[key]
	if !exists || current.ID() != conn.ID() {
		return nil
	}
	delete(r.byKey, key)
	metrics.WSConnections.WithLabelValues(key.Role.String()).Dec()

	return []entity.IdentityKey{key}
}

// CountOnline aggregates the registered identities of one shop.
func (r *connectionRegistry) CountOnline(shopID uuid.UUID) entity.OnlineCounts {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var counts entity.OnlineCounts
	for key := range r.byKey {
		if key.ShopID != shopID {
			continue
		}
		switch key.Role {
		case entity.RoleAdmin:
			counts.Admin = 1
		case entity.RoleManager:
			counts.Managers++
		case entity.RoleCashier:
			counts.Cashiers++
		}
	}

	return counts
}
