package service

import (
	"context"

	"restops/internal/domain/entity"

	"github.com/google/uuid"
)

// Connection is a live transport session as seen by the messaging core.
type Connection interface {
	// ID is unique per connection for the process lifetime.
	ID() string

	// Send queues an event for the client. It fails with ErrTransportUnavailable
	// when the connection cannot take more events.
	Send(event string, payload any) error

	// Close ends the session with an optional final event.
	Close(reason string)
}

// ConnectionRegistry maps each identity key to its single live connection.
type ConnectionRegistry interface {
	// Register binds conn to key and returns the connection it evicted, if any.
	Register(key entity.IdentityKey, conn Connection) (evicted Connection)

	// Lookup returns the live connection of key.
	Lookup(key entity.IdentityKey) (Connection, bool)

	// RemoveByConnection drops every mapping that still points at conn.
	RemoveByConnection(conn Connection) []entity.IdentityKey

	// CountOnline aggregates the registered identities of a shop.
	CountOnline(shopID uuid.UUID) entity.OnlineCounts
}

// TopicRouter fans events out to every connection subscribed to a topic.
type TopicRouter interface {
	// JoinTopics subscribes conn to the shop topic and, if any, the branch topic of key.
	JoinTopics(conn Connection, key entity.IdentityKey)

	// Leave drops conn from every topic.
	Leave(conn Connection)

	// Publish delivers the event to every subscriber and returns how many accepted it.
	Publish(ctx context.Context, topic entity.Topic, event string, payload any) int
}
