package realtime

import (
	"context"
	"log/slog"
	"sync"

	"restops/internal/domain/entity"
	"restops/internal/domain/service"
	"restops/internal/infra/metrics"
)

// LocalRouter tracks per-connection topic membership. Unlike the registry it
// keeps every joined connection, so a broadcast reaches all sessions in scope.
type LocalRouter struct {
	logger *slog.Logger

	mu          sync.RWMutex
	subscribers map[entity.Topic]map[string]service.Connection
	memberships map[string][]entity.Topic
}

// NewTopicRouter creates the process-local router.
func NewTopicRouter(logger *slog.Logger) *LocalRouter {
	return &LocalRouter{
		logger:      logger,
		subscribers: make(map[entity.Topic]map[string]service.Connection),
		memberships: make(map[string][]entity.Topic),
	}
}

// JoinTopics subscribes conn to the topics of key, replacing earlier memberships.
func (r *LocalRouter) JoinTopics(conn service.Connection, key entity.IdentityKey) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.leaveLocked(conn.ID())

	topics := key.Topics()
	for _, topic := range topics {
		members, ok := r.subscribers[topic]
		if !ok {
			members = make(map[string]service.Connection)
			r.subscribers[topic] = members
		}
		members[conn.ID()] = conn
	}
	r.memberships[conn.ID()] = topics
}

// Leave drops conn from every topic it joined.
func (r *LocalRouter) Leave(conn service.Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.leaveLocked(conn.ID())
}

func (r *LocalRouter) leaveLocked(connID string) {
	for _, topic := range r.memberships[connID] {
		members := r.subscribers[topic]
		delete(members, connID)
		if len(members) == 0 {
			delete(r.subscribers, topic)
		}
	}
	delete(r.memberships, connID)
}

// Publish sends the event to every current subscriber of topic. Sends happen
// outside the lock; a subscriber that cannot take the event is skipped.
func (r *LocalRouter) Publish(ctx context.Context, topic entity.Topic, event string, payload any) int {
	r.mu.RLock()
	targets := make([]service.Connection, 0, len(r.subscribers[topic]))
	for _, conn := range r.subscribers[topic] {
		targets = append(targets, conn)
	}
	r.mu.RUnlock()

	reached := 0
	for _, conn := range targets {
		if err := conn.Send(event, payload); err != nil {
			r.logger.LogAttrs(ctx, slog.LevelDebug, "Topic subscriber skipped",
				slog.String("topic", topic.String()),
				slog.String("connection_id", conn.ID()),
				slog.String("error", err.Error()),
			)

			continue
		}
		reached++
	}

	metrics.BroadcastFanout.WithLabelValues(string(topic.Scope())).Add(float64(reached))

	return reached
}

// Subscribers returns how many connections joined topic.
func (r *LocalRouter) Subscribers(topic entity.Topic) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.subscribers[topic])
}
