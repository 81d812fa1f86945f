package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"restops/internal/domain/entity"
	"restops/internal/domain/service"
	"restops/internal/infra/broker"
	"restops/internal/infra/metrics"
)

// TopicBus is the cross-node transport used by ClusterRouter.
type TopicBus interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
	Subscribe(ctx context.Context, routingKeys ...string) (<-chan broker.Delivery, error)
	NodeID() string
}

// Routing key patterns covering every topic.
var clusterBindings = []string{"shop.*", "branch.*"} //nolint:gochecknoglobals

type clusterFrame struct {
	Topic   entity.Topic    `json:"topic"`
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// ClusterRouter delivers locally first, then mirrors the event to the other
// nodes through the bus. Membership stays node-local.
type ClusterRouter struct {
	local  *LocalRouter
	bus    TopicBus
	logger *slog.Logger
}

// NewClusterRouter wraps local with cross-node fan-out.
func NewClusterRouter(local *LocalRouter, bus TopicBus, logger *slog.Logger) *ClusterRouter {
	return &ClusterRouter{local: local, bus: bus, logger: logger}
}

var _ service.TopicRouter = (*ClusterRouter)(nil)

// JoinTopics implements service.TopicRouter.
func (r *ClusterRouter) JoinTopics(conn service.Connection, key entity.IdentityKey) {
	r.local.JoinTopics(conn, key)
}

// Leave implements service.TopicRouter.
func (r *ClusterRouter) Leave(conn service.Connection) {
	r.local.Leave(conn)
}

// Publish delivers to local subscribers and forwards the event to the bus.
// A bus failure is logged; local delivery has already happened.
func (r *ClusterRouter) Publish(ctx context.Context, topic entity.Topic, event string, payload any) int {
	reached := r.local.Publish(ctx, topic, event, payload)

	raw, err := json.Marshal(payload)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to encode cluster payload", slog.String("topic", topic.String()), slog.Any("error", err))

		return reached
	}
	body, err := json.Marshal(clusterFrame{Topic: topic, Event: event, Payload: raw})
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to encode cluster frame", slog.String("topic", topic.String()), slog.Any("error", err))

		return reached
	}

	if err := r.bus.Publish(ctx, routingKey(topic), body); err != nil {
		metrics.BrokerPublishFailures.Inc()
		r.logger.WarnContext(ctx, "Failed to forward topic event to broker",
			slog.String("topic", topic.String()),
			slog.String("event", event),
			slog.Any("error", err),
		)
	}

	return reached
}

// Run consumes frames from other nodes until ctx ends.
func (r *ClusterRouter) Run(ctx context.Context) error {
	frames, err := r.bus.Subscribe(ctx, clusterBindings...)
	if err != nil {
		return err
	}

	for d := range frames {
		r.handle(ctx, d)
	}

	return nil
}

func (r *ClusterRouter) handle(ctx context.Context, d broker.Delivery) {
	if d.NodeID == r.bus.NodeID() {
		return
	}

	var frame clusterFrame
	if err := json.Unmarshal(d.Body, &frame); err != nil {
		r.logger.WarnContext(ctx, "Dropped malformed cluster frame", slog.String("routing_key", d.RoutingKey), slog.Any("error", err))

		return
	}
	if frame.Topic.Scope() == "" {
		r.logger.WarnContext(ctx, "Dropped cluster frame with unknown topic", slog.String("topic", frame.Topic.String()))

		return
	}

	r.local.Publish(ctx, frame.Topic, frame.Event, frame.Payload)
}

// routingKey maps "shop:{id}" to "shop.{id}".
func routingKey(topic entity.Topic) string {
	return strings.Replace(topic.String(), ":", ".", 1)
}
