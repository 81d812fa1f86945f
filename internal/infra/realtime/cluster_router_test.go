package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"restops/internal/domain/entity"
	"restops/internal/infra/broker"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type publishedFrame struct {
	routingKey string
	body       []byte
}

type fakeBus struct {
	nodeID     string
	publishErr error
	frames     chan broker.Delivery

	mu        sync.Mutex
	published []publishedFrame
	bindings  []string
}

func (b *fakeBus) Publish(_ context.Context, routingKey string, body []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = append(b.published, publishedFrame{routingKey: routingKey, body: body})

	return b.publishErr
}

func (b *fakeBus) Subscribe(_ context.Context, routingKeys ...string) (<-chan broker.Delivery, error) {
	b.bindings = routingKeys

	return b.frames, nil
}

func (b *fakeBus) NodeID() string { return b.nodeID }

func TestClusterRouter_PublishDeliversLocallyAndForwards(t *testing.T) {
	bus := &fakeBus{nodeID: "node-a"}
	router := NewClusterRouter(NewTopicRouter(newDiscardLogger()), bus, newDiscardLogger())
	branchID := uuid.New()

	conn := newFakeConn()
	router.JoinTopics(conn, entity.NewIdentityKey(entity.RoleCashier, uuid.New(), branchID))

	reached := router.Publish(context.Background(), entity.BranchTopic(branchID), "branch-message", map[string]string{"message": "restock"})

	assert.Equal(t, 1, reached)
	require.Len(t, bus.published, 1)
	assert.Equal(t, "branch."+branchID.String(), bus.published[0].routingKey)

	var frame clusterFrame
	require.NoError(t, json.Unmarshal(bus.published[0].body, &frame))
	assert.Equal(t, entity.BranchTopic(branchID), frame.Topic)
	assert.Equal(t, "branch-message", frame.Event)
	assert.JSONEq(t, `{"message":"restock"}`, string(frame.Payload))
}

func TestClusterRouter_BusFailureKeepsLocalDelivery(t *testing.T) {
	bus := &fakeBus{nodeID: "node-a", publishErr: errors.New("broker down")}
	router := NewClusterRouter(NewTopicRouter(newDiscardLogger()), bus, newDiscardLogger())
	shopID := uuid.New()

	conn := newFakeConn()
	router.JoinTopics(conn, entity.NewIdentityKey(entity.RoleAdmin, shopID, uuid.Nil))

	assert.Equal(t, 1, router.Publish(context.Background(), entity.ShopTopic(shopID), "shop-message", nil))
	assert.Len(t, conn.received(), 1)
}

func TestClusterRouter_RunDeliversForeignFramesOnly(t *testing.T) {
	bus := &fakeBus{nodeID: "node-a", frames: make(chan broker.Delivery, 3)}
	router := NewClusterRouter(NewTopicRouter(newDiscardLogger()), bus, newDiscardLogger())
	shopID := uuid.New()

	conn := newFakeConn()
	router.JoinTopics(conn, entity.NewIdentityKey(entity.RoleAdmin, shopID, uuid.Nil))

	body, err := json.Marshal(clusterFrame{
		Topic:   entity.ShopTopic(shopID),
		Event:   "emergency-notification",
		Payload: json.RawMessage(`{"message":"fire drill"}`),
	})
	require.NoError(t, err)

	bus.frames <- broker.Delivery{NodeID: "node-a", Body: body}
	bus.frames <- broker.Delivery{NodeID: "node-b", Body: body}
	bus.frames <- broker.Delivery{NodeID: "node-b", Body: []byte("not json")}
	close(bus.frames)

	require.NoError(t, router.Run(context.Background()))

	assert.Equal(t, []string{"shop.*", "branch.*"}, bus.bindings)
	events := conn.received()
	require.Len(t, events, 1)
	assert.Equal(t, "emergency-notification", events[0].Event)
	assert.Equal(t, json.RawMessage(`{"message":"fire drill"}`), events[0].Payload)
}
