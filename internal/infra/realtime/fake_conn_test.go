package realtime

import (
	"sync"

	domainerrors "restops/internal/domain/errors"

	"github.com/google/uuid"
)

type sentEvent struct {
	Event   string
	Payload any
}

type fakeConn struct {
	id       string
	failSend bool

	mu     sync.Mutex
	events []sentEvent
	closed string
}

func newFakeConn() *fakeConn {
	return &fakeConn{id: uuid.NewString()}
}

func (c *fakeConn) ID() string { return c.id }

func (c *fakeConn) Send(event string, payload any) error {
	if c.failSend {
		return domainerrors.ErrTransportUnavailable
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, sentEvent{Event: event, Payload: payload})

	return nil
}

func (c *fakeConn) Close(reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = reason
}

func (c *fakeConn) received() []sentEvent {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]sentEvent(nil), c.events...)
}
