package impl

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"restops/config"
	"restops/internal/domain/entity"
	domainerrors "restops/internal/domain/errors"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Messaging: &config.MessagingConfig{
			DefaultPageSize:   50,
			MaxPageSize:       200,
			BroadcastPageSize: 20,
			MaxContentLength:  100,
		},
	}
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// testShop is one shop with an admin and two branches, each with a manager and a cashier.
type testShop struct {
	id       uuid.UUID
	admin    entity.Principal
	branchA  uuid.UUID
	branchB  uuid.UUID
	managerA entity.Principal
	cashierA entity.Principal
	managerB entity.Principal
	cashierB entity.Principal
}

func newTestShop() testShop {
	shopID, branchA, branchB := uuid.New(), uuid.New(), uuid.New()
	staff := func(role entity.Role, branchID uuid.UUID, branchName string) entity.Principal {
		return entity.Principal{ID: uuid.New(), Role: role, ShopID: shopID, BranchID: branchID, ShopName: "Noodle Bar", BranchName: branchName}
	}

	return testShop{
		id:       shopID,
		admin:    entity.Principal{ID: shopID, Role: entity.RoleAdmin, ShopID: shopID, ShopName: "Noodle Bar"},
		branchA:  branchA,
		branchB:  branchB,
		managerA: staff(entity.RoleManager, branchA, "Downtown"),
		cashierA: staff(entity.RoleCashier, branchA, "Downtown"),
		managerB: staff(entity.RoleManager, branchB, "Harbor"),
		cashierB: staff(entity.RoleCashier, branchB, "Harbor"),
	}
}

func staffOf(p entity.Principal) *entity.StaffMember {
	return &entity.StaffMember{ID: p.ID, Role: p.Role, ShopID: p.ShopID, BranchID: p.BranchID, Name: p.DisplayName()}
}

type sentEvent struct {
	Event   string
	Payload any
}

// fakeConn records pushed events. onSend runs before an event is recorded.
type fakeConn struct {
	id       string
	failSend bool
	onSend   func(event string)

	mu     sync.Mutex
	events []sentEvent
	closed string
}

func newFakeConn() *fakeConn {
	return &fakeConn{id: uuid.NewString()}
}

func (c *fakeConn) ID() string { return c.id }

func (c *fakeConn) Send(event string, payload any) error {
	if c.onSend != nil {
		c.onSend(event)
	}
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
