package impl

import (
	"context"
	"testing"
	"time"

	"restops/internal/domain/constants"
	"restops/internal/domain/entity"
	domainerrors "restops/internal/domain/errors"
	"restops/internal/domain/service"
	"restops/internal/infra/realtime"
	mockRepo "restops/internal/mocks/repository"
	"restops/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type alertFixtures struct {
	service   *alertService
	directory *mockRepo.MockStaffDirectoryRepository
	registry  service.ConnectionRegistry
	router    service.TopicRouter
	shop      testShop
}

func createTestAlertService(t *testing.T) alertFixtures {
	directory := mockRepo.NewMockStaffDirectoryRepository(t)
	registry := realtime.NewConnectionRegistry()
	router := realtime.NewTopicRouter(newDiscardLogger())

	svc := NewAlertService(AlertServiceParams{
		Directory: directory,
		Registry:  registry,
		Router:    router,
		Logger:    newDiscardLogger(),
	}).(*alertService)
	svc.now = func() time.Time { return fixedNow }

	return alertFixtures{
		service:   svc,
		directory: directory,
		registry:  registry,
		router:    router,
		shop:      newTestShop(),
	}
}

func (f alertFixtures) connect(p entity.Principal) *fakeConn {
	conn := newFakeConn()
	f.registry.Register(p.Key(), conn)
	f.router.JoinTopics(conn, p.Key())

	return conn
}

func TestAlertService_OrderStatusChanged_DefaultsToOwnBranch(t *testing.T) {
	fx := createTestAlertService(t)
	manager := fx.connect(fx.shop.managerA)
	other := fx.connect(fx.shop.managerB)

	reached, err := fx.service.OrderStatusChanged(context.Background(), fx.shop.cashierA, usecase.OrderStatusInput{
		OrderID: "A-1042",
		Status:  "ready",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, reached)

	require.Len(t, manager.received(), 1)
	event, ok := manager.received()[0].Payload.(usecase.OrderNotificationEvent)
	require.True(t, ok)
	assert.Equal(t, "A-1042", event.OrderID)
	assert.Equal(t, fx.shop.branchA, event.BranchID)
	assert.Equal(t, fixedNow, event.Timestamp)
	assert.Empty(t, other.received())
}

func TestAlertService_OrderStatusChanged_RejectsOtherBranch(t *testing.T) {
	fx := createTestAlertService(t)

	_, err := fx.service.OrderStatusChanged(context.Background(), fx.shop.cashierA, usecase.OrderStatusInput{
		OrderID:  "A-1042",
		Status:   "ready",
		BranchID: fx.shop.branchB,
	})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAlertService_OrderStatusChanged_RequiresFields(t *testing.T) {
	fx := createTestAlertService(t)

	_, err := fx.service.OrderStatusChanged(context.Background(), fx.shop.cashierA, usecase.OrderStatusInput{OrderID: " "})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAlertService_InventoryAlert_ReachesBranchAndAdmin(t *testing.T) {
	fx := createTestAlertService(t)
	admin := fx.connect(fx.shop.admin)
	cashier := fx.connect(fx.shop.cashierA)

	reached, err := fx.service.InventoryAlert(context.Background(), fx.shop.managerA, usecase.InventoryAlertInput{
		Ingredient: "rice noodles",
		Quantity:   2,
		Threshold:  10,
	})
	require.NoError(t, err)
	// The manager's own connection is not registered here, so the cashier and the admin are reached.
	assert.Equal(t, 2, reached)

	require.Len(t, admin.received(), 1)
	assert.Equal(t, constants.EventInventoryNotification, admin.received()[0].Event)
	event, ok := admin.received()[0].Payload.(usecase.InventoryNotificationEvent)
	require.True(t, ok)
	assert.Equal(t, "Downtown", event.BranchName)
	assert.Len(t, cashier.received(), 1)
}

func TestAlertService_InventoryAlert_AdminLooksUpBranchName(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	admin := fx.connect(fx.shop.admin)

	fx.directory.EXPECT().
		FindBranch(ctx, fx.shop.id, fx.shop.branchB).
		Return(&entity.Branch{ID: fx.shop.branchB, ShopID: fx.shop.id, Name: "Harbor"}, nil)

	_, err := fx.service.InventoryAlert(ctx, fx.shop.admin, usecase.InventoryAlertInput{
		BranchID:   fx.shop.branchB,
		Ingredient: "chili oil",
	})
	require.NoError(t, err)
	// Admins are not pushed their own alert.
	assert.Empty(t, admin.received())
}

func TestAlertService_EmergencyAlert_ShopWide(t *testing.T) {
	fx := createTestAlertService(t)
	conns := []*fakeConn{
		fx.connect(fx.shop.admin),
		fx.connect(fx.shop.managerA),
		fx.connect(fx.shop.cashierB),
	}

	reached, err := fx.service.EmergencyAlert(context.Background(), fx.shop.cashierB, usecase.EmergencyAlertInput{
		Message: "Gas leak reported",
	})
	require.NoError(t, err)
	assert.Equal(t, len(conns), reached)

	event, ok := conns[0].received()[0].Payload.(usecase.EmergencyNotificationEvent)
	require.True(t, ok)
	assert.Equal(t, "high", event.Severity)
	require.NotNil(t, event.BranchID)
	assert.Equal(t, fx.shop.branchB, *event.BranchID)
}

func TestAlertService_EmergencyAlert_RequiresMessage(t *testing.T) {
	fx := createTestAlertService(t)

	_, err := fx.service.EmergencyAlert(context.Background(), fx.shop.admin, usecase.EmergencyAlertInput{})
	assert.ErrorIs(t, err, domainerrors.ErrEmptyContent)
}
