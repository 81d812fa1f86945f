package impl

import (
	"context"
	"testing"

	"restops/internal/domain/constants"
	"restops/internal/domain/entity"
	domainerrors "restops/internal/domain/errors"
	mockRepo "restops/internal/mocks/repository"
	mockService "restops/internal/mocks/service"
	mockUsecase "restops/internal/mocks/usecase"
	"restops/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// portFixtures drives the dispatcher through mocked realtime ports.
type portFixtures struct {
	service   usecase.DispatchUsecase
	store     *mockUsecase.MockMessageStore
	directory *mockRepo.MockStaffDirectoryRepository
	registry  *mockService.MockConnectionRegistry
	router    *mockService.MockTopicRouter
	shop      testShop
}

func createPortDispatchService(t *testing.T) portFixtures {
	fx := portFixtures{
		store:     mockUsecase.NewMockMessageStore(t),
		directory: mockRepo.NewMockStaffDirectoryRepository(t),
		registry:  mockService.NewMockConnectionRegistry(t),
		router:    mockService.NewMockTopicRouter(t),
		shop:      newTestShop(),
	}
	fx.service = NewDispatchService(DispatchServiceParams{
		Store:     fx.store,
		Directory: fx.directory,
		Registry:  fx.registry,
		Router:    fx.router,
		Logger:    newDiscardLogger(),
	})

	return fx
}

func TestDispatchService_SendDirect_PushesToRegisteredConnection(t *testing.T) {
	fx := createPortDispatchService(t)
	ctx := context.Background()
	conn := mockService.NewMockConnection(t)

	fx.directory.EXPECT().FindStaff(ctx, entity.RoleManager, fx.shop.managerA.ID).Return(staffOf(fx.shop.managerA), nil)
	fx.store.EXPECT().
		Create(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, d entity.MessageDraft) (*entity.Message, error) {
			return entity.NewMessage(d, fixedNow), nil
		})
	fx.registry.EXPECT().Lookup(fx.shop.managerA.Key()).Return(conn, true)
	conn.EXPECT().
		Send(constants.EventNotification, mock.Anything).
		Run(func(_ string, payload any) {
			event, ok := payload.(usecase.NotificationEvent)
			require.True(t, ok)
			assert.Equal(t, "Table 4 needs a high chair", event.Message)
		}).
		Return(nil)
	fx.store.EXPECT().MarkDelivered(ctx, mock.Anything).Return(nil)

	result, err := fx.service.SendDirect(ctx, fx.shop.cashierA, usecase.DirectMessageInput{
		RecipientRole: entity.RoleManager,
		RecipientID:   fx.shop.managerA.ID,
		Content:       "Table 4 needs a high chair",
	})
	require.NoError(t, err)
	assert.True(t, result.Delivered)
	assert.Equal(t, 1, result.Reached)
}

func TestDispatchService_SendDirect_FullBufferFallsBackToQueued(t *testing.T) {
	fx := createPortDispatchService(t)
	ctx := context.Background()
	conn := mockService.NewMockConnection(t)

	fx.directory.EXPECT().FindStaff(ctx, entity.RoleManager, fx.shop.managerA.ID).Return(staffOf(fx.shop.managerA), nil)
	fx.store.EXPECT().
		Create(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, d entity.MessageDraft) (*entity.Message, error) {
			return entity.NewMessage(d, fixedNow), nil
		})
	fx.registry.EXPECT().Lookup(fx.shop.managerA.Key()).Return(conn, true)
	conn.EXPECT().Send(constants.EventNotification, mock.Anything).Return(domainerrors.ErrTransportUnavailable)
	conn.EXPECT().ID().Return("conn-1")

	result, err := fx.service.SendDirect(ctx, fx.shop.cashierA, usecase.DirectMessageInput{
		RecipientRole: entity.RoleManager,
		RecipientID:   fx.shop.managerA.ID,
		Content:       "hello",
	})
	require.NoError(t, err)
	assert.False(t, result.Delivered)
	fx.store.AssertNotCalled(t, "MarkDelivered", mock.Anything, mock.Anything)
}

func TestDispatchService_SendBroadcast_PublishesOnBranchTopic(t *testing.T) {
	fx := createPortDispatchService(t)
	ctx := context.Background()

	fx.store.EXPECT().
		Create(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, d entity.MessageDraft) (*entity.Message, error) {
			return entity.NewMessage(d, fixedNow), nil
		})
	fx.router.EXPECT().
		Publish(ctx, entity.BranchTopic(fx.shop.branchA), constants.EventBranchMessage, mock.AnythingOfType("usecase.BroadcastEvent")).
		Return(2)

	result, err := fx.service.SendBroadcast(ctx, fx.shop.managerA, usecase.BroadcastInput{
		Scope:    entity.BroadcastScopeBranch,
		BranchID: fx.shop.branchA,
		Content:  "Inventory count at close",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Reached)
	assert.False(t, result.Delivered)
}
