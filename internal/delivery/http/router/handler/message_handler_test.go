package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverycontext "restops/internal/delivery/context"
	"restops/internal/delivery/http/validator"
	"restops/internal/domain/entity"
	domainerrors "restops/internal/domain/errors"
	mockUsecase "restops/internal/mocks/usecase"
	"restops/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

type messageHandlerFixtures struct {
	handler  *MessageHandler
	store    *mockUsecase.MockMessageStore
	dispatch *mockUsecase.MockDispatchUsecase
	echo     *echo.Echo
}

func createTestMessageHandler(t *testing.T) *messageHandlerFixtures {
	store := mockUsecase.NewMockMessageStore(t)
	dispatch := mockUsecase.NewMockDispatchUsecase(t)

	e := echo.New()
	e.Validator = validator.New()

	return &messageHandlerFixtures{
		handler: NewMessageHandler(MessageHandlerParams{
			Store:    store,
			Dispatch: dispatch,
			Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		}),
		store:    store,
		dispatch: dispatch,
		echo:     e,
	}
}

// newContext builds a request context. A nil principal leaves it unauthenticated.
func (fx *messageHandlerFixtures) newContext(method, target, body string, principal *entity.Principal) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	if principal != nil {
		deliverycontext.SetPrincipal(c, *principal)
	}

	return c, rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func cashierPrincipal() entity.Principal {
	return entity.Principal{ID: uuid.New(), Role: entity.RoleCashier, ShopID: uuid.New(), BranchID: uuid.New()}
}

func TestMessageHandler_ListMessages(t *testing.T) {
	fx := createTestMessageHandler(t)
	principal := cashierPrincipal()
	sent := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	message := &entity.Message{ID: uuid.New(), ShopID: principal.ShopID, Content: "hi", Status: entity.MessageStatusDelivered, SentAt: sent}

	fx.store.EXPECT().
		ListForIdentity(mock.Anything, principal, mock.MatchedBy(func(f entity.MessageFilter) bool {
			return f.Status != nil && *f.Status == entity.MessageStatusDelivered && f.Page == entity.Page{Limit: 10, Skip: 5}
		})).
		Return(&entity.MessagePage{Messages: []*entity.Message{message}, Total: 6, Limit: 10, Skip: 5}, nil)

	c, rec := fx.newContext(http.MethodGet, "/messages?status=delivered&limit=10&skip=5", "", &principal)
	require.NoError(t, fx.handler.ListMessages(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	var data MessageListResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Messages, 1)
	assert.Equal(t, message.ID, data.Messages[0].ID)
	assert.Equal(t, int64(6), data.Pagination.Total)
	assert.Equal(t, 10, data.Pagination.Limit)
	assert.Equal(t, 5, data.Pagination.Skip)
}

func TestMessageHandler_ListMessages_BadQuery(t *testing.T) {
	tests := []struct {
		name   string
		target string
		code   string
	}{
		{name: "unknown status", target: "/messages?status=lost", code: "VALIDATION_FAILED"},
		{name: "non numeric limit", target: "/messages?limit=ten", code: "VALIDATION_FAILED"},
		{name: "negative skip", target: "/messages?skip=-1", code: "VALIDATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMessageHandler(t)
			principal := cashierPrincipal()

			c, rec := fx.newContext(http.MethodGet, tt.target, "", &principal)
			require.NoError(t, fx.handler.ListMessages(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.code, decodeEnvelope(t, rec).Error.Code)
		})
	}
}

func TestMessageHandler_RequiresPrincipal(t *testing.T) {
	fx := createTestMessageHandler(t)

	c, rec := fx.newContext(http.MethodGet, "/messages/unread-count", "", nil)
	require.NoError(t, fx.handler.UnreadCount(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", decodeEnvelope(t, rec).Error.Code)
}

func TestMessageHandler_SendDirect(t *testing.T) {
	fx := createTestMessageHandler(t)
	principal := cashierPrincipal()
	recipient := uuid.New()
	messageID := uuid.New()

	fx.dispatch.EXPECT().
		SendDirect(mock.Anything, principal, usecase.DirectMessageInput{
			RecipientRole: entity.RoleManager,
			RecipientID:   recipient,
			Content:       "Out of receipt paper",
			Priority:      entity.PriorityHigh,
		}).
		Return(&usecase.SendResult{Message: &entity.Message{ID: messageID}, Delivered: true, Reached: 1}, nil)

	body := `{"recipient_role":"manager","recipient_id":"` + recipient.String() + `","content":"Out of receipt paper","priority":"high"}`
	c, rec := fx.newContext(http.MethodPost, "/messages/send", body, &principal)
	require.NoError(t, fx.handler.SendDirect(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var data SendResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))
	assert.Equal(t, messageID, data.MessageID)
	assert.True(t, data.Delivered)
}

func TestMessageHandler_SendDirect_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing content", body: `{"recipient_role":"manager","recipient_id":"` + uuid.NewString() + `"}`},
		{name: "unknown role", body: `{"recipient_role":"chef","recipient_id":"` + uuid.NewString() + `","content":"x"}`},
		{name: "unknown priority", body: `{"recipient_role":"manager","recipient_id":"` + uuid.NewString() + `","content":"x","priority":"asap"}`},
		{name: "missing recipient", body: `{"recipient_role":"manager","content":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMessageHandler(t)
			principal := cashierPrincipal()

			c, rec := fx.newContext(http.MethodPost, "/messages/send", tt.body, &principal)
			require.NoError(t, fx.handler.SendDirect(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
		})
	}
}

func TestMessageHandler_SendDirect_MapsDomainErrors(t *testing.T) {
	fx := createTestMessageHandler(t)
	principal := cashierPrincipal()

	fx.dispatch.EXPECT().
		SendDirect(mock.Anything, principal, mock.Anything).
		Return(nil, domainerrors.ErrRecipientNotFound)

	body := `{"recipient_role":"manager","recipient_id":"` + uuid.NewString() + `","content":"hello"}`
	c, rec := fx.newContext(http.MethodPost, "/messages/send", body, &principal)
	require.NoError(t, fx.handler.SendDirect(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "RECIPIENT_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}

func TestMessageHandler_UnexpectedErrorsReachCentralHandler(t *testing.T) {
	fx := createTestMessageHandler(t)
	principal := cashierPrincipal()
	boom := errors.New("connection reset")

	fx.store.EXPECT().CountUnread(mock.Anything, principal).Return(int64(0), boom)

	c, _ := fx.newContext(http.MethodGet, "/messages/unread-count", "", &principal)
	assert.ErrorIs(t, fx.handler.UnreadCount(c), boom)
}

func TestMessageHandler_UnreadCount(t *testing.T) {
	fx := createTestMessageHandler(t)
	principal := cashierPrincipal()

	fx.store.EXPECT().CountUnread(mock.Anything, principal).Return(int64(3), nil)

	c, rec := fx.newContext(http.MethodGet, "/messages/unread-count", "", &principal)
	require.NoError(t, fx.handler.UnreadCount(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"unread_count":3}`, string(decodeEnvelope(t, rec).Data))
}

func TestMessageHandler_MarkRead(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		fx := createTestMessageHandler(t)
		principal := cashierPrincipal()

		c, rec := fx.newContext(http.MethodPut, "/messages/nope/read", "", &principal)
		c.SetParamNames("messageId")
		c.SetParamValues("nope")
		require.NoError(t, fx.handler.MarkRead(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_MESSAGE_ID", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("not the recipient", func(t *testing.T) {
		fx := createTestMessageHandler(t)
		principal := cashierPrincipal()
		messageID := uuid.New()

		fx.store.EXPECT().MarkRead(mock.Anything, messageID, principal).Return(nil, domainerrors.ErrNotMessageRecipient)

		c, rec := fx.newContext(http.MethodPut, "/", "", &principal)
		c.SetParamNames("messageId")
		c.SetParamValues(messageID.String())
		require.NoError(t, fx.handler.MarkRead(c))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "NOT_MESSAGE_RECIPIENT", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("read", func(t *testing.T) {
		fx := createTestMessageHandler(t)
		principal := cashierPrincipal()
		messageID := uuid.New()
		readAt := time.Date(2026, 3, 1, 12, 5, 0, 0, time.UTC)

		fx.store.EXPECT().MarkRead(mock.Anything, messageID, principal).
			Return(&entity.Message{ID: messageID, Status: entity.MessageStatusRead, ReadAt: &readAt}, nil)

		c, rec := fx.newContext(http.MethodPut, "/", "", &principal)
		c.SetParamNames("messageId")
		c.SetParamValues(messageID.String())
		require.NoError(t, fx.handler.MarkRead(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var data MessageResponse
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))
		assert.Equal(t, entity.MessageStatusRead, data.Status)
		require.NotNil(t, data.ReadAt)
		assert.True(t, readAt.Equal(*data.ReadAt))
	})
}

func TestMessageHandler_DeleteMessage(t *testing.T) {
	fx := createTestMessageHandler(t)
	principal := cashierPrincipal()
	messageID := uuid.New()

	fx.store.EXPECT().SoftDelete(mock.Anything, messageID, principal).Return(true, nil)

	c, rec := fx.newContext(http.MethodDelete, "/", "", &principal)
	c.SetParamNames("messageId")
	c.SetParamValues(messageID.String())
	require.NoError(t, fx.handler.DeleteMessage(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":true,"removed":true}`, string(decodeEnvelope(t, rec).Data))
}

func TestMessageHandler_Conversation(t *testing.T) {
	fx := createTestMessageHandler(t)
	principal := cashierPrincipal()
	other := uuid.New()

	fx.store.EXPECT().
		Conversation(mock.Anything, principal, other, entity.RoleManager, entity.Page{Limit: 20}).
		Return(&entity.MessagePage{Limit: 20}, nil)

	c, rec := fx.newContext(http.MethodGet, "/?limit=20", "", &principal)
	c.SetParamNames("otherUserId", "otherUserRole")
	c.SetParamValues(other.String(), "manager")
	require.NoError(t, fx.handler.Conversation(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var data MessageListResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))
	assert.NotNil(t, data.Messages)
	assert.Empty(t, data.Messages)
}

func TestMessageHandler_BranchBroadcast(t *testing.T) {
	fx := createTestMessageHandler(t)
	manager := entity.Principal{ID: uuid.New(), Role: entity.RoleManager, ShopID: uuid.New(), BranchID: uuid.New()}
	messageID := uuid.New()

	fx.dispatch.EXPECT().
		SendBroadcast(mock.Anything, manager, usecase.BroadcastInput{
			Scope:    entity.BroadcastScopeBranch,
			BranchID: manager.BranchID,
			Content:  "Staff meeting at 3",
		}).
		Return(&usecase.SendResult{Message: &entity.Message{ID: messageID}, Reached: 4}, nil)

	c, rec := fx.newContext(http.MethodPost, "/", `{"content":"Staff meeting at 3"}`, &manager)
	c.SetParamNames("branchId")
	c.SetParamValues(manager.BranchID.String())
	require.NoError(t, fx.handler.BranchBroadcast(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var data SendResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))
	assert.Equal(t, messageID, data.MessageID)
	assert.Equal(t, 4, data.Reached)
}

func TestMessageHandler_BranchBroadcast_Forbidden(t *testing.T) {
	fx := createTestMessageHandler(t)
	manager := entity.Principal{ID: uuid.New(), Role: entity.RoleManager, ShopID: uuid.New(), BranchID: uuid.New()}
	otherBranch := uuid.New()

	fx.dispatch.EXPECT().
		SendBroadcast(mock.Anything, manager, mock.Anything).
		Return(nil, domainerrors.ErrBroadcastForbidden)

	c, rec := fx.newContext(http.MethodPost, "/", `{"content":"hello"}`, &manager)
	c.SetParamNames("branchId")
	c.SetParamValues(otherBranch.String())
	require.NoError(t, fx.handler.BranchBroadcast(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "BROADCAST_FORBIDDEN", decodeEnvelope(t, rec).Error.Code)
}

func TestMessageHandler_BranchBroadcasts(t *testing.T) {
	fx := createTestMessageHandler(t)
	principal := cashierPrincipal()

	fx.store.EXPECT().
		ListBranchBroadcasts(mock.Anything, principal, principal.BranchID, entity.Page{}).
		Return(&entity.MessagePage{Limit: 20}, nil)

	c, rec := fx.newContext(http.MethodGet, "/", "", &principal)
	c.SetParamNames("branchId")
	c.SetParamValues(principal.BranchID.String())
	require.NoError(t, fx.handler.BranchBroadcasts(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMessageHandler_ShopBroadcast(t *testing.T) {
	fx := createTestMessageHandler(t)
	shopID := uuid.New()
	admin := entity.Principal{ID: shopID, Role: entity.RoleAdmin, ShopID: shopID}

	fx.dispatch.EXPECT().
		SendBroadcast(mock.Anything, admin, usecase.BroadcastInput{
			Scope:    entity.BroadcastScopeShop,
			ShopID:   shopID,
			Content:  "Closing early today",
			Priority: entity.PriorityUrgent,
		}).
		Return(&usecase.SendResult{Message: &entity.Message{ID: uuid.New()}, Reached: 7}, nil)

	c, rec := fx.newContext(http.MethodPost, "/messages/shop/broadcast", `{"content":"Closing early today","priority":"urgent"}`, &admin)
	require.NoError(t, fx.handler.ShopBroadcast(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestMessageHandler_ShopBroadcasts(t *testing.T) {
	fx := createTestMessageHandler(t)
	principal := cashierPrincipal()

	fx.store.EXPECT().
		ListShopBroadcasts(mock.Anything, principal, entity.Page{Limit: 5}).
		Return(&entity.MessagePage{Limit: 5}, nil)

	c, rec := fx.newContext(http.MethodGet, "/messages/shop/broadcasts?limit=5", "", &principal)
	require.NoError(t, fx.handler.ShopBroadcasts(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}
