package ws

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"restops/config"
	deliverycontext "restops/internal/delivery/context"
	"restops/internal/domain/constants"
	"restops/internal/domain/entity"
	"restops/internal/domain/service"
	"restops/internal/infra/realtime"
	mockUsecase "restops/internal/mocks/usecase"
	"restops/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testFrame struct {
	Event string          `json:"event"`
	Ref   string          `json:"ref"`
	Data  json.RawMessage `json:"data"`
}

type wsFixtures struct {
	server     *httptest.Server
	registry   service.ConnectionRegistry
	dispatch   *mockUsecase.MockDispatchUsecase
	alerts     *mockUsecase.MockAlertUsecase
	principals map[string]entity.Principal
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestWSServer(t *testing.T) *wsFixtures {
	logger := newDiscardLogger()
	registry := realtime.NewConnectionRegistry()
	router := realtime.NewTopicRouter(logger)
	dispatch := mockUsecase.NewMockDispatchUsecase(t)
	alerts := mockUsecase.NewMockAlertUsecase(t)

	h := NewHandler(HandlerParams{
		Config:   config.Defaults(),
		Dispatch: dispatch,
		Alerts:   alerts,
		Registry: registry,
		Router:   router,
		Logger:   logger,
	})

	fx := &wsFixtures{
		registry:   registry,
		dispatch:   dispatch,
		alerts:     alerts,
		principals: map[string]entity.Principal{},
	}

	// Stands in for the auth middleware: ?as= names a fixture principal.
	authenticate := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if p, ok := fx.principals[c.QueryParam("as")]; ok {
				deliverycontext.SetPrincipal(c, p)
			}

			return next(c)
		}
	}

	e := echo.New()
	e.GET("/ws", h.Handle, authenticate)
	fx.server = httptest.NewServer(e)
	t.Cleanup(fx.server.Close)

	return fx
}

func (fx *wsFixtures) dial(t *testing.T, as string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(fx.server.URL, "http") + "/ws?as=" + as
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func send(t *testing.T, conn *websocket.Conn, event, ref string, data any) {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(Envelope{Event: event, Ref: ref, Data: raw}))
}

func read(t *testing.T, conn *websocket.Conn) testFrame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var frame testFrame
	require.NoError(t, conn.ReadJSON(&frame))

	return frame
}

func register(t *testing.T, conn *websocket.Conn) {
	t.Helper()
	send(t, conn, constants.EventRegister, "r1", map[string]string{})
	frame := read(t, conn)
	require.Equal(t, constants.EventRegistered, frame.Event)
}

func newPrincipal(role entity.Role) entity.Principal {
	shopID := uuid.New()
	if role == entity.RoleAdmin {
		return entity.Principal{ID: shopID, Role: role, ShopID: shopID}
	}

	return entity.Principal{ID: uuid.New(), Role: role, ShopID: shopID, BranchID: uuid.New()}
}

func TestHandler_RejectsUnauthenticatedUpgrade(t *testing.T) {
	fx := createTestWSServer(t)

	url := "ws" + strings.TrimPrefix(fx.server.URL, "http") + "/ws"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestHandler_RegisterMakesIdentityReachable(t *testing.T) {
	fx := createTestWSServer(t)
	manager := newPrincipal(entity.RoleManager)
	fx.principals["m"] = manager

	conn := fx.dial(t, "m")
	send(t, conn, constants.EventRegister, "r1", registerRequest{Role: entity.RoleManager, ShopID: manager.ShopID, BranchID: manager.BranchID})

	frame := read(t, conn)
	assert.Equal(t, constants.EventRegistered, frame.Event)
	assert.Equal(t, "r1", frame.Ref)
	assert.JSONEq(t, `{"success":true,"role":"manager"}`, string(frame.Data))

	_, online := fx.registry.Lookup(manager.Key())
	assert.True(t, online)
}

func TestHandler_EventsBeforeRegisterAreRejected(t *testing.T) {
	fx := createTestWSServer(t)
	fx.principals["c"] = newPrincipal(entity.RoleCashier)

	conn := fx.dial(t, "c")
	send(t, conn, constants.EventSendDirect, "s1", sendDirectRequest{RecipientRole: entity.RoleManager, RecipientID: uuid.New(), Content: "hi"})

	frame := read(t, conn)
	assert.Equal(t, constants.EventError, frame.Event)
	assert.Equal(t, "s1", frame.Ref)

	var reply errorReply
	require.NoError(t, json.Unmarshal(frame.Data, &reply))
	assert.Equal(t, "NOT_REGISTERED", reply.Code)
	fx.dispatch.AssertNotCalled(t, "SendDirect", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_RegisterRefusesForeignIdentity(t *testing.T) {
	fx := createTestWSServer(t)
	cashier := newPrincipal(entity.RoleCashier)
	fx.principals["c"] = cashier

	conn := fx.dial(t, "c")
	send(t, conn, constants.EventRegister, "", registerRequest{Role: entity.RoleManager})

	frame := read(t, conn)
	assert.Equal(t, constants.EventError, frame.Event)

	var reply errorReply
	require.NoError(t, json.Unmarshal(frame.Data, &reply))
	assert.Equal(t, "INVALID_IDENTITY", reply.Code)

	_, online := fx.registry.Lookup(cashier.Key())
	assert.False(t, online)
}

func TestHandler_SecondConnectionReplacesFirst(t *testing.T) {
	fx := createTestWSServer(t)
	fx.principals["a"] = newPrincipal(entity.RoleAdmin)

	first := fx.dial(t, "a")
	register(t, first)

	second := fx.dial(t, "a")
	register(t, second)

	frame := read(t, first)
	assert.Equal(t, constants.EventSessionReplaced, frame.Event)

	require.NoError(t, first.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := first.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure))

	// The evicted connection's cleanup must not unregister the new one.
	time.Sleep(50 * time.Millisecond)
	_, online := fx.registry.Lookup(fx.principals["a"].Key())
	assert.True(t, online)
}

func TestHandler_SendDirectRepliesWithStatus(t *testing.T) {
	fx := createTestWSServer(t)
	cashier := newPrincipal(entity.RoleCashier)
	fx.principals["c"] = cashier
	recipient := uuid.New()
	messageID := uuid.New()

	fx.dispatch.EXPECT().
		SendDirect(mock.Anything, cashier, usecase.DirectMessageInput{
			RecipientRole: entity.RoleManager,
			RecipientID:   recipient,
			Content:       "Register 2 is jammed",
			Priority:      entity.PriorityUrgent,
		}).
		Return(&usecase.SendResult{Message: &entity.Message{ID: messageID}, Delivered: true, Reached: 1}, nil)

	conn := fx.dial(t, "c")
	register(t, conn)
	send(t, conn, constants.EventSendDirect, "s1", sendDirectRequest{
		RecipientRole: entity.RoleManager,
		RecipientID:   recipient,
		Content:       "Register 2 is jammed",
		Priority:      entity.PriorityUrgent,
	})

	frame := read(t, conn)
	assert.Equal(t, constants.EventMessageStatus, frame.Event)
	assert.Equal(t, "s1", frame.Ref)

	var reply messageStatusReply
	require.NoError(t, json.Unmarshal(frame.Data, &reply))
	assert.Equal(t, messageID, reply.MessageID)
	assert.True(t, reply.Delivered)
	assert.True(t, reply.Success)
}

func TestHandler_InvalidPayloadIsRejected(t *testing.T) {
	fx := createTestWSServer(t)
	fx.principals["c"] = newPrincipal(entity.RoleCashier)

	conn := fx.dial(t, "c")
	register(t, conn)
	send(t, conn, constants.EventSendDirect, "s2", sendDirectRequest{RecipientRole: "chef", RecipientID: uuid.New()})

	frame := read(t, conn)
	assert.Equal(t, constants.EventError, frame.Event)
	assert.Equal(t, "s2", frame.Ref)

	var reply errorReply
	require.NoError(t, json.Unmarshal(frame.Data, &reply))
	assert.Equal(t, "VALIDATION_FAILED", reply.Code)
	fx.dispatch.AssertNotCalled(t, "SendDirect", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_PingPong(t *testing.T) {
	fx := createTestWSServer(t)
	fx.principals["m"] = newPrincipal(entity.RoleManager)

	conn := fx.dial(t, "m")
	send(t, conn, constants.EventPing, "p1", nil)

	frame := read(t, conn)
	assert.Equal(t, constants.EventPong, frame.Event)
	assert.Equal(t, "p1", frame.Ref)
}

func TestHandler_UnknownEvent(t *testing.T) {
	fx := createTestWSServer(t)
	fx.principals["m"] = newPrincipal(entity.RoleManager)

	conn := fx.dial(t, "m")
	send(t, conn, "teleport", "", nil)

	frame := read(t, conn)
	assert.Equal(t, constants.EventError, frame.Event)
}

func TestHandler_DisconnectReleasesIdentity(t *testing.T) {
	fx := createTestWSServer(t)
	manager := newPrincipal(entity.RoleManager)
	fx.principals["m"] = manager

	conn := fx.dial(t, "m")
	register(t, conn)
	require.NoError(t, conn.Close())

	assert.Eventually(t, func() bool {
		_, online := fx.registry.Lookup(manager.Key())

		return !online
	}, 2*time.Second, 10*time.Millisecond)
}
