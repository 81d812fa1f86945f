package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"restops/internal/domain/constants"
	"restops/internal/domain/entity"
	domainerrors "restops/internal/domain/errors"
	"restops/internal/domain/service"
	"restops/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const reasonSessionReplaced = "session replaced by a newer connection"

// session binds one client to its authenticated principal and routes its events.
// Events are handled on the read pump goroutine, so per-connection order holds.
type session struct {
	principal  entity.Principal
	client     *client
	key        entity.IdentityKey
	registered bool

	dispatch usecase.DispatchUsecase
	alerts   usecase.AlertUsecase
	registry service.ConnectionRegistry
	router   service.TopicRouter
	validate echo.Validator
	logger   *slog.Logger
}

type eventHandler func(s *session, ctx context.Context, in Envelope) error

var handlers = map[string]eventHandler{
	constants.EventRegister:            (*session).handleRegister,
	constants.EventPing:                (*session).handlePing,
	constants.EventSendDirect:          registered((*session).handleSendDirect),
	constants.EventSendBranchBroadcast: registered((*session).handleSendBranchBroadcast),
	constants.EventSendShopBroadcast:   registered((*session).handleSendShopBroadcast),
	constants.EventOrderStatusChange:   registered((*session).handleOrderStatus),
	constants.EventInventoryAlert:      registered((*session).handleInventoryAlert),
	constants.EventEmergencyAlert:      registered((*session).handleEmergencyAlert),
}

func registered(next eventHandler) eventHandler {
	return func(s *session, ctx context.Context, in Envelope) error {
		if !s.registered {
			return domainerrors.ErrNotRegistered
		}

		return next(s, ctx, in)
	}
}

// handle decodes one frame and answers failures with an error event.
func (s *session) handle(ctx context.Context, raw []byte) {
	var in Envelope
	if err := json.Unmarshal(raw, &in); err != nil {
		s.replyError(ctx, "", domainerrors.ErrValidationFailed.WithDetails("frame is not a JSON envelope"))

		return
	}

	handler, ok := handlers[in.Event]
	if !ok {
		s.replyError(ctx, in.Ref, domainerrors.ErrValidationFailed.WithDetails("unknown event "+in.Event))

		return
	}

	if err := handler(s, ctx, in); err != nil {
		s.replyError(ctx, in.Ref, err)
	}
}

// close drops every registry and topic mapping the client still holds.
func (s *session) close() {
	removed := s.registry.RemoveByConnection(s.client)
	s.router.Leave(s.client)
	s.logger.Debug("WebSocket session closed", slog.Int("released_keys", len(removed)))
}

func (s *session) handleRegister(_ context.Context, in Envelope) error {
	var req registerRequest
	if err := s.decode(in, &req); err != nil {
		return err
	}

	key, err := s.resolveKey(req)
	if err != nil {
		return err
	}

	if evicted := s.registry.Register(key, s.client); evicted != nil {
		_ = evicted.Send(constants.EventSessionReplaced, sessionReplacedNotice{Reason: reasonSessionReplaced})
		evicted.Close(reasonSessionReplaced)
		s.logger.Info("Replaced WebSocket session",
			slog.String("key", key.String()),
			slog.String("evicted_connection_id", evicted.ID()),
		)
	}
	s.router.JoinTopics(s.client, key)
	s.key, s.registered = key, true

	return s.client.reply(constants.EventRegistered, in.Ref, registeredReply{Success: true, Role: key.Role})
}

// resolveKey fills empty fields from the principal and refuses any other identity.
func (s *session) resolveKey(req registerRequest) (entity.IdentityKey, error) {
	role, shopID, branchID := req.Role, req.ShopID, req.BranchID
	if role == "" {
		role = s.principal.Role
	}
	if shopID == uuid.Nil {
		shopID = s.principal.ShopID
	}
	if branchID == uuid.Nil {
		branchID = s.principal.BranchID
	}

	key := entity.NewIdentityKey(role, shopID, branchID)
	if !key.IsValid() {
		return entity.IdentityKey{}, domainerrors.ErrInvalidIdentity.WithDetails("incomplete identity " + key.String())
	}
	if key != s.principal.Key() {
		return entity.IdentityKey{}, domainerrors.ErrInvalidIdentity
	}

	return key, nil
}

func (s *session) handlePing(_ context.Context, in Envelope) error {
	return s.client.reply(constants.EventPong, in.Ref, pongReply{Timestamp: time.Now().UTC()})
}

func (s *session) handleSendDirect(ctx context.Context, in Envelope) error {
	var req sendDirectRequest
	if err := s.decode(in, &req); err != nil {
		return err
	}

	result, err := s.dispatch.SendDirect(ctx, s.principal, usecase.DirectMessageInput{
		RecipientRole: req.RecipientRole,
		RecipientID:   req.RecipientID,
		Content:       req.Content,
		Attachment:    req.Attachment,
		Priority:      req.Priority,
	})
	if err != nil {
		return err
	}

	return s.replyStatus(in.Ref, result)
}

func (s *session) handleSendBranchBroadcast(ctx context.Context, in Envelope) error {
	var req sendBranchBroadcastRequest
	if err := s.decode(in, &req); err != nil {
		return err
	}

	result, err := s.dispatch.SendBroadcast(ctx, s.principal, usecase.BroadcastInput{
		Scope:      entity.BroadcastScopeBranch,
		BranchID:   req.BranchID,
		Content:    req.Content,
		Attachment: req.Attachment,
		Priority:   req.Priority,
	})
	if err != nil {
		return err
	}

	return s.replyStatus(in.Ref, result)
}

func (s *session) handleSendShopBroadcast(ctx context.Context, in Envelope) error {
	var req sendShopBroadcastRequest
	if err := s.decode(in, &req); err != nil {
		return err
	}

	result, err := s.dispatch.SendBroadcast(ctx, s.principal, usecase.BroadcastInput{
		Scope:      entity.BroadcastScopeShop,
		ShopID:     req.ShopID,
		Content:    req.Content,
		Attachment: req.Attachment,
		Priority:   req.Priority,
	})
	if err != nil {
		return err
	}

	return s.replyStatus(in.Ref, result)
}

func (s *session) handleOrderStatus(ctx context.Context, in Envelope) error {
	var req orderStatusRequest
	if err := s.decode(in, &req); err != nil {
		return err
	}

	_, err := s.alerts.OrderStatusChanged(ctx, s.principal, usecase.OrderStatusInput{
		OrderID:  req.OrderID,
		Status:   req.Status,
		BranchID: req.BranchID,
	})

	return err
}

func (s *session) handleInventoryAlert(ctx context.Context, in Envelope) error {
	var req inventoryAlertRequest
	if err := s.decode(in, &req); err != nil {
		return err
	}

	_, err := s.alerts.InventoryAlert(ctx, s.principal, usecase.InventoryAlertInput{
		BranchID:   req.BranchID,
		Ingredient: req.Ingredient,
		Quantity:   req.Quantity,
		Threshold:  req.Threshold,
	})

	return err
}

func (s *session) handleEmergencyAlert(ctx context.Context, in Envelope) error {
	var req emergencyAlertRequest
	if err := s.decode(in, &req); err != nil {
		return err
	}

	_, err := s.alerts.EmergencyAlert(ctx, s.principal, usecase.EmergencyAlertInput{
		BranchID: req.BranchID,
		Message:  req.Message,
		Severity: req.Severity,
	})

	return err
}

func (s *session) replyStatus(ref string, result *usecase.SendResult) error {
	return s.client.reply(constants.EventMessageStatus, ref, messageStatusReply{
		MessageID: result.Message.ID,
		Delivered: result.Delivered,
		Success:   true,
	})
}

func (s *session) replyError(ctx context.Context, ref string, err error) {
	appErr := domainerrors.Resolve(err)
	if appErr.HTTPCode() >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx, "WebSocket event failed", slog.Any("error", err))
	}

	if sendErr := s.client.reply(constants.EventError, ref, errorReply{Code: appErr.ErrorCode(), Message: appErr.Error()}); sendErr != nil {
		s.logger.Debug("Failed to send error reply", slog.Any("error", sendErr))
	}
}

// decode unmarshals the payload into target and runs its validate tags.
func (s *session) decode(in Envelope, target any) error {
	if len(in.Data) > 0 {
		if err := json.Unmarshal(in.Data, target); err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("invalid " + in.Event + " payload")
		}
	}
	if s.validate == nil {
		return nil
	}

	return s.validate.Validate(target)
}
