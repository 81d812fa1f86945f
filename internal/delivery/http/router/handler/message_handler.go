// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "restops/internal/delivery/context"
	"restops/internal/delivery/http/response"
	"restops/internal/domain/entity"
	domainerrors "restops/internal/domain/errors"
	"restops/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MessageHandlerParams holds dependencies for MessageHandler, injected by Fx.
type MessageHandlerParams struct {
	fx.In

	Store    usecase.MessageStore
	Dispatch usecase.DispatchUsecase
	Logger   *slog.Logger
}

// MessageHandler serves the /messages routes.
type MessageHandler struct {
	store    usecase.MessageStore
	dispatch usecase.DispatchUsecase
	logger   *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler.
func NewMessageHandler(params MessageHandlerParams) *MessageHandler {
	return &MessageHandler{
		store:    params.Store,
		dispatch: params.Dispatch,
		logger:   params.Logger,
	}
}

// ListMessages handles GET /messages.
func (h *MessageHandler) ListMessages(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return unauthorized(c)
	}

	page, err := bindPage(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	filter := entity.MessageFilter{Page: page}
	if raw := c.QueryParam("status"); raw != "" {
		status, err := entity.ParseMessageStatus(raw)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		filter.Status = &status
	}

	result, err := h.store.ListForIdentity(c.Request().Context(), principal, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toMessageListResponse(result), "Messages retrieved successfully")
}

// SendDirect handles POST /messages/send.
func (h *MessageHandler) SendDirect(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return unauthorized(c)
	}

	var req SendDirectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.dispatch.SendDirect(c.Request().Context(), principal, usecase.DirectMessageInput{
		RecipientRole: entity.Role(req.RecipientRole),
		RecipientID:   req.RecipientID,
		Content:       req.Content,
		Attachment:    req.Attachment,
		Priority:      entity.Priority(req.Priority),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, SendResponse{
		MessageID: result.Message.ID,
		Delivered: result.Delivered,
	}, "Message sent successfully")
}

// UnreadCount handles GET /messages/unread-count.
func (h *MessageHandler) UnreadCount(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return unauthorized(c)
	}

	count, err := h.store.CountUnread(c.Request().Context(), principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"unread_count": count}, "Unread count retrieved successfully")
}

// MarkRead handles PUT /messages/:messageId/read.
func (h *MessageHandler) MarkRead(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return unauthorized(c)
	}

	messageID, err := uuid.Parse(c.Param("messageId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_MESSAGE_ID", "Invalid message ID format")
	}

	message, err := h.store.MarkRead(c.Request().Context(), messageID, principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toMessageResponse(message), "Message marked as read")
}

// DeleteMessage handles DELETE /messages/:messageId.
func (h *MessageHandler) DeleteMessage(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return unauthorized(c)
	}

	messageID, err := uuid.Parse(c.Param("messageId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_MESSAGE_ID", "Invalid message ID format")
	}

	removed, err := h.store.SoftDelete(c.Request().Context(), messageID, principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"deleted": true, "removed": removed}, "Message deleted successfully")
}

// Conversation handles GET /messages/conversation/:otherUserId/:otherUserRole.
func (h *MessageHandler) Conversation(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return unauthorized(c)
	}

	otherID, err := uuid.Parse(c.Param("otherUserId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_USER_ID", "Invalid user ID format")
	}

	page, err := bindPage(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.store.Conversation(c.Request().Context(), principal, otherID, entity.Role(c.Param("otherUserRole")), page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toMessageListResponse(result), "Conversation retrieved successfully")
}

// BranchBroadcast handles POST /messages/branch/:branchId/broadcast.
func (h *MessageHandler) BranchBroadcast(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return unauthorized(c)
	}

	branchID, err := uuid.Parse(c.Param("branchId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_BRANCH_ID", "Invalid branch ID format")
	}

	var req BroadcastRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid broadcast input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.dispatch.SendBroadcast(c.Request().Context(), principal, usecase.BroadcastInput{
		Scope:      entity.BroadcastScopeBranch,
		BranchID:   branchID,
		Content:    req.Content,
		Attachment: req.Attachment,
		Priority:   entity.Priority(req.Priority),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, SendResponse{
		MessageID: result.Message.ID,
		Delivered: result.Delivered,
		Reached:   result.Reached,
	}, "Branch broadcast sent successfully")
}

// BranchBroadcasts handles GET /messages/branch/:branchId/broadcasts.
func (h *MessageHandler) BranchBroadcasts(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return unauthorized(c)
	}

	branchID, err := uuid.Parse(c.Param("branchId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_BRANCH_ID", "Invalid branch ID format")
	}

	page, err := bindPage(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.store.ListBranchBroadcasts(c.Request().Context(), principal, branchID, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toMessageListResponse(result), "Branch broadcasts retrieved successfully")
}

// ShopBroadcast handles POST /messages/shop/broadcast.
func (h *MessageHandler) ShopBroadcast(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return unauthorized(c)
	}

	var req BroadcastRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid broadcast input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.dispatch.SendBroadcast(c.Request().Context(), principal, usecase.BroadcastInput{
		Scope:      entity.BroadcastScopeShop,
		ShopID:     principal.ShopID,
		Content:    req.Content,
		Attachment: req.Attachment,
		Priority:   entity.Priority(req.Priority),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, SendResponse{
		MessageID: result.Message.ID,
		Delivered: result.Delivered,
		Reached:   result.Reached,
	}, "Shop broadcast sent successfully")
}

// ShopBroadcasts handles GET /messages/shop/broadcasts.
func (h *MessageHandler) ShopBroadcasts(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return unauthorized(c)
	}

	page, err := bindPage(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.store.ListShopBroadcasts(c.Request().Context(), principal, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toMessageListResponse(result), "Shop broadcasts retrieved successfully")
}

// bindPage reads limit and skip. Zero values are replaced by the store defaults.
func bindPage(c echo.Context) (entity.Page, error) {
	var page entity.Page
	err := echo.QueryParamsBinder(c).
		Int("limit", &page.Limit).
		Int("skip", &page.Skip).
		BindError()
	if err != nil {
		return entity.Page{}, domainerrors.ErrValidationFailed.WithDetails("limit and skip must be integers")
	}
	if page.Limit < 0 || page.Skip < 0 {
		return entity.Page{}, domainerrors.ErrValidationFailed.WithDetails("limit and skip must not be negative")
	}

	return page, nil
}

func unauthorized(c echo.Context) error {
	return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Authentication required")
}
