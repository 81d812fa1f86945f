package impl

import (
	"context"
	"log/slog"

	deliverycontext "restops/internal/delivery/context"
	"restops/internal/domain/constants"
	"restops/internal/domain/entity"
	domainerrors "restops/internal/domain/errors"
	"restops/internal/domain/repository"
	"restops/internal/domain/service"
	"restops/internal/infra/metrics"
	"restops/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DispatchServiceParams holds dependencies for the delivery dispatcher, injected by Fx.
type DispatchServiceParams struct {
	fx.In

	Store     usecase.MessageStore
	Directory repository.StaffDirectoryRepository
	Registry  service.ConnectionRegistry
	Router    service.TopicRouter
	Logger    *slog.Logger
}

// dispatchService is the only component that couples persistence to presence.
type dispatchService struct {
	store     usecase.MessageStore
	directory repository.StaffDirectoryRepository
	registry  service.ConnectionRegistry
	router    service.TopicRouter
	logger    *slog.Logger
}

// NewDispatchService is the constructor for dispatchService.
func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	return &dispatchService{
		store:     params.Store,
		directory: params.Directory,
		registry:  params.Registry,
		router:    params.Router,
		logger:    params.Logger,
	}
}

func (s *dispatchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// SendDirect resolves the recipient, persists the message, then tries a live push.
// A failed push leaves the message sent and reports delivered=false.
func (s *dispatchService) SendDirect(ctx context.Context, sender entity.Principal, input usecase.DirectMessageInput) (*usecase.SendResult, error) {
	if !input.RecipientRole.IsValid() {
		return nil, domainerrors.ErrInvalidRole
	}
	if input.RecipientID == uuid.Nil {
		return nil, domainerrors.ErrInvalidAddressing.WithDetails("recipient id is required")
	}

	recipient, err := s.directory.FindStaff(ctx, input.RecipientRole, input.RecipientID)
	if err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			return nil, domainerrors.ErrRecipientNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve recipient")
	}
	// Staff of another shop are treated as unknown.
	if recipient.ShopID != sender.ShopID {
		return nil, domainerrors.ErrRecipientNotFound
	}

	recipientID := recipient.ID
	draft := entity.MessageDraft{
		ShopID:        sender.ShopID,
		BranchID:      directBranch(sender, recipient),
		SenderID:      sender.ID,
		SenderRole:    sender.Role,
		RecipientID:   &recipientID,
		RecipientRole: recipient.Role,
		Content:       input.Content,
		Attachment:    input.Attachment,
		Priority:      input.Priority,
	}

	message, err := s.store.Create(ctx, draft)
	if err != nil {
		return nil, err
	}

	logger := s.log(ctx).With(
		slog.String("message_id", message.ID.String()),
		slog.String("recipient", recipient.Key().String()),
	)

	conn, online := s.registry.Lookup(recipient.Key())
	if !online {
		metrics.DirectDeliveries.WithLabelValues(metrics.ResultOffline).Inc()
		logger.Debug("Recipient offline, message queued")

		return &usecase.SendResult{Message: message}, nil
	}

	if err := conn.Send(constants.EventNotification, usecase.NewNotificationEvent(message, sender)); err != nil {
		metrics.DirectDeliveries.WithLabelValues(metrics.ResultTransportFailed).Inc()
		logger.Warn("Live push failed, message stays queued",
			slog.String("connection_id", conn.ID()),
			slog.Any("error", err),
		)

		return &usecase.SendResult{Message: message}, nil
	}

	if err := s.store.MarkDelivered(ctx, message); err != nil {
		// The receipt was not recorded, so the message stays queued.
		logger.Error("Failed to record delivery", slog.Any("error", err))

		return &usecase.SendResult{Message: message}, nil
	}

	metrics.DirectDeliveries.WithLabelValues(metrics.ResultDelivered).Inc()

	return &usecase.SendResult{Message: message, Delivered: true, Reached: 1}, nil
}

// SendBroadcast authorizes the scope, persists the broadcast, then publishes it.
// Broadcasts are never tracked as delivered.
func (s *dispatchService) SendBroadcast(ctx context.Context, sender entity.Principal, input usecase.BroadcastInput) (*usecase.SendResult, error) {
	if input.ShopID != uuid.Nil && input.ShopID != sender.ShopID {
		return nil, domainerrors.ErrBroadcastForbidden
	}

	draft := entity.MessageDraft{
		ShopID:         sender.ShopID,
		SenderID:       sender.ID,
		SenderRole:     sender.Role,
		Broadcast:      true,
		BroadcastScope: input.Scope,
		Content:        input.Content,
		Attachment:     input.Attachment,
		Priority:       input.Priority,
	}

	switch input.Scope {
	case entity.BroadcastScopeShop:
		if sender.Role != entity.RoleAdmin {
			return nil, domainerrors.ErrBroadcastForbidden
		}
	case entity.BroadcastScopeBranch:
		if !entity.ManagementRoles.Contains(sender.Role) {
			return nil, domainerrors.ErrBroadcastForbidden
		}
		if err := authorizeBranch(ctx, s.directory, sender, input.BranchID, domainerrors.ErrBroadcastForbidden); err != nil {
			return nil, err
		}
		branchID := input.BranchID
		draft.BranchID = &branchID
	default:
		return nil, domainerrors.ErrInvalidAddressing.WithDetails("broadcast scope must be shop or branch")
	}

	message, err := s.store.Create(ctx, draft)
	if err != nil {
		return nil, err
	}

	reached := s.router.Publish(ctx, message.Topic(), usecase.BroadcastEventName(message.BroadcastScope), usecase.NewBroadcastEvent(message, sender))

	s.log(ctx).Debug("Broadcast published",
		slog.String("message_id", message.ID.String()),
		slog.String("topic", message.Topic().String()),
		slog.Int("reached", reached),
	)

	return &usecase.SendResult{Message: message, Reached: reached}, nil
}

// directBranch scopes a direct message to the recipient's branch, or the
// sender's when the recipient is shop level.
func directBranch(sender entity.Principal, recipient *entity.StaffMember) *uuid.UUID {
	if recipient.Role.IsBranchLevel() && recipient.BranchID != uuid.Nil {
		id := recipient.BranchID

		return &id
	}
	if sender.Role.IsBranchLevel() && sender.BranchID != uuid.Nil {
		id := sender.BranchID

		return &id
	}

	return nil
}
