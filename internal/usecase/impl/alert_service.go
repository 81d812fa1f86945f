package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "restops/internal/delivery/context"
	"restops/internal/domain/constants"
	"restops/internal/domain/entity"
	domainerrors "restops/internal/domain/errors"
	"restops/internal/domain/repository"
	"restops/internal/domain/service"
	"restops/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// AlertServiceParams holds dependencies for the alert relay, injected by Fx.
type AlertServiceParams struct {
	fx.In

	Directory repository.StaffDirectoryRepository
	Registry  service.ConnectionRegistry
	Router    service.TopicRouter
	Logger    *slog.Logger
}

type alertService struct {
	directory repository.StaffDirectoryRepository
	registry  service.ConnectionRegistry
	router    service.TopicRouter
	logger    *slog.Logger
	now       func() time.Time
}

// NewAlertService creates a new alert relay.
func NewAlertService(params AlertServiceParams) usecase.AlertUsecase {
	return &alertService{
		directory: params.Directory,
		registry:  params.Registry,
		router:    params.Router,
		logger:    params.Logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *alertService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *alertService) OrderStatusChanged(ctx context.Context, sender entity.Principal, input usecase.OrderStatusInput) (int, error) {
	if strings.TrimSpace(input.OrderID) == "" || strings.TrimSpace(input.Status) == "" {
		return 0, domainerrors.ErrValidationFailed.WithDetails("order id and status are required")
	}
	branchID := s.branchOrOwn(sender, input.BranchID)
	if err := authorizeBranch(ctx, s.directory, sender, branchID, domainerrors.ErrForbidden); err != nil {
		return 0, err
	}

	event := usecase.OrderNotificationEvent{
		OrderID:   input.OrderID,
		Status:    input.Status,
		BranchID:  branchID,
		UpdatedBy: usecase.NewSenderSummary(sender),
		Timestamp: s.now(),
	}

	reached := s.router.Publish(ctx, entity.BranchTopic(branchID), constants.EventOrderNotification, event)
	s.log(ctx).Debug("Order status relayed",
		slog.String("order_id", input.OrderID),
		slog.Int("reached", reached),
	)

	return reached, nil
}

func (s *alertService) InventoryAlert(ctx context.Context, sender entity.Principal, input usecase.InventoryAlertInput) (int, error) {
	if strings.TrimSpace(input.Ingredient) == "" {
		return 0, domainerrors.ErrValidationFailed.WithDetails("ingredient is required")
	}
	branchID := s.branchOrOwn(sender, input.BranchID)
	if err := authorizeBranch(ctx, s.directory, sender, branchID, domainerrors.ErrForbidden); err != nil {
		return 0, err
	}

	event := usecase.InventoryNotificationEvent{
		BranchID:   branchID,
		BranchName: s.branchName(ctx, sender, branchID),
		Ingredient: input.Ingredient,
		Quantity:   input.Quantity,
		Threshold:  input.Threshold,
		ReportedBy: usecase.NewSenderSummary(sender),
		Timestamp:  s.now(),
	}

	reached := s.router.Publish(ctx, entity.BranchTopic(branchID), constants.EventInventoryNotification, event)

	// The admin is not subscribed to branch topics.
	adminKey := entity.NewIdentityKey(entity.RoleAdmin, sender.ShopID, uuid.Nil)
	if sender.Key() != adminKey {
		if conn, ok := s.registry.Lookup(adminKey); ok {
			if err := conn.Send(constants.EventInventoryNotification, event); err != nil {
				s.log(ctx).Warn("Failed to push inventory alert to admin",
					slog.String("connection_id", conn.ID()),
					slog.Any("error", err),
				)
			} else {
				reached++
			}
		}
	}

	return reached, nil
}

func (s *alertService) EmergencyAlert(ctx context.Context, sender entity.Principal, input usecase.EmergencyAlertInput) (int, error) {
	if strings.TrimSpace(input.Message) == "" {
		return 0, domainerrors.ErrEmptyContent
	}

	event := usecase.EmergencyNotificationEvent{
		Message:    input.Message,
		Severity:   input.Severity,
		ReportedBy: usecase.NewSenderSummary(sender),
		Timestamp:  s.now(),
	}
	if event.Severity == "" {
		event.Severity = "high"
	}
	if branchID := s.branchOrOwn(sender, input.BranchID); branchID != uuid.Nil {
		if err := authorizeBranch(ctx, s.directory, sender, branchID, domainerrors.ErrForbidden); err != nil {
			return 0, err
		}
		event.BranchID = &branchID
	}

	reached := s.router.Publish(ctx, entity.ShopTopic(sender.ShopID), constants.EventEmergencyNotification, event)
	s.log(ctx).Info("Emergency alert relayed",
		slog.String("shop_id", sender.ShopID.String()),
		slog.String("severity", event.Severity),
		slog.Int("reached", reached),
	)

	return reached, nil
}

// branchOrOwn defaults an unset branch to the sender's own branch.
func (s *alertService) branchOrOwn(sender entity.Principal, branchID uuid.UUID) uuid.UUID {
	if branchID == uuid.Nil && sender.Role.IsBranchLevel() {
		return sender.BranchID
	}

	return branchID
}

func (s *alertService) branchName(ctx context.Context, sender entity.Principal, branchID uuid.UUID) string {
	if sender.BranchID == branchID && sender.BranchName != "" {
		return sender.BranchName
	}
	branch, err := s.directory.FindBranch(ctx, sender.ShopID, branchID)
	if err != nil {
		return ""
	}

	return branch.Name
}
