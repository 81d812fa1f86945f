package usecase

import (
	"context"

	"restops/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderStatusInput announces an order state change to a branch.
type OrderStatusInput struct {
	OrderID  string
	Status   string
	BranchID uuid.UUID
}

// InventoryAlertInput reports an ingredient running low at a branch.
type InventoryAlertInput struct {
	BranchID   uuid.UUID
	Ingredient string
	Quantity   float64
	Threshold  float64
}

// EmergencyAlertInput is shop-wide. BranchID names the origin branch, if any.
type EmergencyAlertInput struct {
	BranchID uuid.UUID
	Message  string
	Severity string
}

// AlertUsecase relays transient operational events. Nothing here is persisted.
type AlertUsecase interface {
	// OrderStatusChanged publishes an order notification to the branch topic.
	OrderStatusChanged(ctx context.Context, sender entity.Principal, input OrderStatusInput) (int, error)

	// InventoryAlert publishes to the branch topic and pushes to the shop admin if online.
	InventoryAlert(ctx context.Context, sender entity.Principal, input InventoryAlertInput) (int, error)

	// EmergencyAlert publishes to the shop topic.
	EmergencyAlert(ctx context.Context, sender entity.Principal, input EmergencyAlertInput) (int, error)
}
