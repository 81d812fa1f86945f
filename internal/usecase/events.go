package usecase

import (
	"time"

	"restops/internal/domain/constants"
	"restops/internal/domain/entity"

	"github.com/google/uuid"
)

// SenderSummary identifies who sent an event.
type SenderSummary struct {
	ID   uuid.UUID   `json:"id"`
	Role entity.Role `json:"role"`
	Name string      `json:"name"`
}

// NewSenderSummary builds the summary of a principal.
func NewSenderSummary(p entity.Principal) SenderSummary {
	return SenderSummary{ID: p.ID, Role: p.Role, Name: p.DisplayName()}
}

// NotificationEvent is pushed to a recipient for a live direct message.
type NotificationEvent struct {
	Type       string          `json:"type"`
	MessageID  uuid.UUID       `json:"message_id"`
	Message    string          `json:"message"`
	Attachment string          `json:"attachment,omitempty"`
	Sender     SenderSummary   `json:"sender"`
	Priority   entity.Priority `json:"priority"`
	Timestamp  time.Time       `json:"timestamp"`
}

// NewNotificationEvent builds the private-message notification of m.
func NewNotificationEvent(m *entity.Message, sender entity.Principal) NotificationEvent {
	return NotificationEvent{
		Type:       constants.NotificationTypePrivateMessage,
		MessageID:  m.ID,
		Message:    m.Content,
		Attachment: m.Attachment,
		Sender:     NewSenderSummary(sender),
		Priority:   m.Priority,
		Timestamp:  m.SentAt,
	}
}

// BroadcastEvent is published on a topic for a broadcast message.
type BroadcastEvent struct {
	MessageID  uuid.UUID             `json:"message_id"`
	Message    string                `json:"message"`
	Attachment string                `json:"attachment,omitempty"`
	Sender     SenderSummary         `json:"sender"`
	Priority   entity.Priority       `json:"priority"`
	Scope      entity.BroadcastScope `json:"scope"`
	BranchID   *uuid.UUID            `json:"branch_id,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// NewBroadcastEvent builds the topic event of a broadcast m.
func NewBroadcastEvent(m *entity.Message, sender entity.Principal) BroadcastEvent {
	return BroadcastEvent{
		MessageID:  m.ID,
		Message:    m.Content,
		Attachment: m.Attachment,
		Sender:     NewSenderSummary(sender),
		Priority:   m.Priority,
		Scope:      m.BroadcastScope,
		BranchID:   m.BranchID,
		Timestamp:  m.SentAt,
	}
}

// BroadcastEventName maps a scope to its topic event.
func BroadcastEventName(scope entity.BroadcastScope) string {
	if scope == entity.BroadcastScopeShop {
		return constants.EventShopMessage
	}

	return constants.EventBranchMessage
}

// OrderNotificationEvent is relayed on a branch topic.
type OrderNotificationEvent struct {
	OrderID   string        `json:"order_id"`
	Status    string        `json:"status"`
	BranchID  uuid.UUID     `json:"branch_id"`
	UpdatedBy SenderSummary `json:"updated_by"`
	Timestamp time.Time     `json:"timestamp"`
}

// InventoryNotificationEvent is relayed on a branch topic and to the shop admin.
type InventoryNotificationEvent struct {
	BranchID   uuid.UUID     `json:"branch_id"`
	BranchName string        `json:"branch_name,omitempty"`
	Ingredient string        `json:"ingredient"`
	Quantity   float64       `json:"quantity"`
	Threshold  float64       `json:"threshold"`
	ReportedBy SenderSummary `json:"reported_by"`
	Timestamp  time.Time     `json:"timestamp"`
}

// EmergencyNotificationEvent is relayed on a shop topic.
type EmergencyNotificationEvent struct {
	BranchID   *uuid.UUID    `json:"branch_id,omitempty"`
	Message    string        `json:"message"`
	Severity   string        `json:"severity"`
	ReportedBy SenderSummary `json:"reported_by"`
	Timestamp  time.Time     `json:"timestamp"`
}
