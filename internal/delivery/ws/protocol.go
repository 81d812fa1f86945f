// Package ws is the live transport: one WebSocket per registered identity,
// speaking JSON envelopes.
package ws

import (
	"encoding/json"
	"time"

	"restops/internal/domain/entity"

	"github.com/google/uuid"
)

// Envelope is one inbound frame. Ref is echoed on the reply.
type Envelope struct {
	Event string          `json:"event"`
	Ref   string          `json:"ref,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type outboundEnvelope struct {
	Event string `json:"event"`
	Ref   string `json:"ref,omitempty"`
	Data  any    `json:"data,omitempty"`
}

func encodeFrame(event, ref string, data any) ([]byte, error) {
	return json.Marshal(outboundEnvelope{Event: event, Ref: ref, Data: data})
}

// Client payloads.

type registerRequest struct {
	Role     entity.Role `json:"role"`
	ShopID   uuid.UUID   `json:"shop_id"`
	BranchID uuid.UUID   `json:"branch_id"`
}

type sendDirectRequest struct {
	RecipientRole entity.Role     `json:"recipient_role" validate:"required,staffrole"`
	RecipientID   uuid.UUID       `json:"recipient_id" validate:"required"`
	Content       string          `json:"content" validate:"required"`
	Priority      entity.Priority `json:"priority" validate:"priority"`
	Attachment    string          `json:"attachment" validate:"omitempty,max=2048"`
}

type sendBranchBroadcastRequest struct {
	BranchID   uuid.UUID       `json:"branch_id" validate:"required"`
	Content    string          `json:"content" validate:"required"`
	Priority   entity.Priority `json:"priority" validate:"priority"`
	Attachment string          `json:"attachment" validate:"omitempty,max=2048"`
}

type sendShopBroadcastRequest struct {
	ShopID     uuid.UUID       `json:"shop_id"`
	Content    string          `json:"content" validate:"required"`
	Priority   entity.Priority `json:"priority" validate:"priority"`
	Attachment string          `json:"attachment" validate:"omitempty,max=2048"`
}

type orderStatusRequest struct {
	OrderID  string    `json:"order_id" validate:"required"`
	Status   string    `json:"status" validate:"required"`
	BranchID uuid.UUID `json:"branch_id"`
}

type inventoryAlertRequest struct {
	BranchID   uuid.UUID `json:"branch_id"`
	Ingredient string    `json:"ingredient" validate:"required"`
	Quantity   float64   `json:"quantity"`
	Threshold  float64   `json:"threshold"`
}

type emergencyAlertRequest struct {
	BranchID uuid.UUID `json:"branch_id"`
	Message  string    `json:"message" validate:"required"`
	Severity string    `json:"severity"`
}

// Server payloads.

type registeredReply struct {
	Success bool        `json:"success"`
	Role    entity.Role `json:"role"`
}

type messageStatusReply struct {
	MessageID uuid.UUID `json:"message_id"`
	Delivered bool      `json:"delivered"`
	Success   bool      `json:"success"`
}

type pongReply struct {
	Timestamp time.Time `json:"timestamp"`
}

type sessionReplacedNotice struct {
	Reason string `json:"reason"`
}

type errorReply struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
