package handler

import (
	"time"

	"restops/internal/delivery/http/response"
	"restops/internal/domain/entity"

	"github.com/google/uuid"
)

// SendDirectRequest is the body of POST /messages/send.
type SendDirectRequest struct {
	RecipientRole string    `json:"recipient_role" validate:"required,staffrole"`
	RecipientID   uuid.UUID `json:"recipient_id" validate:"required"`
	Content       string    `json:"content" validate:"required"`
	Priority      string    `json:"priority" validate:"priority"`
	Attachment    string    `json:"attachment" validate:"omitempty,max=2048"`
}

// BroadcastRequest is the body of both broadcast routes.
type BroadcastRequest struct {
	Content    string `json:"content" validate:"required"`
	Priority   string `json:"priority" validate:"priority"`
	Attachment string `json:"attachment" validate:"omitempty,max=2048"`
}

// MessageResponse is the wire form of a stored message.
type MessageResponse struct {
	ID             uuid.UUID             `json:"id"`
	ShopID         uuid.UUID             `json:"shop_id"`
	BranchID       *uuid.UUID            `json:"branch_id,omitempty"`
	SenderID       uuid.UUID             `json:"sender_id"`
	SenderRole     entity.Role           `json:"sender_role"`
	RecipientID    *uuid.UUID            `json:"recipient_id,omitempty"`
	RecipientRole  entity.Role           `json:"recipient_role,omitempty"`
	Broadcast      bool                  `json:"broadcast"`
	BroadcastScope entity.BroadcastScope `json:"broadcast_scope,omitempty"`
	Content        string                `json:"content"`
	Attachment     string                `json:"attachment,omitempty"`
	Priority       entity.Priority       `json:"priority"`
	Status         entity.MessageStatus  `json:"status"`
	SentAt         time.Time             `json:"sent_at"`
	DeliveredAt    *time.Time            `json:"delivered_at,omitempty"`
	ReadAt         *time.Time            `json:"read_at,omitempty"`
}

// MessageListResponse is one page of messages.
type MessageListResponse struct {
	Messages   []MessageResponse   `json:"messages"`
	Pagination response.Pagination `json:"pagination"`
}

// SendResponse acknowledges a stored message.
type SendResponse struct {
	MessageID uuid.UUID `json:"message_id"`
	Delivered bool      `json:"delivered"`
	Reached   int       `json:"reached,omitempty"`
}

func toMessageResponse(m *entity.Message) MessageResponse {
	return MessageResponse{
		ID:             m.ID,
		ShopID:         m.ShopID,
		BranchID:       m.BranchID,
		SenderID:       m.SenderID,
		SenderRole:     m.SenderRole,
		RecipientID:    m.RecipientID,
		RecipientRole:  m.RecipientRole,
		Broadcast:      m.Broadcast,
		BroadcastScope: m.BroadcastScope,
		Content:        m.Content,
		Attachment:     m.Attachment,
		Priority:       m.Priority,
		Status:         m.Status,
		SentAt:         m.SentAt,
		DeliveredAt:    m.DeliveredAt,
		ReadAt:         m.ReadAt,
	}
}

func toMessageListResponse(page *entity.MessagePage) MessageListResponse {
	messages := make([]MessageResponse, 0, len(page.Messages))
	for _, m := range page.Messages {
		messages = append(messages, toMessageResponse(m))
	}

	return MessageListResponse{
		Messages: messages,
		Pagination: response.Pagination{
			Total: page.Total,
			Limit: page.Limit,
			Skip:  page.Skip,
		},
	}
}
