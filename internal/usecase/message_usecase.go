package usecase

import (
	"context"

	"restops/internal/domain/entity"

	"github.com/google/uuid"
)

// MessageStore is the durable side of messaging: persistence plus the
// sent -> delivered -> read state machine and the soft-delete flags.
type MessageStore interface {
	// Create validates and persists a draft with status sent.
	Create(ctx context.Context, draft entity.MessageDraft) (*entity.Message, error)

	// MarkDelivered advances a direct message to delivered and records the
	// transition on message. It is a no-op once delivered or read.
	MarkDelivered(ctx context.Context, message *entity.Message) error

	// MarkRead advances a message to read on behalf of its recipient.
	MarkRead(ctx context.Context, messageID uuid.UUID, requester entity.Principal) (*entity.Message, error)

	// SoftDelete flags the message for the requesting party and reports whether
	// the record was physically removed.
	SoftDelete(ctx context.Context, messageID uuid.UUID, requester entity.Principal) (bool, error)

	// ListForIdentity lists everything the requester sent, received, or can see as a broadcast.
	ListForIdentity(ctx context.Context, requester entity.Principal, filter entity.MessageFilter) (*entity.MessagePage, error)

	// Conversation lists the direct messages between the requester and another party.
	Conversation(ctx context.Context, requester entity.Principal, otherID uuid.UUID, otherRole entity.Role, page entity.Page) (*entity.MessagePage, error)

	// ListBranchBroadcasts lists broadcasts posted to a branch the requester belongs to or owns.
	ListBranchBroadcasts(ctx context.Context, requester entity.Principal, branchID uuid.UUID, page entity.Page) (*entity.MessagePage, error)

	// ListShopBroadcasts lists broadcasts posted to the requester's shop.
	ListShopBroadcasts(ctx context.Context, requester entity.Principal, page entity.Page) (*entity.MessagePage, error)

	// CountUnread counts direct messages to the requester that are still sent.
	CountUnread(ctx context.Context, requester entity.Principal) (int64, error)
}

// DirectMessageInput is a point-to-point send request.
type DirectMessageInput struct {
	RecipientRole entity.Role
	RecipientID   uuid.UUID
	Content       string
	Attachment    string
	Priority      entity.Priority
}

// BroadcastInput is a one-to-many send request. ShopID is checked against the
// sender's shop when set; BranchID is required for branch scope.
type BroadcastInput struct {
	Scope      entity.BroadcastScope
	ShopID     uuid.UUID
	BranchID   uuid.UUID
	Content    string
	Attachment string
	Priority   entity.Priority
}

// SendResult reports the stored message and whether it went out live.
// Reached counts the connections a broadcast was pushed to.
type SendResult struct {
	Message   *entity.Message
	Delivered bool
	Reached   int
}

// DispatchUsecase couples persistence to presence. Every send persists before
// any transport push.
type DispatchUsecase interface {
	// SendDirect persists a direct message and pushes it if the recipient is online.
	SendDirect(ctx context.Context, sender entity.Principal, input DirectMessageInput) (*SendResult, error)

	// SendBroadcast persists a broadcast and publishes it to its topic.
	SendBroadcast(ctx context.Context, sender entity.Principal, input BroadcastInput) (*SendResult, error)
}
