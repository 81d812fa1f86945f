// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"restops/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for message persistence.
var (
	// ErrMessageNotFound is returned when a message is not found.
	ErrMessageNotFound = errors.New("message not found")
)

// MessageRepository defines the interface for message-related database operations.
type MessageRepository interface {
	// Create persists a new message.
	Create(ctx context.Context, message *entity.Message) error

	// FindByID retrieves a message by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error)

	// LockByID retrieves a message and locks its row for the rest of the transaction.
	LockByID(ctx context.Context, id uuid.UUID) (*entity.Message, error)

	// AdvanceStatus moves a message to the given status only if its current status
	// precedes it, stamping the matching timestamp. It reports whether a row changed.
	AdvanceStatus(ctx context.Context, id uuid.UUID, to entity.MessageStatus, at time.Time) (bool, error)

	// UpdateDeletionFlags persists both soft-delete flags.
	UpdateDeletionFlags(ctx context.Context, message *entity.Message) error

	// Delete physically removes a message.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindForIdentity lists messages an identity sent, received, or can see as a
	// broadcast, most recent first.
	FindForIdentity(ctx context.Context, query IdentityMessageQuery) ([]*entity.Message, int64, error)

	// FindConversation lists direct messages exchanged between two parties, most recent first.
	FindConversation(ctx context.Context, query ConversationQuery) ([]*entity.Message, int64, error)

	// FindBroadcasts lists broadcasts of one scope, most recent first.
	FindBroadcasts(ctx context.Context, query BroadcastQuery) ([]*entity.Message, int64, error)

	// CountUnread counts direct messages addressed to a party that are still sent.
	CountUnread(ctx context.Context, recipientID uuid.UUID, role entity.Role, shopID uuid.UUID) (int64, error)
}

// IdentityMessageQuery selects the messages visible to one party.
type IdentityMessageQuery struct {
	PartyID  uuid.UUID
	Role     entity.Role
	ShopID   uuid.UUID
	BranchID *uuid.UUID
	Status   *entity.MessageStatus
	Limit    int
	Skip     int
}

// ConversationQuery selects the direct messages between two parties of a shop.
type ConversationQuery struct {
	ShopID    uuid.UUID
	PartyID   uuid.UUID
	PartyRole entity.Role
	OtherID   uuid.UUID
	OtherRole entity.Role
	Limit     int
	Skip      int
}

// BroadcastQuery selects broadcasts of a shop or one of its branches.
type BroadcastQuery struct {
	ShopID   uuid.UUID
	BranchID *uuid.UUID
	Scope    entity.BroadcastScope
	Limit    int
	Skip     int
}
