package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	domainerrors "restops/internal/domain/errors"
)

// MessageStatus is the delivery state of a message. It only moves forward.
type MessageStatus string

const (
	MessageStatusSent      MessageStatus = "sent"
	MessageStatusDelivered MessageStatus = "delivered"
	MessageStatusRead      MessageStatus = "read"
)

func (s MessageStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known value.
func (s MessageStatus) IsValid() bool {
	return s.rank() > 0
}

func (s MessageStatus) rank() int {
	switch s {
	case MessageStatusSent:
		return 1
	case MessageStatusDelivered:
		return 2
	case MessageStatusRead:
		return 3
	default:
		return 0
	}
}

// CanAdvanceTo reports whether moving to next is a forward transition.
func (s MessageStatus) CanAdvanceTo(next MessageStatus) bool {
	return next.IsValid() && s.rank() < next.rank()
}

// Predecessors returns every status that may advance to s.
func (s MessageStatus) Predecessors() []MessageStatus {
	var out []MessageStatus
	for _, candidate := range []MessageStatus{MessageStatusSent, MessageStatusDelivered} {
		if candidate.CanAdvanceTo(s) {
			out = append(out, candidate)
		}
	}

	return out
}

// ParseMessageStatus parses an optional status filter.
func ParseMessageStatus(raw string) (MessageStatus, error) {
	status := MessageStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !status.IsValid() {
		return "", domainerrors.ErrValidationFailed.WithDetails("unknown status " + raw)
	}

	return status, nil
}

// Priority ranks the urgency of a message.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// IsValid checks if the priority is a known value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

// BroadcastScope selects the topic family of a broadcast.
type BroadcastScope string

const (
	BroadcastScopeShop   BroadcastScope = "shop"
	BroadcastScopeBranch BroadcastScope = "branch"
)

// IsValid checks if the scope is a known value.
func (s BroadcastScope) IsValid() bool {
	return s == BroadcastScopeShop || s == BroadcastScopeBranch
}

// Message is the durable record of a direct message or a broadcast.
type Message struct {
	ID       uuid.UUID
	ShopID   uuid.UUID
	BranchID *uuid.UUID

	SenderID   uuid.UUID
	SenderRole Role

	// Set for direct messages only.
	RecipientID   *uuid.UUID
	RecipientRole Role

	// Set for broadcasts only.
	Broadcast      bool
	BroadcastScope BroadcastScope

	Content    string
	Attachment string
	Priority   Priority
	Status     MessageStatus

	SentAt      time.Time
	DeliveredAt *time.Time
	ReadAt      *time.Time

	DeletedBySender    bool
	DeletedByRecipient bool
}

// IsDirect reports whether the message has a single recipient.
func (m *Message) IsDirect() bool {
	return !m.Broadcast
}

// IsSender reports whether (id, role) sent the message.
func (m *Message) IsSender(id uuid.UUID, role Role) bool {
	return m.SenderID == id && m.SenderRole == role
}

// IsRecipient reports whether (id, role) is the direct recipient.
func (m *Message) IsRecipient(id uuid.UUID, role Role) bool {
	return m.IsDirect() && m.RecipientID != nil && *m.RecipientID == id && m.RecipientRole == role
}

// MarkDelivered advances to delivered. It reports false when nothing changed.
func (m *Message) MarkDelivered(at time.Time) bool {
	if m.Broadcast || !m.Status.CanAdvanceTo(MessageStatusDelivered) {
		return false
	}
	m.Status = MessageStatusDelivered
	m.DeliveredAt = &at

	return true
}

// MarkRead advances to read. It reports false when nothing changed.
// A message read before its delivery was recorded keeps a nil DeliveredAt.
func (m *Message) MarkRead(at time.Time) bool {
	if m.Broadcast || !m.Status.CanAdvanceTo(MessageStatusRead) {
		return false
	}
	m.Status = MessageStatusRead
	m.ReadAt = &at

	return true
}

// FlagDeleted sets the soft-delete flag of the requesting party.
func (m *Message) FlagDeleted(id uuid.UUID, role Role) error {
	sender, recipient := m.IsSender(id, role), m.IsRecipient(id, role)
	if !sender && !recipient {
		return domainerrors.ErrNotMessageParty
	}
	if sender {
		m.DeletedBySender = true
	}
	if recipient {
		m.DeletedByRecipient = true
	}

	return nil
}

// FullyDeleted reports whether both parties have flagged the message.
func (m *Message) FullyDeleted() bool {
	return m.DeletedBySender && m.DeletedByRecipient
}

// MessageDraft is a send request before it becomes a Message.
type MessageDraft struct {
	ShopID   uuid.UUID
	BranchID *uuid.UUID

	SenderID   uuid.UUID
	SenderRole Role

	RecipientID   *uuid.UUID
	RecipientRole Role

	Broadcast      bool
	BroadcastScope BroadcastScope

	Content    string
	Attachment string
	Priority   Priority
}

// Validate checks addressing exclusivity, content and enums. An empty priority
// becomes normal.
func (d *MessageDraft) Validate(maxContentLength int) error {
	d.Content = strings.TrimSpace(d.Content)
	if d.Content == "" {
		return domainerrors.ErrEmptyContent
	}
	if maxContentLength > 0 && len([]rune(d.Content)) > maxContentLength {
		return domainerrors.ErrContentTooLong
	}

	if d.Priority == "" {
		d.Priority = PriorityNormal
	}
	if !d.Priority.IsValid() {
		return domainerrors.ErrInvalidPriority
	}

	if !d.SenderRole.IsValid() || d.SenderID == uuid.Nil || d.ShopID == uuid.Nil {
		return domainerrors.ErrInvalidRole.WithDetails("sender identity is incomplete")
	}

	direct := d.RecipientID != nil || d.RecipientRole != ""
	broadcast := d.Broadcast || d.BroadcastScope != ""
	switch {
	case direct == broadcast:
		return domainerrors.ErrInvalidAddressing
	case direct:
		if d.RecipientID == nil || *d.RecipientID == uuid.Nil {
			return domainerrors.ErrInvalidAddressing.WithDetails("recipient id is required")
		}
		if !d.RecipientRole.IsValid() {
			return domainerrors.ErrInvalidRole
		}
	default:
		if !d.Broadcast || !d.BroadcastScope.IsValid() {
			return domainerrors.ErrInvalidAddressing.WithDetails("broadcast scope must be shop or branch")
		}
		if d.BroadcastScope == BroadcastScopeBranch && (d.BranchID == nil || *d.BranchID == uuid.Nil) {
			return domainerrors.ErrInvalidAddressing.WithDetails("branch broadcast needs a branch")
		}
	}

	return nil
}

// NewMessage builds a sent message from a validated draft.
func NewMessage(d MessageDraft, now time.Time) *Message {
	return &Message{
		ID:             uuid.New(),
		ShopID:         d.ShopID,
		BranchID:       d.BranchID,
		SenderID:       d.SenderID,
		SenderRole:     d.SenderRole,
		RecipientID:    d.RecipientID,
		RecipientRole:  d.RecipientRole,
		Broadcast:      d.Broadcast,
		BroadcastScope: d.BroadcastScope,
		Content:        d.Content,
		Attachment:     d.Attachment,
		Priority:       d.Priority,
		Status:         MessageStatusSent,
		SentAt:         now,
	}
}

// Topic returns the broadcast topic of the message, or an empty topic for direct messages.
func (m *Message) Topic() Topic {
	switch {
	case !m.Broadcast:
		return ""
	case m.BroadcastScope == BroadcastScopeBranch && m.BranchID != nil:
		return BranchTopic(*m.BranchID)
	default:
		return ShopTopic(m.ShopID)
	}
}

// MessageFilter narrows ListForIdentity.
type MessageFilter struct {
	Status *MessageStatus
	Page   Page
}

// Page is stateless offset pagination.
type Page struct {
	Limit int
	Skip  int
}

// MessagePage is one page of messages plus the total match count.
type MessagePage struct {
	Messages []*Message
	Total    int64
	Limit    int
	Skip     int
}
