package model

import (
	"time"

	"github.com/google/uuid"
)

// MessageModel is the GORM-specific struct for the 'messages' table.
// The service generates ids so the record exists before any push.
type MessageModel struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key"`
	ShopID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	BranchID *uuid.UUID `gorm:"type:uuid;index"`

	SenderID   uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_parties,priority:1"`
	SenderRole string    `gorm:"type:varchar(20);not null"`

	RecipientID   *uuid.UUID `gorm:"type:uuid;index:idx_messages_parties,priority:2"`
	RecipientRole *string    `gorm:"type:varchar(20)"`

	Broadcast      bool    `gorm:"not null;default:false;index:idx_messages_broadcast,priority:1"`
	BroadcastScope *string `gorm:"type:varchar(20);index:idx_messages_broadcast,priority:2"`

	Content    string  `gorm:"type:text;not null"`
	Attachment *string `gorm:"type:text"`
	Priority   string  `gorm:"type:varchar(20);not null;default:'normal'"`
	Status     string  `gorm:"type:varchar(20);not null;default:'sent';index"`

	SentAt      time.Time `gorm:"not null;index:idx_messages_sent_at,sort:desc"`
	DeliveredAt *time.Time
	ReadAt      *time.Time

	DeletedBySender    bool `gorm:"not null;default:false"`
	DeletedByRecipient bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
