package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShopModel maps the 'shops' table. A shop's id doubles as its admin's staff id.
type ShopModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}

// BranchModel maps the 'branches' table.
type BranchModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	ShopID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (BranchModel) TableName() string {
	return "branches"
}

// ManagerModel maps the 'managers' table.
type ManagerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	ShopID    uuid.UUID `gorm:"type:uuid;not null;index"`
	BranchID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ManagerModel) TableName() string {
	return "managers"
}

// CashierModel maps the 'cashiers' table.
type CashierModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	ShopID    uuid.UUID `gorm:"type:uuid;not null;index"`
	BranchID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (CashierModel) TableName() string {
	return "cashiers"
}
