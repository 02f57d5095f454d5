package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShopModel mirrors the 'shops' table.
type ShopModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(200);not null;index"`
	Address   string    `gorm:"type:text;not null"`
	Latitude  float64   `gorm:"type:decimal(10,8);not null"`
	Longitude float64   `gorm:"type:decimal(11,8);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}

// BeforeCreate assigns a time-ordered UUID when the caller did not set one.
func (m *ShopModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}

// ShopProposalModel mirrors the 'shop_proposals' table.
type ShopProposalModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProposedName    string     `gorm:"type:varchar(200);not null"`
	ProposedAddress string     `gorm:"type:text;not null"`
	Latitude        float64    `gorm:"type:decimal(10,8);not null"`
	Longitude       float64    `gorm:"type:decimal(11,8);not null"`
	ProposedBy      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status          string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	ReviewedBy      *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt      *time.Time
	CreatedAt       time.Time

	Proposer *UserModel `gorm:"foreignKey:ProposedBy"`
}

// TableName explicitly sets the table name for GORM.
func (ShopProposalModel) TableName() string {
	return "shop_proposals"
}

// BeforeCreate assigns a time-ordered UUID when the caller did not set one.
func (m *ShopProposalModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}
