package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PriceReportModel mirrors the 'price_reports' table.
type PriceReportModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	ShopID         uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductAliasID uuid.UUID `gorm:"type:uuid;not null;index"`
	PricePaid      float64   `gorm:"type:decimal(12,2);not null;check:price_paid > 0"`
	Quantity       int       `gorm:"not null;default:1;check:quantity > 0"`
	ReportedAt     time.Time `gorm:"not null;index"`

	User         *UserModel         `gorm:"foreignKey:UserID"`
	Shop         *ShopModel         `gorm:"foreignKey:ShopID"`
	ProductAlias *ProductAliasModel `gorm:"foreignKey:ProductAliasID"`
}

// TableName explicitly sets the table name for GORM.
func (PriceReportModel) TableName() string {
	return "price_reports"
}

// BeforeCreate assigns a time-ordered UUID when the caller did not set one.
func (m *PriceReportModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}
