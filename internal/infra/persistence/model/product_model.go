package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductModel mirrors the 'products' table. Rows are reference data.
type ProductModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CanonicalName string    `gorm:"type:varchar(200);uniqueIndex;not null"`
	Category      string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// BeforeCreate assigns a time-ordered UUID when the caller did not set one.
func (m *ProductModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}

// ProductAliasModel mirrors the 'product_aliases' table.
type ProductAliasModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_aliases_product_alias"`
	AliasName string    `gorm:"type:varchar(200);not null;uniqueIndex:idx_product_aliases_product_alias"`
	CreatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductAliasModel) TableName() string {
	return "product_aliases"
}

// BeforeCreate assigns a time-ordered UUID when the caller did not set one.
func (m *ProductAliasModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}

// ProductAliasProposalModel mirrors the 'product_alias_proposals' table.
type ProductAliasProposalModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProductID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProposedAlias string     `gorm:"type:varchar(200);not null"`
	ProposedBy    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status        string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	ReviewedBy    *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt    *time.Time
	CreatedAt     time.Time

	Product  *ProductModel `gorm:"foreignKey:ProductID"`
	Proposer *UserModel    `gorm:"foreignKey:ProposedBy"`
}

// TableName explicitly sets the table name for GORM.
func (ProductAliasProposalModel) TableName() string {
	return "product_alias_proposals"
}

// BeforeCreate assigns a time-ordered UUID when the caller did not set one.
func (m *ProductAliasProposalModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}
