package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QualityReportModel mirrors the 'quality_reports' table.
// At most one row exists per price report.
type QualityReportModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	PriceReportID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Category      string    `gorm:"type:varchar(20);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	PriceReport *PriceReportModel `gorm:"foreignKey:PriceReportID"`

	Electronics *ElectronicsQualityReportModel `gorm:"foreignKey:QualityReportID"`
	Pharma      *PharmaQualityReportModel      `gorm:"foreignKey:QualityReportID"`
	Food        *FoodQualityReportModel        `gorm:"foreignKey:QualityReportID"`
	Apparel     *ApparelQualityReportModel     `gorm:"foreignKey:QualityReportID"`
}

// TableName explicitly sets the table name for GORM.
func (QualityReportModel) TableName() string {
	return "quality_reports"
}

// BeforeCreate assigns a time-ordered UUID when the caller did not set one.
func (m *QualityReportModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}

// ScoreColumns are carried by every category detail table.
type ScoreColumns struct {
	NormalizedQualityScore float64 `gorm:"not null"`
	ScoringVersion         string  `gorm:"type:varchar(10);not null"`
}

// ElectronicsQualityReportModel mirrors the 'electronics_quality_reports' table.
type ElectronicsQualityReportModel struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	QualityReportID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	DeviceFunctional       bool      `gorm:"not null"`
	AuthenticityConfidence int       `gorm:"not null"`
	ConditionMatch         int       `gorm:"not null"`
	WarrantyHonored        *bool
	AccessoriesComplete    bool `gorm:"not null"`
	ScoreColumns           `gorm:"embedded"`
}

// TableName explicitly sets the table name for GORM.
func (ElectronicsQualityReportModel) TableName() string {
	return "electronics_quality_reports"
}

// BeforeCreate assigns a time-ordered UUID when the caller did not set one.
func (m *ElectronicsQualityReportModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}

// PharmaQualityReportModel mirrors the 'pharma_quality_reports' table.
type PharmaQualityReportModel struct {
	ID                         uuid.UUID `gorm:"type:uuid;primaryKey"`
	QualityReportID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	ExpiryStatus               string    `gorm:"type:varchar(20);not null"`
	DosageLabelMatchesExpected bool      `gorm:"not null"`
	PackagingSealed            bool      `gorm:"not null"`
	ExpiryDatePresent          bool      `gorm:"not null"`
	LabelCompleteness          string    `gorm:"type:varchar(20);not null"`
	PhysicalAnomaliesPresent   bool      `gorm:"not null"`
	ScoreColumns               `gorm:"embedded"`
}

// TableName explicitly sets the table name for GORM.
func (PharmaQualityReportModel) TableName() string {
	return "pharma_quality_reports"
}

// BeforeCreate assigns a time-ordered UUID when the caller did not set one.
func (m *PharmaQualityReportModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}

// FoodQualityReportModel mirrors the 'food_quality_reports' table.
type FoodQualityReportModel struct {
	ID                         uuid.UUID `gorm:"type:uuid;primaryKey"`
	QualityReportID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	ExpiryStatus               string    `gorm:"type:varchar(20);not null"`
	VisibleSpoilagePresent     bool      `gorm:"not null"`
	PackagingIntact            bool      `gorm:"not null"`
	WeightOrVolumeMatchesLabel bool      `gorm:"not null"`
	AbnormalSmellOrAppearance  bool      `gorm:"not null"`
	ScoreColumns               `gorm:"embedded"`
}

// TableName explicitly sets the table name for GORM.
func (FoodQualityReportModel) TableName() string {
	return "food_quality_reports"
}

// BeforeCreate assigns a time-ordered UUID when the caller did not set one.
func (m *FoodQualityReportModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}

// ApparelQualityReportModel mirrors the 'apparel_quality_reports' table.
type ApparelQualityReportModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	QualityReportID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	MaterialQuality    string    `gorm:"type:varchar(20);not null"`
	StitchingQuality   string    `gorm:"type:varchar(20);not null"`
	FitConsistency     string    `gorm:"type:varchar(20);not null"`
	EarlyWearPresent   bool      `gorm:"not null"`
	ColorOrPrintFading bool      `gorm:"not null"`
	ScoreColumns       `gorm:"embedded"`
}

// TableName explicitly sets the table name for GORM.
func (ApparelQualityReportModel) TableName() string {
	return "apparel_quality_reports"
}

// BeforeCreate assigns a time-ordered UUID when the caller did not set one.
func (m *ApparelQualityReportModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}

// All lists every model in dependency order for schema migration and code generation.
func All() []any {
	return []any{
		&UserModel{},
		&ShopModel{},
		&ShopProposalModel{},
		&ProductModel{},
		&ProductAliasModel{},
		&ProductAliasProposalModel{},
		&PriceReportModel{},
		&QualityReportModel{},
		&ElectronicsQualityReportModel{},
		&PharmaQualityReportModel{},
		&FoodQualityReportModel{},
		&ApparelQualityReportModel{},
		&ReviewAuditModel{},
	}
}
