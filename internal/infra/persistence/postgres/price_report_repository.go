package postgres

import (
	"context"
	"database/sql"
	"time"

	"pricecheck/internal/domain/entity"
	domainerrors "pricecheck/internal/domain/errors"
	"pricecheck/internal/domain/repository"
	"pricecheck/internal/domain/scoring"
	"pricecheck/internal/errors"
	"pricecheck/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// priceReportRepository implements the domain.PriceReportRepository interface using GORM.
type priceReportRepository struct {
	db *gorm.DB
}

// NewPriceReportRepository is the constructor for priceReportRepository.
func NewPriceReportRepository(db *gorm.DB) repository.PriceReportRepository {
	return &priceReportRepository{db: db}
}

// Create inserts a price report.
func (repo *priceReportRepository) Create(ctx context.Context, report *entity.PriceReport) error {
	reportM := &model.PriceReportModel{
		ID:             report.ID,
		UserID:         report.UserID,
		ShopID:         report.ShopID,
		ProductAliasID: report.ProductAliasID,
		PricePaid:      report.PricePaid,
		Quantity:       report.Quantity,
		ReportedAt:     report.ReportedAt,
	}
	if reportM.ReportedAt.IsZero() {
		reportM.ReportedAt = time.Now().UTC()
	}

	if err := repo.db.WithContext(ctx).Omit("User", "Shop", "ProductAlias").Create(reportM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("price and quantity must be positive")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("price report references a missing shop or product alias")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create price report")
	}

	report.ID = reportM.ID
	report.ReportedAt = reportM.ReportedAt

	return nil
}

// FindByID retrieves a single price report.
func (repo *priceReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PriceReport, error) {
	var reportM model.PriceReportModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&reportM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPriceReportNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find price report")
	}

	return &entity.PriceReport{
		ID:             reportM.ID,
		UserID:         reportM.UserID,
		ShopID:         reportM.ShopID,
		ProductAliasID: reportM.ProductAliasID,
		PricePaid:      reportM.PricePaid,
		Quantity:       reportM.Quantity,
		ReportedAt:     reportM.ReportedAt,
	}, nil
}

// priceReportRow is the scan target for the denormalized listing query.
type priceReportRow struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	ShopID          uuid.UUID
	ShopName        string
	ProductAliasID  uuid.UUID
	AliasName       string
	ProductID       uuid.UUID
	CanonicalName   string
	Category        string
	PricePaid       float64
	Quantity        int
	ReportedAt      time.Time
	QualityReportID uuid.NullUUID
	QualityScore    sql.NullFloat64
}

// List returns denormalized reports matching filter, newest first.
func (repo *priceReportRepository) List(ctx context.Context, filter entity.PriceReportFilter) ([]*entity.PriceReportSummary, error) {
	query := repo.db.WithContext(ctx).
		Table("price_reports AS pr").
		Select(`pr.id, pr.user_id, pr.shop_id, s.name AS shop_name,
			pr.product_alias_id, pa.alias_name, p.id AS product_id, p.canonical_name, p.category,
			pr.price_paid, pr.quantity, pr.reported_at,
			qr.id AS quality_report_id,
			COALESCE(eq.normalized_quality_score, pq.normalized_quality_score,
				fq.normalized_quality_score, aq.normalized_quality_score) AS quality_score`).
		Joins("JOIN shops AS s ON s.id = pr.shop_id").
		Joins("JOIN product_aliases AS pa ON pa.id = pr.product_alias_id").
		Joins("JOIN products AS p ON p.id = pa.product_id").
		Joins("LEFT JOIN quality_reports AS qr ON qr.price_report_id = pr.id").
		Joins("LEFT JOIN electronics_quality_reports AS eq ON eq.quality_report_id = qr.id").
		Joins("LEFT JOIN pharma_quality_reports AS pq ON pq.quality_report_id = qr.id").
		Joins("LEFT JOIN food_quality_reports AS fq ON fq.quality_report_id = qr.id").
		Joins("LEFT JOIN apparel_quality_reports AS aq ON aq.quality_report_id = qr.id")

	if filter.UserID != nil {
		query = query.Where("pr.user_id = ?", *filter.UserID)
	}
	if filter.ProductID != nil {
		query = query.Where("p.id = ?", *filter.ProductID)
	}
	if filter.ShopID != nil {
		query = query.Where("pr.shop_id = ?", *filter.ShopID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var rows []priceReportRow
	if err := query.Order("pr.reported_at DESC").Order("pr.id DESC").Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list price reports")
	}

	summaries := make([]*entity.PriceReportSummary, 0, len(rows))
	for i := range rows {
		summaries = append(summaries, toPriceReportSummary(&rows[i]))
	}

	return summaries, nil
}

func toPriceReportSummary(row *priceReportRow) *entity.PriceReportSummary {
	summary := &entity.PriceReportSummary{
		ID:             row.ID,
		UserID:         row.UserID,
		ShopID:         row.ShopID,
		ShopName:       row.ShopName,
		ProductAliasID: row.ProductAliasID,
		AliasName:      row.AliasName,
		ProductID:      row.ProductID,
		CanonicalName:  row.CanonicalName,
		Category:       scoring.Category(row.Category),
		PricePaid:      row.PricePaid,
		Quantity:       row.Quantity,
		ReportedAt:     row.ReportedAt,
	}
	if row.QualityReportID.Valid {
		id := row.QualityReportID.UUID
		summary.QualityReportID = &id
	}
	if row.QualityScore.Valid {
		score := row.QualityScore.Float64
		summary.QualityScore = &score
	}

	return summary
}
