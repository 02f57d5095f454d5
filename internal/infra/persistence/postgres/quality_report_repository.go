package postgres

import (
	"context"
	"time"

	"pricecheck/internal/domain/entity"
	domainerrors "pricecheck/internal/domain/errors"
	"pricecheck/internal/domain/repository"
	"pricecheck/internal/domain/scoring"
	"pricecheck/internal/errors"
	"pricecheck/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// qualityReportRepository implements the domain.QualityReportRepository interface using GORM.
// Callers are expected to run Create and Update inside a transaction so that
// the header and its detail row are written together.
type qualityReportRepository struct {
	db *gorm.DB
}

// NewQualityReportRepository is the constructor for qualityReportRepository.
func NewQualityReportRepository(db *gorm.DB) repository.QualityReportRepository {
	return &qualityReportRepository{db: db}
}

// FindByPriceReportID loads the header and its detail.
func (repo *qualityReportRepository) FindByPriceReportID(ctx context.Context, priceReportID uuid.UUID) (*entity.QualityReport, error) {
	var reportM model.QualityReportModel
	err := repo.db.WithContext(ctx).
		Preload("Electronics").
		Preload("Pharma").
		Preload("Food").
		Preload("Apparel").
		Where("price_report_id = ?", priceReportID).
		First(&reportM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQualityReportNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find quality report")
	}

	return toQualityReportDomain(&reportM)
}

// Create inserts the header and the detail row.
func (repo *qualityReportRepository) Create(ctx context.Context, report *entity.QualityReport) error {
	if report.Assessment == nil {
		return domainerrors.ErrValidationFailed.WrapMessage("quality report has no assessment")
	}

	headerM := &model.QualityReportModel{
		ID:            report.ID,
		PriceReportID: report.PriceReportID,
		UserID:        report.UserID,
		Category:      report.Category.String(),
	}
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(headerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrDuplicate, "price report already has a quality report")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create quality report")
	}

	detailM := detailFromDomain(headerM.ID, report)
	if err := repo.db.WithContext(ctx).Create(detailM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrDuplicate, "quality report already has a detail row")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create quality report detail")
	}

	report.ID = headerM.ID
	report.CreatedAt = headerM.CreatedAt
	report.UpdatedAt = headerM.UpdatedAt

	return nil
}

// Update rewrites the detail row in place and touches the header's updated_at.
func (repo *qualityReportRepository) Update(ctx context.Context, report *entity.QualityReport) error {
	if report.Assessment == nil {
		return domainerrors.ErrValidationFailed.WrapMessage("quality report has no assessment")
	}

	detailM := detailFromDomain(report.ID, report)
	result := repo.db.WithContext(ctx).
		Model(detailM).
		Where("quality_report_id = ?", report.ID).
		Select("*").
		Omit("id", "quality_report_id").
		Updates(detailM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update quality report detail")
	}
	if result.RowsAffected == 0 {
		return repository.ErrQualityReportNotFound
	}

	now := time.Now().UTC()
	result = repo.db.WithContext(ctx).
		Model(&model.QualityReportModel{}).
		Where("id = ?", report.ID).
		Update("updated_at", now)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to touch quality report")
	}
	if result.RowsAffected == 0 {
		return repository.ErrQualityReportNotFound
	}
	report.UpdatedAt = now

	return nil
}

// --- Mapper Functions ---

// detailFromDomain builds the category-specific detail row for report.
// The returned value is a pointer to one of the four detail models.
func detailFromDomain(qualityReportID uuid.UUID, report *entity.QualityReport) any {
	score := model.ScoreColumns{
		NormalizedQualityScore: report.NormalizedQualityScore,
		ScoringVersion:         report.ScoringVersion,
	}

	switch a := report.Assessment.(type) {
	case scoring.Electronics:
		return &model.ElectronicsQualityReportModel{
			QualityReportID:        qualityReportID,
			DeviceFunctional:       a.DeviceFunctional,
			AuthenticityConfidence: a.AuthenticityConfidence,
			ConditionMatch:         a.ConditionMatch,
			WarrantyHonored:        a.WarrantyHonored,
			AccessoriesComplete:    a.AccessoriesComplete,
			ScoreColumns:           score,
		}
	case scoring.Pharma:
		return &model.PharmaQualityReportModel{
			QualityReportID:            qualityReportID,
			ExpiryStatus:               string(a.ExpiryStatus),
			DosageLabelMatchesExpected: a.DosageLabelMatchesExpected,
			PackagingSealed:            a.PackagingSealed,
			ExpiryDatePresent:          a.ExpiryDatePresent,
			LabelCompleteness:          string(a.LabelCompleteness),
			PhysicalAnomaliesPresent:   a.PhysicalAnomaliesPresent,
			ScoreColumns:               score,
		}
	case scoring.Food:
		return &model.FoodQualityReportModel{
			QualityReportID:            qualityReportID,
			ExpiryStatus:               string(a.ExpiryStatus),
			VisibleSpoilagePresent:     a.VisibleSpoilagePresent,
			PackagingIntact:            a.PackagingIntact,
			WeightOrVolumeMatchesLabel: a.WeightOrVolumeMatchesLabel,
			AbnormalSmellOrAppearance:  a.AbnormalSmellOrAppearance,
			ScoreColumns:               score,
		}
	case scoring.Apparel:
		return &model.ApparelQualityReportModel{
			QualityReportID:    qualityReportID,
			MaterialQuality:    string(a.MaterialQuality),
			StitchingQuality:   string(a.StitchingQuality),
			FitConsistency:     string(a.FitConsistency),
			EarlyWearPresent:   a.EarlyWearPresent,
			ColorOrPrintFading: a.ColorOrPrintFading,
			ScoreColumns:       score,
		}
	default:
		return nil
	}
}

func toQualityReportDomain(data *model.QualityReportModel) (*entity.QualityReport, error) {
	report := &entity.QualityReport{
		ID:            data.ID,
		PriceReportID: data.PriceReportID,
		UserID:        data.UserID,
		Category:      scoring.Category(data.Category),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}

	var score model.ScoreColumns
	switch {
	case data.Electronics != nil:
		d := data.Electronics
		report.Assessment = scoring.Electronics{
			DeviceFunctional:       d.DeviceFunctional,
			AuthenticityConfidence: d.AuthenticityConfidence,
			ConditionMatch:         d.ConditionMatch,
			WarrantyHonored:        d.WarrantyHonored,
			AccessoriesComplete:    d.AccessoriesComplete,
		}
		score = d.ScoreColumns
	case data.Pharma != nil:
		d := data.Pharma
		report.Assessment = scoring.Pharma{
			ExpiryStatus:               scoring.ExpiryStatus(d.ExpiryStatus),
			DosageLabelMatchesExpected: d.DosageLabelMatchesExpected,
			PackagingSealed:            d.PackagingSealed,
			ExpiryDatePresent:          d.ExpiryDatePresent,
			LabelCompleteness:          scoring.LabelCompleteness(d.LabelCompleteness),
			PhysicalAnomaliesPresent:   d.PhysicalAnomaliesPresent,
		}
		score = d.ScoreColumns
	case data.Food != nil:
		d := data.Food
		report.Assessment = scoring.Food{
			ExpiryStatus:               scoring.ExpiryStatus(d.ExpiryStatus),
			VisibleSpoilagePresent:     d.VisibleSpoilagePresent,
			PackagingIntact:            d.PackagingIntact,
			WeightOrVolumeMatchesLabel: d.WeightOrVolumeMatchesLabel,
			AbnormalSmellOrAppearance:  d.AbnormalSmellOrAppearance,
		}
		score = d.ScoreColumns
	case data.Apparel != nil:
		d := data.Apparel
		report.Assessment = scoring.Apparel{
			MaterialQuality:    scoring.MaterialQuality(d.MaterialQuality),
			StitchingQuality:   scoring.StitchingQuality(d.StitchingQuality),
			FitConsistency:     scoring.FitConsistency(d.FitConsistency),
			EarlyWearPresent:   d.EarlyWearPresent,
			ColorOrPrintFading: d.ColorOrPrintFading,
		}
		score = d.ScoreColumns
	default:
		return nil, domainerrors.NewDatabaseExecuteError(
			errors.Errorf("quality report %s has no detail row", data.ID),
			"inconsistent quality report",
		)
	}

	report.NormalizedQualityScore = score.NormalizedQualityScore
	report.ScoringVersion = score.ScoringVersion

	return report, nil
}
