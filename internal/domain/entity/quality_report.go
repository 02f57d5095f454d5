package entity

import (
	"time"

	"pricecheck/internal/domain/scoring"

	"github.com/google/uuid"
)

// QualityReport is the single quality assessment attached to a price report.
// It owns exactly one category-specific detail row, represented by Assessment.
type QualityReport struct {
	ID            uuid.UUID
	PriceReportID uuid.UUID
	UserID        uuid.UUID
	Category      scoring.Category
	Assessment    scoring.Assessment

	// NormalizedQualityScore is derived from Assessment; it is never taken from input.
	NormalizedQualityScore float64
	ScoringVersion         string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewQualityReport builds a scored report for a price report.
func NewQualityReport(priceReportID, userID uuid.UUID, assessment scoring.Assessment) *QualityReport {
	report := &QualityReport{
		PriceReportID: priceReportID,
		UserID:        userID,
	}
	report.Reassess(assessment)

	return report
}

// Reassess replaces the assessment and recomputes the denormalized score.
func (r *QualityReport) Reassess(assessment scoring.Assessment) {
	r.Assessment = assessment
	r.Category = assessment.Category()
	r.NormalizedQualityScore = assessment.Score()
	r.ScoringVersion = scoring.Version
}
