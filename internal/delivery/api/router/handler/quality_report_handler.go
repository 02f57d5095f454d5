package handler

import (
	"net/http"

	"pricecheck/internal/delivery/api/middleware"
	"pricecheck/internal/delivery/api/response"
	domainerrors "pricecheck/internal/domain/errors"
	"pricecheck/internal/domain/scoring"
	"pricecheck/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ElectronicsDetails is the wire form of scoring.Electronics.
type ElectronicsDetails struct {
	DeviceFunctional       *bool `json:"device_functional" validate:"required"`
	AuthenticityConfidence int   `json:"authenticity_confidence" validate:"min=1,max=5"`
	ConditionMatch         int   `json:"condition_match" validate:"min=1,max=5"`
	WarrantyHonored        *bool `json:"warranty_honored"`
	AccessoriesComplete    *bool `json:"accessories_complete" validate:"required"`
}

// PharmaDetails is the wire form of scoring.Pharma.
type PharmaDetails struct {
	ExpiryStatus               string `json:"expiry_status" validate:"oneof=valid near_expiry expired"`
	DosageLabelMatchesExpected *bool  `json:"dosage_label_matches_expected" validate:"required"`
	PackagingSealed            *bool  `json:"packaging_sealed" validate:"required"`
	ExpiryDatePresent          *bool  `json:"expiry_date_present" validate:"required"`
	LabelCompleteness          string `json:"label_completeness" validate:"oneof=complete partial missing"`
	PhysicalAnomaliesPresent   *bool  `json:"physical_anomalies_present" validate:"required"`
}

// FoodDetails is the wire form of scoring.Food.
type FoodDetails struct {
	ExpiryStatus               string `json:"expiry_status" validate:"oneof=valid near_expiry expired"`
	VisibleSpoilagePresent     *bool  `json:"visible_spoilage_present" validate:"required"`
	PackagingIntact            *bool  `json:"packaging_intact" validate:"required"`
	WeightOrVolumeMatchesLabel *bool  `json:"weight_or_volume_matches_label" validate:"required"`
	AbnormalSmellOrAppearance  *bool  `json:"abnormal_smell_or_appearance" validate:"required"`
}

// ApparelDetails is the wire form of scoring.Apparel.
type ApparelDetails struct {
	MaterialQuality    string `json:"material_quality" validate:"oneof=as_expected below_expected poor"`
	StitchingQuality   string `json:"stitching_quality" validate:"oneof=no_defects minor_defects major_defects"`
	FitConsistency     string `json:"fit_consistency" validate:"oneof=as_expected runs_small runs_large"`
	EarlyWearPresent   *bool  `json:"early_wear_present" validate:"required"`
	ColorOrPrintFading *bool  `json:"color_or_print_fading" validate:"required"`
}

// QualityDetails holds exactly one category variant on input; on output only
// the variant matching the report's category is set.
type QualityDetails struct {
	Electronics *ElectronicsDetails `json:"electronics,omitempty" validate:"omitempty"`
	Pharma      *PharmaDetails      `json:"pharma,omitempty" validate:"omitempty"`
	Food        *FoodDetails        `json:"food,omitempty" validate:"omitempty"`
	Apparel     *ApparelDetails     `json:"apparel,omitempty" validate:"omitempty"`
}

// UpsertQualityReportRequest is the body of PUT /price-reports/:id/quality-report.
type UpsertQualityReportRequest QualityDetails

// toAssessment converts the single submitted variant into its scoring form.
func (r *UpsertQualityReportRequest) toAssessment() (scoring.Assessment, error) {
	var (
		assessment scoring.Assessment
		submitted  int
	)

	if d := r.Electronics; d != nil {
		submitted++
		assessment = scoring.Electronics{
			DeviceFunctional:       *d.DeviceFunctional,
			AuthenticityConfidence: d.AuthenticityConfidence,
			ConditionMatch:         d.ConditionMatch,
			WarrantyHonored:        d.WarrantyHonored,
			AccessoriesComplete:    *d.AccessoriesComplete,
		}
	}
	if d := r.Pharma; d != nil {
		submitted++
		assessment = scoring.Pharma{
			ExpiryStatus:               scoring.ExpiryStatus(d.ExpiryStatus),
			DosageLabelMatchesExpected: *d.DosageLabelMatchesExpected,
			PackagingSealed:            *d.PackagingSealed,
			ExpiryDatePresent:          *d.ExpiryDatePresent,
			LabelCompleteness:          scoring.LabelCompleteness(d.LabelCompleteness),
			PhysicalAnomaliesPresent:   *d.PhysicalAnomaliesPresent,
		}
	}
	if d := r.Food; d != nil {
		submitted++
		assessment = scoring.Food{
			ExpiryStatus:               scoring.ExpiryStatus(d.ExpiryStatus),
			VisibleSpoilagePresent:     *d.VisibleSpoilagePresent,
			PackagingIntact:            *d.PackagingIntact,
			WeightOrVolumeMatchesLabel: *d.WeightOrVolumeMatchesLabel,
			AbnormalSmellOrAppearance:  *d.AbnormalSmellOrAppearance,
		}
	}
	if d := r.Apparel; d != nil {
		submitted++
		assessment = scoring.Apparel{
			MaterialQuality:    scoring.MaterialQuality(d.MaterialQuality),
			StitchingQuality:   scoring.StitchingQuality(d.StitchingQuality),
			FitConsistency:     scoring.FitConsistency(d.FitConsistency),
			EarlyWearPresent:   *d.EarlyWearPresent,
			ColorOrPrintFading: *d.ColorOrPrintFading,
		}
	}

	if submitted != 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("exactly one of electronics, pharma, food, apparel is required")
	}

	return assessment, nil
}

// QualityReportHandlerParams holds dependencies for QualityReportHandler, injected by Fx.
type QualityReportHandlerParams struct {
	fx.In

	QualityReportUsecase usecase.QualityReportUsecase
}

// QualityReportHandler serves the owner-only quality report of a price report.
type QualityReportHandler struct {
	qualityReportUC usecase.QualityReportUsecase
}

// NewQualityReportHandler creates a new QualityReportHandler.
func NewQualityReportHandler(params QualityReportHandlerParams) *QualityReportHandler {
	return &QualityReportHandler{qualityReportUC: params.QualityReportUsecase}
}

// Get handles GET /api/v1/price-reports/:id/quality-report.
func (h *QualityReportHandler) Get(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	priceReportID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	report, err := h.qualityReportUC.Get(c.Request().Context(), userID, priceReportID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toQualityReportResponse(report))
}

// Upsert handles PUT /api/v1/price-reports/:id/quality-report.
func (h *QualityReportHandler) Upsert(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	priceReportID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpsertQualityReportRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid quality report input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	assessment, err := req.toAssessment()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.qualityReportUC.Upsert(c.Request().Context(), userID, &usecase.UpsertQualityReportInput{
		PriceReportID: priceReportID,
		Assessment:    assessment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if output.IsUpdate {
		return response.SuccessWithMessage(c, http.StatusOK, toQualityReportResponse(output.Report), "Quality report updated")
	}

	return response.SuccessWithMessage(c, http.StatusCreated, toQualityReportResponse(output.Report), "Quality report submitted")
}
