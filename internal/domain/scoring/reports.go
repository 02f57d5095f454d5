package scoring

// Electronics is the quality assessment for electronic devices.
type Electronics struct {
	DeviceFunctional       bool
	AuthenticityConfidence int   // 1 (likely counterfeit) .. 5 (certainly genuine)
	ConditionMatch         int   // 1 (far worse than described) .. 5 (exactly as described)
	WarrantyHonored        *bool // nil when the warranty was not tested
	AccessoriesComplete    bool
}

// Category implements Assessment.
func (Electronics) Category() Category { return CategoryElectronics }

// Validate implements Assessment.
func (r Electronics) Validate() error {
	if err := validateRating("authenticity_confidence", r.AuthenticityConfidence); err != nil {
		return err
	}

	return validateRating("condition_match", r.ConditionMatch)
}

// Score implements Assessment.
func (r Electronics) Score() float64 {
	return ScoreElectronics(r)
}

// ScoreElectronics fails a non-functional device or one rated at the lowest
// authenticity tier, and otherwise penalizes each rating step below the top,
// warranty problems and missing accessories.
func ScoreElectronics(r Electronics) float64 {
	if !r.DeviceFunctional || r.AuthenticityConfidence == MinRating {
		return 0.0
	}

	score := 1.0
	score -= float64(MaxRating-r.AuthenticityConfidence) * 0.08
	score -= float64(MaxRating-r.ConditionMatch) * 0.06

	switch {
	case r.WarrantyHonored == nil:
		score -= 0.05
	case !*r.WarrantyHonored:
		score -= 0.25
	}

	score -= penaltyIf(!r.AccessoriesComplete, 0.1)

	return clamp(score)
}

// Pharma is the quality assessment for pharmaceutical products.
type Pharma struct {
	ExpiryStatus               ExpiryStatus
	DosageLabelMatchesExpected bool
	PackagingSealed            bool
	ExpiryDatePresent          bool
	LabelCompleteness          LabelCompleteness
	PhysicalAnomaliesPresent   bool
}

// Category implements Assessment.
func (Pharma) Category() Category { return CategoryPharma }

// Validate implements Assessment.
func (r Pharma) Validate() error {
	if !r.ExpiryStatus.IsValid() {
		return &FieldError{Field: "expiry_status", Reason: "must be one of valid, near_expiry, expired"}
	}
	if !r.LabelCompleteness.IsValid() {
		return &FieldError{Field: "label_completeness", Reason: "must be one of complete, partial, missing"}
	}

	return nil
}

// Score implements Assessment.
func (r Pharma) Score() float64 {
	return ScorePharma(r)
}

// ScorePharma fails expired stock or a dosage label that does not match the
// product, and otherwise penalizes packaging, labelling and visible anomalies.
func ScorePharma(r Pharma) float64 {
	if r.ExpiryStatus == ExpiryExpired || !r.DosageLabelMatchesExpected {
		return 0.0
	}

	score := 1.0
	score -= penaltyIf(!r.PackagingSealed, 0.2)
	score -= penaltyIf(!r.ExpiryDatePresent, 0.15)
	score -= penaltyIf(r.LabelCompleteness != LabelComplete, 0.1)
	score -= penaltyIf(r.PhysicalAnomaliesPresent, 0.1)

	return clamp(score)
}

// Food is the quality assessment for food and beverages.
type Food struct {
	ExpiryStatus               ExpiryStatus
	VisibleSpoilagePresent     bool
	PackagingIntact            bool
	WeightOrVolumeMatchesLabel bool
	AbnormalSmellOrAppearance  bool
}

// Category implements Assessment.
func (Food) Category() Category { return CategoryFood }

// Validate implements Assessment.
func (r Food) Validate() error {
	if !r.ExpiryStatus.IsValid() {
		return &FieldError{Field: "expiry_status", Reason: "must be one of valid, near_expiry, expired"}
	}

	return nil
}

// Score implements Assessment.
func (r Food) Score() float64 {
	return ScoreFood(r)
}

// ScoreFood fails expired or visibly spoiled food, and otherwise penalizes
// damaged packaging, short weight and abnormal smell or appearance.
func ScoreFood(r Food) float64 {
	if r.ExpiryStatus == ExpiryExpired || r.VisibleSpoilagePresent {
		return 0.0
	}

	score := 1.0
	score -= penaltyIf(!r.PackagingIntact, 0.1)
	score -= penaltyIf(!r.WeightOrVolumeMatchesLabel, 0.1)
	score -= penaltyIf(r.AbnormalSmellOrAppearance, 0.15)

	return clamp(score)
}

// Apparel is the quality assessment for apparel and textiles.
type Apparel struct {
	MaterialQuality    MaterialQuality
	StitchingQuality   StitchingQuality
	FitConsistency     FitConsistency
	EarlyWearPresent   bool
	ColorOrPrintFading bool
}

// Category implements Assessment.
func (Apparel) Category() Category { return CategoryApparel }

// Validate implements Assessment.
func (r Apparel) Validate() error {
	if !r.MaterialQuality.IsValid() {
		return &FieldError{Field: "material_quality", Reason: "must be one of as_expected, below_expected, poor"}
	}
	if !r.StitchingQuality.IsValid() {
		return &FieldError{Field: "stitching_quality", Reason: "must be one of no_defects, minor_defects, major_defects"}
	}
	if !r.FitConsistency.IsValid() {
		return &FieldError{Field: "fit_consistency", Reason: "must be one of as_expected, runs_small, runs_large"}
	}

	return nil
}

// Score implements Assessment.
func (r Apparel) Score() float64 {
	return ScoreApparel(r)
}

// ScoreApparel fails garments with major stitching defects, and otherwise
// penalizes material quality, minor stitching defects, fit, wear and fading.
func ScoreApparel(r Apparel) float64 {
	if r.StitchingQuality == StitchingMajorDefects {
		return 0.0
	}

	score := 1.0
	switch r.MaterialQuality {
	case MaterialBelowExpected:
		score -= 0.15
	case MaterialPoor:
		score -= 0.3
	}

	score -= penaltyIf(r.StitchingQuality == StitchingMinorDefects, 0.1)
	score -= penaltyIf(r.FitConsistency != FitAsExpected, 0.1)
	score -= penaltyIf(r.EarlyWearPresent, 0.05)
	score -= penaltyIf(r.ColorOrPrintFading, 0.05)

	return clamp(score)
}
