package scoring

// ExpiryStatus describes how close a perishable item is to its expiry date.
type ExpiryStatus string

const (
	ExpiryValid      ExpiryStatus = "valid"
	ExpiryNearExpiry ExpiryStatus = "near_expiry"
	ExpiryExpired    ExpiryStatus = "expired"
)

// IsValid checks if the ExpiryStatus is a valid value.
func (s ExpiryStatus) IsValid() bool {
	switch s {
	case ExpiryValid, ExpiryNearExpiry, ExpiryExpired:
		return true
	default:
		return false
	}
}

// LabelCompleteness grades the printed label of a pharmaceutical product.
type LabelCompleteness string

const (
	LabelComplete LabelCompleteness = "complete"
	LabelPartial  LabelCompleteness = "partial"
	LabelMissing  LabelCompleteness = "missing"
)

// IsValid checks if the LabelCompleteness is a valid value.
func (l LabelCompleteness) IsValid() bool {
	switch l {
	case LabelComplete, LabelPartial, LabelMissing:
		return true
	default:
		return false
	}
}

// MaterialQuality grades apparel fabric against what was advertised.
type MaterialQuality string

const (
	MaterialAsExpected    MaterialQuality = "as_expected"
	MaterialBelowExpected MaterialQuality = "below_expected"
	MaterialPoor          MaterialQuality = "poor"
)

// IsValid checks if the MaterialQuality is a valid value.
func (m MaterialQuality) IsValid() bool {
	switch m {
	case MaterialAsExpected, MaterialBelowExpected, MaterialPoor:
		return true
	default:
		return false
	}
}

// StitchingQuality grades apparel seams.
type StitchingQuality string

const (
	StitchingNoDefects    StitchingQuality = "no_defects"
	StitchingMinorDefects StitchingQuality = "minor_defects"
	StitchingMajorDefects StitchingQuality = "major_defects"
)

// IsValid checks if the StitchingQuality is a valid value.
func (s StitchingQuality) IsValid() bool {
	switch s {
	case StitchingNoDefects, StitchingMinorDefects, StitchingMajorDefects:
		return true
	default:
		return false
	}
}

// FitConsistency describes whether a garment matches its labelled size.
type FitConsistency string

const (
	FitAsExpected FitConsistency = "as_expected"
	FitRunsSmall  FitConsistency = "runs_small"
	FitRunsLarge  FitConsistency = "runs_large"
)

// IsValid checks if the FitConsistency is a valid value.
func (f FitConsistency) IsValid() bool {
	switch f {
	case FitAsExpected, FitRunsSmall, FitRunsLarge:
		return true
	default:
		return false
	}
}
