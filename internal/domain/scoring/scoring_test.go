package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scoreDelta = 1e-9

func boolPtr(b bool) *bool {
	return &b
}

func perfectElectronics() Electronics {
	return Electronics{
		DeviceFunctional:       true,
		AuthenticityConfidence: 5,
		ConditionMatch:         5,
		WarrantyHonored:        boolPtr(true),
		AccessoriesComplete:    true,
	}
}

func TestScoreElectronics(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Electronics)
		want   float64
	}{
		{name: "perfect device", mutate: func(r *Electronics) {}, want: 1.0},
		{name: "warranty untested", mutate: func(r *Electronics) { r.WarrantyHonored = nil }, want: 0.95},
		{name: "warranty refused", mutate: func(r *Electronics) { r.WarrantyHonored = boolPtr(false) }, want: 0.75},
		{name: "accessories missing", mutate: func(r *Electronics) { r.AccessoriesComplete = false }, want: 0.9},
		{name: "graduated ratings", mutate: func(r *Electronics) {
			r.AuthenticityConfidence = 3
			r.ConditionMatch = 4
		}, want: 1.0 - 2*0.08 - 0.06},
		{name: "worst non-failing device", mutate: func(r *Electronics) {
			r.AuthenticityConfidence = 2
			r.ConditionMatch = 1
			r.WarrantyHonored = boolPtr(false)
			r.AccessoriesComplete = false
		}, want: 1.0 - 0.24 - 0.24 - 0.25 - 0.1},
		{name: "lowest authenticity tier fails", mutate: func(r *Electronics) { r.AuthenticityConfidence = 1 }, want: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := perfectElectronics()
			tt.mutate(&r)
			assert.InDelta(t, tt.want, ScoreElectronics(r), scoreDelta)
		})
	}
}

func TestScoreElectronics_NonFunctionalAlwaysZero(t *testing.T) {
	for authenticity := MinRating; authenticity <= MaxRating; authenticity++ {
		for condition := MinRating; condition <= MaxRating; condition++ {
			for _, warranty := range []*bool{nil, boolPtr(true), boolPtr(false)} {
				for _, accessories := range []bool{true, false} {
					r := Electronics{
						DeviceFunctional:       false,
						AuthenticityConfidence: authenticity,
						ConditionMatch:         condition,
						WarrantyHonored:        warranty,
						AccessoriesComplete:    accessories,
					}
					assert.Equal(t, 0.0, ScoreElectronics(r))
				}
			}
		}
	}
}

func TestScorePharma(t *testing.T) {
	base := Pharma{
		ExpiryStatus:               ExpiryValid,
		DosageLabelMatchesExpected: true,
		PackagingSealed:            true,
		ExpiryDatePresent:          true,
		LabelCompleteness:          LabelComplete,
	}

	assert.InDelta(t, 1.0, ScorePharma(base), scoreDelta)

	r := base
	r.PackagingSealed = false
	r.ExpiryDatePresent = false
	r.LabelCompleteness = LabelPartial
	r.PhysicalAnomaliesPresent = true
	assert.InDelta(t, 0.45, ScorePharma(r), scoreDelta)

	r = base
	r.DosageLabelMatchesExpected = false
	assert.Equal(t, 0.0, ScorePharma(r))
}

func TestScorePharma_ExpiredAlwaysZero(t *testing.T) {
	for _, sealed := range []bool{true, false} {
		for _, dated := range []bool{true, false} {
			for _, label := range []LabelCompleteness{LabelComplete, LabelPartial, LabelMissing} {
				r := Pharma{
					ExpiryStatus:               ExpiryExpired,
					DosageLabelMatchesExpected: true,
					PackagingSealed:            sealed,
					ExpiryDatePresent:          dated,
					LabelCompleteness:          label,
				}
				assert.Equal(t, 0.0, ScorePharma(r))
			}
		}
	}
}

func TestScoreFood(t *testing.T) {
	base := Food{
		ExpiryStatus:               ExpiryNearExpiry,
		PackagingIntact:            true,
		WeightOrVolumeMatchesLabel: true,
	}
	assert.InDelta(t, 1.0, ScoreFood(base), scoreDelta)

	r := base
	r.PackagingIntact = false
	r.WeightOrVolumeMatchesLabel = false
	r.AbnormalSmellOrAppearance = true
	assert.InDelta(t, 0.65, ScoreFood(r), scoreDelta)

	r = base
	r.VisibleSpoilagePresent = true
	assert.Equal(t, 0.0, ScoreFood(r))

	r = base
	r.ExpiryStatus = ExpiryExpired
	assert.Equal(t, 0.0, ScoreFood(r))
}

func TestScoreApparel(t *testing.T) {
	tests := []struct {
		name string
		r    Apparel
		want float64
	}{
		{
			name: "poor material only",
			r: Apparel{
				MaterialQuality:  MaterialPoor,
				StitchingQuality: StitchingNoDefects,
				FitConsistency:   FitAsExpected,
			},
			want: 0.7,
		},
		{
			name: "below expected with minor defects",
			r: Apparel{
				MaterialQuality:  MaterialBelowExpected,
				StitchingQuality: StitchingMinorDefects,
				FitConsistency:   FitRunsSmall,
			},
			want: 0.65,
		},
		{
			name: "everything wrong short of failure",
			r: Apparel{
				MaterialQuality:    MaterialPoor,
				StitchingQuality:   StitchingMinorDefects,
				FitConsistency:     FitRunsLarge,
				EarlyWearPresent:   true,
				ColorOrPrintFading: true,
			},
			want: 0.4,
		},
		{
			name: "major stitching defects fail",
			r: Apparel{
				MaterialQuality:  MaterialAsExpected,
				StitchingQuality: StitchingMajorDefects,
				FitConsistency:   FitAsExpected,
			},
			want: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ScoreApparel(tt.r), scoreDelta)
		})
	}
}

func TestAssessments_DeterministicAndBounded(t *testing.T) {
	assessments := []Assessment{
		perfectElectronics(),
		Electronics{DeviceFunctional: true, AuthenticityConfidence: 2, ConditionMatch: 1, AccessoriesComplete: false},
		Pharma{ExpiryStatus: ExpiryNearExpiry, DosageLabelMatchesExpected: true, LabelCompleteness: LabelMissing, PhysicalAnomaliesPresent: true},
		Food{ExpiryStatus: ExpiryValid, AbnormalSmellOrAppearance: true},
		Apparel{MaterialQuality: MaterialPoor, StitchingQuality: StitchingMinorDefects, FitConsistency: FitRunsSmall, EarlyWearPresent: true, ColorOrPrintFading: true},
	}

	for _, a := range assessments {
		require.NoError(t, a.Validate())
		first := a.Score()
		assert.Equal(t, first, a.Score(), "score must be deterministic for %s", a.Category())
		assert.GreaterOrEqual(t, first, 0.0)
		assert.LessOrEqual(t, first, 1.0)
	}
}

func TestValidate_RejectsOutOfDomainFields(t *testing.T) {
	tests := []struct {
		name  string
		a     Assessment
		field string
	}{
		{name: "authenticity below range", a: Electronics{AuthenticityConfidence: 0, ConditionMatch: 3}, field: "authenticity_confidence"},
		{name: "condition above range", a: Electronics{AuthenticityConfidence: 3, ConditionMatch: 6}, field: "condition_match"},
		{name: "unknown expiry status", a: Pharma{ExpiryStatus: "stale", LabelCompleteness: LabelComplete}, field: "expiry_status"},
		{name: "unknown label completeness", a: Pharma{ExpiryStatus: ExpiryValid, LabelCompleteness: "torn"}, field: "label_completeness"},
		{name: "food expiry missing", a: Food{}, field: "expiry_status"},
		{name: "unknown material", a: Apparel{MaterialQuality: "silk", StitchingQuality: StitchingNoDefects, FitConsistency: FitAsExpected}, field: "material_quality"},
		{name: "unknown stitching", a: Apparel{MaterialQuality: MaterialPoor, StitchingQuality: "frayed", FitConsistency: FitAsExpected}, field: "stitching_quality"},
		{name: "unknown fit", a: Apparel{MaterialQuality: MaterialPoor, StitchingQuality: StitchingNoDefects}, field: "fit_consistency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.a.Validate()
			require.Error(t, err)

			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.field, fieldErr.Field)
		})
	}
}

func TestCategory_IsValid(t *testing.T) {
	assert.True(t, CategoryElectronics.IsValid())
	assert.True(t, CategoryApparel.IsValid())
	assert.False(t, Category("furniture").IsValid())
}
