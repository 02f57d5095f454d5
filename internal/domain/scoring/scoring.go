// Package scoring converts category-specific quality assessments into a
// normalized score in the range [0.0, 1.0].
//
// Every scorer follows the same shape: hard-failure conditions short-circuit
// to 0.0, otherwise the score starts at 1.0 and fixed or graduated penalties
// are subtracted before clamping. Scorers are pure and total over input that
// has passed Validate.
package scoring

// Version tags every persisted score so that rows scored by older rules can
// be identified after the penalties change.
const Version = "v1.0"

// Confidence and condition ratings are on a 1..5 scale.
const (
	MinRating = 1
	MaxRating = 5
)

// Category identifies which assessment schema and scorer apply to a product.
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryPharma      Category = "pharma"
	CategoryFood        Category = "food"
	CategoryApparel     Category = "apparel"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryElectronics, CategoryPharma, CategoryFood, CategoryApparel:
		return true
	default:
		return false
	}
}

// Assessment is the tagged variant over the four category schemas.
type Assessment interface {
	// Category reports which schema the assessment belongs to.
	Category() Category
	// Validate checks field domains; scorers assume it has returned nil.
	Validate() error
	// Score computes the normalized quality score.
	Score() float64
}

// FieldError reports the first field that failed domain validation.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

func clamp(score float64) float64 {
	return max(0.0, min(score, 1.0))
}

func penaltyIf(cond bool, penalty float64) float64 {
	if cond {
		return penalty
	}

	return 0
}

func validateRating(field string, v int) error {
	if v < MinRating || v > MaxRating {
		return &FieldError{Field: field, Reason: "must be between 1 and 5"}
	}

	return nil
}
