package offer

import (
	"github.com/coursebill/coursebill/internal/types"
)

// ClassifierInput is the normalized input to the recurring/one-off decision.
// Offer data wins; LegacyType falls back to the booking's recorded offer type
// when the offer row is unavailable or carries no category.
type ClassifierInput struct {
	Category   types.OfferCategory
	LegacyType string

	// Strict disables the legacy type fallback so that only offers with the
	// Weekly category classify as recurring. Accrual-basis revenue uses this.
	Strict bool
}

// classificationRule pairs a named predicate with its result. Rules are
// evaluated in order; the first match wins.
type classificationRule struct {
	Name      string
	Matches   func(in ClassifierInput) bool
	Recurring bool
}

var classificationRules = []classificationRule{
	{
		Name: "category_weekly",
		Matches: func(in ClassifierInput) bool {
			return in.Category == types.OfferCategoryWeekly
		},
		Recurring: true,
	},
	{
		Name: "category_one_off",
		Matches: func(in ClassifierInput) bool {
			switch in.Category {
			case types.OfferCategoryHoliday, types.OfferCategoryIndividual,
				types.OfferCategoryClubPrograms, types.OfferCategoryRentACoach:
				return true
			}
			return false
		},
		Recurring: false,
	},
	{
		Name: "legacy_subscription_type",
		Matches: func(in ClassifierInput) bool {
			if in.Strict || in.Category != "" {
				return false
			}
			return in.LegacyType == types.LegacyTypeFoerdertraining ||
				in.LegacyType == types.LegacyTypeKindergarten
		},
		Recurring: true,
	},
}

// Classify runs the decision table. The default is one-off: misclassifying a
// subscription as one-off skews a single month's figure, misclassifying a
// one-off as recurring would skew every month of the year.
func Classify(in ClassifierInput) bool {
	for _, rule := range classificationRules {
		if rule.Matches(in) {
			return rule.Recurring
		}
	}
	return false
}

// IsRecurring reports whether the commercial relationship behind an offer is
// a monthly subscription ("Abo"). fallbackType is the offer type recorded on
// the booking, used when the offer row is missing or predates categories.
func IsRecurring(o *Offer, fallbackType string, strict bool) bool {
	in := ClassifierInput{LegacyType: fallbackType, Strict: strict}
	if o != nil {
		in.Category = o.Category
		if o.Type != "" {
			in.LegacyType = o.Type
		}
	}
	return Classify(in)
}
