package types

// OfferCategory is the modern classification of a course offering. Category
// decides whether the commercial relationship is a monthly subscription
// ("Abo") or a one-off purchase.
type OfferCategory string

const (
	OfferCategoryWeekly       OfferCategory = "Weekly"
	OfferCategoryHoliday      OfferCategory = "Holiday"
	OfferCategoryIndividual   OfferCategory = "Individual"
	OfferCategoryClubPrograms OfferCategory = "ClubPrograms"
	OfferCategoryRentACoach   OfferCategory = "RentACoach"
)

// Legacy offer types that predate categories. Rows created before the
// category migration carry only these; Foerdertraining and Kindergarten were
// the two subscription products of that era.
const (
	LegacyTypeFoerdertraining = "Foerdertraining"
	LegacyTypeKindergarten    = "Kindergarten"
)

func (c OfferCategory) Validate() bool {
	switch c {
	case OfferCategoryWeekly, OfferCategoryHoliday, OfferCategoryIndividual,
		OfferCategoryClubPrograms, OfferCategoryRentACoach:
		return true
	}
	return false
}
