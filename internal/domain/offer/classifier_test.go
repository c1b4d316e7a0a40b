package offer

import (
	"testing"

	"github.com/coursebill/coursebill/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		input     ClassifierInput
		recurring bool
	}{
		{
			name:      "weekly category is recurring",
			input:     ClassifierInput{Category: types.OfferCategoryWeekly},
			recurring: true,
		},
		{
			name:      "holiday category is one off",
			input:     ClassifierInput{Category: types.OfferCategoryHoliday},
			recurring: false,
		},
		{
			name:      "individual category is one off",
			input:     ClassifierInput{Category: types.OfferCategoryIndividual},
			recurring: false,
		},
		{
			name:      "club programs category is one off",
			input:     ClassifierInput{Category: types.OfferCategoryClubPrograms},
			recurring: false,
		},
		{
			name:      "rent a coach category is one off",
			input:     ClassifierInput{Category: types.OfferCategoryRentACoach},
			recurring: false,
		},
		{
			name:      "legacy foerdertraining falls back to recurring",
			input:     ClassifierInput{LegacyType: types.LegacyTypeFoerdertraining},
			recurring: true,
		},
		{
			name:      "legacy kindergarten falls back to recurring",
			input:     ClassifierInput{LegacyType: types.LegacyTypeKindergarten},
			recurring: true,
		},
		{
			name:      "unknown legacy type defaults to one off",
			input:     ClassifierInput{LegacyType: "Camp"},
			recurring: false,
		},
		{
			name:      "empty input defaults to one off",
			input:     ClassifierInput{},
			recurring: false,
		},
		{
			name:      "category wins over legacy type",
			input:     ClassifierInput{Category: types.OfferCategoryHoliday, LegacyType: types.LegacyTypeFoerdertraining},
			recurring: false,
		},
		{
			name:      "strict disables the legacy fallback",
			input:     ClassifierInput{LegacyType: types.LegacyTypeFoerdertraining, Strict: true},
			recurring: false,
		},
		{
			name:      "strict keeps weekly recurring",
			input:     ClassifierInput{Category: types.OfferCategoryWeekly, Strict: true},
			recurring: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.recurring, Classify(tt.input))
		})
	}
}

func TestIsRecurring(t *testing.T) {
	t.Run("nil offer uses the booking's recorded type", func(t *testing.T) {
		assert.True(t, IsRecurring(nil, types.LegacyTypeFoerdertraining, false))
		assert.False(t, IsRecurring(nil, "Camp", false))
	})

	t.Run("offer type overrides the fallback type", func(t *testing.T) {
		o := &Offer{Type: "Camp"}
		assert.False(t, IsRecurring(o, types.LegacyTypeFoerdertraining, false))
	})

	t.Run("strict ignores legacy types entirely", func(t *testing.T) {
		o := &Offer{Type: types.LegacyTypeFoerdertraining}
		assert.False(t, IsRecurring(o, "", true))

		o = &Offer{Category: types.OfferCategoryWeekly}
		assert.True(t, IsRecurring(o, "", true))
	})
}
