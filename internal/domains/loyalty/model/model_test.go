package model_test

import (
	"testing"

	"ecoparking/internal/domains/loyalty/model"

	"github.com/stretchr/testify/assert"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{0, model.TierNew},
		{9, model.TierNew},
		{10, model.TierBronze},
		{24, model.TierBronze},
		{25, model.TierSilver},
		{49, model.TierSilver},
		{50, model.TierGold},
		{120, model.TierGold},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, model.TierFor(tt.count), "count %d", tt.count)
	}
}

func TestLoyaltyRecord_DiscountProgress(t *testing.T) {
	tests := []struct {
		name     string
		record   model.LoyaltyRecord
		since    int
		until    int
		eligible bool
	}{
		{
			name:   "fresh record",
			record: model.LoyaltyRecord{},
			since:  0,
			until:  10,
		},
		{
			name:   "ninth reservation",
			record: model.LoyaltyRecord{ReservationCount: 9},
			since:  9,
			until:  1,
		},
		{
			name:     "tenth reservation",
			record:   model.LoyaltyRecord{ReservationCount: 10},
			since:    10,
			until:    0,
			eligible: true,
		},
		{
			name:   "just rewarded",
			record: model.LoyaltyRecord{ReservationCount: 10, CountAtLastDiscount: 10},
			since:  0,
			until:  10,
		},
		{
			name:     "twentieth reservation",
			record:   model.LoyaltyRecord{ReservationCount: 20, CountAtLastDiscount: 10},
			since:    10,
			until:    0,
			eligible: true,
		},
		{
			name:   "marker ahead of count",
			record: model.LoyaltyRecord{ReservationCount: 3, CountAtLastDiscount: 10},
			since:  0,
			until:  10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.since, tt.record.SinceLastDiscount())
			assert.Equal(t, tt.until, tt.record.UntilNextDiscount())
			assert.Equal(t, tt.eligible, tt.record.Eligible())
		})
	}
}
