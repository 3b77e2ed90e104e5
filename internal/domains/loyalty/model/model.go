package model

import (
	"time"

	"ecoparking/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "loyalty_records"
	EntityName = "loyalty_record"

	FieldID                  = "id"
	FieldUserID              = "user_id"
	FieldUserName            = "user_name"
	FieldEmail               = "email"
	FieldReservationCount    = "reservation_count"
	FieldCountAtLastDiscount = "count_at_last_discount"
	FieldTier                = "tier"
	FieldLastReservationAt   = "last_reservation_at"
	FieldLastDiscountAt      = "last_discount_at"
	FieldLastDiscountAmount  = "last_discount_amount"
	FieldCumulativeDiscount  = "cumulative_discount"
)

const (
	TierNew    = "New"
	TierBronze = "Bronze"
	TierSilver = "Silver"
	TierGold   = "Gold"
)

// DiscountEvery is how many qualifying reservations earn one discount.
const DiscountEvery = 10

var tiers = []struct {
	min  int
	name string
}{
	{50, TierGold},
	{25, TierSilver},
	{10, TierBronze},
}

type LoyaltyRecord struct {
	ID                  int64           `db:"id"                     insert:"-"`
	UserID              int64           `db:"user_id"`
	UserName            string          `db:"user_name"`
	Email               string          `db:"email"`
	ReservationCount    int             `db:"reservation_count"`
	CountAtLastDiscount int             `db:"count_at_last_discount"`
	Tier                string          `db:"tier"`
	LastReservationAt   *time.Time      `db:"last_reservation_at"`
	LastDiscountAt      *time.Time      `db:"last_discount_at"`
	LastDiscountAmount  decimal.Decimal `db:"last_discount_amount"`
	CumulativeDiscount  decimal.Decimal `db:"cumulative_discount"`
	model.Metadata
}

// TierFor labels a lifetime reservation count.
func TierFor(count int) string {
	for _, t := range tiers {
		if count >= t.min {
			return t.name
		}
	}

	return TierNew
}

// SinceLastDiscount counts the qualifying reservations not yet rewarded.
func (r LoyaltyRecord) SinceLastDiscount() int {
	return max(0, r.ReservationCount-r.CountAtLastDiscount)
}

func (r LoyaltyRecord) Eligible() bool {
	return r.SinceLastDiscount() >= DiscountEvery
}

func (r LoyaltyRecord) UntilNextDiscount() int {
	return max(0, DiscountEvery-r.SinceLastDiscount())
}
