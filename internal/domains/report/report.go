// Package report computes the read-side aggregates shown to the administrator. It works on
// plain rows handed in by the services and never touches the store.
package report

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"ecoparking/shared/timezone"

	"github.com/shopspring/decimal"
)

const (
	topLocations   = 5
	topPeakHours   = 3
	averageWindow  = 30
	weekWindowDays = 7
)

var hundred = decimal.NewFromInt(100)

// Payment is one earnings ledger row.
type Payment struct {
	Amount      decimal.Decimal
	Method      string
	Location    string
	VehicleType string
	At          time.Time
}

// Visit is one entry of the visitor log.
type Visit struct {
	AccessType string
	At         time.Time
}

// Rating is one review score for a space.
type Rating struct {
	Space  string
	Rating int
}

// Amount is a money total for a label.
type Amount struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

// Share is a count for a label with its percentage of the whole.
type Share struct {
	Label   string          `json:"label"`
	Count   int             `json:"count"`
	Percent decimal.Decimal `json:"percent"`
}

type EarningsSummary struct {
	Week         decimal.Decimal `json:"week"`
	Month        decimal.Decimal `json:"month"`
	Year         decimal.Decimal `json:"year"`
	Total        decimal.Decimal `json:"total"`
	Payments     int             `json:"payments"`
	DailyAverage decimal.Decimal `json:"daily_average"`
	ByMethod     []Amount        `json:"by_method"`
	TopLocations []Amount        `json:"top_locations"`
}

// SumBetween adds the payments made in [from, to).
func SumBetween(payments []Payment, from, to time.Time) decimal.Decimal {
	total := decimal.Zero

	for _, p := range payments {
		if !p.At.Before(from) && p.At.Before(to) {
			total = total.Add(p.Amount)
		}
	}

	return total
}

// SummarizeEarnings builds the earnings windows relative to now. The week is the last seven
// days, month and year run from their first day, and the daily average spreads the last
// thirty days evenly.
func SummarizeEarnings(payments []Payment, now time.Time) EarningsSummary {
	local := timezone.ToAppTime(now)
	end := local.Add(time.Nanosecond)
	yearStart := time.Date(local.Year(), time.January, 1, 0, 0, 0, 0, local.Location())

	res := EarningsSummary{
		Week:     SumBetween(payments, local.AddDate(0, 0, -weekWindowDays), end),
		Month:    SumBetween(payments, timezone.StartOfMonth(local), end),
		Year:     SumBetween(payments, yearStart, end),
		Total:    decimal.Zero,
		Payments: len(payments),
	}

	methods := map[string]*Amount{}
	locations := map[string]*Amount{}

	for _, p := range payments {
		res.Total = res.Total.Add(p.Amount)
		addAmount(methods, p.Method, p.Amount)

		if p.Location != "" {
			addAmount(locations, p.Location, p.Amount)
		}
	}

	lastMonth := SumBetween(payments, local.AddDate(0, 0, -averageWindow), end)
	res.DailyAverage = lastMonth.Div(decimal.NewFromInt(averageWindow)).Round(2)
	res.ByMethod = rankAmounts(methods, 0)
	res.TopLocations = rankAmounts(locations, topLocations)

	return res
}

// InRange keeps the payments made between from and to inclusive, newest first.
func InRange(payments []Payment, from, to time.Time) []Payment {
	res := make([]Payment, 0, len(payments))

	for _, p := range payments {
		if !p.At.Before(from) && !p.At.After(to) {
			res = append(res, p)
		}
	}

	slices.SortStableFunc(res, func(a, b Payment) int {
		return b.At.Compare(a.At)
	})

	return res
}

type VisitSummary struct {
	Total     int     `json:"total"`
	Today     int     `json:"today"`
	Week      int     `json:"week"`
	Month     int     `json:"month"`
	ByAccess  []Share `json:"by_access"`
	PeakHours []Share `json:"peak_hours"`
	ByWeekday []Share `json:"by_weekday"`
}

// SummarizeVisits counts entries for today, the week starting on Sunday and the current month,
// and breaks them down by access type, hour and weekday.
func SummarizeVisits(visits []Visit, now time.Time) VisitSummary {
	today := timezone.StartOfDay(now)
	week := timezone.StartOfWeek(now)
	month := timezone.StartOfMonth(now)

	res := VisitSummary{Total: len(visits)}

	access := map[string]int{}
	hours := map[int]int{}
	days := map[time.Weekday]int{}

	for _, v := range visits {
		at := timezone.ToAppTime(v.At)

		if !at.Before(today) {
			res.Today++
		}

		if !at.Before(week) {
			res.Week++
		}

		if !at.Before(month) {
			res.Month++
		}

		access[v.AccessType]++
		hours[at.Hour()]++
		days[at.Weekday()]++
	}

	for label, count := range access {
		res.ByAccess = append(res.ByAccess, newShare(label, count, res.Total))
	}

	slices.SortFunc(res.ByAccess, byCountDesc)

	peaks := make([]int, 0, len(hours))
	for hour := range hours {
		peaks = append(peaks, hour)
	}

	slices.SortFunc(peaks, func(a, b int) int {
		if c := cmp.Compare(hours[b], hours[a]); c != 0 {
			return c
		}

		return cmp.Compare(a, b)
	})

	for _, hour := range peaks[:min(topPeakHours, len(peaks))] {
		res.PeakHours = append(res.PeakHours, newShare(HourLabel(hour), hours[hour], res.Total))
	}

	for day := time.Sunday; day <= time.Saturday; day++ {
		if days[day] > 0 {
			res.ByWeekday = append(res.ByWeekday, newShare(day.String(), days[day], res.Total))
		}
	}

	return res
}

// HourLabel renders an hour bucket as "08:00 - 09:00".
func HourLabel(hour int) string {
	return fmt.Sprintf("%02d:00 - %02d:00", hour, (hour+1)%24)
}

type ReviewSummary struct {
	Total        int             `json:"total"`
	Average      decimal.Decimal `json:"average"`
	Distribution []Share         `json:"distribution"`
}

// AverageRating is the mean score rounded half to even to one decimal. Zero without ratings.
func AverageRating(ratings []Rating) decimal.Decimal {
	if len(ratings) == 0 {
		return decimal.Zero
	}

	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}

	return decimal.NewFromInt(int64(sum)).Div(decimal.NewFromInt(int64(len(ratings)))).RoundBank(1)
}

// SummarizeReviews lists the distribution from five stars down to one.
func SummarizeReviews(ratings []Rating) ReviewSummary {
	res := ReviewSummary{
		Total:   len(ratings),
		Average: AverageRating(ratings),
	}

	counts := map[int]int{}
	for _, r := range ratings {
		counts[r.Rating]++
	}

	stars := make([]int, 0, len(counts))
	for star := range counts {
		stars = append(stars, star)
	}

	slices.Sort(stars)
	slices.Reverse(stars)

	for _, star := range stars {
		res.Distribution = append(res.Distribution, newShare(fmt.Sprintf("%d", star), counts[star], res.Total))
	}

	return res
}

// Percent is part of whole as a percentage with one decimal.
func Percent(part, whole int) decimal.Decimal {
	if whole == 0 {
		return decimal.Zero
	}

	return decimal.NewFromInt(int64(part)).Mul(hundred).Div(decimal.NewFromInt(int64(whole))).Round(1)
}

func newShare(label string, count, total int) Share {
	return Share{Label: label, Count: count, Percent: Percent(count, total)}
}

func byCountDesc(a, b Share) int {
	if c := cmp.Compare(b.Count, a.Count); c != 0 {
		return c
	}

	return cmp.Compare(a.Label, b.Label)
}

func addAmount(groups map[string]*Amount, label string, amount decimal.Decimal) {
	group, ok := groups[label]
	if !ok {
		group = &Amount{Label: label, Amount: decimal.Zero}
		groups[label] = group
	}

	group.Amount = group.Amount.Add(amount)
	group.Count++
}

// rankAmounts sorts by amount descending; limit 0 keeps every group.
func rankAmounts(groups map[string]*Amount, limit int) []Amount {
	res := make([]Amount, 0, len(groups))
	for _, group := range groups {
		res = append(res, *group)
	}

	slices.SortFunc(res, func(a, b Amount) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}

		return cmp.Compare(a.Label, b.Label)
	})

	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}

	return res
}
