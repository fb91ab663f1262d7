package main

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// ErrMissingFields is returned by validateShiftInput when a required raw
// field (date, restaurantId, netRevenue) is absent.
var ErrMissingFields = errors.New("missing required fields")

// parseAmount converts a loosely typed request value to a float64. Missing,
// empty, or unparseable values come back as 0, never an error.
func parseAmount(value any) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// parseCount is parseAmount for integral fields, base-10 parsing for strings.
func parseCount(value any) int {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return int(v)
	case int:
		return v
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// hasValue reports whether a raw field was actually supplied (present and
// non-empty), as opposed to merely parsing to 0.
func hasValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	default:
		return true
	}
}

// weekdayName returns the long English weekday name for a YYYY-MM-DD date.
// Dates are interpreted in UTC so the result never depends on the server's
// timezone. An unparseable date yields "".
func weekdayName(date string) string {
	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return ""
	}
	return t.Weekday().String()
}

// validateShiftInput enforces the preconditions for shift creation. The
// calculator itself accepts anything; handlers call this first.
func validateShiftInput(raw RawShiftInput) error {
	if raw.Date == "" || !hasValue(raw.RestaurantID) || !hasValue(raw.NetRevenue) {
		return ErrMissingFields
	}
	return nil
}

// deriveShift computes every derived field of a shift from the raw
// submission. It is a pure function: same input, same output, no I/O, no
// clock, no mutation of raw. Any division with a zero denominator yields 0
// rather than NaN/Inf, so the result is always safe to store and render.
func deriveShift(raw RawShiftInput) Shift {
	netRevenue := parseAmount(raw.NetRevenue)
	checks := parseCount(raw.Checks)
	covers := parseCount(raw.Covers)

	wineSales := parseAmount(raw.WineSales)
	beerSales := parseAmount(raw.BeerSales)
	liquorSales := parseAmount(raw.LiquorSales)
	foodSales := parseAmount(raw.FoodSales)

	creditTips := parseAmount(raw.CreditTips)
	cashTips := parseAmount(raw.CashTips)
	tipoutAmount := parseAmount(raw.TipoutAmount)

	// When tax is supplied the gross total is derived from it; otherwise the
	// submitted total is taken as-is.
	totalWithTax := parseAmount(raw.TotalWithTax)
	if hasValue(raw.Tax) {
		totalWithTax = netRevenue + parseAmount(raw.Tax)
	}

	totalTips := creditTips + cashTips
	creditTipsAfterTipout := creditTips - tipoutAmount
	tipsKept := creditTipsAfterTipout + cashTips

	return Shift{
		Date:                  raw.Date,
		DayOfWeek:             weekdayName(raw.Date),
		Checks:                checks,
		Covers:                covers,
		NetRevenue:            netRevenue,
		TotalWithTax:          totalWithTax,
		AverageCheckPerCover:  safeDivide(netRevenue, float64(covers)),
		WineSales:             wineSales,
		WinePercent:           percentOf(wineSales, netRevenue),
		BeerSales:             beerSales,
		BeerPercent:           percentOf(beerSales, netRevenue),
		LiquorSales:           liquorSales,
		LiquorPercent:         percentOf(liquorSales, netRevenue),
		FoodSales:             foodSales,
		FoodPercent:           percentOf(foodSales, netRevenue),
		CreditTips:            creditTips,
		CashTips:              cashTips,
		TotalTips:             totalTips,
		AverageTipPercent:     percentOf(totalTips, netRevenue),
		CreditTipsAfterTipout: creditTipsAfterTipout,
		TipoutPercent:         percentOf(totalTips-tipsKept, totalTips),
		RestaurantID:          parseCount(raw.RestaurantID),
	}
}

// safeDivide returns a/b, or 0 when b is not positive.
func safeDivide(a, b float64) float64 {
	if b <= 0 {
		return 0
	}
	return a / b
}

// percentOf returns part as a percentage of whole, 0 when whole is not
// positive.
func percentOf(part, whole float64) float64 {
	return safeDivide(part, whole) * 100
}
