package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatCurrencyValue(t *testing.T) {
	tests := map[string]struct {
		value float64
		want  string
	}{
		"zero":              {value: 0, want: "$0.00"},
		"cents padded":      {value: 25, want: "$25.00"},
		"thousands grouped": {value: 1234.5, want: "$1,234.50"},
		"millions grouped":  {value: 1234567.89, want: "$1,234,567.89"},
		"negative":          {value: -85.5, want: "-$85.50"},
		"rounds to cents":   {value: 999.999, want: "$1,000.00"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := formatCurrencyValue(tc.value); got != tc.want {
				t.Errorf("formatCurrencyValue(%v) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestFormatPercentValue(t *testing.T) {
	tests := map[string]struct {
		value float64
		want  string
	}{
		"whole":      {value: 20, want: "20.00%"},
		"fractional": {value: 12.5, want: "12.50%"},
		"zero":       {value: 0, want: "0.00%"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := formatPercentValue(tc.value); got != tc.want {
				t.Errorf("formatPercentValue(%v) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestShiftColumnsMatchShiftFields(t *testing.T) {
	want := []string{
		"date", "dayOfWeek", "checks", "covers",
		"netRevenue", "totalWithTax", "averageCheckPerCover",
		"wineSales", "winePercent", "beerSales", "beerPercent",
		"liquorSales", "liquorPercent", "foodSales", "foodPercent",
		"creditTips", "cashTips", "totalTips", "averageTipPercent",
		"creditTipsAfterTipout", "tipoutPercent",
	}
	if diff := cmp.Diff(want, shiftColumnNames()); diff != "" {
		t.Errorf("shiftColumnNames() mismatch (-want +got):\n%s", diff)
	}
}

func TestShiftColumnValues(t *testing.T) {
	shift := Shift{
		Date:                  "2024-03-15",
		DayOfWeek:             "Friday",
		Checks:                42,
		Covers:                40,
		NetRevenue:            1000,
		TotalWithTax:          1080,
		AverageCheckPerCover:  25,
		WineSales:             200,
		WinePercent:           20,
		FoodSales:             800,
		FoodPercent:           80,
		CreditTips:            150,
		CashTips:              50,
		TotalTips:             200,
		AverageTipPercent:     20,
		CreditTipsAfterTipout: 135,
		TipoutPercent:         7.5,
	}

	want := []string{
		"2024-03-15", "Friday", "42", "40",
		"$1,000.00", "$1,080.00", "$25.00",
		"$200.00", "20.00%", "$0.00", "0.00%",
		"$0.00", "0.00%", "$800.00", "80.00%",
		"$150.00", "$50.00", "$200.00", "20.00%",
		"$135.00", "7.50%",
	}
	if diff := cmp.Diff(want, shiftColumnValues(&shift)); diff != "" {
		t.Errorf("shiftColumnValues() mismatch (-want +got):\n%s", diff)
	}
}
