package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestParseAmount(t *testing.T) {
	tests := map[string]struct {
		value any
		want  float64
	}{
		"json number":      {value: 12.5, want: 12.5},
		"numeric string":   {value: "1000", want: 1000},
		"decimal string":   {value: "80.25", want: 80.25},
		"padded string":    {value: " 42.5 ", want: 42.5},
		"empty string":     {value: "", want: 0},
		"non-numeric":      {value: "abc", want: 0},
		"missing":          {value: nil, want: 0},
		"unexpected type":  {value: true, want: 0},
		"negative allowed": {value: "-15", want: -15},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := parseAmount(tc.value); got != tc.want {
				t.Errorf("parseAmount(%v) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestParseCount(t *testing.T) {
	tests := map[string]struct {
		value any
		want  int
	}{
		"json number":    {value: float64(40), want: 40},
		"numeric string": {value: "40", want: 40},
		"empty string":   {value: "", want: 0},
		"non-numeric":    {value: "forty", want: 0},
		"decimal string": {value: "3.5", want: 0},
		"missing":        {value: nil, want: 0},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := parseCount(tc.value); got != tc.want {
				t.Errorf("parseCount(%v) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestWeekdayName(t *testing.T) {
	tests := map[string]struct {
		date string
		want string
	}{
		"friday":         {date: "2024-03-15", want: "Friday"},
		"sunday":         {date: "2024-03-17", want: "Sunday"},
		"leap day":       {date: "2024-02-29", want: "Thursday"},
		"empty":          {date: "", want: ""},
		"unparseable":    {date: "15/03/2024", want: ""},
		"nonsense value": {date: "not-a-date", want: ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := weekdayName(tc.date); got != tc.want {
				t.Errorf("weekdayName(%q) = %q, want %q", tc.date, got, tc.want)
			}
		})
	}
}

func TestDeriveShift(t *testing.T) {
	tests := map[string]struct {
		raw  RawShiftInput
		want Shift
	}{
		"typical shift": {
			raw: RawShiftInput{
				RestaurantID: "7",
				Date:         "2024-03-15",
				NetRevenue:   "1000",
				Tax:          "80",
				Covers:       "40",
				CreditTips:   "150",
				CashTips:     "50",
				WineSales:    "200",
			},
			want: Shift{
				Date:                  "2024-03-15",
				DayOfWeek:             "Friday",
				Covers:                40,
				NetRevenue:            1000,
				TotalWithTax:          1080,
				AverageCheckPerCover:  25,
				WineSales:             200,
				WinePercent:           20,
				CreditTips:            150,
				CashTips:              50,
				TotalTips:             200,
				AverageTipPercent:     20,
				CreditTipsAfterTipout: 150,
				TipoutPercent:         0,
				RestaurantID:          7,
			},
		},
		"zero revenue and covers": {
			raw: RawShiftInput{
				RestaurantID: "3",
				Date:         "2024-03-17",
				NetRevenue:   "0",
				Covers:       "0",
				CreditTips:   "0",
				CashTips:     "0",
			},
			want: Shift{
				Date:         "2024-03-17",
				DayOfWeek:    "Sunday",
				RestaurantID: 3,
			},
		},
		"tipout reduces credit tips": {
			raw: RawShiftInput{
				RestaurantID: "2",
				Date:         "2024-03-15",
				CreditTips:   "100",
				CashTips:     "20",
				TipoutAmount: "15",
			},
			want: Shift{
				Date:                  "2024-03-15",
				DayOfWeek:             "Friday",
				CreditTips:            100,
				CashTips:              20,
				TotalTips:             120,
				CreditTipsAfterTipout: 85,
				TipoutPercent:         12.5,
				RestaurantID:          2,
			},
		},
		"non-numeric sales coerce to zero": {
			raw: RawShiftInput{
				RestaurantID: "1",
				Date:         "2024-03-15",
				NetRevenue:   "500",
				WineSales:    "abc",
				FoodSales:    "250",
			},
			want: Shift{
				Date:         "2024-03-15",
				DayOfWeek:    "Friday",
				NetRevenue:   500,
				FoodSales:    250,
				FoodPercent:  50,
				RestaurantID: 1,
			},
		},
		"total with tax passthrough when tax absent": {
			raw: RawShiftInput{
				RestaurantID: "1",
				Date:         "2024-03-16",
				NetRevenue:   "500",
				TotalWithTax: "550.25",
			},
			want: Shift{
				Date:         "2024-03-16",
				DayOfWeek:    "Saturday",
				NetRevenue:   500,
				TotalWithTax: 550.25,
				RestaurantID: 1,
			},
		},
		"json numbers instead of strings": {
			raw: RawShiftInput{
				RestaurantID: float64(9),
				Date:         "2024-03-18",
				NetRevenue:   float64(800),
				Tax:          float64(64),
				Checks:       float64(30),
				Covers:       float64(32),
				BeerSales:    float64(120),
				LiquorSales:  float64(80),
			},
			want: Shift{
				Date:                 "2024-03-18",
				DayOfWeek:            "Monday",
				Checks:               30,
				Covers:               32,
				NetRevenue:           800,
				TotalWithTax:         864,
				AverageCheckPerCover: 25,
				BeerSales:            120,
				BeerPercent:          15,
				LiquorSales:          80,
				LiquorPercent:        10,
				RestaurantID:         9,
			},
		},
		"all fields missing": {
			raw:  RawShiftInput{},
			want: Shift{},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := deriveShift(tc.raw)
			if diff := cmp.Diff(tc.want, got, approx); diff != "" {
				t.Errorf("deriveShift() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDeriveShiftIdempotent(t *testing.T) {
	raw := RawShiftInput{
		RestaurantID: "4",
		Date:         "2024-03-15",
		NetRevenue:   "1234.56",
		Tax:          "98.76",
		Checks:       "51",
		Covers:       "48",
		WineSales:    "310.10",
		BeerSales:    "150",
		LiquorSales:  "90.40",
		FoodSales:    "684.06",
		CreditTips:   "201.33",
		CashTips:     "45",
		TipoutAmount: "37",
	}

	first := deriveShift(raw)
	second := deriveShift(raw)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("deriveShift() not deterministic (-first +second):\n%s", diff)
	}
}

func TestValidateShiftInput(t *testing.T) {
	tests := map[string]struct {
		raw     RawShiftInput
		wantErr bool
	}{
		"valid": {
			raw: RawShiftInput{RestaurantID: "1", Date: "2024-03-15", NetRevenue: "100"},
		},
		"missing date": {
			raw:     RawShiftInput{RestaurantID: "1", NetRevenue: "100"},
			wantErr: true,
		},
		"missing restaurant": {
			raw:     RawShiftInput{Date: "2024-03-15", NetRevenue: "100"},
			wantErr: true,
		},
		"missing net revenue": {
			raw:     RawShiftInput{RestaurantID: "1", Date: "2024-03-15"},
			wantErr: true,
		},
		"empty net revenue string": {
			raw:     RawShiftInput{RestaurantID: "1", Date: "2024-03-15", NetRevenue: ""},
			wantErr: true,
		},
		"zero net revenue is allowed": {
			raw: RawShiftInput{RestaurantID: "1", Date: "2024-03-15", NetRevenue: "0"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := validateShiftInput(tc.raw)
			if (err != nil) != tc.wantErr {
				t.Errorf("validateShiftInput() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
