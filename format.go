package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Column classification for rendering and export. Field names must stay in
// sync with the Shift JSON tags; the frontend uses the same classification.
const (
	formatText = iota
	formatCount
	formatCurrency
	formatPercent
)

type shiftColumn struct {
	Name   string
	Kind   int
	Valuer func(s *Shift) any
}

var shiftColumns = []shiftColumn{
	{"date", formatText, func(s *Shift) any { return s.Date }},
	{"dayOfWeek", formatText, func(s *Shift) any { return s.DayOfWeek }},
	{"checks", formatCount, func(s *Shift) any { return s.Checks }},
	{"covers", formatCount, func(s *Shift) any { return s.Covers }},
	{"netRevenue", formatCurrency, func(s *Shift) any { return s.NetRevenue }},
	{"totalWithTax", formatCurrency, func(s *Shift) any { return s.TotalWithTax }},
	{"averageCheckPerCover", formatCurrency, func(s *Shift) any { return s.AverageCheckPerCover }},
	{"wineSales", formatCurrency, func(s *Shift) any { return s.WineSales }},
	{"winePercent", formatPercent, func(s *Shift) any { return s.WinePercent }},
	{"beerSales", formatCurrency, func(s *Shift) any { return s.BeerSales }},
	{"beerPercent", formatPercent, func(s *Shift) any { return s.BeerPercent }},
	{"liquorSales", formatCurrency, func(s *Shift) any { return s.LiquorSales }},
	{"liquorPercent", formatPercent, func(s *Shift) any { return s.LiquorPercent }},
	{"foodSales", formatCurrency, func(s *Shift) any { return s.FoodSales }},
	{"foodPercent", formatPercent, func(s *Shift) any { return s.FoodPercent }},
	{"creditTips", formatCurrency, func(s *Shift) any { return s.CreditTips }},
	{"cashTips", formatCurrency, func(s *Shift) any { return s.CashTips }},
	{"totalTips", formatCurrency, func(s *Shift) any { return s.TotalTips }},
	{"averageTipPercent", formatPercent, func(s *Shift) any { return s.AverageTipPercent }},
	{"creditTipsAfterTipout", formatCurrency, func(s *Shift) any { return s.CreditTipsAfterTipout }},
	{"tipoutPercent", formatPercent, func(s *Shift) any { return s.TipoutPercent }},
}

func shiftColumnNames() []string {
	names := make([]string, len(shiftColumns))
	for i, col := range shiftColumns {
		names[i] = col.Name
	}
	return names
}

func shiftColumnValues(s *Shift) []string {
	values := make([]string, len(shiftColumns))
	for i, col := range shiftColumns {
		switch col.Kind {
		case formatCurrency:
			values[i] = formatCurrencyValue(col.Valuer(s).(float64))
		case formatPercent:
			values[i] = formatPercentValue(col.Valuer(s).(float64))
		case formatCount:
			values[i] = strconv.Itoa(col.Valuer(s).(int))
		default:
			values[i] = fmt.Sprint(col.Valuer(s))
		}
	}
	return values
}

// formatCurrencyValue renders a dollar amount with thousands grouping and two
// decimals, e.g. 1234.5 -> "$1,234.50".
func formatCurrencyValue(value float64) string {
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}
	cents := int64(math.Round(value * 100))
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(cents/100), cents%100)
}

func formatPercentValue(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}

func groupThousands(value int64) string {
	s := strconv.FormatInt(value, 10)
	var parts []string
	for i := len(s); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		parts = append([]string{s[start:i]}, parts...)
	}
	return strings.Join(parts, ",")
}
