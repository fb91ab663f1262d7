package main

type User struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type Restaurant struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	ShiftCount int    `json:"shiftCount"`
}

// RawShiftInput is the untrusted shift submission. The form sends every
// numeric field as a string, but API callers may send JSON numbers, so the
// numeric fields are loosely typed and go through parseAmount/parseCount.
type RawShiftInput struct {
	RestaurantID any    `json:"restaurantId"`
	Date         string `json:"date"`
	NetRevenue   any    `json:"netRevenue"`
	Tax          any    `json:"tax"`
	TotalWithTax any    `json:"totalWithTax"`
	Checks       any    `json:"checks"`
	Covers       any    `json:"covers"`
	WineSales    any    `json:"wineSales"`
	BeerSales    any    `json:"beerSales"`
	LiquorSales  any    `json:"liquorSales"`
	FoodSales    any    `json:"foodSales"`
	CreditTips   any    `json:"creditTips"`
	CashTips     any    `json:"cashTips"`
	TipoutAmount any    `json:"tipoutAmount"`
}

// Shift is a fully derived shift record. Derived fields are computed once by
// deriveShift before the record is stored and are never recalculated or
// updated afterwards.
type Shift struct {
	ID                    int     `json:"id"`
	Date                  string  `json:"date"`
	DayOfWeek             string  `json:"dayOfWeek"`
	Checks                int     `json:"checks"`
	Covers                int     `json:"covers"`
	NetRevenue            float64 `json:"netRevenue"`
	TotalWithTax          float64 `json:"totalWithTax"`
	AverageCheckPerCover  float64 `json:"averageCheckPerCover"`
	WineSales             float64 `json:"wineSales"`
	WinePercent           float64 `json:"winePercent"`
	BeerSales             float64 `json:"beerSales"`
	BeerPercent           float64 `json:"beerPercent"`
	LiquorSales           float64 `json:"liquorSales"`
	LiquorPercent         float64 `json:"liquorPercent"`
	FoodSales             float64 `json:"foodSales"`
	FoodPercent           float64 `json:"foodPercent"`
	CreditTips            float64 `json:"creditTips"`
	CashTips              float64 `json:"cashTips"`
	TotalTips             float64 `json:"totalTips"`
	AverageTipPercent     float64 `json:"averageTipPercent"`
	CreditTipsAfterTipout float64 `json:"creditTipsAfterTipout"`
	TipoutPercent         float64 `json:"tipoutPercent"`
	RestaurantID          int     `json:"restaurantId"`
	UserID                int     `json:"userId"`
	CreatedAt             string  `json:"createdAt"`
}
