package protection

import (
	"math"

	"github.com/vidyasagar/xbank/internal/bank"
)

// Defaults for the "what if you had invested" comparison.
const (
	AverageMonthlyGambling bank.Cents = 80000
	MonthlyReturn                     = 0.012
)

// Periods are the projection horizons offered, in months.
var Periods = []int{6, 12, 24, 60}

// Projection compares betting a fixed amount every month with investing it.
type Projection struct {
	Months        int
	Gambled       bank.Cents
	Invested      bank.Cents // value of the invested deposits after Months
	Difference    bank.Cents
	Profitability float64 // percent over the gambled total
}

// Project compounds a monthly deposit at monthlyRate over months. Each
// deposit earns the month's return, so a single month already yields.
func Project(monthly bank.Cents, monthlyRate float64, months int) Projection {
	p := Projection{Months: months}
	if months <= 0 || monthly <= 0 {
		return p
	}

	value := 0.0
	for i := 0; i < months; i++ {
		value = (value + float64(monthly)) * (1 + monthlyRate)
	}

	p.Gambled = monthly * bank.Cents(months)
	p.Invested = bank.Cents(math.Round(value))
	p.Difference = p.Invested - p.Gambled
	p.Profitability = (value/float64(p.Gambled) - 1) * 100
	return p
}
