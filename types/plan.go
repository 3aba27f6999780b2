package types

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNonPositiveInvestment = errors.New("investment per purchase must be positive")
	ErrInvalidDateRange      = errors.New("start date is after end date")
	ErrUnknownCadence        = errors.New("unknown cadence")
)

// Plan holds the parameters of one simulation run. Construct through
// NewPlan so a plan that reaches the engine is always well formed.
type Plan struct {
	InvestmentPerPurchase decimal.Decimal `json:"investment_per_purchase"`
	Cadence               Cadence         `json:"cadence"`
	Start                 time.Time       `json:"start"`
	End                   time.Time       `json:"end"`
}

func NewPlan(investment decimal.Decimal, cadence Cadence, start, end time.Time) (Plan, error) {
	if investment.LessThanOrEqual(decimal.Zero) {
		return Plan{}, ErrNonPositiveInvestment
	}
	if _, ok := CadenceToDays[cadence]; !ok {
		return Plan{}, ErrUnknownCadence
	}
	start, end = Day(start), Day(end)
	if start.After(end) {
		return Plan{}, ErrInvalidDateRange
	}
	return Plan{
		InvestmentPerPurchase: investment,
		Cadence:               cadence,
		Start:                 start,
		End:                   end,
	}, nil
}
