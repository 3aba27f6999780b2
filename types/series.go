package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// SeriesPoint carries the running totals after one successful purchase.
type SeriesPoint struct {
	Date                 time.Time       `json:"date"`
	CumulativeInvestment decimal.Decimal `json:"cumulative_investment"`
	CumulativeUnits      decimal.Decimal `json:"cumulative_units"`
}

// TimeSeries is the chronological projection of a simulation, one point
// per purchase that actually happened. Skipped dates leave no point.
type TimeSeries []SeriesPoint
