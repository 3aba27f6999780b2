package types

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CurrentValuation is the live-quote part of a summary. It only exists
// when the quote succeeded; a missing quote never shows up as zero.
type CurrentValuation struct {
	Price  decimal.Decimal `json:"price"`
	Value  decimal.Decimal `json:"value"`
	Profit decimal.Decimal `json:"profit"`
}

// Summary is the scalar projection of a simulation run. The historical
// fields are always valid; Current is nil when the live quote was
// unavailable, with the reason recorded alongside.
type Summary struct {
	RunID           uuid.UUID         `json:"run_id"`
	TotalInvestment decimal.Decimal   `json:"total_investment"`
	TotalUnits      decimal.Decimal   `json:"total_units"`
	// AverageCost is Zero when no units were acquired.
	AverageCost  decimal.Decimal   `json:"average_cost"`
	ValueAtEnd   decimal.Decimal   `json:"value_on_end_date"`
	ProfitAtEnd  decimal.Decimal   `json:"end_date_profit"`
	Current      *CurrentValuation `json:"current,omitempty"`
	QuoteOutage  string            `json:"quote_outage,omitempty"`
	SkippedDates int               `json:"skipped_dates"`
	Purchases    []Purchase        `json:"purchases,omitempty"`
}
