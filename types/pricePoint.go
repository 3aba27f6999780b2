package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricePoint is one known market price for a calendar date.
type PricePoint struct {
	Date  time.Time       `json:"date"`
	Price decimal.Decimal `json:"price"`
}
