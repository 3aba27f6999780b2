package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is one realized simulated buy.
type Purchase struct {
	Date  time.Time       `json:"date"`
	Price decimal.Decimal `json:"price"`
	Units decimal.Decimal `json:"units"`
}
