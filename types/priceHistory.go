package types

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// PriceHistory is an immutable snapshot of historical prices keyed by
// calendar date. It is loaded once at startup and shared read-only
// across concurrent simulations; at most one price exists per date.
type PriceHistory struct {
	prices map[time.Time]decimal.Decimal
	dates  []time.Time
}

// NewPriceHistory builds a snapshot from price points. Dates are
// normalized to midnight UTC; on duplicate dates the last point wins.
func NewPriceHistory(points []PricePoint) *PriceHistory {
	prices := make(map[time.Time]decimal.Decimal, len(points))
	for _, p := range points {
		prices[Day(p.Date)] = p.Price
	}
	dates := make([]time.Time, 0, len(prices))
	for d := range prices {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return &PriceHistory{prices: prices, dates: dates}
}

// Price returns the price recorded for the given date. Lookup is by
// exact calendar date, no interpolation.
func (h *PriceHistory) Price(date time.Time) (decimal.Decimal, bool) {
	price, ok := h.prices[Day(date)]
	return price, ok
}

func (h *PriceHistory) Len() int {
	return len(h.dates)
}

// Oldest returns the earliest recorded date, ok=false when empty.
func (h *PriceHistory) Oldest() (time.Time, bool) {
	if len(h.dates) == 0 {
		return time.Time{}, false
	}
	return h.dates[0], true
}

// Latest returns the most recent recorded date, ok=false when empty.
func (h *PriceHistory) Latest() (time.Time, bool) {
	if len(h.dates) == 0 {
		return time.Time{}, false
	}
	return h.dates[len(h.dates)-1], true
}
