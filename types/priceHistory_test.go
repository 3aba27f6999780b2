package types

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPriceHistoryLookup(t *testing.T) {
	h := NewPriceHistory([]PricePoint{
		{Date: day(2024, 1, 2), Price: decimal.NewFromInt(200)},
		{Date: day(2024, 1, 1), Price: decimal.NewFromInt(100)},
	})

	price, ok := h.Price(day(2024, 1, 1))
	require.True(t, ok)
	assert.True(t, price.Equal(decimal.NewFromInt(100)))

	// Lookup normalizes the queried timestamp to its calendar date.
	price, ok = h.Price(time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC))
	require.True(t, ok)
	assert.True(t, price.Equal(decimal.NewFromInt(200)))

	_, ok = h.Price(day(2024, 1, 3))
	assert.False(t, ok)
}

func TestPriceHistoryDeduplicatesDates(t *testing.T) {
	h := NewPriceHistory([]PricePoint{
		{Date: day(2024, 1, 1), Price: decimal.NewFromInt(100)},
		{Date: day(2024, 1, 1), Price: decimal.NewFromInt(150)},
	})

	assert.Equal(t, 1, h.Len())
	price, ok := h.Price(day(2024, 1, 1))
	require.True(t, ok)
	assert.True(t, price.Equal(decimal.NewFromInt(150)), "last point wins")
}

func TestPriceHistoryBounds(t *testing.T) {
	empty := NewPriceHistory(nil)
	_, ok := empty.Oldest()
	assert.False(t, ok)
	_, ok = empty.Latest()
	assert.False(t, ok)

	h := NewPriceHistory([]PricePoint{
		{Date: day(2024, 3, 1), Price: decimal.NewFromInt(1)},
		{Date: day(2024, 1, 1), Price: decimal.NewFromInt(1)},
		{Date: day(2024, 2, 1), Price: decimal.NewFromInt(1)},
	})

	oldest, ok := h.Oldest()
	require.True(t, ok)
	assert.Equal(t, day(2024, 1, 1), oldest)

	latest, ok := h.Latest()
	require.True(t, ok)
	assert.Equal(t, day(2024, 3, 1), latest)
}
