package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"dcasim/internal/quote"
	"dcasim/types"
)

// QuoteSource supplies the current-day price. *quote.Client satisfies
// it; tests substitute stubs.
type QuoteSource interface {
	CurrentPrice(ctx context.Context) (decimal.Decimal, error)
}

// Resolver unifies the historical snapshot and the live quote behind a
// single price(date) contract: today's date goes to the quote source,
// everything else is an exact-match history lookup.
type Resolver struct {
	history *types.PriceHistory
	quote   QuoteSource
	now     func() time.Time

	// retryDelay bounds the single retry performed after an upstream
	// rate limit. Shortened in tests.
	retryDelay time.Duration
}

func NewResolver(history *types.PriceHistory, quote QuoteSource) *Resolver {
	return &Resolver{
		history:    history,
		quote:      quote,
		now:        time.Now,
		retryDelay: 2 * time.Second,
	}
}

// Resolve returns the price for a calendar date or an error wrapping
// ErrPriceUnavailable when the date has no recorded price. Only the
// current-day path can block on the network.
func (r *Resolver) Resolve(ctx context.Context, date time.Time) (decimal.Decimal, error) {
	if types.SameDay(date, r.now()) {
		return r.currentPrice(ctx)
	}

	price, ok := r.history.Price(date)
	if !ok {
		return decimal.Zero, fmt.Errorf("%s: %w", date.Format(types.DayFormat), ErrPriceUnavailable)
	}
	return price, nil
}

// currentPrice delegates to the quote source, retrying once after a
// short delay when the upstream signals throttling.
func (r *Resolver) currentPrice(ctx context.Context) (decimal.Decimal, error) {
	price, err := r.quote.CurrentPrice(ctx)
	if !errors.Is(err, quote.ErrRateLimited) {
		return price, err
	}

	select {
	case <-ctx.Done():
		return decimal.Zero, ctx.Err()
	case <-time.After(r.retryDelay):
	}
	return r.quote.CurrentPrice(ctx)
}
