package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"dcasim/internal/quote"
	"dcasim/types"
)

// averageCost is total investment over total units, Zero when nothing
// was acquired. Never divides by zero.
func averageCost(totalInvestment, totalUnits decimal.Decimal) decimal.Decimal {
	if !totalUnits.IsPositive() {
		return decimal.Zero
	}
	return totalInvestment.Div(totalUnits)
}

// summarize projects an accumulation into the scalar summary. The
// end-of-range valuation comes from the historical table only and its
// absence is a hard error; a failed live quote merely leaves the
// current block empty.
func (e *Engine) summarize(ctx context.Context, plan types.Plan, acc *accumulation) (types.Summary, error) {
	endPrice, ok := e.history.Price(plan.End)
	if !ok {
		return types.Summary{}, fmt.Errorf("%s: %w", plan.End.Format(types.DayFormat), ErrEndDatePriceUnavailable)
	}

	valueAtEnd := acc.totalUnits.Mul(endPrice)
	summary := types.Summary{
		TotalInvestment: acc.totalInvestment,
		TotalUnits:      acc.totalUnits,
		AverageCost:     averageCost(acc.totalInvestment, acc.totalUnits),
		ValueAtEnd:      valueAtEnd,
		ProfitAtEnd:     valueAtEnd.Sub(acc.totalInvestment),
		SkippedDates:    acc.skipped,
		Purchases:       acc.purchases,
	}

	currentPrice, err := e.resolver.currentPrice(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return types.Summary{}, ctx.Err()
		}
		summary.QuoteOutage = quoteOutage(err)
		e.log.Warn().Err(err).Msg("live quote unavailable, returning historical fields only")
		return summary, nil
	}

	currentValue := currentPrice.Mul(acc.totalUnits)
	summary.Current = &types.CurrentValuation{
		Price:  currentPrice,
		Value:  currentValue,
		Profit: currentValue.Sub(acc.totalInvestment),
	}
	return summary, nil
}

// quoteOutage flattens a quote failure into the reason reported on the
// summary.
func quoteOutage(err error) string {
	switch {
	case errors.Is(err, quote.ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, quote.ErrPriceNotFound):
		return "not_found"
	default:
		return "transport_error"
	}
}
