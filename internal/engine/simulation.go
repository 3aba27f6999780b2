package engine

import (
	"context"

	"github.com/shopspring/decimal"

	"dcasim/types"
)

// accumulation is the outcome of one simulation pass. Both result
// projections are derived from it, so totals always agree.
type accumulation struct {
	totalInvestment decimal.Decimal
	totalUnits      decimal.Decimal
	purchases       []types.Purchase
	series          types.TimeSeries
	skipped         int
}

// run performs the single accumulation pass: one resolver call per
// scheduled date, skipping dates without a price. A skipped date
// contributes nothing, to totals or to the series. Only context
// cancellation aborts the pass.
func (e *Engine) run(ctx context.Context, plan types.Plan) (*accumulation, error) {
	acc := &accumulation{
		totalInvestment: decimal.Zero,
		totalUnits:      decimal.Zero,
	}

	for _, day := range PurchaseDates(plan.Start, plan.End, plan.Cadence) {
		price, err := e.resolver.Resolve(ctx, day)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			e.log.Debug().
				Str("date", day.Format(types.DayFormat)).
				Err(err).
				Msg("skipping date without price")
			acc.skipped++
			continue
		}
		if !price.IsPositive() {
			// A zero or negative price is corrupt data, not a cheap buy.
			acc.skipped++
			continue
		}

		units := plan.InvestmentPerPurchase.Div(price)
		acc.totalInvestment = acc.totalInvestment.Add(plan.InvestmentPerPurchase)
		acc.totalUnits = acc.totalUnits.Add(units)
		acc.purchases = append(acc.purchases, types.Purchase{
			Date:  day,
			Price: price,
			Units: units,
		})
		acc.series = append(acc.series, types.SeriesPoint{
			Date:                 day,
			CumulativeInvestment: acc.totalInvestment,
			CumulativeUnits:      acc.totalUnits,
		})
	}
	return acc, nil
}
