package engine

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"dcasim/types"
)

// Engine drives simulations against an immutable price history and a
// live quote source. It holds no per-request state; concurrent runs
// share it freely.
type Engine struct {
	history  *types.PriceHistory
	resolver *Resolver
	log      zerolog.Logger
}

func NewEngine(history *types.PriceHistory, quote QuoteSource, log zerolog.Logger) *Engine {
	return &Engine{
		history:  history,
		resolver: NewResolver(history, quote),
		log:      log.With().Str("component", "engine").Logger(),
	}
}

// Summarize runs a plan and returns the scalar projection. Fails with
// ErrEndDatePriceUnavailable when the end date cannot be valued; a
// live-quote outage degrades only the current fields.
func (e *Engine) Summarize(ctx context.Context, plan types.Plan) (types.Summary, error) {
	runID := uuid.New()
	log := e.log.With().Str("run_id", runID.String()).Logger()

	acc, err := e.run(ctx, plan)
	if err != nil {
		return types.Summary{}, err
	}

	summary, err := e.summarize(ctx, plan, acc)
	if err != nil {
		return types.Summary{}, err
	}
	summary.RunID = runID

	log.Info().
		Str("total_investment", summary.TotalInvestment.String()).
		Str("total_units", summary.TotalUnits.String()).
		Int("skipped_dates", summary.SkippedDates).
		Msg("simulation summarized")
	return summary, nil
}

// Series runs a plan and returns the chronological projection. It does
// not need the end-date price, so it succeeds where Summarize fails on
// an end-date gap.
func (e *Engine) Series(ctx context.Context, plan types.Plan) (types.TimeSeries, error) {
	runID := uuid.New()

	acc, err := e.run(ctx, plan)
	if err != nil {
		return nil, err
	}

	e.log.Info().
		Str("run_id", runID.String()).
		Int("points", len(acc.series)).
		Int("skipped_dates", acc.skipped).
		Msg("simulation series built")
	return acc.series, nil
}
