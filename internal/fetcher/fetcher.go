package fetcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"github.com/shopspring/decimal"

	"dcasim/internal/repository"
	"dcasim/types"
)

// historySource fetches the price for a single past day.
type historySource interface {
	PriceOn(ctx context.Context, day time.Time) (decimal.Decimal, error)
}

// priceStore is the slice of the repository the fetcher needs.
type priceStore interface {
	LatestDay(ctx context.Context) (time.Time, error)
	UpsertPrices(ctx context.Context, points []types.PricePoint) (int, error)
}

// seedDay is where fetching starts on an empty table.
var seedDay = time.Date(2024, 12, 11, 0, 0, 0, 0, time.UTC)

// Fetcher appends newly available historical prices to the store. It
// runs out-of-process from simulations: the running engine keeps its
// startup snapshot until restarted.
type Fetcher struct {
	store     priceStore
	source    historySource
	batchDays int
	now       func() time.Time
	log       zerolog.Logger
}

func New(store priceStore, source historySource, batchDays int, log zerolog.Logger) *Fetcher {
	if batchDays <= 0 {
		batchDays = 5
	}
	return &Fetcher{
		store:     store,
		source:    source,
		batchDays: batchDays,
		now:       time.Now,
		log:       log.With().Str("component", "fetcher").Logger(),
	}
}

// FetchLatest fetches up to batchDays days following the last stored
// date and upserts them. Days the source cannot price are skipped, not
// fatal. Only days strictly before today are fetched, so the history
// table never shadows the live quote.
func (f *Fetcher) FetchLatest(ctx context.Context) (int, error) {
	last, err := f.store.LatestDay(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNoPrices) {
			return 0, fmt.Errorf("latest day: %w", err)
		}
		last = seedDay
	}

	today := types.Day(f.now())
	var points []types.PricePoint
	day := last.AddDate(0, 0, 1)
	for i := 0; i < f.batchDays && day.Before(today); i++ {
		price, err := f.source.PriceOn(ctx, day)
		if err != nil {
			if ctx.Err() != nil {
				return 0, ctx.Err()
			}
			f.log.Warn().
				Str("date", day.Format(types.DayFormat)).
				Err(err).
				Msg("no price for day, skipping")
		} else {
			points = append(points, types.PricePoint{Date: day, Price: price})
		}
		day = day.AddDate(0, 0, 1)
	}

	if len(points) == 0 {
		f.log.Info().Msg("no new prices to fetch")
		return 0, nil
	}

	n, err := f.store.UpsertPrices(ctx, points)
	if err != nil {
		return 0, fmt.Errorf("upsert prices: %w", err)
	}
	f.log.Info().Int("rows", n).Msg("price table updated")
	return n, nil
}

// Backfill fetches every day in [from, to] and upserts them, with a
// progress bar for what can be a very long loop. Gaps are skipped.
func (f *Fetcher) Backfill(ctx context.Context, from, to time.Time) (int, error) {
	from, to = types.Day(from), types.Day(to)
	if from.After(to) {
		return 0, fmt.Errorf("backfill: from %s is after to %s",
			from.Format(types.DayFormat), to.Format(types.DayFormat))
	}

	totalDays := int(to.Sub(from).Hours()/24) + 1
	bar := initProgressBar(totalDays)

	total := 0
	var points []types.PricePoint
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		if ctx.Err() != nil {
			return total, ctx.Err()
		}
		price, err := f.source.PriceOn(ctx, day)
		if err != nil {
			f.log.Warn().
				Str("date", day.Format(types.DayFormat)).
				Err(err).
				Msg("no price for day, skipping")
		} else {
			points = append(points, types.PricePoint{Date: day, Price: price})
		}

		if len(points) >= 50 {
			n, err := f.store.UpsertPrices(ctx, points)
			if err != nil {
				return total, fmt.Errorf("upsert prices: %w", err)
			}
			total += n
			points = points[:0]
		}
		bar.Add(1)
	}

	if len(points) > 0 {
		n, err := f.store.UpsertPrices(ctx, points)
		if err != nil {
			return total, fmt.Errorf("upsert prices: %w", err)
		}
		total += n
	}
	return total, nil
}

// Schedule registers FetchLatest on the given cron schedule.
func (f *Fetcher) Schedule(c *cron.Cron, spec string) error {
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if _, err := f.FetchLatest(ctx); err != nil {
			f.log.Error().Err(err).Msg("scheduled price fetch failed")
		}
	})
	if err != nil {
		return fmt.Errorf("schedule price fetch: %w", err)
	}
	return nil
}

func initProgressBar(maxTicks int) *progressbar.ProgressBar {
	return progressbar.NewOptions(maxTicks,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetDescription("Backfilling prices..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
