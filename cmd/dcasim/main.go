package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"dcasim/internal/config"
	"dcasim/internal/engine"
	"dcasim/internal/fetcher"
	"dcasim/internal/quote"
	"dcasim/internal/repository"
	"dcasim/internal/server"
	"dcasim/pkg/logger"
	"dcasim/types"
)

func main() {
	var (
		simulate = flag.Bool("simulate", false, "run one simulation from flags and print a report")
		backfill = flag.Bool("backfill", false, "backfill historical prices and exit")

		investment = flag.String("investment", "100", "investment per purchase")
		cadence    = flag.String("cadence", "daily", "daily|weekly|every_two_weeks|monthly")
		start      = flag.String("start", "", "start date YYYY-MM-DD")
		end        = flag.String("end", "", "end date YYYY-MM-DD")

		from = flag.String("from", "", "backfill from date YYYY-MM-DD")
		to   = flag.String("to", "", "backfill to date YYYY-MM-DD")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	ctx := context.Background()
	db, err := repository.NewDatabase(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to price store")
	}
	defer db.Close()

	quotes := quote.NewClient(cfg.CoinGeckoBaseURL, cfg.CoinGeckoAPIKey, log)

	if *backfill {
		runBackfill(ctx, &db, quotes, cfg, *from, *to, log)
		return
	}

	history, err := db.LoadHistory(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("load price history")
	}
	oldest, _ := history.Oldest()
	latest, _ := history.Latest()
	log.Info().
		Int("days", history.Len()).
		Str("oldest", oldest.Format(types.DayFormat)).
		Str("latest", latest.Format(types.DayFormat)).
		Msg("price history loaded")

	eng := engine.NewEngine(history, quotes, log)

	if *simulate {
		runSimulation(ctx, eng, *investment, *cadence, *start, *end, log)
		return
	}

	f := fetcher.New(&db, quotes, cfg.FetchBatchDays, log)
	c := cron.New()
	if err := f.Schedule(c, cfg.FetchSchedule); err != nil {
		log.Fatal().Err(err).Msg("schedule price fetch")
	}
	c.Start()
	defer c.Stop()

	srv := server.New(eng, log)
	if err := srv.ListenAndServe(cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("http server stopped")
	}
}

func runSimulation(ctx context.Context, eng *engine.Engine, investment, cadence, start, end string, log zerolog.Logger) {
	amount, err := decimal.NewFromString(investment)
	if err != nil {
		log.Fatal().Err(err).Msg("parse -investment")
	}
	startDay, err := types.ParseDay(start)
	if err != nil {
		log.Fatal().Err(err).Msg("parse -start")
	}
	endDay, err := types.ParseDay(end)
	if err != nil {
		log.Fatal().Err(err).Msg("parse -end")
	}
	c, ok := types.ConvertCadence[cadence]
	if !ok {
		log.Fatal().Str("cadence", cadence).Msg("unknown cadence")
	}

	plan, err := types.NewPlan(amount, c, startDay, endDay)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid plan")
	}

	summary, err := eng.Summarize(ctx, plan)
	if err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}
	printSummary(summary)
}

func printSummary(s types.Summary) {
	fmt.Println("===== DCA Report =====")
	fmt.Printf("Total Investment:      %s\n", s.TotalInvestment.StringFixed(2))
	fmt.Printf("Total Units:           %s\n", s.TotalUnits.StringFixed(5))
	fmt.Printf("Average Cost:          %s\n", s.AverageCost.StringFixed(2))
	fmt.Printf("Skipped Dates:         %d\n", s.SkippedDates)

	fmt.Println("\n-- End of Range --")
	fmt.Printf("Value on End Date:     %s\n", s.ValueAtEnd.StringFixed(2))
	fmt.Printf("End Date Profit:       %s\n", s.ProfitAtEnd.StringFixed(2))

	fmt.Println("\n-- Today --")
	if s.Current != nil {
		fmt.Printf("Current Price:         %s\n", s.Current.Price.StringFixed(2))
		fmt.Printf("Current Value:         %s\n", s.Current.Value.StringFixed(2))
		fmt.Printf("Current Profit:        %s\n", s.Current.Profit.StringFixed(2))
	} else {
		fmt.Printf("Current price unavailable (%s)\n", s.QuoteOutage)
	}
	fmt.Println("======================")
}

func runBackfill(ctx context.Context, db *repository.Database, quotes *quote.Client, cfg *config.Config, from, to string, log zerolog.Logger) {
	fromDay, err := types.ParseDay(from)
	if err != nil {
		log.Fatal().Err(err).Msg("parse -from")
	}
	toDay, err := types.ParseDay(to)
	if err != nil {
		log.Fatal().Err(err).Msg("parse -to")
	}

	f := fetcher.New(db, quotes, cfg.FetchBatchDays, log)
	started := time.Now()
	n, err := f.Backfill(ctx, fromDay, toDay)
	if err != nil {
		log.Fatal().Err(err).Int("rows", n).Msg("backfill failed")
	}
	log.Info().Int("rows", n).Dur("took", time.Since(started)).Msg("backfill complete")
}
