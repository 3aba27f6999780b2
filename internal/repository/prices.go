package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"dcasim/types"
)

// LoadHistory reads the whole price table into an immutable snapshot.
// Called once at startup; simulations never touch the database again.
func (db *Database) LoadHistory(ctx context.Context) (*types.PriceHistory, error) {
	rows, err := db.conn.Query(ctx, `SELECT day, price FROM prices ORDER BY day`)
	if err != nil {
		return nil, fmt.Errorf("query prices: %w", err)
	}

	points, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (types.PricePoint, error) {
		var p types.PricePoint
		err := row.Scan(&p.Date, &p.Price)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan prices: %w", err)
	}
	if len(points) == 0 {
		return nil, ErrNoPrices
	}
	return types.NewPriceHistory(points), nil
}

// LatestDay returns the most recent stored calendar date.
func (db *Database) LatestDay(ctx context.Context) (time.Time, error) {
	var latest *time.Time
	err := db.conn.QueryRow(ctx, `SELECT max(day) FROM prices`).Scan(&latest)
	if err != nil {
		return time.Time{}, fmt.Errorf("query latest day: %w", err)
	}
	if latest == nil {
		return time.Time{}, ErrNoPrices
	}
	return types.Day(*latest), nil
}

// UpsertPrices inserts price points, replacing any existing price for
// the same date so the at-most-one-price-per-date invariant holds.
func (db *Database) UpsertPrices(ctx context.Context, points []types.PricePoint) (int, error) {
	batch := &pgx.Batch{}
	for _, p := range points {
		batch.Queue(
			`INSERT INTO prices (day, price) VALUES ($1, $2)
			 ON CONFLICT (day) DO UPDATE SET price = EXCLUDED.price`,
			types.Day(p.Date), p.Price,
		)
	}

	results := db.conn.SendBatch(ctx, batch)
	defer results.Close()

	for range points {
		if _, err := results.Exec(); err != nil {
			return 0, fmt.Errorf("upsert price: %w", err)
		}
	}
	return len(points), nil
}
