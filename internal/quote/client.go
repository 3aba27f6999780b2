package quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"dcasim/types"
)

// Failure taxonomy of the upstream price source. RateLimited is
// retryable and must stay distinguishable from a plain miss.
var (
	ErrRateLimited   = errors.New("quote: rate limited by upstream")
	ErrPriceNotFound = errors.New("quote: price missing from response")
)

const (
	defaultBaseURL = "https://api.coingecko.com/api/v3"
	defaultCoin    = "bitcoin"
	defaultVsCoin  = "usd"
)

// Client fetches bitcoin prices from the CoinGecko API.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
	coin    string
	vs      string
	log     zerolog.Logger
}

// NewClient creates a CoinGecko client with a bounded request timeout.
// baseURL may be empty to use the public API.
func NewClient(baseURL, apiKey string, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
		coin:    defaultCoin,
		vs:      defaultVsCoin,
		log:     log.With().Str("client", "coingecko").Logger(),
	}
}

// CurrentPrice fetches the current price. A 429 from upstream maps to
// ErrRateLimited, a payload without the expected field to
// ErrPriceNotFound; transport failures come back wrapped.
func (c *Client) CurrentPrice(ctx context.Context) (decimal.Decimal, error) {
	u := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=%s", c.baseURL, c.coin, c.vs)

	body, err := c.get(ctx, u)
	if err != nil {
		return decimal.Zero, err
	}

	var payload map[string]map[string]decimal.Decimal
	if err := json.Unmarshal(body, &payload); err != nil {
		return decimal.Zero, fmt.Errorf("quote: decode response: %w", err)
	}

	price, ok := payload[c.coin][c.vs]
	if !ok || !price.IsPositive() {
		return decimal.Zero, ErrPriceNotFound
	}
	return price, nil
}

// PriceOn fetches the historical price for one calendar date. Used by
// the fetch job, never by request-time simulations.
func (c *Client) PriceOn(ctx context.Context, day time.Time) (decimal.Decimal, error) {
	// CoinGecko's history endpoint wants DD-MM-YYYY.
	u := fmt.Sprintf("%s/coins/%s/history?date=%s&localization=false",
		c.baseURL, c.coin, url.QueryEscape(day.Format("02-01-2006")))

	body, err := c.get(ctx, u)
	if err != nil {
		return decimal.Zero, err
	}

	var payload struct {
		MarketData struct {
			CurrentPrice map[string]decimal.Decimal `json:"current_price"`
		} `json:"market_data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return decimal.Zero, fmt.Errorf("quote: decode response: %w", err)
	}

	price, ok := payload.MarketData.CurrentPrice[c.vs]
	if !ok || !price.IsPositive() {
		return decimal.Zero, fmt.Errorf("%s: %w", day.Format(types.DayFormat), ErrPriceNotFound)
	}
	return price, nil
}

func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("quote: build request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("x-cg-demo-api-key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("quote: request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		c.log.Warn().Msg("upstream rate limit hit")
		return nil, ErrRateLimited
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("quote: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("quote: read response: %w", err)
	}
	return body, nil
}
