// Package bybit adapts Bybit's REST API to the read-only candlestore
// interfaces: ordered kline history and exchange fee/filter metadata. It is
// a thin, read-only counterpart to the teacher's internal/exchange/bybit
// trading client — no order placement, account, or websocket surface is
// carried over, since the optimizer only ever reads historical candles and
// exchange metadata.
package bybit

import (
	"context"
	"fmt"
	"strings"
	"time"

	bybit_api "github.com/bybit-exchange/bybit.go.api"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// Config configures a Client. Credentials are optional: Bybit's public kline
// and instrument endpoints do not require authentication, but the same
// client is reused by an authenticated caller that also wants fee rates.
type Config struct {
	APIKey    string
	APISecret string
	Testnet   bool
	Category  string // "spot", "linear", "inverse"; defaults to "spot"

	// RateLimit bounds outbound requests per second; zero uses a
	// conservative default matching Bybit's public-endpoint limits.
	RateLimit rate.Limit
	// Burst is the rate limiter's burst size; zero defaults to 5.
	Burst int
}

// Client is a circuit-broken, rate-limited, read-only Bybit REST adapter
// satisfying candlestore.CandleStore and candlestore.ExchangeInfoStore.
type Client struct {
	http     *bybit_api.Client
	category string
	limiter  *rate.Limiter
	breaker  *gobreaker.CircuitBreaker
}

// New creates a Client. The circuit breaker trips after 5 consecutive
// failures and stays open for 30s before allowing a single probe request,
// matching the teacher-adjacent cryptorun provider-breaker defaults.
func New(cfg Config) *Client {
	baseURL := bybit_api.MAINNET
	if cfg.Testnet {
		baseURL = bybit_api.TESTNET
	}
	category := cfg.Category
	if category == "" {
		category = "spot"
	}
	rps := cfg.RateLimit
	if rps <= 0 {
		rps = rate.Limit(5)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 5
	}

	return &Client{
		http:     bybit_api.NewBybitHttpClient(cfg.APIKey, cfg.APISecret, bybit_api.WithBaseURL(baseURL)),
		category: category,
		limiter:  rate.NewLimiter(rps, burst),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "bybit-candlestore",
			MaxRequests: 1,
			Interval:    0,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
}

// call runs fn through the rate limiter and circuit breaker, in that order:
// waiting for a token never counts against the breaker, only the request
// itself does.
func (c *Client) call(ctx context.Context, fn func() (interface{}, error)) (interface{}, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}
	result, err := c.breaker.Execute(fn)
	if err != nil {
		return nil, fmt.Errorf("bybit request: %w", err)
	}
	return result, nil
}

// bybitSymbol converts a "base-quote" pair into Bybit's concatenated
// uppercase symbol convention (e.g. "eth-btc" -> "ETHBTC").
func bybitSymbol(symbol string) string {
	base, quote, found := strings.Cut(symbol, "-")
	if !found {
		return strings.ToUpper(symbol)
	}
	return strings.ToUpper(base) + strings.ToUpper(quote)
}
