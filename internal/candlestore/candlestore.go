// Package candlestore defines the read-only external collaborators the
// simulator and optimizer pull history from: an ordered candle time-range
// query and an exchange-info lookup. Concrete adapters (package
// candlestore/bybit) satisfy these against a real exchange; callers needing
// deterministic test data can implement them directly over an in-memory
// slice.
package candlestore

import (
	"context"

	"github.com/ducminhle1904/crypto-dca-bot/internal/xchange"
	"github.com/ducminhle1904/crypto-dca-bot/pkg/candle"
)

// CandleStore lists ordered candles for a symbol over a half-open time
// range, on the given interval's native grid.
type CandleStore interface {
	ListCandles(ctx context.Context, exchange, symbol string, intervalMs, startMs, endMs int64) ([]candle.Candle, error)
}

// ExchangeInfoStore fetches the read-only fee/filter/borrow metadata for an
// exchange.
type ExchangeInfoStore interface {
	GetExchangeInfo(ctx context.Context, exchange string) (xchange.Info, error)
}
