package bybit

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	bybit_api "github.com/bybit-exchange/bybit.go.api"

	"github.com/ducminhle1904/crypto-dca-bot/pkg/candle"
)

const klinePageSize = 1000

// bybitInterval maps a grid interval in milliseconds to Bybit's kline
// interval code. Only the codes Bybit actually exposes are supported; any
// other interval is a data error at the caller's boundary, not a panic —
// the caller chose an interval the upstream store cannot serve.
func bybitInterval(intervalMs int64) (string, error) {
	const (
		minute = 60_000
		hour   = 60 * minute
		day    = 24 * hour
		week   = 7 * day
	)
	switch intervalMs {
	case minute:
		return "1", nil
	case 3 * minute:
		return "3", nil
	case 5 * minute:
		return "5", nil
	case 15 * minute:
		return "15", nil
	case 30 * minute:
		return "30", nil
	case hour:
		return "60", nil
	case 2 * hour:
		return "120", nil
	case 4 * hour:
		return "240", nil
	case 6 * hour:
		return "360", nil
	case 12 * hour:
		return "720", nil
	case day:
		return "D", nil
	case week:
		return "W", nil
	default:
		return "", fmt.Errorf("bybit: unsupported interval %dms", intervalMs)
	}
}

// ListCandles fetches klines for [startMs, endMs) on the given grid,
// ascending by time, paginating transparently past Bybit's 1000-candle
// per-request cap.
func (c *Client) ListCandles(ctx context.Context, exchangeName, symbol string, intervalMs, startMs, endMs int64) ([]candle.Candle, error) {
	code, err := bybitInterval(intervalMs)
	if err != nil {
		return nil, err
	}
	sym := bybitSymbol(symbol)

	var out []candle.Candle
	cursor := startMs
	for cursor < endMs {
		params := map[string]interface{}{
			"category": c.category,
			"symbol":   sym,
			"interval": code,
			"start":    cursor,
			"end":      endMs,
			"limit":    klinePageSize,
		}
		result, err := c.call(ctx, func() (interface{}, error) {
			return c.http.NewUtaBybitServiceWithParams(params).GetMarketKline(ctx)
		})
		if err != nil {
			return nil, fmt.Errorf("bybit: list candles %s: %w", sym, err)
		}

		page, err := parseKlinePage(result)
		if err != nil {
			return nil, fmt.Errorf("bybit: parse kline page for %s: %w", sym, err)
		}
		if len(page) == 0 {
			break
		}
		out = append(out, page...)

		last := page[len(page)-1].Time
		if last < cursor {
			break // defensive: upstream returned no forward progress
		}
		cursor = last + intervalMs
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out, nil
}

// parseKlinePage decodes one page of Bybit's kline response into ascending
// candles. Bybit returns newest-first, so the page is reversed in place.
func parseKlinePage(response interface{}) ([]candle.Candle, error) {
	serverResp, ok := response.(*bybit_api.ServerResponse)
	if !ok {
		return nil, fmt.Errorf("invalid response type")
	}
	if serverResp.RetCode != 0 {
		return nil, fmt.Errorf("API error: %s (code: %d)", serverResp.RetMsg, serverResp.RetCode)
	}

	resultBytes, err := json.Marshal(serverResp.Result)
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}

	var klineResult struct {
		List [][]string `json:"list"`
	}
	if err := json.Unmarshal(resultBytes, &klineResult); err != nil {
		return nil, fmt.Errorf("unmarshal kline result: %w", err)
	}

	candles := make([]candle.Candle, 0, len(klineResult.List))
	for _, item := range klineResult.List {
		if len(item) < 6 {
			continue
		}
		candles = append(candles, candle.Candle{
			Time:   parseInt64(item[0]),
			Open:   parseFloat64(item[1]),
			High:   parseFloat64(item[2]),
			Low:    parseFloat64(item[3]),
			Close:  parseFloat64(item[4]),
			Volume: parseFloat64(item[5]),
		})
	}
	for i, j := 0, len(candles)-1; i < j; i, j = i+1, j-1 {
		candles[i], candles[j] = candles[j], candles[i]
	}
	return candles, nil
}

func parseInt64(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}

func parseFloat64(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
