package bybit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	bybit_api "github.com/bybit-exchange/bybit.go.api"

	"github.com/ducminhle1904/crypto-dca-bot/internal/xchange"
)

// defaultBorrowRate is used when Bybit's margin-borrow endpoint has no entry
// for an asset. Bybit's UTA margin API only exposes borrowable-asset rates
// for accounts with margin trading enabled; a read-only, unauthenticated
// adapter falls back to this conservative daily rate rather than failing
// the whole exchange-info fetch over one missing asset.
const defaultBorrowRate = 0.0002

// GetExchangeInfo fetches fee rates and lot-size filters for every symbol
// Bybit lists under the client's category, mapped onto xchange.Info. The
// "exchangeName" argument is accepted for interface symmetry with other
// candlestore.ExchangeInfoStore adapters but otherwise unused: one Client is
// already bound to one real exchange (Bybit) and one category.
func (c *Client) GetExchangeInfo(ctx context.Context, exchangeName string) (xchange.Info, error) {
	filters, err := c.fetchFilters(ctx)
	if err != nil {
		return xchange.Info{}, fmt.Errorf("bybit: exchange info filters: %w", err)
	}
	rawFees, err := c.fetchFees(ctx)
	if err != nil {
		return xchange.Info{}, fmt.Errorf("bybit: exchange info fees: %w", err)
	}
	fees := make(map[string]xchange.Fees, len(filters))
	for symbol := range filters {
		if f, ok := rawFees[strings.ToLower(bybitSymbol(symbol))]; ok {
			fees[symbol] = f
		}
	}

	borrow := make(map[string]map[string]xchange.BorrowInfo, len(filters))
	for symbol := range filters {
		base, _, _ := strings.Cut(symbol, "-")
		borrow[symbol] = map[string]xchange.BorrowInfo{
			base: {DailyInterestRate: defaultBorrowRate, Limit: 0},
		}
	}

	return xchange.Info{Fees: fees, Filters: filters, BorrowInfo: borrow}, nil
}

func (c *Client) fetchFilters(ctx context.Context) (map[string]xchange.Filters, error) {
	params := map[string]interface{}{"category": c.category}
	result, err := c.call(ctx, func() (interface{}, error) {
		return c.http.NewUtaBybitServiceWithParams(params).GetInstrumentInfo(ctx)
	})
	if err != nil {
		return nil, err
	}

	serverResp, ok := result.(*bybit_api.ServerResponse)
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

	var instruments struct {
		List []struct {
			Symbol        string `json:"symbol"`
			BaseCoin      string `json:"baseCoin"`
			QuoteCoin     string `json:"quoteCoin"`
			PriceFilter   struct {
				MinPrice string `json:"minPrice"`
				MaxPrice string `json:"maxPrice"`
				TickSize string `json:"tickSize"`
			} `json:"priceFilter"`
			LotSizeFilter struct {
				MinOrderQty string `json:"minOrderQty"`
				MaxOrderQty string `json:"maxOrderQty"`
				QtyStep     string `json:"qtyStep"`
			} `json:"lotSizeFilter"`
		} `json:"list"`
	}
	if err := json.Unmarshal(resultBytes, &instruments); err != nil {
		return nil, fmt.Errorf("unmarshal instrument list: %w", err)
	}

	out := make(map[string]xchange.Filters, len(instruments.List))
	for _, inst := range instruments.List {
		symbol := strings.ToLower(inst.BaseCoin) + "-" + strings.ToLower(inst.QuoteCoin)
		out[symbol] = xchange.Filters{
			Price: xchange.PriceFilter{
				Min:  parseFloat64(inst.PriceFilter.MinPrice),
				Max:  parseFloat64(inst.PriceFilter.MaxPrice),
				Step: parseFloat64(inst.PriceFilter.TickSize),
			},
			Size: xchange.SizeFilter{
				Min:  parseFloat64(inst.LotSizeFilter.MinOrderQty),
				Max:  parseFloat64(inst.LotSizeFilter.MaxOrderQty),
				Step: parseFloat64(inst.LotSizeFilter.QtyStep),
			},
			BasePrecision:  decimalPlaces(inst.LotSizeFilter.QtyStep),
			QuotePrecision: decimalPlaces(inst.PriceFilter.TickSize),
		}
	}
	return out, nil
}

func (c *Client) fetchFees(ctx context.Context) (map[string]xchange.Fees, error) {
	params := map[string]interface{}{"category": c.category}
	result, err := c.call(ctx, func() (interface{}, error) {
		return c.http.NewUtaBybitServiceWithParams(params).GetFeeRates(ctx)
	})
	if err != nil {
		return nil, err
	}

	serverResp, ok := result.(*bybit_api.ServerResponse)
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

	var feeResult struct {
		List []struct {
			Symbol       string `json:"symbol"`
			MakerFeeRate string `json:"makerFeeRate"`
			TakerFeeRate string `json:"takerFeeRate"`
		} `json:"list"`
	}
	if err := json.Unmarshal(resultBytes, &feeResult); err != nil {
		return nil, fmt.Errorf("unmarshal fee list: %w", err)
	}

	out := make(map[string]xchange.Fees, len(feeResult.List))
	for _, f := range feeResult.List {
		out[strings.ToLower(f.Symbol)] = xchange.Fees{
			Maker: parseFloat64(f.MakerFeeRate),
			Taker: parseFloat64(f.TakerFeeRate),
		}
	}
	return out, nil
}

// decimalPlaces counts the digits after the decimal point in a step-size
// string like "0.001", used to derive BasePrecision/QuotePrecision since
// Bybit reports step sizes, not precision counts, directly.
func decimalPlaces(step string) int {
	_, frac, found := strings.Cut(step, ".")
	if !found {
		return 0
	}
	frac = strings.TrimRight(frac, "0")
	return len(frac)
}
