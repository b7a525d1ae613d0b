// Command backtest replays a single, randomly-generated trading-parameter
// chromosome against historical candles fetched from Bybit and prints its
// statistics — the single-configuration counterpart to cmd/optimize's
// generational search, for spot-checking one strategy instance or
// reproducing a specific seed from a prior optimize run.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/joho/godotenv"

	"github.com/ducminhle1904/crypto-dca-bot/internal/candlestore/bybit"
	"github.com/ducminhle1904/crypto-dca-bot/internal/chromosome"
	"github.com/ducminhle1904/crypto-dca-bot/internal/obslog"
	"github.com/ducminhle1904/crypto-dca-bot/internal/position"
	"github.com/ducminhle1904/crypto-dca-bot/internal/report"
	"github.com/ducminhle1904/crypto-dca-bot/internal/signal"
	"github.com/ducminhle1904/crypto-dca-bot/internal/simulate"
	"github.com/ducminhle1904/crypto-dca-bot/internal/stats"
	"github.com/ducminhle1904/crypto-dca-bot/internal/tradingparams"
	"github.com/ducminhle1904/crypto-dca-bot/pkg/xtime"
)

const defaultQuote = 1000.0

func main() {
	exchangeName := flag.String("exchange", "bybit", "exchange name")
	symbol := flag.String("symbol", "", "symbol, e.g. btc-usdt (required)")
	start := flag.String("start", "", "start timestamp, ISO-8601 or bare date (required)")
	end := flag.String("end", "", "end timestamp, ISO-8601 or bare date (required)")
	interval := flag.String("interval", "1h", "candle interval, e.g. 15m, 1h, 1d")
	quote := flag.Float64("quote", defaultQuote, "starting quote balance")
	seed := flag.Int64("seed", 1, "chromosome PRNG seed")
	testnet := flag.Bool("testnet", false, "use Bybit testnet")
	output := flag.String("output", "results/backtest-ledger.xlsx", "ledger export path")
	flag.Parse()

	if *symbol == "" || *start == "" || *end == "" {
		fmt.Fprintln(os.Stderr, "usage: backtest -symbol btc-usdt -start 2024-01-01 -end 2024-06-01 [flags]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	logger, err := obslog.New("logs", "backtest")
	if err != nil {
		log.Fatalf("obslog: %v", err)
	}
	defer logger.Close()

	intervalMs, err := xtime.ParseInterval(*interval)
	if err != nil {
		log.Fatalf("parse interval: %v", err)
	}
	startMs, err := xtime.ParseTimestamp(*start)
	if err != nil {
		log.Fatalf("parse start: %v", err)
	}
	endMs, err := xtime.ParseTimestamp(*end)
	if err != nil {
		log.Fatalf("parse end: %v", err)
	}

	client := bybit.New(bybit.Config{
		APIKey:    os.Getenv("BYBIT_API_KEY"),
		APISecret: os.Getenv("BYBIT_API_SECRET"),
		Testnet:   *testnet,
	})

	ctx := context.Background()
	candles, err := client.ListCandles(ctx, *exchangeName, *symbol, intervalMs, startMs, endMs)
	if err != nil {
		log.Fatalf("list candles: %v", err)
	}
	if len(candles) == 0 {
		log.Fatalf("no candles returned for %s [%s, %s)", *symbol, *start, *end)
	}

	info, err := client.GetExchangeInfo(ctx, *exchangeName)
	if err != nil {
		log.Fatalf("exchange info: %v", err)
	}
	filters, ok := info.Filters[*symbol]
	if !ok {
		log.Fatalf("no filters for symbol %s", *symbol)
	}
	fees, ok := info.Fees[*symbol]
	if !ok {
		log.Fatalf("no fees for symbol %s", *symbol)
	}

	simCfg := simulate.Config{
		Fees:               fees,
		Filters:            filters,
		MarginMultiplier:   1,
		LongEnabled:        true,
		ShortEnabled:       false,
		MissedCandlePolicy: simulate.Last,
		Interval:           intervalMs,
	}

	tp := tradingparams.New()
	rng := rand.New(rand.NewSource(*seed))
	tp.Generate(rng, &chromosome.Context{})

	built := tp.Build()
	newStrategy := func() signal.Signal { return tp.Build().Signal }
	sim := simulate.New(simCfg, built.Signal, newStrategy, built.StopLoss, built.TakeProfit, *quote)
	summary, err := sim.Run(candles, startMs, endMs)
	if err != nil {
		log.Fatalf("run: %v", err)
	}

	core := stats.ComposeCore(summary)
	for _, p := range summary.Positions {
		logger.LogPosition(*symbol, p.CloseReason.String(), p.Profit())
	}
	report.PrintSingleRun(*symbol, *seed, core)

	if err := report.WriteLedgerXLSX(map[string][]position.Position{*symbol: summary.Positions}, *output); err != nil {
		log.Fatalf("write ledger: %v", err)
	}
}
