// Command optimize runs the genetic-algorithm driver against historical
// candles fetched from Bybit, printing generation progress and the final
// hall of fame, then exporting the winning chromosome's ledger. Flag-based
// CLI, no cobra, matching the teacher's cmd/backtest/main.go convention.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/ducminhle1904/crypto-dca-bot/internal/candlestore/bybit"
	"github.com/ducminhle1904/crypto-dca-bot/internal/chromosome"
	"github.com/ducminhle1904/crypto-dca-bot/internal/genetic"
	"github.com/ducminhle1904/crypto-dca-bot/internal/obslog"
	"github.com/ducminhle1904/crypto-dca-bot/internal/position"
	"github.com/ducminhle1904/crypto-dca-bot/internal/report"
	"github.com/ducminhle1904/crypto-dca-bot/internal/signal"
	"github.com/ducminhle1904/crypto-dca-bot/internal/simulate"
	"github.com/ducminhle1904/crypto-dca-bot/internal/stats"
	"github.com/ducminhle1904/crypto-dca-bot/internal/telemetry"
	"github.com/ducminhle1904/crypto-dca-bot/internal/tradingparams"
	"github.com/ducminhle1904/crypto-dca-bot/pkg/candle"
	"github.com/ducminhle1904/crypto-dca-bot/pkg/xtime"
)

const (
	defaultPopulationSize = 60
	defaultGenerations    = 35
	defaultHallOfFame     = 6
	defaultQuote          = 1000.0
	defaultMaxWorkers     = 8
)

func main() {
	exchangeName := flag.String("exchange", "bybit", "exchange name")
	symbol := flag.String("symbol", "", "training symbol, e.g. btc-usdt (required)")
	start := flag.String("start", "", "start timestamp, ISO-8601 or bare date (required)")
	end := flag.String("end", "", "end timestamp, ISO-8601 or bare date (required)")
	interval := flag.String("interval", "1h", "candle interval, e.g. 15m, 1h, 1d")
	quote := flag.Float64("quote", defaultQuote, "starting quote balance")
	population := flag.Int("population", defaultPopulationSize, "GA population size")
	generations := flag.Int("generations", defaultGenerations, "GA generation count")
	hallOfFame := flag.Int("hof", defaultHallOfFame, "hall-of-fame size per generation")
	seed := flag.Int64("seed", 1, "GA PRNG seed")
	testnet := flag.Bool("testnet", false, "use Bybit testnet")
	output := flag.String("output", "results/ledger.xlsx", "winning chromosome's ledger export path")
	flag.Parse()

	if *symbol == "" || *start == "" || *end == "" {
		fmt.Fprintln(os.Stderr, "usage: optimize -symbol btc-usdt -start 2024-01-01 -end 2024-06-01 [flags]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	logger, err := obslog.New("logs", "optimize")
	if err != nil {
		log.Fatalf("obslog: %v", err)
	}
	defer logger.Close()

	cfg := runConfig{
		exchange:    *exchangeName,
		symbol:      *symbol,
		start:       *start,
		end:         *end,
		interval:    *interval,
		quote:       *quote,
		population:  *population,
		generations: *generations,
		hallOfFame:  *hallOfFame,
		seed:        *seed,
		testnet:     *testnet,
		output:      *output,
	}
	if err := run(cfg, logger); err != nil {
		log.Fatalf("optimize: %v", err)
	}
}

type runConfig struct {
	exchange, symbol, start, end, interval string
	quote                                  float64
	population, generations, hallOfFame    int
	seed                                    int64
	testnet                                bool
	output                                 string
}

func run(cfg runConfig, logger *obslog.Logger) error {
	intervalMs, err := xtime.ParseInterval(cfg.interval)
	if err != nil {
		return fmt.Errorf("parse interval: %w", err)
	}
	startMs, err := xtime.ParseTimestamp(cfg.start)
	if err != nil {
		return fmt.Errorf("parse start: %w", err)
	}
	endMs, err := xtime.ParseTimestamp(cfg.end)
	if err != nil {
		return fmt.Errorf("parse end: %w", err)
	}

	client := bybit.New(bybit.Config{
		APIKey:    os.Getenv("BYBIT_API_KEY"),
		APISecret: os.Getenv("BYBIT_API_SECRET"),
		Testnet:   cfg.testnet,
	})

	ctx := context.Background()
	candles, err := client.ListCandles(ctx, cfg.exchange, cfg.symbol, intervalMs, startMs, endMs)
	if err != nil {
		return fmt.Errorf("list candles: %w", err)
	}
	if len(candles) == 0 {
		return fmt.Errorf("no candles returned for %s [%s, %s)", cfg.symbol, cfg.start, cfg.end)
	}

	info, err := client.GetExchangeInfo(ctx, cfg.exchange)
	if err != nil {
		return fmt.Errorf("exchange info: %w", err)
	}
	filters, ok := info.Filters[cfg.symbol]
	if !ok {
		return fmt.Errorf("no filters for symbol %s", cfg.symbol)
	}
	fees, ok := info.Fees[cfg.symbol]
	if !ok {
		return fmt.Errorf("no fees for symbol %s", cfg.symbol)
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

	evaluate := func(tp *tradingparams.TradingParams) float64 {
		summary, err := runSimulation(simCfg, tp, candles, startMs, endMs, cfg.quote)
		if err != nil {
			logger.Warn("evaluation failed: %v", err)
			return genetic.MinFitness
		}
		core := stats.ComposeCore(summary)
		return core.Profit
	}

	driver := genetic.New(genetic.Config[*tradingparams.TradingParams]{
		PopulationSize: cfg.population,
		Generations:    cfg.generations,
		HallOfFameSize: cfg.hallOfFame,
		Seed:           cfg.seed,
		MaxWorkers:     defaultMaxWorkers,
		SelectionRate:  1.0,
		NewChromosome:  tradingparams.New,
		GenerateCtx:    &chromosome.Context{},
		Evaluate:       evaluate,
		Selection:      genetic.TournamentSelection[*tradingparams.TradingParams]{TournamentSize: 3},
		Crossover:      genetic.UniformCrossover[*tradingparams.TradingParams]{Rate: 0.5},
		Mutation:       genetic.UniformMutation[*tradingparams.TradingParams]{Rate: 0.1},
		Reinsertion:    genetic.EliteReinsertion[*tradingparams.TradingParams]{FreshFraction: 0.1},
	})

	results, err := driver.Run(ctx)
	if err != nil {
		return fmt.Errorf("evolution run: %w", err)
	}

	for _, g := range results {
		best := genetic.MinFitness
		if len(g.Elite) > 0 {
			best = g.Elite[0].Fitness
		}
		telemetry.RecordGeneration("optimize", cfg.population, best)
		logger.LogGeneration(g.Index, cfg.population, best)
	}
	report.PrintGenerationProgress(results)

	final := results[len(results)-1]
	rows := make([]report.EliteRow, 0, len(final.Elite))
	var winningPositions []position.Position

	for i, ind := range final.Elite {
		summary, err := runSimulation(simCfg, ind.Chromosome, candles, startMs, endMs, cfg.quote)
		if err != nil {
			return fmt.Errorf("rebuild elite %d: %w", i, err)
		}
		core := stats.ComposeCore(summary)
		for _, p := range summary.Positions {
			telemetry.RecordPositionClosed(cfg.symbol, p.CloseReason.String())
			logger.LogPosition(cfg.symbol, p.CloseReason.String(), p.Profit())
		}
		rows = append(rows, report.EliteRow{Rank: i + 1, Fitness: ind.Fitness, Symbol: cfg.symbol, Core: core})
		if i == 0 {
			winningPositions = summary.Positions
		}
	}
	report.PrintHallOfFame(results, rows)

	if err := report.WriteLedgerXLSX(map[string][]position.Position{cfg.symbol: winningPositions}, cfg.output); err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}
	return nil
}

// runSimulation realizes a chromosome into a signal/stop-loss/take-profit
// triple and replays it over the candle series.
func runSimulation(cfg simulate.Config, tp *tradingparams.TradingParams, candles []candle.Candle, startMs, endMs int64, quote float64) (*simulate.Summary, error) {
	built := tp.Build()
	newStrategy := func() signal.Signal { return tp.Build().Signal }
	sim := simulate.New(cfg, built.Signal, newStrategy, built.StopLoss, built.TakeProfit, quote)
	return sim.Run(candles, startMs, endMs)
}
