// Package simulate implements the candle-driven trading simulator: the
// per-candle event loop that owns the open-position state machine, applies
// fees and lot-size rounding, accrues short-position interest, enforces the
// missed-candle policy, and appends closed positions to a ledger.
package simulate

import (
	"fmt"

	"github.com/ducminhle1904/crypto-dca-bot/internal/filter"
	"github.com/ducminhle1904/crypto-dca-bot/internal/position"
	"github.com/ducminhle1904/crypto-dca-bot/internal/signal"
	"github.com/ducminhle1904/crypto-dca-bot/internal/stop"
	"github.com/ducminhle1904/crypto-dca-bot/internal/xchange"
	"github.com/ducminhle1904/crypto-dca-bot/pkg/candle"
)

// MissedCandlePolicy selects the behavior when a gap between successive
// candle times is detected.
type MissedCandlePolicy int

const (
	// Ignore skips the gap check entirely; processing continues with the
	// next candle as received.
	Ignore MissedCandlePolicy = iota
	// Restart re-constructs the strategy from scratch, losing warm-up.
	Restart
	// Last synthesizes the missing candles as flat copies of the last real
	// candle and processes each as if real.
	Last
)

// HourMs is the millisecond duration of one hour, used for short-interest
// accrual.
const HourMs = 60 * 60 * 1000

// Config bundles the exchange metadata and policy knobs a Simulator needs.
type Config struct {
	Fees               xchange.Fees
	Filters            xchange.Filters
	Borrow             xchange.BorrowInfo
	MarginMultiplier   float64
	LongEnabled        bool
	ShortEnabled       bool
	MissedCandlePolicy MissedCandlePolicy
	Interval           int64
}

// Summary is the accumulated result of one simulation run.
type Summary struct {
	Start     int64
	End       int64
	Quote     float64
	Positions []position.Position
}

// Simulator runs a single strategy against a single candle series. Every
// simulation owns its own strategy instance, filter state, and summary —
// there is no shared mutable state between simulator instances.
type Simulator struct {
	cfg      Config
	strategy signal.Signal
	// newStrategy rebuilds a fresh strategy instance for the Restart missed-
	// candle policy; nil is acceptable as long as MissedCandlePolicy != Restart.
	newStrategy func() signal.Signal
	changed     *filter.Changed
	stopLoss    stop.Side
	takeProfit  stop.Side

	quoteRemaining float64
	open           *openState
	lastCandle     *candle.Candle

	summary Summary
}

type openState struct {
	side       position.Side
	openTime   int64
	entryPrice float64

	// long
	size  float64
	quote float64
	fee   float64

	// short
	collateral float64
	borrowed   float64
	proceeds   float64
	openFee    float64
}

// New creates a Simulator. newStrategy, if non-nil, is used to rebuild the
// strategy from scratch when MissedCandlePolicy is Restart.
func New(cfg Config, strat signal.Signal, newStrategy func() signal.Signal, stopLoss, takeProfit stop.Side, startQuote float64) *Simulator {
	return &Simulator{
		cfg:            cfg,
		strategy:       strat,
		newStrategy:    newStrategy,
		changed:        filter.NewChanged(),
		stopLoss:       stopLoss,
		takeProfit:     takeProfit,
		quoteRemaining: startQuote,
	}
}

// Run executes the simulator over an ordered candle series and returns the
// resulting summary. Candles must be strictly increasing in Time.
func (s *Simulator) Run(candles []candle.Candle, start, end int64) (*Summary, error) {
	s.summary = Summary{Start: start, End: end, Quote: s.quoteRemaining}

	for _, c := range candles {
		if s.lastCandle != nil && c.Time-s.lastCandle.Time >= 2*s.cfg.Interval {
			if err := s.handleGap(c); err != nil {
				return nil, err
			}
		}
		s.processCandle(c)
	}

	if s.open != nil {
		last := *s.lastCandle
		s.closePosition(last.Close, last.Time+s.cfg.Interval, position.Cancelled)
	}

	return &s.summary, nil
}

func (s *Simulator) handleGap(next candle.Candle) error {
	switch s.cfg.MissedCandlePolicy {
	case Ignore:
		return nil
	case Restart:
		if s.newStrategy == nil {
			return fmt.Errorf("simulate: Restart missed-candle policy requires a strategy factory")
		}
		s.strategy = s.newStrategy()
		s.changed = filter.NewChanged()
		return nil
	case Last:
		flat := *s.lastCandle
		for t := flat.Time + s.cfg.Interval; t < next.Time; t += s.cfg.Interval {
			synth := candle.Candle{
				Time:   t,
				Open:   flat.Close,
				High:   flat.Close,
				Low:    flat.Close,
				Close:  flat.Close,
				Volume: 0,
			}
			s.processCandle(synth)
		}
		return nil
	default:
		return fmt.Errorf("simulate: unknown missed-candle policy %d", s.cfg.MissedCandlePolicy)
	}
}

func (s *Simulator) processCandle(c candle.Candle) {
	if s.open != nil {
		s.stopLoss.Update(c)
		s.takeProfit.Update(c)
	}

	s.strategy.Update(c)
	raw := filter.None
	if s.strategy.Mature() {
		raw = s.strategy.Advice()
	}
	advice := s.changed.Update(raw)

	s.applyClose(c, advice)
	s.applyOpen(c, advice)

	last := c
	s.lastCandle = &last
}

func (s *Simulator) applyClose(c candle.Candle, advice filter.Advice) {
	if s.open == nil {
		return
	}

	slHit := s.sideHit(s.stopLoss)
	tpHit := s.sideHit(s.takeProfit)

	opposed := false
	switch s.open.side {
	case position.Long:
		opposed = advice == filter.Short || advice == filter.Liquidate
	case position.Short:
		opposed = advice == filter.Long || advice == filter.Liquidate
	}

	if !slHit && !tpHit && !opposed {
		return
	}

	reason := position.Strategy
	if slHit {
		reason = position.StopLoss
	} else if tpHit {
		reason = position.TakeProfit
	}
	s.closePosition(c.Close, c.Time+s.cfg.Interval, reason)
}

func (s *Simulator) sideHit(side stop.Side) bool {
	if s.open == nil {
		return false
	}
	if s.open.side == position.Long {
		return side.UpsideHit()
	}
	return side.DownsideHit()
}

func (s *Simulator) applyOpen(c candle.Candle, advice filter.Advice) {
	if s.open != nil {
		return
	}
	switch advice {
	case filter.Long:
		if s.cfg.LongEnabled {
			s.openLong(c)
		}
	case filter.Short:
		if s.cfg.ShortEnabled {
			s.openShort(c)
		}
	}
}

func (s *Simulator) openLong(c candle.Candle) {
	price := c.Close
	size := s.cfg.Filters.RoundSizeDown(s.quoteRemaining / price)
	if size <= 0 {
		return // soft failure: zero-size open is silently skipped
	}
	quote := s.cfg.Filters.RoundQuoteDown(price * size)
	fee := xchange.RoundFeeHalfUp(size*s.cfg.Fees.Taker, s.cfg.Filters.BasePrecision)
	s.quoteRemaining -= quote

	s.open = &openState{
		side:       position.Long,
		openTime:   c.Time + s.cfg.Interval,
		entryPrice: price,
		size:       size,
		quote:      quote,
		fee:        fee,
	}
	s.clearStops(c)
}

func (s *Simulator) openShort(c candle.Candle) {
	price := c.Close
	collateral := s.cfg.Filters.RoundSizeDown(s.quoteRemaining / price)
	if collateral <= 0 {
		return
	}
	borrowed := collateral * (s.cfg.MarginMultiplier - 1)
	if borrowed > s.cfg.Borrow.Limit {
		borrowed = s.cfg.Borrow.Limit
	}
	if borrowed <= 0 {
		return // margin_multiplier == 1 borrows 0 and fails to open
	}
	quote := s.cfg.Filters.RoundQuoteDown(price * borrowed)
	fee := xchange.RoundFeeHalfUp(quote*s.cfg.Fees.Taker, s.cfg.Filters.QuotePrecision)
	s.quoteRemaining += quote - fee

	s.open = &openState{
		side:       position.Short,
		openTime:   c.Time + s.cfg.Interval,
		entryPrice: price,
		collateral: collateral,
		borrowed:   borrowed,
		proceeds:   quote,
		openFee:    fee,
	}
	s.clearStops(c)
}

func (s *Simulator) clearStops(c candle.Candle) {
	s.stopLoss.Clear(c)
	s.takeProfit.Clear(c)
}

func (s *Simulator) closePosition(price float64, closeTime int64, reason position.CloseReason) {
	open := s.open
	s.open = nil

	pos := position.Position{
		Side:        open.side,
		OpenTime:    open.openTime,
		CloseTime:   closeTime,
		CloseReason: reason,
		EntryPrice:  open.entryPrice,
	}

	if open.side == position.Long {
		pos.OpenQuote = open.quote
		pos.OpenSize = open.size
		pos.OpenFee = open.fee

		closeSize := s.cfg.Filters.RoundSizeDown(open.size - open.fee)
		closeQuote := s.cfg.Filters.RoundQuoteDown(price * closeSize)
		closeFee := xchange.RoundFeeHalfUp(closeQuote*s.cfg.Fees.Taker, s.cfg.Filters.QuotePrecision)
		s.quoteRemaining += closeQuote - closeFee

		pos.CloseSize = closeSize
		pos.CloseQuote = closeQuote
		pos.CloseFee = closeFee
	} else {
		durationHours := float64(closeTime-open.openTime) / HourMs
		interest := open.borrowed * durationHours * s.cfg.Borrow.DailyInterestRate / 24
		size := open.borrowed + interest
		closeQuote := s.cfg.Filters.RoundQuoteDown(price * size)
		closeFee := xchange.RoundFeeHalfUp(size*s.cfg.Fees.Taker, s.cfg.Filters.BasePrecision)
		size += closeFee // fee folds into the buy-back size, not the quote debit
		s.quoteRemaining -= closeQuote

		pos.Collateral = open.collateral
		pos.Borrowed = open.borrowed
		pos.ShortOpenProceeds = open.proceeds
		pos.ShortOpenFee = open.openFee
		pos.ShortCloseQuote = closeQuote
		pos.Interest = interest
	}

	s.summary.Positions = append(s.summary.Positions, pos)
}
