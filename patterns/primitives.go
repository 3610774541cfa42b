// Package patterns classifies sequences of OHLC candles into named
// candlestick chart patterns (hammer, shooting star, engulfing,
// harami, kicker, ...).
//
// The building blocks are geometric measures over a single candle
// (body, wick and tail lengths, bullish/bearish direction) composed
// into boolean predicates over one- or two-candle windows. A Pattern
// binds a predicate to an explicit window size, and Scan slides that
// window across an ordered candle sequence collecting the matches.
// Everything is pure: candles are values, nothing is retained between
// calls, and any number of scans may run concurrently.
package patterns

import (
	"math"

	"github.com/benwaldner/candlestick/market"
)

// BodyLength returns the open-close range of the candle, always >= 0.
func BodyLength(c market.Candle) (float64, error) {
	if err := market.Validate(&c, "candle"); err != nil {
		return 0, err
	}
	return math.Abs(c.Open - c.Close), nil
}

// WickLength returns the upper shadow: the high minus the top of the
// body. Non-negative for any candle whose high really is the period
// maximum.
func WickLength(c market.Candle) (float64, error) {
	if err := market.Validate(&c, "candle"); err != nil {
		return 0, err
	}
	return c.High - math.Max(c.Open, c.Close), nil
}

// TailLength returns the lower shadow: the bottom of the body minus
// the low.
func TailLength(c market.Candle) (float64, error) {
	if err := market.Validate(&c, "candle"); err != nil {
		return 0, err
	}
	return math.Min(c.Open, c.Close) - c.Low, nil
}

// IsBullish reports whether the candle closed above its open. A doji
// (open == close) is neither bullish nor bearish; downstream patterns
// that require a direction will not match it.
func IsBullish(c market.Candle) (bool, error) {
	if err := market.Validate(&c, "candle"); err != nil {
		return false, err
	}
	return c.Open < c.Close, nil
}

// IsBearish reports whether the candle closed below its open.
func IsBearish(c market.Candle) (bool, error) {
	if err := market.Validate(&c, "candle"); err != nil {
		return false, err
	}
	return c.Open > c.Close, nil
}
