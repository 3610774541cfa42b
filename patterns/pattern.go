package patterns

import (
	"fmt"

	"github.com/benwaldner/candlestick/market"
)

// OneCandleFunc and TwoCandleFunc are the two predicate arities the
// scanner understands. Two-candle predicates take the previous candle
// first, then the current one.
type (
	OneCandleFunc func(c market.Candle) (bool, error)
	TwoCandleFunc func(previous, current market.Candle) (bool, error)
)

// Pattern binds a named predicate to an explicit window size so the
// scanner can slide a fixed-width window without inspecting the
// predicate itself. Exactly one of the two function slots is set,
// matching the window size.
type Pattern struct {
	name   string
	window int
	one    OneCandleFunc
	two    TwoCandleFunc
}

// OneCandle builds a single-candle pattern.
func OneCandle(name string, fn OneCandleFunc) Pattern {
	return Pattern{name: name, window: 1, one: fn}
}

// TwoCandle builds a previous/current candle-pair pattern.
func TwoCandle(name string, fn TwoCandleFunc) Pattern {
	return Pattern{name: name, window: 2, two: fn}
}

// Name returns a stable identifier like "hammer" or
// "bullish-engulfing".
func (p Pattern) Name() string { return p.name }

// Window returns the number of candles the predicate inspects.
func (p Pattern) Window() int { return p.window }

// ScanIndexes slides the pattern's window across candles, ordered
// oldest first, and returns the index of the last candle of every
// matching window, in scan order. Overlapping matches are all kept; a
// candle may appear as the "current" of one window and the "previous"
// of the next. A sequence shorter than the window yields no matches
// and no error. The first predicate failure aborts the scan with no
// partial results.
func (p Pattern) ScanIndexes(candles []market.Candle) ([]int, error) {
	var matches []int

	for i := 0; i+p.window <= len(candles); i++ {
		var (
			ok  bool
			err error
		)
		switch p.window {
		case 1:
			ok, err = p.one(candles[i])
		case 2:
			ok, err = p.two(candles[i], candles[i+1])
		default:
			return nil, fmt.Errorf("pattern %s: unsupported window %d", p.name, p.window)
		}
		if err != nil {
			return nil, fmt.Errorf("scan %s window %d: %w", p.name, i, err)
		}
		if ok {
			matches = append(matches, i+p.window-1)
		}
	}
	return matches, nil
}

// Scan is ScanIndexes returning the matched candles themselves.
func (p Pattern) Scan(candles []market.Candle) ([]market.Candle, error) {
	idxs, err := p.ScanIndexes(candles)
	if err != nil {
		return nil, err
	}

	var matches []market.Candle
	for _, i := range idxs {
		matches = append(matches, candles[i])
	}
	return matches, nil
}

// The registered patterns.
var (
	HammerPattern           = OneCandle("hammer", IsHammer)
	InvertedHammerPattern   = OneCandle("inverted-hammer", IsInvertedHammer)
	HangingManPattern       = TwoCandle("hanging-man", IsHangingMan)
	ShootingStarPattern     = TwoCandle("shooting-star", IsShootingStar)
	BullishEngulfingPattern = TwoCandle("bullish-engulfing", IsBullishEngulfing)
	BearishEngulfingPattern = TwoCandle("bearish-engulfing", IsBearishEngulfing)
	BullishHaramiPattern    = TwoCandle("bullish-harami", IsBullishHarami)
	BearishHaramiPattern    = TwoCandle("bearish-harami", IsBearishHarami)
	BullishKickerPattern    = TwoCandle("bullish-kicker", IsBullishKicker)
	BearishKickerPattern    = TwoCandle("bearish-kicker", IsBearishKicker)
)

// All returns every registered pattern in a stable order.
func All() []Pattern {
	return []Pattern{
		HammerPattern,
		InvertedHammerPattern,
		HangingManPattern,
		ShootingStarPattern,
		BullishEngulfingPattern,
		BearishEngulfingPattern,
		BullishHaramiPattern,
		BearishHaramiPattern,
		BullishKickerPattern,
		BearishKickerPattern,
	}
}

// Lookup finds a registered pattern by name.
func Lookup(name string) (Pattern, bool) {
	for _, p := range All() {
		if p.name == name {
			return p, true
		}
	}
	return Pattern{}, false
}
