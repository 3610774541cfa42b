package patterns

import "github.com/benwaldner/candlestick/market"

// The named predicates. Each validates its candles through the
// primitives it calls and propagates the first validation error; a
// false result from an earlier term short-circuits the rest.

// IsHammer reports a bullish candle with a hammer silhouette: a long
// lower shadow and little or no upper shadow.
func IsHammer(c market.Candle) (bool, error) {
	bullish, err := IsBullish(c)
	if err != nil || !bullish {
		return false, err
	}
	return IsHammerLike(c)
}

// IsInvertedHammer reports a bearish candle with an inverted hammer
// silhouette.
func IsInvertedHammer(c market.Candle) (bool, error) {
	bearish, err := IsBearish(c)
	if err != nil || !bearish {
		return false, err
	}
	return IsInvertedHammerLike(c)
}

// IsHangingMan reports a bearish hammer-shaped candle that gapped up
// from a bullish candle.
func IsHangingMan(previous, current market.Candle) (bool, error) {
	bullish, err := IsBullish(previous)
	if err != nil || !bullish {
		return false, err
	}
	bearish, err := IsBearish(current)
	if err != nil || !bearish {
		return false, err
	}
	gap, err := IsGapUp(previous, current)
	if err != nil || !gap {
		return false, err
	}
	return IsHammerLike(current)
}

// IsShootingStar reports a bearish inverted-hammer-shaped candle that
// gapped up from a bullish candle.
func IsShootingStar(previous, current market.Candle) (bool, error) {
	bullish, err := IsBullish(previous)
	if err != nil || !bullish {
		return false, err
	}
	bearish, err := IsBearish(current)
	if err != nil || !bearish {
		return false, err
	}
	gap, err := IsGapUp(previous, current)
	if err != nil || !gap {
		return false, err
	}
	return IsInvertedHammerLike(current)
}

// IsBullishEngulfing reports a bullish candle whose body engulfs the
// preceding bearish candle's.
func IsBullishEngulfing(previous, current market.Candle) (bool, error) {
	bearish, err := IsBearish(previous)
	if err != nil || !bearish {
		return false, err
	}
	bullish, err := IsBullish(current)
	if err != nil || !bullish {
		return false, err
	}
	return IsEngulfed(previous, current)
}

// IsBearishEngulfing reports a bearish candle whose body engulfs the
// preceding bullish candle's.
func IsBearishEngulfing(previous, current market.Candle) (bool, error) {
	bullish, err := IsBullish(previous)
	if err != nil || !bullish {
		return false, err
	}
	bearish, err := IsBearish(current)
	if err != nil || !bearish {
		return false, err
	}
	return IsEngulfed(previous, current)
}

// IsBullishHarami reports a small bullish candle contained by the
// preceding bearish candle's body.
func IsBullishHarami(previous, current market.Candle) (bool, error) {
	bearish, err := IsBearish(previous)
	if err != nil || !bearish {
		return false, err
	}
	bullish, err := IsBullish(current)
	if err != nil || !bullish {
		return false, err
	}
	return IsEngulfed(current, previous)
}

// IsBearishHarami reports a small bearish candle contained by the
// preceding bullish candle's body.
func IsBearishHarami(previous, current market.Candle) (bool, error) {
	bullish, err := IsBullish(previous)
	if err != nil || !bullish {
		return false, err
	}
	bearish, err := IsBearish(current)
	if err != nil || !bearish {
		return false, err
	}
	return IsEngulfed(current, previous)
}

// IsBullishKicker reports a bullish candle gapping up from a bearish
// one.
func IsBullishKicker(previous, current market.Candle) (bool, error) {
	bearish, err := IsBearish(previous)
	if err != nil || !bearish {
		return false, err
	}
	bullish, err := IsBullish(current)
	if err != nil || !bullish {
		return false, err
	}
	return IsGapUp(previous, current)
}

// IsBearishKicker reports a bearish candle gapping down from a bullish
// one.
func IsBearishKicker(previous, current market.Candle) (bool, error) {
	bullish, err := IsBullish(previous)
	if err != nil || !bullish {
		return false, err
	}
	bearish, err := IsBearish(current)
	if err != nil || !bearish {
		return false, err
	}
	return IsGapDown(previous, current)
}
