package patterns

import "github.com/benwaldner/candlestick/market"

// Named scanners, the public entry points for whole-sequence
// classification. Each takes candles ordered oldest first and returns
// the matching candles per Pattern.Scan.

// Hammer scans for bullish hammer candles.
func Hammer(candles []market.Candle) ([]market.Candle, error) {
	return HammerPattern.Scan(candles)
}

// InvertedHammer scans for bearish inverted hammer candles.
func InvertedHammer(candles []market.Candle) ([]market.Candle, error) {
	return InvertedHammerPattern.Scan(candles)
}

// HangingMan scans for hanging man pairs: a gap up into a bearish
// hammer-shaped candle.
func HangingMan(candles []market.Candle) ([]market.Candle, error) {
	return HangingManPattern.Scan(candles)
}

// ShootingStar scans for shooting star pairs.
func ShootingStar(candles []market.Candle) ([]market.Candle, error) {
	return ShootingStarPattern.Scan(candles)
}

// BullishEngulfing scans for bullish engulfing pairs.
func BullishEngulfing(candles []market.Candle) ([]market.Candle, error) {
	return BullishEngulfingPattern.Scan(candles)
}

// BearishEngulfing scans for bearish engulfing pairs.
func BearishEngulfing(candles []market.Candle) ([]market.Candle, error) {
	return BearishEngulfingPattern.Scan(candles)
}

// BullishHarami scans for bullish harami pairs.
func BullishHarami(candles []market.Candle) ([]market.Candle, error) {
	return BullishHaramiPattern.Scan(candles)
}

// BearishHarami scans for bearish harami pairs.
func BearishHarami(candles []market.Candle) ([]market.Candle, error) {
	return BearishHaramiPattern.Scan(candles)
}

// BullishKicker scans for bullish kicker pairs.
func BullishKicker(candles []market.Candle) ([]market.Candle, error) {
	return BullishKickerPattern.Scan(candles)
}

// BearishKicker scans for bearish kicker pairs.
func BearishKicker(candles []market.Candle) ([]market.Candle, error) {
	return BearishKickerPattern.Scan(candles)
}
