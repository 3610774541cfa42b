package patterns

import (
	"math"

	"github.com/benwaldner/candlestick/market"
)

// IsHammerLike reports a hammer silhouette: a lower shadow more than
// twice the body with an upper shadow shorter than the body.
func IsHammerLike(c market.Candle) (bool, error) {
	body, err := BodyLength(c)
	if err != nil {
		return false, err
	}
	tail, err := TailLength(c)
	if err != nil {
		return false, err
	}
	wick, err := WickLength(c)
	if err != nil {
		return false, err
	}
	return tail > 2*body && wick < body, nil
}

// IsInvertedHammerLike is the mirror image: a long upper shadow with a
// short lower shadow.
func IsInvertedHammerLike(c market.Candle) (bool, error) {
	body, err := BodyLength(c)
	if err != nil {
		return false, err
	}
	tail, err := TailLength(c)
	if err != nil {
		return false, err
	}
	wick, err := WickLength(c)
	if err != nil {
		return false, err
	}
	return wick > 2*body && tail < body, nil
}

// IsEngulfed reports whether longest's body is longer than shortest's.
// Only body lengths are compared; the argument names encode which
// candle the caller expects to dominate.
func IsEngulfed(shortest, longest market.Candle) (bool, error) {
	sb, err := BodyLength(shortest)
	if err != nil {
		return false, err
	}
	lb, err := BodyLength(longest)
	if err != nil {
		return false, err
	}
	return sb < lb, nil
}

// IsGap reports a true price gap between bodies: lower's body range
// sits entirely below upper's. Wicks may still overlap.
func IsGap(lower, upper market.Candle) (bool, error) {
	if err := market.Validate(&lower, "lower"); err != nil {
		return false, err
	}
	if err := market.Validate(&upper, "upper"); err != nil {
		return false, err
	}
	return math.Max(lower.Open, lower.Close) < math.Min(upper.Open, upper.Close), nil
}

// IsGapUp reports that current's body gapped above previous's.
func IsGapUp(previous, current market.Candle) (bool, error) {
	return IsGap(previous, current)
}

// IsGapDown reports that current's body gapped below previous's.
func IsGapDown(previous, current market.Candle) (bool, error) {
	return IsGap(current, previous)
}
