package market

import "fmt"

// DefaultFields are the candle fields Validate checks when the caller
// names none.
var DefaultFields = []string{"open", "high", "low", "close"}

// CandleError reports an absent candle argument.
type CandleError struct {
	Name string // logical argument name, e.g. "previous"
}

func (e *CandleError) Error() string {
	return fmt.Sprintf("candle %q is required", e.Name)
}

// FieldError reports a required candle field that is missing. A zero
// price counts as missing: candle feeds use zero for fields that were
// never set, so a literal 0.0 is rejected rather than treated as a
// valid price.
type FieldError struct {
	Name   string
	Field  string
	Candle Candle // the offending record, for diagnostics
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("candle %q: field %q is required (got %+v)", e.Name, e.Field, e.Candle)
}

// RangeError reports a candle whose high is below its low.
type RangeError struct {
	Name string
	High float64
	Low  float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("candle %q: high %v is below low %v", e.Name, e.High, e.Low)
}

// Validate checks that c is present, that every required field is set,
// and that high >= low whenever both bounds are among the required
// fields. fields defaults to open, high, low and close. name labels
// the candle in error messages.
//
// Validate is a pure check: it never modifies c.
func Validate(c *Candle, name string, fields ...string) error {
	if c == nil {
		return &CandleError{Name: name}
	}
	if len(fields) == 0 {
		fields = DefaultFields
	}

	var checkHigh, checkLow bool
	for _, f := range fields {
		var v float64
		switch f {
		case "open":
			v = c.Open
		case "high":
			v = c.High
			checkHigh = true
		case "low":
			v = c.Low
			checkLow = true
		case "close":
			v = c.Close
		default:
			return fmt.Errorf("unknown candle field %q", f)
		}
		if v == 0 {
			return &FieldError{Name: name, Field: f, Candle: *c}
		}
	}

	if checkHigh && checkLow && c.High < c.Low {
		return &RangeError{Name: name, High: c.High, Low: c.Low}
	}
	return nil
}
