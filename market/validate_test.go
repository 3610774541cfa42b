package market

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateNilCandle(t *testing.T) {
	t.Parallel()

	err := Validate(nil, "previous")

	var cerr *CandleError
	assert.ErrorAs(t, err, &cerr)
	assert.Equal(t, "previous", cerr.Name)
}

func TestValidateMissingField(t *testing.T) {
	t.Parallel()

	c := Candle{Open: 10, High: 10.5, Low: 9.5} // no close
	err := Validate(&c, "candle")

	var ferr *FieldError
	assert.ErrorAs(t, err, &ferr)
	assert.Equal(t, "candle", ferr.Name)
	assert.Equal(t, "close", ferr.Field)
	assert.Equal(t, c, ferr.Candle)
}

func TestValidateZeroIsMissing(t *testing.T) {
	t.Parallel()

	// A price of exactly 0 on a required field is rejected as missing,
	// not accepted as a valid zero value.
	c := Candle{Open: 0, High: 10.5, Low: 9.5, Close: 10}
	err := Validate(&c, "candle")

	var ferr *FieldError
	assert.ErrorAs(t, err, &ferr)
	assert.Equal(t, "open", ferr.Field)
}

func TestValidateHighBelowLow(t *testing.T) {
	t.Parallel()

	c := Candle{Open: 10, High: 9, Low: 9.5, Close: 9.8}
	err := Validate(&c, "candle")

	var rerr *RangeError
	assert.ErrorAs(t, err, &rerr)
	assert.Equal(t, 9.0, rerr.High)
	assert.Equal(t, 9.5, rerr.Low)
}

func TestValidateRangeNeedsBothBounds(t *testing.T) {
	t.Parallel()

	// high < low, but only high is among the required fields.
	c := Candle{Open: 10, High: 9, Low: 9.5, Close: 9.8}
	assert.NoError(t, Validate(&c, "candle", "open", "high", "close"))
}

func TestValidateOK(t *testing.T) {
	t.Parallel()

	c := Candle{Open: 10, High: 10.5, Low: 9.5, Close: 10.2}
	assert.NoError(t, Validate(&c, "candle"))
}

func TestValidateUnknownField(t *testing.T) {
	t.Parallel()

	c := Candle{Open: 10, High: 10.5, Low: 9.5, Close: 10.2}
	err := Validate(&c, "candle", "volume")
	assert.Error(t, err)

	var ferr *FieldError
	assert.False(t, errors.As(err, &ferr))
}
