package qfrac

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeRaw
)

const (
	// JSONModeRaw marshals values as their underlying integers, like `536870912`.
	JSONModeRaw = iota
	// JSONModeFloat marshals values as floats, like `0.25`.
	// Integral values keep a fractional part, like `-1.0`, so they are not read back as raw integers.
	JSONModeFloat
	// JSONModeString marshals values as exact decimal strings, like `"0.25"`.
	JSONModeString
)

var (
	q15ScaleDecimal = decimal.New(q15Scale, 0)
	q31ScaleDecimal = decimal.New(q31Scale, 0)
	biasDecimal     = decimal.New(5, -1)
)

// MarshalJSON marshals q according to current JSONMode.
func (q Q15) MarshalJSON() ([]byte, error) {
	return toJSON(int64(q), q.Float64(), q.Decimal, JSONMode), nil
}

// UnmarshalJSON accepts an integer, which is taken as is,
// or a decimal number, either quoted or not. Numbers exactly representable in Q15 are taken as is,
// others are scaled and biased like Q15FromFloat64 does. No range checks are performed.
func (q *Q15) UnmarshalJSON(data []byte) error {
	v, err := fromJSON(data, q15ScaleDecimal, 16)
	if err != nil {
		return err
	}
	*q = Q15(v)
	return nil
}

// MarshalJSON marshals q according to current JSONMode.
func (q Q31) MarshalJSON() ([]byte, error) {
	return toJSON(int64(q), q.Float64(), q.Decimal, JSONMode), nil
}

// UnmarshalJSON accepts an integer or a decimal number, see Q15.UnmarshalJSON.
func (q *Q31) UnmarshalJSON(data []byte) error {
	v, err := fromJSON(data, q31ScaleDecimal, 32)
	if err != nil {
		return err
	}
	*q = Q31(v)
	return nil
}

func toJSON(raw int64, f float64, dec func() decimal.Decimal, mode int) []byte {
	switch mode {
	case JSONModeFloat:
		b := strconv.AppendFloat(nil, f, 'f', -1, 64)
		if f == math.Trunc(f) {
			b = append(b, ".0"...)
		}
		return b
	case JSONModeString:
		return []byte(strconv.Quote(dec().String()))
	default:
		return []byte(strconv.FormatInt(raw, 10))
	}
}

func fromJSON(data []byte, scale decimal.Decimal, bitSize int) (int64, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("empty json")
	}
	s := string(data)
	if data[0] != '"' {
		v, err := strconv.ParseInt(s, 10, bitSize)
		if err == nil {
			return v, nil
		}
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("value out of range: %s", s)
		}
	} else if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	} else {
		return 0, fmt.Errorf("parsing failed: %w", err)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parsing failed: %w", err)
	}
	scaled := d.Mul(scale)
	if integ := scaled.Truncate(0); integ.Equal(scaled) {
		return integ.IntPart(), nil
	}
	return scaled.Add(biasDecimal).Truncate(0).IntPart(), nil
}
