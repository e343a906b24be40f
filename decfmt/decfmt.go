// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package decfmt renders real numbers as decimal strings with exactly three fractional digits,
// like "-12.034", using integer arithmetic for all digits.
//
// The integral and the fractional parts are both truncated toward zero:
// 0.2599 is rendered as "0.259", -0.0001 as "-0.000".
package decfmt

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	mu "github.com/avdva/qfrac/internal/mathutil"
)

const (
	// Digits is the number of rendered fractional digits.
	Digits = 3
	// DefaultCapacity is the default buffer capacity, including the terminating byte.
	DefaultCapacity = 32

	delim = '.'
)

var (
	fracScale = mu.Pow10(Digits)

	manyZeros = []byte("000")
)

// Boundary defines how a fractional part, which became equal to 10^Digits
// after scaling and truncation, is rendered.
type Boundary int

const (
	// BoundaryCarry adds the overflowing fractional part to the integral part: "1.000".
	BoundaryCarry Boundary = iota
	// BoundaryKeep renders the fractional digits as is: "0.1000".
	BoundaryKeep
)

var boundaryNames = [...]string{
	BoundaryCarry: "carry",
	BoundaryKeep:  "keep",
}

// String returns the name of the boundary mode.
func (b Boundary) String() string {
	if b < 0 || int(b) >= len(boundaryNames) {
		return "Boundary(" + strconv.Itoa(int(b)) + ")"
	}
	return boundaryNames[b]
}

// MarshalText implements encoding.TextMarshaler.
func (b Boundary) MarshalText() ([]byte, error) {
	if b < 0 || int(b) >= len(boundaryNames) {
		return nil, fmt.Errorf("unknown boundary mode %d", int(b))
	}
	return []byte(boundaryNames[b]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Boundary) UnmarshalText(text []byte) error {
	for i, name := range boundaryNames {
		if name == string(text) {
			*b = Boundary(i)
			return nil
		}
	}
	return fmt.Errorf("unknown boundary mode %q", text)
}

// Formatter renders numbers with Digits fractional digits.
// The zero value is ready to use and carries on the boundary.
type Formatter struct {
	Boundary Boundary
}

// Format renders f into a buffer of 'capacity' bytes, one of which is reserved for the terminating byte,
// so at most capacity-1 characters are returned. It returns true, if the result was truncated.
func (fm Formatter) Format(f float64, capacity int) (s string, truncated bool) {
	if capacity <= 0 {
		return "", true
	}
	b := fm.Append(make([]byte, 0, capacity), f)
	if limit := capacity - 1; len(b) > limit {
		return string(b[:limit]), true
	}
	return string(b), false
}

// Append appends the full decimal representation of f to dst.
// NaN and infinities are rendered as "NaN", "+Inf", and "-Inf".
func (fm Formatter) Append(dst []byte, f float64) []byte {
	if s, ok := nonFinite(f); ok {
		return append(dst, s...)
	}
	neg := f < 0
	if neg {
		f = -f
	}
	integ, frac := mu.TruncFrac(f, Digits)
	return fm.appendParts(dst, neg, integ, frac)
}

// Width returns the length of the full decimal representation of f.
func (fm Formatter) Width(f float64) int {
	if s, ok := nonFinite(f); ok {
		return len(s)
	}
	neg := f < 0
	if neg {
		f = -f
	}
	integ, frac := fm.carry(mu.TruncFrac(f, Digits))
	width := 1 + Digits // delimiter and fractional digits
	if frac >= fracScale {
		width += mu.DecimalDigits(frac) - Digits
	}
	if neg {
		width++
	}
	if integ < mu.MaxExactUint64 {
		return width + mu.DecimalDigits(uint64(integ))
	}
	return width + len(appendIntegral(nil, integ))
}

func (fm Formatter) carry(integ float64, frac uint64) (float64, uint64) {
	if frac >= fracScale && fm.Boundary == BoundaryCarry {
		integ, frac = integ+1, frac-fracScale
	}
	return integ, frac
}

// appendParts renders a number split into the sign, the integral part, and the fractional digits.
func (fm Formatter) appendParts(dst []byte, neg bool, integ float64, frac uint64) []byte {
	integ, frac = fm.carry(integ, frac)
	if neg {
		dst = append(dst, '-')
	}
	dst = appendIntegral(dst, integ)
	dst = append(dst, delim)
	if d := mu.DecimalDigits(frac); d < Digits {
		dst = append(dst, manyZeros[:Digits-d]...)
	}
	return strconv.AppendUint(dst, frac, 10)
}

// appendIntegral appends a non-negative integral float.
func appendIntegral(dst []byte, integ float64) []byte {
	if integ < mu.MaxExactUint64 {
		return strconv.AppendUint(dst, uint64(integ), 10)
	}
	i, _ := new(big.Float).SetFloat64(integ).Int(nil)
	return i.Append(dst, 10)
}

func nonFinite(f float64) (string, bool) {
	switch {
	case math.IsNaN(f):
		return "NaN", true
	case math.IsInf(f, 1):
		return "+Inf", true
	case math.IsInf(f, -1):
		return "-Inf", true
	}
	return "", false
}

// Format renders f with the default formatter, see Formatter.Format.
func Format(f float64, capacity int) (string, bool) {
	return Formatter{}.Format(f, capacity)
}

// Float is a float64, which is printed by the fmt package with Digits fractional digits.
type Float float64

// String returns the full decimal representation of f.
func (f Float) String() string {
	return string(Formatter{}.Append(nil, float64(f)))
}

// Format implements fmt.Formatter. All verbs produce the same output.
func (f Float) Format(fs fmt.State, c rune) {
	fs.Write(Formatter{}.Append(nil, float64(f)))
}
