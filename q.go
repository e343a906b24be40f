// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package qfrac implements signed fixed-point fractions in Q15 and Q31 formats,
// the operand formats of fixed-point math coprocessors.
//
// Both formats represent numbers in [-1, 1):
//   Q15: int16, value = a / 2^15, resolution 2^-15
//   Q31: int32, value = a / 2^31, resolution 2^-31
//
// Conversions from float64 add a bias of 0.5 before truncating toward zero,
// and perform no range checks: out-of-range values wrap around, as they do on hardware.
package qfrac

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

const (
	q15Bits = 15
	q31Bits = 31

	q15Scale = 1 << q15Bits // 0x8000
	q31Scale = 1 << q31Bits // 0x80000000

	roundBias = 0.5
)

const (
	// MaxQ15 is the largest Q15 value, 1 - 2^-15.
	MaxQ15 = Q15(math.MaxInt16)
	// MinQ15 is the smallest Q15 value, -1.
	MinQ15 = Q15(math.MinInt16)
	// MaxQ31 is the largest Q31 value, 1 - 2^-31.
	MaxQ31 = Q31(math.MaxInt32)
	// MinQ31 is the smallest Q31 value, -1.
	MinQ31 = Q31(math.MinInt32)

	// ResolutionQ15 is the distance between two adjacent Q15 values.
	ResolutionQ15 = 1.0 / q15Scale
	// ResolutionQ31 is the distance between two adjacent Q31 values.
	ResolutionQ31 = 1.0 / q31Scale
)

var (
	q15Pow5 = new(big.Int).Exp(big.NewInt(5), big.NewInt(q15Bits), nil)
	q31Pow5 = new(big.Int).Exp(big.NewInt(5), big.NewInt(q31Bits), nil)
)

// Q15 is a signed fraction with 15 fractional bits.
type Q15 int16

// Q31 is a signed fraction with 31 fractional bits.
type Q31 int32

// Q15FromFloat64 returns trunc(f * 2^15 + 0.5) as a Q15 number.
func Q15FromFloat64(f float64) Q15 {
	return Q15(biased(f, q15Scale))
}

// Q31FromFloat64 returns trunc(f * 2^31 + 0.5) as a Q31 number.
func Q31FromFloat64(f float64) Q31 {
	return Q31(biased(f, q31Scale))
}

// biased scales f and truncates it with the rounding bias applied.
// The int64 intermediate makes the narrowing conversion of the callers wrap.
func biased(f, scale float64) int64 {
	return int64(f*scale + roundBias)
}

// Float64 returns a / 2^15.
func (q Q15) Float64() float64 {
	return float64(q) / q15Scale
}

// Q31 widens q to a Q31 number. The conversion is exact.
func (q Q15) Q31() Q31 {
	return Q31(q) << (q31Bits - q15Bits)
}

// Decimal returns the exact decimal value of q.
func (q Q15) Decimal() decimal.Decimal {
	return exactDecimal(int64(q), q15Pow5, q15Bits)
}

// String returns the exact decimal representation of q.
func (q Q15) String() string {
	return q.Decimal().String()
}

// Float64 returns a / 2^31.
func (q Q31) Float64() float64 {
	return float64(q) / q31Scale
}

// Q15 narrows q to a Q15 number, dropping the 16 least significant bits.
// The result is rounded toward negative infinity.
func (q Q31) Q15() Q15 {
	return Q15(q >> (q31Bits - q15Bits))
}

// Decimal returns the exact decimal value of q.
func (q Q31) Decimal() decimal.Decimal {
	return exactDecimal(int64(q), q31Pow5, q31Bits)
}

// String returns the exact decimal representation of q.
func (q Q31) String() string {
	return q.Decimal().String()
}

// exactDecimal returns a / 2^n as a * 5^n * 10^-n.
func exactDecimal(a int64, pow5 *big.Int, n int32) decimal.Decimal {
	if a == 0 {
		return decimal.Zero
	}
	m := new(big.Int).Mul(big.NewInt(a), pow5)
	return decimal.NewFromBigInt(m, -n)
}
