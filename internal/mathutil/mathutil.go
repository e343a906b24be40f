package mathutil

import (
	"math"
	"math/bits"
	"unsafe"
)

var (
	decimalFactorTable = [...]uint64{ // up to 1e19
		1, 10, 100, 1000, 10000,
		100000, 1000000, 10000000, 100000000, 1000000000, 10000000000,
		100000000000, 1000000000000, 10000000000000, 100000000000000,
		1000000000000000, 10000000000000000, 100000000000000000,
		1000000000000000000, 10000000000000000000,
	}

	digitsHelper = [...]int{
		0, 0, 0, 0, 1, 1, 1, 2, 2, 2,
		3, 3, 3, 3, 4, 4, 4, 5, 5, 5,
		6, 6, 6, 6, 7, 7, 7, 8, 8, 8,
		9, 9, 9, 9, 10, 10, 10, 11, 11, 11,
		12, 12, 12, 12, 13, 13, 13, 14, 14, 14,
		15, 15, 15, 15, 16, 16, 16, 17, 17, 17,
		18, 18, 18, 18, 19,
	}
)

const (
	// MaxExactUint64 is 2^64, the first integral float that does not fit a uint64.
	MaxExactUint64 = float64(1 << 64)
)

// Pow10 returns 10^pow, or 0 if the result does not fit a uint64.
func Pow10(pow int) uint64 {
	if pow < 0 || pow >= len(decimalFactorTable) {
		return 0
	}
	return decimalFactorTable[pow]
}

func BinaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

// DecimalDigits returns the number of decimal digits in 'value'.
// see https://stackoverflow.com/a/25934909
func DecimalDigits(value uint64) int {
	if value == 0 {
		return 1
	}

	digits := digitsHelper[BinaryDigits(value)]
	if value >= decimalFactorTable[digits] {
		digits++
	}
	return digits
}

// TruncFrac splits a non-negative f into its integral part and
// the first 'digits' decimal digits of its fractional part, both truncated toward zero.
// The fractional digits are computed as trunc((f - integ) * 10^digits), so
// for f just below an integer the result may be equal to 10^digits.
func TruncFrac(f float64, digits int) (integ float64, frac uint64) {
	integ = math.Trunc(f)
	return integ, uint64((f - integ) * float64(Pow10(digits)))
}

// Isqrt returns floor(sqrt(n)) using the binary digit-by-digit method.
func Isqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	var res uint64
	one := uint64(1) << (uint(BinaryDigits(n)-1) &^ 1)
	for one != 0 {
		if n >= res+one {
			n -= res + one
			res = res>>1 + one
		} else {
			res >>= 1
		}
		one >>= 2
	}
	return res
}
