// Package cordic describes the square root capability of a fixed-point math coprocessor,
// like the CORDIC block of a microcontroller, and provides a software stand-in for it.
package cordic

import (
	"github.com/avdva/qfrac"
	mu "github.com/avdva/qfrac/internal/mathutil"
)

// Sqrter calculates square roots of Q31 fractions.
// Results for negative operands are implementation-defined.
type Sqrter interface {
	SqrtQ31(x qfrac.Q31) qfrac.Q31
}

// SqrterFunc is an adapter to allow the use of ordinary functions as Sqrters.
type SqrterFunc func(x qfrac.Q31) qfrac.Q31

// SqrtQ31 returns f(x).
func (f SqrterFunc) SqrtQ31(x qfrac.Q31) qfrac.Q31 {
	return f(x)
}

// Exact calculates square roots with integer arithmetic.
// For x >= 0 it returns floor(sqrt(x * 2^31)), which is sqrt(x) in Q31 truncated toward zero.
// Negative operands produce zero.
type Exact struct{}

// SqrtQ31 returns the square root of x.
func (Exact) SqrtQ31(x qfrac.Q31) qfrac.Q31 {
	if x <= 0 {
		return 0
	}
	// x < 2^31, so x * 2^31 < 2^62, and the root is less than 2^31.
	return qfrac.Q31(mu.Isqrt(uint64(x) << 31))
}
