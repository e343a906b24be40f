package cordic

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avdva/qfrac"
)

func TestExact(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, root qfrac.Q31
	}{
		{0, 0},
		{-1, 0},
		{qfrac.MinQ31, 0},
		{qfrac.Q31FromFloat64(0.25), 0x40000000},
		{qfrac.Q31FromFloat64(0.0625), 0x20000000},
		{qfrac.Q31FromFloat64(0.5625), 0x60000000},
		{1, 46340}, // floor(sqrt(2^31))
		{qfrac.MaxQ31, qfrac.MaxQ31},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.root, Exact{}.SqrtQ31(test.x))
		})
	}
}

func TestExactAgreesWithFloat(t *testing.T) {
	a := assert.New(t)
	var prev qfrac.Q31
	for i := 0; i <= 10000; i++ {
		x := qfrac.Q31(int64(i) * int64(qfrac.MaxQ31) / 10000)
		root := Exact{}.SqrtQ31(x)
		if !a.InDelta(math.Sqrt(x.Float64()), root.Float64(), qfrac.ResolutionQ31, "sqrt(%d)", x) {
			break
		}
		if !a.True(root >= prev, "sqrt(%d) is not monotonic", x) {
			break
		}
		prev = root
	}
}

func TestSqrterFunc(t *testing.T) {
	a := assert.New(t)
	var calls []qfrac.Q31
	var s Sqrter = SqrterFunc(func(x qfrac.Q31) qfrac.Q31 {
		calls = append(calls, x)
		return x / 2
	})
	a.Equal(qfrac.Q31(21), s.SqrtQ31(42))
	a.Equal([]qfrac.Q31{42}, calls)
}

func BenchmarkExact(b *testing.B) {
	var dummy qfrac.Q31
	for i := 0; i < b.N; i++ {
		dummy ^= Exact{}.SqrtQ31(qfrac.Q31(i & math.MaxInt32))
	}
	b.ReportMetric(float64(dummy), "dummy_metric")
}
