package decfmt

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffer(t *testing.T) {
	a := assert.New(t)
	b := NewBuffer(DefaultCapacity, Formatter{})
	a.Equal(DefaultCapacity, b.Cap())
	a.Equal(0, b.Len())

	a.False(b.Format(-12345.5))
	a.Equal("-12345.500", b.String())

	// a shorter value replaces the previous content completely.
	a.False(b.Format(0.5))
	a.Equal("0.500", b.String())
	a.Equal([]byte("0.500"), b.Bytes())
	a.Equal(5, b.Len())
	a.False(b.Truncated())
}

func TestBufferTruncation(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		capacity  int
		f         float64
		s         string
		truncated bool
	}{
		{8, 1234.5, "1234.50", true},
		{9, 1234.5, "1234.500", false},
		{1, 0.5, "", true},
		{0, 0.5, "", true},
		{-3, 0.5, "", true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			b := NewBuffer(test.capacity, Formatter{})
			a.Equal(test.truncated, b.Format(test.f))
			a.Equal(test.s, b.String())
			a.Equal(test.truncated, b.Truncated())
		})
	}
}

func TestBufferReuseAfterTruncation(t *testing.T) {
	a := assert.New(t)
	b := NewBuffer(6, Formatter{Boundary: BoundaryKeep})
	a.True(b.Format(-0.25))
	a.Equal("-0.25", b.String())
	a.False(b.Format(0.25))
	a.Equal("0.250", b.String())
	a.False(b.Truncated())
}
