package body

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestLengthStates(t *testing.T) {
	assert.True(t, LengthZero().IsZero())
	assert.True(t, LengthZero().IsExact())

	assert.False(t, LengthChunked().IsZero())
	assert.False(t, LengthChunked().IsExact())

	l := LengthExact(4)
	assert.False(t, l.IsZero())
	n, ok := l.Exact()
	assert.True(t, ok)
	assert.Equal(t, uint64(4), n)

	_, ok = LengthChunked().Exact()
	assert.False(t, ok)
}

func TestLengthConsumeSaturates(t *testing.T) {
	l := LengthExact(4)
	l.Consume(10)
	assert.True(t, l.IsZero())

	l = LengthExact(4)
	l.Consume(3)
	n, _ := l.Exact()
	assert.Equal(t, uint64(1), n)
}

func TestLengthChunkedUnaffectedByConsume(t *testing.T) {
	l := LengthChunked()
	l.Consume(1 << 40)
	assert.False(t, l.IsExact())
	assert.False(t, l.IsZero())
}

// Property: no sequence of observed chunk sizes can drive an exact
// length below zero; the remainder is always declared minus the
// saturated total.
func TestLengthNeverUnderflows(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("remaining length saturates at zero", prop.ForAll(
		func(declared uint64, chunks []uint64) bool {
			l := LengthExact(declared)
			var consumed uint64
			for _, c := range chunks {
				l.Consume(c)
				if consumed+c < consumed || consumed+c > declared {
					consumed = declared
				} else {
					consumed += c
				}
			}
			n, ok := l.Exact()
			return ok && n == declared-consumed
		},
		gen.UInt64Range(0, 1<<32),
		gen.SliceOf(gen.UInt64Range(0, 1<<20)),
	))

	properties.TestingRun(t)
}
