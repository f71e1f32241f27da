package moneta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	d, err := Parse("20050.4")
	require.NoError(t, err)
	assert.Equal(t, "20050.4", d.String())
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse("not-a-number")
	assert.ErrorIs(t, err, ErrInvalidDecimal)
}

func TestRound_BankersRounding(t *testing.T) {
	d, err := Parse("1.005")
	require.NoError(t, err)
	assert.Equal(t, "1", Round(d, 2).String())
}

func TestMin(t *testing.T) {
	a, _ := Parse("2")
	b, _ := Parse("3")
	assert.Equal(t, a, Min(a, b))
	assert.Equal(t, a, Min(b, a))
}

func TestIsZero(t *testing.T) {
	a, _ := Parse("0")
	b, _ := Parse("2")
	assert.True(t, IsZero(a))
	assert.False(t, IsZero(b))

	diff := b.Sub(b)
	assert.True(t, IsZero(diff), "a - a must be exactly zero")
}
