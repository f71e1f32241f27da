package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saiputravu/portman/internal/moneta"
)

func TestCreateThenLookup(t *testing.T) {
	r := New()
	precision := moneta.Precision{Price: 2, Quantity: 2}

	require.NoError(t, r.Create("BTC/USD", precision))

	ob, err := r.Lookup("BTC/USD")
	require.NoError(t, err)
	assert.Equal(t, "BTC/USD", ob.Symbol)
}

func TestCreate_DuplicateIsAlreadyExists(t *testing.T) {
	r := New()
	precision := moneta.Precision{Price: 2, Quantity: 2}

	require.NoError(t, r.Create("BTC/USD", precision))
	err := r.Create("BTC/USD", precision)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestLookup_Missing(t *testing.T) {
	r := New()
	_, err := r.Lookup("DOES/NOTEXIST")
	assert.ErrorIs(t, err, ErrNotFound)
}
