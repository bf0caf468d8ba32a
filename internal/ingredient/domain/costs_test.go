package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCosts(t *testing.T) {
	cost, real, err := ComputeCosts(10, 1000, 0.05)
	require.NoError(t, err)
	assert.InDelta(t, 0.01, cost, 1e-9)
	assert.InDelta(t, 0.0105, real, 1e-9)
}

func TestComputeCostsZeroWastage(t *testing.T) {
	cost, real, err := ComputeCosts(12, 4, 0)
	require.NoError(t, err)
	assert.InDelta(t, 3, cost, 1e-9)
	assert.InDelta(t, 3, real, 1e-9)
}

func TestComputeCostsWastageMonotonic(t *testing.T) {
	_, lowReal, err := ComputeCosts(10, 2, 0.05)
	require.NoError(t, err)
	_, highReal, err := ComputeCosts(10, 2, 0.25)
	require.NoError(t, err)
	assert.Greater(t, highReal, lowReal)
}

func TestComputeCostsInvalidInputs(t *testing.T) {
	_, _, err := ComputeCosts(-1, 10, 0.05)
	assert.ErrorIs(t, err, ErrInvalidPurchasePrice)

	_, _, err = ComputeCosts(10, 0, 0.05)
	assert.ErrorIs(t, err, ErrInvalidBaseQuantity)

	_, _, err = ComputeCosts(10, -2, 0.05)
	assert.ErrorIs(t, err, ErrInvalidBaseQuantity)

	_, _, err = ComputeCosts(10, 10, -0.1)
	assert.ErrorIs(t, err, ErrInvalidWastage)

	_, _, err = ComputeCosts(10, 10, 1)
	assert.ErrorIs(t, err, ErrInvalidWastage)
}

func TestComputeCostsFreeSample(t *testing.T) {
	cost, real, err := ComputeCosts(0, 500, 0.05)
	require.NoError(t, err)
	assert.Zero(t, cost)
	assert.Zero(t, real)
}
