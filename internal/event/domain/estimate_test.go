package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateDemand(t *testing.T) {
	got, err := EstimateDemand(40, 4, 1)
	require.NoError(t, err)
	assert.Equal(t, 160.0, got)
}

func TestEstimateDemandZeroRating(t *testing.T) {
	got, err := EstimateDemand(100, 6, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestEstimateDemandInvalidInputs(t *testing.T) {
	_, err := EstimateDemand(0, 4, 1)
	assert.ErrorIs(t, err, ErrInvalidGuests)

	_, err = EstimateDemand(40, 0, 1)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = EstimateDemand(40, 4, -1)
	assert.ErrorIs(t, err, ErrInvalidRating)
}

func TestEstimateDemandRejectsNonFinite(t *testing.T) {
	_, err := EstimateDemand(40, math.Inf(1), 1)
	assert.ErrorIs(t, err, ErrInvalidEstimate)

	_, err = EstimateDemand(40, math.NaN(), 1)
	assert.ErrorIs(t, err, ErrInvalidEstimate)
}
