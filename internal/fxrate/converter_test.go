package fxrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTrip(t *testing.T) {
	amounts := []float64{0, 0.01, 1, 99.99, 1234.56, 1000000}
	rates := []float64{0.5, 0.92, 1, 1.18, 2.5}

	for _, amount := range amounts {
		for _, rate := range rates {
			back := EurToUsd(UsdToEur(amount, rate), rate)
			assert.InDelta(t, amount, back, 0.01, "amount=%v rate=%v", amount, rate)
		}
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(0.92))
	assert.ErrorIs(t, Validate(0), ErrInvalidRate)
	assert.ErrorIs(t, Validate(-1), ErrInvalidRate)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.56, Round2(10.555))
	assert.Equal(t, 10.55, Round2(10.554))
	assert.Equal(t, -10.56, Round2(-10.555))
	assert.Equal(t, 0.0, Round2(0))
}

func TestEurToUsdGuardsZeroRate(t *testing.T) {
	assert.Equal(t, 0.0, EurToUsd(100, 0))
}
