package tiered

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	talentdomain "github.com/agencyhq/backoffice/internal/talent/domain"
)

func TestEvaluateSalary(t *testing.T) {
	e := NewEvaluator()
	got, err := e.Evaluate(50000, talentdomain.Model{
		CompensationType: talentdomain.CompensationSalary,
		SalaryUSD:        3000,
	}, 0.92)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, got)
}

func TestEvaluatePercentage(t *testing.T) {
	e := NewEvaluator()
	got, err := e.Evaluate(20000, talentdomain.Model{
		CompensationType: talentdomain.CompensationPercentage,
		CreatorPayoutPct: 40,
	}, 0.92)
	require.NoError(t, err)
	assert.Equal(t, 8000.0, got)
}

func TestEvaluateHybrid(t *testing.T) {
	e := NewEvaluator()
	got, err := e.Evaluate(10000, talentdomain.Model{
		CompensationType: talentdomain.CompensationHybrid,
		SalaryUSD:        1000,
		CreatorPayoutPct: 20,
	}, 0.92)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, got)
}

func TestEvaluateTieredDeal(t *testing.T) {
	e := NewEvaluator()
	model := talentdomain.Model{
		CompensationType: talentdomain.CompensationTieredDeal,
		TierThresholdUSD: 10000,
		TierFlatUSD:      2000,
		TierPctAbove:     30,
	}

	below, err := e.Evaluate(8000, model, 0.92)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, below)

	at, err := e.Evaluate(10000, model, 0.92)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, at)

	above, err := e.Evaluate(15000, model, 0.92)
	require.NoError(t, err)
	assert.Equal(t, 3500.0, above)
}

func TestEvaluateUnknownType(t *testing.T) {
	e := NewEvaluator()
	_, err := e.Evaluate(1000, talentdomain.Model{CompensationType: "Revshare"}, 0.92)
	assert.ErrorIs(t, err, talentdomain.ErrUnknownCompensationType)
}
