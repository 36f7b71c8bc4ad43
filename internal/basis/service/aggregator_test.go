package service

import (
	"math/rand"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	basisdomain "github.com/agencyhq/backoffice/internal/basis/domain"
	teamdomain "github.com/agencyhq/backoffice/internal/team/domain"
)

func activeMember(id int64) teamdomain.TeamMember {
	return teamdomain.TeamMember{ID: snowflake.ID(id), Status: teamdomain.StatusActive}
}

func hourlyPayload(detail basisdomain.HourlyDetail) *datatypes.JSONType[basisdomain.HourlyDetail] {
	payload := datatypes.NewJSONType(detail)
	return &payload
}

func TestAggregateSumsPerMemberAndType(t *testing.T) {
	members := map[snowflake.ID]teamdomain.TeamMember{
		1: activeMember(1),
		2: activeMember(2),
	}
	entries := []basisdomain.BasisEntry{
		{TeamMemberID: 1, BasisType: basisdomain.BasisTypeChatterSales, AmountUSD: 600},
		{TeamMemberID: 1, BasisType: basisdomain.BasisTypeChatterSales, AmountUSD: 400},
		{TeamMemberID: 1, BasisType: basisdomain.BasisTypeBonus, AmountUSD: 50},
		{TeamMemberID: 1, BasisType: basisdomain.BasisTypeFine, AmountUSD: -20},
		{TeamMemberID: 2, BasisType: basisdomain.BasisTypeAdjustment, AmountEUR: 92},
	}

	result := Aggregate(entries, members, 0.92, zap.NewNop())

	require.Len(t, result.ByMember, 2)
	one := result.ByMember[1]
	assert.Equal(t, 1000.0, one.ChatterSalesUSD)
	assert.Equal(t, 50.0, one.BonusUSD)
	assert.Equal(t, -20.0, one.AdjustmentUSD)

	two := result.ByMember[2]
	assert.InDelta(t, 100.0, two.AdjustmentUSD, 0.001, "EUR amount converted at the snapshot rate")
	assert.Equal(t, 92.0, two.AdjustmentEUR)
	assert.Zero(t, result.SkippedEntries)
}

func TestAggregateOrderIndependent(t *testing.T) {
	members := map[snowflake.ID]teamdomain.TeamMember{
		1: activeMember(1),
		2: activeMember(2),
		3: activeMember(3),
	}
	entries := []basisdomain.BasisEntry{
		{TeamMemberID: 1, BasisType: basisdomain.BasisTypeChatterSales, AmountUSD: 123.45},
		{TeamMemberID: 2, BasisType: basisdomain.BasisTypeBonus, AmountUSD: 10},
		{TeamMemberID: 1, BasisType: basisdomain.BasisTypeFine, AmountUSD: -5},
		{TeamMemberID: 3, BasisType: basisdomain.BasisTypeHourly, Hourly: hourlyPayload(basisdomain.HourlyDetail{Hours: 10, Rate: 15})},
		{TeamMemberID: 2, BasisType: basisdomain.BasisTypeAdjustment, AmountEUR: 50},
		{TeamMemberID: 1, BasisType: basisdomain.BasisTypeChatterSales, AmountUSD: 876.55},
	}

	want := Aggregate(entries, members, 0.92, nil)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]basisdomain.BasisEntry, len(entries))
		copy(shuffled, entries)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		got := Aggregate(shuffled, members, 0.92, nil)
		assert.Equal(t, want, got, "totals must not depend on entry order")
	}
}

func TestAggregateSkipsUnknownAndInactiveMembers(t *testing.T) {
	members := map[snowflake.ID]teamdomain.TeamMember{
		1: activeMember(1),
		2: {ID: 2, Status: teamdomain.StatusInactive},
	}
	entries := []basisdomain.BasisEntry{
		{TeamMemberID: 1, BasisType: basisdomain.BasisTypeBonus, AmountUSD: 10},
		{TeamMemberID: 2, BasisType: basisdomain.BasisTypeBonus, AmountUSD: 10},
		{TeamMemberID: 99, BasisType: basisdomain.BasisTypeBonus, AmountUSD: 10},
	}

	result := Aggregate(entries, members, 0.92, zap.NewNop())

	assert.Equal(t, 2, result.SkippedEntries)
	require.Len(t, result.ByMember, 1)
	assert.Equal(t, 10.0, result.ByMember[1].BonusUSD)
}

func TestAggregateHourlyKeptApartFromBonus(t *testing.T) {
	members := map[snowflake.ID]teamdomain.TeamMember{1: activeMember(1)}
	entries := []basisdomain.BasisEntry{
		{TeamMemberID: 1, BasisType: basisdomain.BasisTypeHourly, Hourly: hourlyPayload(basisdomain.HourlyDetail{Hours: 20, Rate: 12.5})},
		{TeamMemberID: 1, BasisType: basisdomain.BasisTypeBonus, AmountUSD: 100},
	}

	result := Aggregate(entries, members, 0.92, nil)

	totals := result.ByMember[1]
	assert.Equal(t, 250.0, totals.HourlyUSD)
	assert.InDelta(t, 230.0, totals.HourlyEUR, 0.001)
	assert.Equal(t, 100.0, totals.BonusUSD)
}

func TestAggregateHourlyExplicitTotalAndRateWin(t *testing.T) {
	members := map[snowflake.ID]teamdomain.TeamMember{1: activeMember(1)}
	entries := []basisdomain.BasisEntry{
		{TeamMemberID: 1, BasisType: basisdomain.BasisTypeHourly, Hourly: hourlyPayload(basisdomain.HourlyDetail{TotalUSD: 300, FxRate: 0.5})},
	}

	result := Aggregate(entries, members, 0.92, nil)

	totals := result.ByMember[1]
	assert.Equal(t, 300.0, totals.HourlyUSD)
	assert.Equal(t, 150.0, totals.HourlyEUR, "payload rate overrides the month rate")
}

func TestAggregateCountsMalformedHourly(t *testing.T) {
	members := map[snowflake.ID]teamdomain.TeamMember{1: activeMember(1)}
	entries := []basisdomain.BasisEntry{
		{TeamMemberID: 1, BasisType: basisdomain.BasisTypeHourly},
		{TeamMemberID: 1, BasisType: basisdomain.BasisTypeHourly, Hourly: hourlyPayload(basisdomain.HourlyDetail{Hours: 10})},
	}

	result := Aggregate(entries, members, 0.92, zap.NewNop())

	assert.Equal(t, 2, result.MalformedHourly)
	assert.Zero(t, result.ByMember[1].HourlyUSD)
}

func TestAuthoritativeUSDFallback(t *testing.T) {
	assert.Equal(t, 100.0, authoritativeUSD(basisdomain.BasisEntry{AmountUSD: 100, AmountEUR: 46, Amount: 1}, 0.92))
	assert.InDelta(t, 50.0, authoritativeUSD(basisdomain.BasisEntry{AmountEUR: 46, Amount: 1}, 0.92), 0.001)
	assert.Equal(t, 1.0, authoritativeUSD(basisdomain.BasisEntry{Amount: 1}, 0.92))
	assert.Equal(t, 1.0, authoritativeUSD(basisdomain.BasisEntry{AmountEUR: 46, Amount: 1}, 0), "no rate means EUR cannot be authoritative")
}
