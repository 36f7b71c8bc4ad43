package monthindex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	month, err := Parse("2025-03")
	require.NoError(t, err)
	assert.Equal(t, "2025-03", month.Key)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), month.Start)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), month.End)

	_, err = Parse("2025-3")
	assert.ErrorIs(t, err, ErrUnresolvableMonth)
	_, err = Parse("march 2025")
	assert.ErrorIs(t, err, ErrUnresolvableMonth)
	_, err = Parse("")
	assert.ErrorIs(t, err, ErrUnresolvableMonth)
}

func TestRange(t *testing.T) {
	months, err := Range("2024-11", "2025-02")
	require.NoError(t, err)
	keys := make([]string, 0, len(months))
	for _, m := range months {
		keys = append(keys, m.Key)
	}
	assert.Equal(t, []string{"2024-11", "2024-12", "2025-01", "2025-02"}, keys)

	_, err = Range("2025-02", "2024-11")
	assert.ErrorIs(t, err, ErrUnresolvableMonth)
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("2025-03", "", ""))
	assert.True(t, Contains("2025-03", "2025-03", "2025-03"))
	assert.True(t, Contains("2025-03", "2025-01", ""))
	assert.True(t, Contains("2025-03", "", "2025-12"))
	assert.False(t, Contains("2025-03", "2025-04", ""))
	assert.False(t, Contains("2025-03", "", "2025-02"))
}

func TestPrevious(t *testing.T) {
	month, err := Parse("2025-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-12", Previous(month).Key)
}

func TestWeekKey(t *testing.T) {
	// 2025-01-06 is Monday of ISO week 2.
	assert.Equal(t, "2025-W02", WeekKey(time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)))
}
