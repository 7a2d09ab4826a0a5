package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRangeBounds(t *testing.T) {
	require.NoError(t, Init("Asia/Shanghai"))
	t.Cleanup(func() { _ = Init("UTC") })

	start, err := ParseRangeStart("2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 4, 30, 16, 0, 0, 0, time.UTC), start)

	end, err := ParseRangeEnd("2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 15, 59, 59, 999999999, time.UTC), end)

	exact, err := ParseRangeEnd("2024-05-01T10:30:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC), exact)

	_, err = ParseRangeStart("yesterday")
	assert.Error(t, err)
}

func TestInit_RejectsUnknownZone(t *testing.T) {
	assert.Error(t, Init("Mars/Olympus"))
	assert.Equal(t, time.UTC, Location())
}
