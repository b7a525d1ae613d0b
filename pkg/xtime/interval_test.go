package xtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInterval_SingleUnit(t *testing.T) {
	ms, err := ParseInterval("15m")
	require.NoError(t, err)
	assert.Equal(t, int64(15*MinuteMs), ms)
}

func TestParseInterval_MultiUnit(t *testing.T) {
	ms, err := ParseInterval("1w4d")
	require.NoError(t, err)
	assert.Equal(t, int64(WeekMs+4*DayMs), ms)
}

func TestParseInterval_Milliseconds(t *testing.T) {
	ms, err := ParseInterval("500ms")
	require.NoError(t, err)
	assert.Equal(t, int64(500), ms)
}

func TestParseInterval_Empty(t *testing.T) {
	_, err := ParseInterval("")
	assert.Error(t, err)
}

func TestParseInterval_UnknownUnit(t *testing.T) {
	_, err := ParseInterval("3x")
	assert.Error(t, err)
}

func TestParseInterval_MissingDigits(t *testing.T) {
	_, err := ParseInterval("h")
	assert.Error(t, err)
}

func TestFormatInterval_RoundTrip(t *testing.T) {
	for _, s := range []string{"15m", "1h", "1d", "1w4d", "500ms", "2y"} {
		ms, err := ParseInterval(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatInterval(ms))
	}
}

func TestFormatInterval_Zero(t *testing.T) {
	assert.Equal(t, "0ms", FormatInterval(0))
}

func TestParseTimestamp_ISO8601(t *testing.T) {
	ms, err := ParseTimestamp("2024-01-01T00:00:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01T00:00:00", FormatTimestamp(ms))
}

func TestParseTimestamp_BareDate(t *testing.T) {
	ms, err := ParseTimestamp("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01T00:00:00", FormatTimestamp(ms))
}

func TestParseTimestamp_Invalid(t *testing.T) {
	_, err := ParseTimestamp("not-a-date")
	assert.Error(t, err)
}
