package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	d, err := Parse("2024-01-15")
	require.NoError(t, err)
	require.Equal(t, "2024-01-15", d.String())

	for _, bad := range []string{"", "15-01-2024", "2024/01/15", "2024-13-01", "yesterday"} {
		_, err := Parse(bad)
		require.Error(t, err, bad)
	}
}

func TestAddMonthsRollover(t *testing.T) {
	require.Equal(t, "2024-07-15", New(2024, time.January, 15).AddMonths(6).String())
	// Jan 31 + 1 month normalizes forward past February.
	require.Equal(t, "2024-03-02", New(2024, time.January, 31).AddMonths(1).String())
	require.Equal(t, "2023-03-03", New(2023, time.January, 31).AddMonths(1).String())
	// Across a year boundary.
	require.Equal(t, "2025-01-15", New(2024, time.July, 15).AddMonths(6).String())
}

func TestDaysSince(t *testing.T) {
	a := New(2024, time.March, 11)
	require.Equal(t, 0, a.DaysSince(a))
	require.Equal(t, 2, New(2024, time.March, 13).DaysSince(a))
	require.Equal(t, -1, New(2024, time.March, 10).DaysSince(a))
	// Across the February boundary in a leap year.
	require.Equal(t, 30, New(2024, time.March, 1).DaysSince(New(2024, time.January, 31)))
}

func TestCompare(t *testing.T) {
	a := New(2024, time.March, 1)
	b := New(2024, time.March, 2)
	require.True(t, a.Before(b))
	require.True(t, b.After(a))
	require.True(t, a.Equal(a))
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2024, time.June, 30)
	raw, err := d.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `"2024-06-30"`, string(raw))

	var back Date
	require.NoError(t, back.UnmarshalJSON(raw))
	require.True(t, d.Equal(back))

	require.Error(t, back.UnmarshalJSON([]byte(`20240630`)))
}
