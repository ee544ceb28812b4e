package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, time.March, 4, 12, 0, 0, 0, time.UTC)
}

func runCLI(t *testing.T, args ...string) (string, int) {
	t.Helper()
	var out bytes.Buffer
	code := Execute(args, &out, fixedClock)
	return out.String(), code
}

func TestCLI_LeaveDaysOnly(t *testing.T) {
	out, code := runCLI(t,
		"--hours", "40", "--max-hours", "8", "--leave-days", "1,15,30", "--month", "1", "--year", "2024")

	require.Equal(t, 0, code, out)
	assert.NotContains(t, out, "2024-01-01")
	assert.NotContains(t, out, "2024-01-15")
	assert.NotContains(t, out, "2024-01-30")
	assert.Contains(t, out, "2024-01-02")
	assert.Contains(t, out, "Total: 40.0 hours")
}

func TestCLI_LeaveAndLeaveDaysMatching(t *testing.T) {
	out, code := runCLI(t,
		"--hours", "40", "--max-hours", "8", "--leave", "3", "--leave-days", "1,15,30", "--month", "1", "--year", "2024")

	require.Equal(t, 0, code, out)
	assert.NotContains(t, out, "Error:")
	assert.Contains(t, out, "Total: 40.0 hours")
}

func TestCLI_LeaveCountOnly(t *testing.T) {
	out, code := runCLI(t,
		"--hours", "40", "--max-hours", "8", "--leave", "3", "--month", "1", "--year", "2024")

	require.Equal(t, 0, code, out)
	assert.True(t, strings.HasPrefix(out, "\nTime Sheet:\n-------------------\n"), out)
	assert.Contains(t, out, "2024-01-02: ")
	// the last three business days go to leave
	assert.NotContains(t, out, "2024-01-29")
	assert.NotContains(t, out, "2024-01-31")
	assert.Contains(t, out, "-------------------\nTotal: 40.0 hours\n")
}

func TestCLI_SingleLeaveDay(t *testing.T) {
	out, code := runCLI(t,
		"--hours", "40", "--max-hours", "8", "--leave-days", "15", "--month", "1", "--year", "2024")

	require.Equal(t, 0, code, out)
	assert.NotContains(t, out, "2024-01-15")
	assert.Contains(t, out, "Total: 40.0 hours")
}

func TestCLI_EmptyLeaveDaysCountsAsProvided(t *testing.T) {
	out, code := runCLI(t,
		"--hours", "40", "--max-hours", "8", "--leave-days", "", "--month", "1", "--year", "2024")

	require.Equal(t, 0, code, out)
	assert.NotContains(t, out, "Error:")
	assert.Contains(t, out, "2024-01-31")
	assert.Contains(t, out, "Total: 40.0 hours")
}

func TestCLI_DefaultsToCurrentYear(t *testing.T) {
	out, code := runCLI(t, "--hours", "20", "--max-hours", "8", "--leave", "0", "--month", "2")

	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "2024-02-29")
}

func TestCLI_PrintsNotices(t *testing.T) {
	// 22 of January's 23 business days on leave leaves a single day for 1.2 hours
	out, code := runCLI(t,
		"--hours", "1.2", "--max-hours", "8", "--leave", "22", "--month", "1", "--year", "2024")

	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Note: Adjusted final day by 0.2 hours to maintain 0.5-hour increments.\n")
	assert.Contains(t, out, "Warning: Due to 0.5-hour increment constraint, allocated 1.0 hours instead of requested 1.2 hours.\n")
	assert.Contains(t, out, "2024-01-02: 1.0 hours")
	assert.Contains(t, out, "Total: 1.0 hours")
}

func TestCLI_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{
			"leave count mismatch",
			[]string{"--hours", "40", "--max-hours", "8", "--leave", "2", "--leave-days", "1,15,30", "--month", "1", "--year", "2024"},
			"leave count (2) does not match",
		},
		{
			"neither leave flag",
			[]string{"--hours", "40", "--max-hours", "8", "--month", "1", "--year", "2024"},
			"either --leave or --leave-days must be provided",
		},
		{
			"invalid leave days format",
			[]string{"--hours", "40", "--max-hours", "8", "--leave-days", "1,abc,30", "--month", "1", "--year", "2024"},
			"invalid leave days format",
		},
		{
			"weekend leave days",
			[]string{"--hours", "40", "--max-hours", "8", "--leave-days", "6,7", "--month", "1", "--year", "2024"},
			"falls on a weekend",
		},
		{
			"out of range leave day",
			[]string{"--hours", "40", "--max-hours", "8", "--leave-days", "1,32", "--month", "1", "--year", "2024"},
			"leave day 32 is not valid",
		},
		{
			"month out of range",
			[]string{"--hours", "40", "--max-hours", "8", "--leave", "0", "--month", "13", "--year", "2024"},
			"--month must be between 1 and 12",
		},
		{
			"missing required flag",
			[]string{"--max-hours", "8", "--leave", "0", "--month", "1"},
			`"hours"`,
		},
		{
			"too many hours",
			[]string{"--hours", "74", "--max-hours", "8", "--leave", "15", "--month", "5", "--year", "2024"},
			"exceeds maximum possible hours (64.00) by 10.00 hours",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, code := runCLI(t, tt.args...)

			assert.Equal(t, 1, code)
			assert.True(t, strings.HasPrefix(out, "Error: "), out)
			assert.Contains(t, out, tt.contains)
			assert.NotContains(t, out, "Time Sheet:")
		})
	}
}

func TestCLI_HelpMentionsLeaveDays(t *testing.T) {
	out, code := runCLI(t, "--help")

	require.Equal(t, 0, code)
	assert.Contains(t, out, "--leave-days")
	assert.Contains(t, strings.ToLower(out), "comma-separated")
}
