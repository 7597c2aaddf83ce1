package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"calatorie/internal/util"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Jun 01, 2025", util.FormatDate("2025-06-01"))
	assert.Equal(t, "—", util.FormatDate("  "))
	assert.Equal(t, "not-a-date", util.FormatDate("not-a-date"))
}

func TestFormatDateRange(t *testing.T) {
	assert.Equal(t, "Jun 01 – Jun 10, 2025", util.FormatDateRange("2025-06-01", "2025-06-10"))
	assert.Equal(t, "Dec 28, 2025 – Jan 03, 2026", util.FormatDateRange("2025-12-28", "2026-01-03"))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45 min", util.FormatDuration(45))
	assert.Equal(t, "1h", util.FormatDuration(60))
	assert.Equal(t, "1h30", util.FormatDuration(90))
	assert.Equal(t, "2h05", util.FormatDuration(125))
}

func TestStars(t *testing.T) {
	assert.Equal(t, "★★★☆☆", util.Stars(3))
	assert.Equal(t, "★★★★★", util.Stars(7)) // clamped
	assert.Equal(t, "☆☆☆☆☆", util.Stars(0))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", util.TruncateString("short", 10))
	assert.Equal(t, "long st...", util.TruncateString("long string here", 10))
	assert.Equal(t, "ab", util.TruncateString("abcdef", 2))
}
