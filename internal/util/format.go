package util

import (
	"fmt"
	"strings"
	"time"
)

// FormatDate formats a date string (YYYY-MM-DD) for display.
func FormatDate(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return "—"
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Jan 02, 2006")
}

// FormatDateRange renders "Jun 01 – Jun 10, 2025" style trip spans.
func FormatDateRange(start, end string) string {
	s, errS := time.Parse("2006-01-02", strings.TrimSpace(start))
	e, errE := time.Parse("2006-01-02", strings.TrimSpace(end))
	if errS != nil || errE != nil {
		return start + " – " + end
	}
	if s.Year() == e.Year() {
		return s.Format("Jan 02") + " – " + e.Format("Jan 02, 2006")
	}
	return s.Format("Jan 02, 2006") + " – " + e.Format("Jan 02, 2006")
}

// FormatDuration renders minutes as "45 min" or "1h30".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	h, m := minutes/60, minutes%60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh%02d", h, m)
}

// Stars renders a 1-5 rating as filled and empty stars.
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

// Checkbox renders a packed flag as a checkbox marker.
func Checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

// TruncateString truncates a string to maxLen and adds "..." if needed.
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
