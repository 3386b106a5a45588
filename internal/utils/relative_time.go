package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/fr4nk3nst1ner/jobanalysis/internal/errors"
)

// UnknownTime is shown for jobs whose posted label could not be parsed
const UnknownTime = "Unknown time"

// ParseRelativeLabel converts a label such as "3 hours ago" into the absolute time it refers to,
// counted back from now. Only the amount and the unit are read; anything after them is ignored.
func ParseRelativeLabel(label string, now time.Time) (time.Time, error) {
	fields := strings.Fields(label)
	if len(fields) < 2 {
		return time.Time{}, apperrors.Parse(fmt.Sprintf("relative time %q: expected \"<amount> <unit>\"", label), nil)
	}

	amount, err := strconv.Atoi(fields[0])
	if err != nil {
		return time.Time{}, apperrors.Parse(fmt.Sprintf("relative time %q: invalid amount", label), err)
	}
	if amount < 0 {
		return time.Time{}, apperrors.Parse(fmt.Sprintf("relative time %q: negative amount", label), nil)
	}

	unit := strings.ToLower(fields[1])
	switch {
	case strings.HasPrefix(unit, "minute"):
		return now.Add(-time.Duration(amount) * time.Minute), nil
	case strings.HasPrefix(unit, "hour"):
		return now.Add(-time.Duration(amount) * time.Hour), nil
	case strings.HasPrefix(unit, "day"):
		// 24-hour days, the same unit FormatRelative counts in
		return now.Add(-time.Duration(amount) * 24 * time.Hour), nil
	}

	return time.Time{}, apperrors.Parse(fmt.Sprintf("relative time %q: unknown unit %q", label, fields[1]), nil)
}

// FormatRelative renders the age of t relative to now, e.g. "5 minutes ago", "1 hour ago", "3 days ago".
// The zero time renders as UnknownTime.
func FormatRelative(t time.Time, now time.Time) string {
	if t.IsZero() {
		return UnknownTime
	}

	minutes := int64(now.Sub(t) / time.Minute)
	if minutes < 0 {
		minutes = 0 // posted "in the future" means clock skew, not a negative age
	}
	if minutes < 60 {
		return agoLabel(minutes, "minute")
	}

	hours := minutes / 60
	if hours < 24 {
		return agoLabel(hours, "hour")
	}

	days := hours / 24
	return agoLabel(days, "day")
}

func agoLabel(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
