package shared

import (
	"strconv"
	"strings"

	"leavedesk/internal/domain/leave"
)

// ParseDate accepts YYYY-MM-DD only. Blank input yields the zero date.
func ParseDate(value string) (leave.CalendarDate, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return leave.CalendarDate{}, nil
	}
	return leave.ParseDate(value)
}

// ParseYear reads a four digit year, falling back to def when raw is blank.
func ParseYear(raw string, def int) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, true
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1 || year > 9999 {
		return 0, false
	}
	return year, true
}
