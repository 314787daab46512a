package leave

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// CalendarDate is a day on the local calendar. It carries no time of day and
// no zone, so two dates picked by a user compare equal regardless of where
// the process runs.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// Date builds a CalendarDate, normalizing out-of-range values the same way
// time.Date does (e.g. January 32 becomes February 1).
func Date(year int, month time.Month, day int) CalendarDate {
	return fromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDate accepts YYYY-MM-DD only.
func ParseDate(value string) (CalendarDate, error) {
	parsed, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return CalendarDate{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return fromTime(parsed), nil
}

// fromTime reads the wall-clock date of t in its own location.
func fromTime(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// midnightUTC is only used for day arithmetic; UTC has no DST gaps.
func (d CalendarDate) midnightUTC() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d CalendarDate) IsZero() bool {
	return d == CalendarDate{}
}

func (d CalendarDate) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d CalendarDate) Weekday() time.Weekday {
	return d.midnightUTC().Weekday()
}

func (d CalendarDate) AddDays(n int) CalendarDate {
	return fromTime(d.midnightUTC().AddDate(0, 0, n))
}

func (d CalendarDate) Before(other CalendarDate) bool {
	return d.Compare(other) < 0
}

func (d CalendarDate) After(other CalendarDate) bool {
	return d.Compare(other) > 0
}

// DaysUntil returns the number of days from d to other, negative when other
// is earlier.
func (d CalendarDate) DaysUntil(other CalendarDate) int {
	// Unix seconds rather than Sub, which saturates past ~292 years.
	return int((other.midnightUTC().Unix() - d.midnightUTC().Unix()) / 86400)
}

// Compare returns -1, 0 or +1.
func (d CalendarDate) Compare(other CalendarDate) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Day - other.Day)
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func (d CalendarDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText treats an empty string as the zero date so optional JSON
// fields decode cleanly.
func (d *CalendarDate) UnmarshalText(text []byte) error {
	if strings.TrimSpace(string(text)) == "" {
		*d = CalendarDate{}
		return nil
	}
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DateRange is a closed interval of days.
type DateRange struct {
	Start CalendarDate `json:"startDate"`
	End   CalendarDate `json:"endDate"`
}

func (r DateRange) SingleDay() bool {
	return r.Start == r.End
}
