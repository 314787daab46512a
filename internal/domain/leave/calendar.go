package leave

import (
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// HolidayEntry is a single named non-working day.
type HolidayEntry struct {
	Date CalendarDate `json:"date"`
	Name string       `json:"name"`
}

// HolidayCalendar is immutable once built and safe to share between
// goroutines without locking.
type HolidayCalendar struct {
	holidays map[CalendarDate]HolidayEntry
	weekend  map[time.Weekday]bool
}

type CalendarOption func(*HolidayCalendar)

// WithWeekend replaces the default Saturday/Sunday weekend. Calling it with
// no days gives a seven-day working week.
func WithWeekend(days ...time.Weekday) CalendarOption {
	return func(c *HolidayCalendar) {
		c.weekend = make(map[time.Weekday]bool, len(days))
		for _, d := range days {
			c.weekend[d] = true
		}
	}
}

func newEmptyCalendar(opts ...CalendarOption) *HolidayCalendar {
	c := &HolidayCalendar{
		holidays: map[CalendarDate]HolidayEntry{},
		weekend:  map[time.Weekday]bool{time.Saturday: true, time.Sunday: true},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewCalendar builds a calendar from already-dated entries. The first entry
// for a given date wins.
func NewCalendar(entries []HolidayEntry, opts ...CalendarOption) *HolidayCalendar {
	c := newEmptyCalendar(opts...)
	for _, e := range entries {
		c.add(e)
	}
	return c
}

// BuildCalendar resolves "Month Day, Weekday - Name" strings against year.
// A malformed entry fails the whole build.
func BuildCalendar(year int, raw []string, opts ...CalendarOption) (*HolidayCalendar, error) {
	entries, err := ParseHolidayEntries(year, raw)
	if err != nil {
		return nil, err
	}
	return NewCalendar(entries, opts...), nil
}

// Extend returns a new calendar holding c's holidays plus the entries for
// year. c is left untouched.
func (c *HolidayCalendar) Extend(year int, raw []string) (*HolidayCalendar, error) {
	entries, err := ParseHolidayEntries(year, raw)
	if err != nil {
		return nil, err
	}
	next := &HolidayCalendar{
		holidays: maps.Clone(c.holidays),
		weekend:  maps.Clone(c.weekend),
	}
	for _, e := range entries {
		next.add(e)
	}
	return next, nil
}

func (c *HolidayCalendar) add(e HolidayEntry) {
	if _, exists := c.holidays[e.Date]; exists {
		return
	}
	c.holidays[e.Date] = e
}

// ParseHolidayEntries parses each raw entry. The weekday text is descriptive
// and never checked against the computed date.
func ParseHolidayEntries(year int, raw []string) ([]HolidayEntry, error) {
	out := make([]HolidayEntry, 0, len(raw))
	for _, entry := range raw {
		parsed, err := parseHolidayEntry(year, entry)
		if err != nil {
			return nil, err
		}
		out = append(out, parsed)
	}
	return out, nil
}

// nameSeparators splits the date from the name. Lists pasted from documents
// often carry an en or em dash instead of a hyphen.
const nameSeparators = "-\u2013\u2014"

func parseHolidayEntry(year int, entry string) (HolidayEntry, error) {
	datePart, name := entry, ""
	if i := strings.IndexAny(entry, nameSeparators); i >= 0 {
		_, width := utf8.DecodeRuneInString(entry[i:])
		datePart, name = entry[:i], entry[i+width:]
	}
	datePart, _, _ = strings.Cut(datePart, ",")

	fields := strings.Fields(datePart)
	if len(fields) != 2 {
		return HolidayEntry{}, invalidHolidayEntry(entry)
	}
	month, ok := parseMonth(fields[0])
	if !ok {
		return HolidayEntry{}, invalidHolidayEntry(entry)
	}
	day, err := strconv.Atoi(fields[1])
	if err != nil {
		return HolidayEntry{}, invalidHolidayEntry(entry)
	}

	date := Date(year, month, day)
	if date.Year != year || date.Month != month || date.Day != day {
		return HolidayEntry{}, invalidHolidayEntry(entry)
	}
	return HolidayEntry{Date: date, Name: strings.TrimSpace(name)}, nil
}

func parseMonth(value string) (time.Month, bool) {
	value = strings.ToLower(strings.TrimSuffix(value, "."))
	if len(value) < 3 {
		return 0, false
	}
	for m := time.January; m <= time.December; m++ {
		full := strings.ToLower(m.String())
		if value == full || value == full[:3] {
			return m, true
		}
	}
	return 0, false
}

func (c *HolidayCalendar) IsHoliday(d CalendarDate) bool {
	_, ok := c.holidays[d]
	return ok
}

func (c *HolidayCalendar) HolidayName(d CalendarDate) string {
	return c.holidays[d].Name
}

func (c *HolidayCalendar) IsWeekend(d CalendarDate) bool {
	return c.weekend[d.Weekday()]
}

func (c *HolidayCalendar) IsBusinessDay(d CalendarDate) bool {
	return !c.IsWeekend(d) && !c.IsHoliday(d)
}

// Weekend returns the non-working weekdays in Sunday-first order.
func (c *HolidayCalendar) Weekend() []time.Weekday {
	out := make([]time.Weekday, 0, len(c.weekend))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if c.weekend[d] {
			out = append(out, d)
		}
	}
	return out
}

// Entries returns every holiday sorted by date.
func (c *HolidayCalendar) Entries() []HolidayEntry {
	out := slices.Collect(maps.Values(c.holidays))
	slices.SortFunc(out, func(a, b HolidayEntry) int {
		return a.Date.Compare(b.Date)
	})
	return out
}

func (c *HolidayCalendar) EntriesForYear(year int) []HolidayEntry {
	var out []HolidayEntry
	for _, e := range c.Entries() {
		if e.Date.Year == year {
			out = append(out, e)
		}
	}
	return out
}
