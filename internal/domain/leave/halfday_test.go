package leave

import (
	"testing"
	"time"
)

func TestAdjustedTotal(t *testing.T) {
	cal := testCalendar(t)
	mon := Date(2026, time.May, 25)
	wedHoliday := Date(2026, time.May, 27)
	fri := Date(2026, time.May, 29)
	sat := Date(2026, time.May, 23)

	cases := []struct {
		name  string
		start CalendarDate
		end   CalendarDate
		flags HalfDayFlags
		want  float64
	}{
		{"single business day", mon, mon, HalfDayFlags{}, 1},
		{"single day start half", mon, mon, HalfDayFlags{Start: true}, 0.5},
		{"single day end half", mon, mon, HalfDayFlags{End: true}, 0.5},
		{"single day both halves", mon, mon, HalfDayFlags{Start: true, End: true}, 0.5},
		{"single holiday with flag", wedHoliday, wedHoliday, HalfDayFlags{Start: true}, 0},
		{"single holiday no flag", wedHoliday, wedHoliday, HalfDayFlags{}, 0},
		{"single weekend with flags", sat, sat, HalfDayFlags{Start: true, End: true}, 0},
		{"week no flags", mon, fri, HalfDayFlags{}, 4},
		{"week start half", mon, fri, HalfDayFlags{Start: true}, 3.5},
		{"week end half", mon, fri, HalfDayFlags{End: true}, 3.5},
		{"week both halves", mon, fri, HalfDayFlags{Start: true, End: true}, 3},
		{"holiday start flag ignored", wedHoliday, fri, HalfDayFlags{Start: true}, 2},
		{"holiday end flag ignored", mon, wedHoliday, HalfDayFlags{End: true}, 2},
		{"weekend start flag ignored", sat, mon, HalfDayFlags{Start: true, End: true}, 0.5},
		{"two day both halves", Date(2026, time.May, 28), fri, HalfDayFlags{Start: true, End: true}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ComputeChargeableDays(DateRange{Start: tc.start, End: tc.end}, tc.flags, cal)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestAdjustedTotalClampsAtZero(t *testing.T) {
	cal := testCalendar(t)
	r := DateRange{Start: Date(2026, time.May, 25), End: Date(2026, time.May, 26)}
	if got := AdjustedTotal(r, 0, HalfDayFlags{Start: true, End: true}, cal); got != 0 {
		t.Fatalf("expected clamp to 0, got %v", got)
	}
}

func TestChargeableDaysNeverNegative(t *testing.T) {
	cal := testCalendar(t)
	base := Date(2026, time.May, 20)
	allFlags := []HalfDayFlags{{}, {Start: true}, {End: true}, {Start: true, End: true}}
	for offset := 0; offset < 14; offset++ {
		for length := 0; length < 10; length++ {
			r := DateRange{Start: base.AddDays(offset), End: base.AddDays(offset + length)}
			for _, flags := range allFlags {
				first, err := ComputeChargeableDays(r, flags, cal)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if first < 0 {
					t.Fatalf("negative total %v for %v %+v", first, r, flags)
				}
				second, _ := ComputeChargeableDays(r, flags, cal)
				if first != second {
					t.Fatalf("non deterministic total for %v %+v: %v vs %v", r, flags, first, second)
				}
			}
		}
	}
}

func TestIsHalfDayEligible(t *testing.T) {
	cal := testCalendar(t)
	if !IsHalfDayEligible(Date(2026, time.May, 25), cal) {
		t.Fatal("monday should be eligible")
	}
	if IsHalfDayEligible(Date(2026, time.May, 27), cal) {
		t.Fatal("holiday should not be eligible")
	}
	if IsHalfDayEligible(Date(2026, time.May, 24), cal) {
		t.Fatal("sunday should not be eligible")
	}
	if IsHalfDayEligible(CalendarDate{}, cal) {
		t.Fatal("unset date should not be eligible")
	}
}

func TestNormalizeFlags(t *testing.T) {
	cal := testCalendar(t)
	r := DateRange{Start: Date(2026, time.May, 27), End: Date(2026, time.May, 29)}
	got := NormalizeFlags(r, HalfDayFlags{Start: true, End: true}, cal)
	if got.Start {
		t.Fatal("flag on holiday boundary should be cleared")
	}
	if !got.End {
		t.Fatal("flag on business boundary should be kept")
	}
}
