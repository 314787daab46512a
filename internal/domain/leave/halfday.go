package leave

// HalfDayFlags marks the first and/or last day of a request as a half day.
type HalfDayFlags struct {
	Start bool `json:"halfDayStart"`
	End   bool `json:"halfDayEnd"`
}

func (f HalfDayFlags) Any() bool {
	return f.Start || f.End
}

// IsHalfDayEligible reports whether a half-day flag may be set on d.
func IsHalfDayEligible(d CalendarDate, cal *HolidayCalendar) bool {
	return !d.IsZero() && cal.IsBusinessDay(d)
}

// NormalizeFlags clears any flag whose boundary is not a business day.
func NormalizeFlags(r DateRange, flags HalfDayFlags, cal *HolidayCalendar) HalfDayFlags {
	return HalfDayFlags{
		Start: flags.Start && IsHalfDayEligible(r.Start, cal),
		End:   flags.End && IsHalfDayEligible(r.End, cal),
	}
}

// AdjustedTotal applies half-day deductions to a raw business-day count.
// A single-day request with either flag set is worth half a day; otherwise
// each flag on a working boundary takes off half a day. Flags on weekend or
// holiday boundaries never deduct. The result is never negative.
func AdjustedTotal(r DateRange, raw int, flags HalfDayFlags, cal *HolidayCalendar) float64 {
	if r.SingleDay() {
		if flags.Any() && IsHalfDayEligible(r.Start, cal) {
			return 0.5
		}
		return float64(raw)
	}

	total := float64(raw)
	if flags.Start && IsHalfDayEligible(r.Start, cal) {
		total -= 0.5
	}
	if flags.End && IsHalfDayEligible(r.End, cal) {
		total -= 0.5
	}
	return max(total, 0)
}

// ComputeChargeableDays is CountBusinessDays followed by AdjustedTotal.
func ComputeChargeableDays(r DateRange, flags HalfDayFlags, cal *HolidayCalendar) (float64, error) {
	raw, err := CountBusinessDays(r, cal)
	if err != nil {
		return 0, err
	}
	return AdjustedTotal(r, raw, flags, cal), nil
}
