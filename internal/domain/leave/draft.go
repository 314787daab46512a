package leave

// Draft is the partially filled form. Fields can be set in any order; the
// half-day flags are kept consistent with the chosen dates against the
// calendar the draft was opened with. A zero Draft has no calendar: its flags
// are only checked against the dates being set, and Validate normalizes them.
type Draft struct {
	cal         *HolidayCalendar
	leaveType   string
	start       CalendarDate
	end         CalendarDate
	reason      string
	otherReason string
	flags       HalfDayFlags
}

func NewDraft(cal *HolidayCalendar) *Draft {
	return &Draft{cal: cal}
}

func (d *Draft) SetLeaveType(code string) *Draft {
	d.leaveType = code
	return d
}

// SetStartDate clears the start half-day flag when the new date is not a
// business day.
func (d *Draft) SetStartDate(date CalendarDate) *Draft {
	d.start = date
	if !d.eligible(date) {
		d.flags.Start = false
	}
	return d
}

func (d *Draft) SetEndDate(date CalendarDate) *Draft {
	d.end = date
	if !d.eligible(date) {
		d.flags.End = false
	}
	return d
}

func (d *Draft) SetReason(reason string) *Draft {
	d.reason = reason
	return d
}

func (d *Draft) SetOtherReason(text string) *Draft {
	d.otherReason = text
	return d
}

// SetHalfDayStart is ignored (the flag stays false) while the start date is
// unset or not a business day.
func (d *Draft) SetHalfDayStart(on bool) *Draft {
	d.flags.Start = on && d.eligible(d.start)
	return d
}

func (d *Draft) SetHalfDayEnd(on bool) *Draft {
	d.flags.End = on && d.eligible(d.end)
	return d
}

// Reset empties the draft, keeping its calendar.
func (d *Draft) Reset() {
	*d = Draft{cal: d.cal}
}

func (d *Draft) LeaveType() string { return d.leaveType }
func (d *Draft) StartDate() CalendarDate { return d.start }
func (d *Draft) EndDate() CalendarDate { return d.end }
func (d *Draft) Reason() string { return d.reason }
func (d *Draft) OtherReason() string { return d.otherReason }
func (d *Draft) HalfDayFlags() HalfDayFlags { return d.flags }

// StartEligible reports whether the start checkbox should be enabled.
func (d *Draft) StartEligible() bool {
	return d.eligible(d.start)
}

func (d *Draft) EndEligible() bool {
	return d.eligible(d.end)
}

func (d *Draft) eligible(date CalendarDate) bool {
	if d.cal == nil {
		return !date.IsZero()
	}
	return IsHalfDayEligible(date, d.cal)
}
