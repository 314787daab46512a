package leave

import "strings"

// Policy holds the rules that vary between deployments.
type Policy struct {
	// RejectHolidayBoundary refuses requests that start or end on a holiday
	// instead of silently leaving that day out of the count.
	RejectHolidayBoundary bool
}

func (p Policy) checkBoundaries(r DateRange, cal *HolidayCalendar) error {
	if p.RejectHolidayBoundary && (cal.IsHoliday(r.Start) || cal.IsHoliday(r.End)) {
		return ErrBoundaryOnHoliday
	}
	return nil
}

// Submission is the validated request handed back to the caller. It is a
// plain value; the engine keeps no reference to it.
type Submission struct {
	LeaveType      string       `json:"leaveType"`
	StartDate      CalendarDate `json:"startDate"`
	EndDate        CalendarDate `json:"endDate"`
	Reason         string       `json:"reason"`
	OtherReason    string       `json:"otherReason"`
	HalfDayStart   bool         `json:"halfDayStart"`
	HalfDayEnd     bool         `json:"halfDayEnd"`
	BusinessDays   int          `json:"businessDays"`
	ChargeableDays float64      `json:"days"`
}

func (s Submission) Range() DateRange {
	return DateRange{Start: s.StartDate, End: s.EndDate}
}

// Validate runs the rules in order and reports only the first failure.
func Validate(d *Draft, cal *HolidayCalendar, p Policy) (Submission, error) {
	leaveType := strings.TrimSpace(d.LeaveType())
	reason := strings.TrimSpace(d.Reason())
	r := DateRange{Start: d.StartDate(), End: d.EndDate()}

	if leaveType == "" || r.Start.IsZero() || r.End.IsZero() || reason == "" {
		return Submission{}, ErrMissingRequiredFields
	}
	if r.End.Before(r.Start) {
		return Submission{}, ErrInvalidDateOrder
	}

	otherReason := ""
	if isOthers(reason) {
		otherReason = strings.TrimSpace(d.OtherReason())
		if otherReason == "" {
			return Submission{}, ErrMissingConditionalField
		}
	}

	if err := p.checkBoundaries(r, cal); err != nil {
		return Submission{}, err
	}

	raw, err := CountBusinessDays(r, cal)
	if err != nil {
		return Submission{}, err
	}
	flags := NormalizeFlags(r, d.HalfDayFlags(), cal)

	return Submission{
		LeaveType:      leaveType,
		StartDate:      r.Start,
		EndDate:        r.End,
		Reason:         reason,
		OtherReason:    otherReason,
		HalfDayStart:   flags.Start,
		HalfDayEnd:     flags.End,
		BusinessDays:   raw,
		ChargeableDays: AdjustedTotal(r, raw, flags, cal),
	}, nil
}

// ValidateRequest is Validate under the name the UI layer uses.
func ValidateRequest(d *Draft, cal *HolidayCalendar, p Policy) (Submission, error) {
	return Validate(d, cal, p)
}
