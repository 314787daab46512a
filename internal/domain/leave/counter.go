package leave

type DayKind string

const (
	DayBusiness DayKind = "business"
	DayWeekend  DayKind = "weekend"
	DayHoliday  DayKind = "holiday"
)

// DayInfo classifies one day of a range. Holiday wins over weekend so a
// holiday falling on a Saturday still shows its name.
type DayInfo struct {
	Date        CalendarDate `json:"date"`
	Kind        DayKind      `json:"kind"`
	HolidayName string       `json:"holidayName,omitempty"`
}

func checkRange(r DateRange) error {
	if r.Start.IsZero() || r.End.IsZero() || r.End.Before(r.Start) {
		return ErrInvalidRange
	}
	return nil
}

// CountBusinessDays counts the days in the closed range that are neither a
// weekend nor a holiday.
func CountBusinessDays(r DateRange, cal *HolidayCalendar) (int, error) {
	if err := checkRange(r); err != nil {
		return 0, err
	}
	count := 0
	for d := r.Start; !d.After(r.End); d = d.AddDays(1) {
		if cal.IsBusinessDay(d) {
			count++
		}
	}
	return count, nil
}

// BusinessDays lists the business days of the range in ascending order.
func BusinessDays(r DateRange, cal *HolidayCalendar) ([]CalendarDate, error) {
	if err := checkRange(r); err != nil {
		return nil, err
	}
	var out []CalendarDate
	for d := r.Start; !d.After(r.End); d = d.AddDays(1) {
		if cal.IsBusinessDay(d) {
			out = append(out, d)
		}
	}
	return out, nil
}

func DescribeRange(r DateRange, cal *HolidayCalendar) ([]DayInfo, error) {
	if err := checkRange(r); err != nil {
		return nil, err
	}
	var out []DayInfo
	for d := r.Start; !d.After(r.End); d = d.AddDays(1) {
		info := DayInfo{Date: d, Kind: DayBusiness}
		switch {
		case cal.IsHoliday(d):
			info.Kind = DayHoliday
			info.HolidayName = cal.HolidayName(d)
		case cal.IsWeekend(d):
			info.Kind = DayWeekend
		}
		out = append(out, info)
	}
	return out, nil
}
