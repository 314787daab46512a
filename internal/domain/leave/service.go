package leave

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
)

// HolidaySource is satisfied by Store; tests swap in a map.
type HolidaySource interface {
	ListHolidays(ctx context.Context, year int) ([]HolidayEntry, error)
}

// Service binds the engine to the calendar and policy of a running process.
// The calendar pointer is swapped whole on reload, so handlers never see a
// half-built calendar.
type Service struct {
	calendar atomic.Pointer[HolidayCalendar]
	policy   Policy
}

func NewService(cal *HolidayCalendar, policy Policy) *Service {
	s := &Service{policy: policy}
	s.calendar.Store(cal)
	return s
}

func (s *Service) Calendar() *HolidayCalendar {
	return s.calendar.Load()
}

func (s *Service) SetCalendar(cal *HolidayCalendar) {
	s.calendar.Store(cal)
}

func (s *Service) Policy() Policy {
	return s.policy
}

// NewDraft opens a draft against the current calendar.
func (s *Service) NewDraft() *Draft {
	return NewDraft(s.Calendar())
}

// Quote is the live preview shown while the user picks dates.
type Quote struct {
	StartDate      CalendarDate `json:"startDate"`
	EndDate        CalendarDate `json:"endDate"`
	BusinessDays   int          `json:"businessDays"`
	ChargeableDays float64      `json:"days"`
	Flags          HalfDayFlags `json:"flags"`
	StartEligible  bool         `json:"startEligible"`
	EndEligible    bool         `json:"endEligible"`
	Days           []DayInfo    `json:"breakdown"`
}

func (s *Service) ComputeChargeableDays(r DateRange, flags HalfDayFlags) (Quote, error) {
	return quote(r, flags, s.Calendar())
}

// QuoteRequest is ComputeChargeableDays with the policy's boundary rule
// applied, the same rule ValidateRequest enforces.
func (s *Service) QuoteRequest(r DateRange, flags HalfDayFlags) (Quote, error) {
	cal := s.Calendar()
	q, err := quote(r, flags, cal)
	if err != nil {
		return Quote{}, err
	}
	if err := s.policy.checkBoundaries(r, cal); err != nil {
		return Quote{}, err
	}
	return q, nil
}

func quote(r DateRange, flags HalfDayFlags, cal *HolidayCalendar) (Quote, error) {
	days, err := DescribeRange(r, cal)
	if err != nil {
		return Quote{}, err
	}
	raw := 0
	for _, d := range days {
		if d.Kind == DayBusiness {
			raw++
		}
	}
	normalized := NormalizeFlags(r, flags, cal)
	return Quote{
		StartDate:      r.Start,
		EndDate:        r.End,
		BusinessDays:   raw,
		ChargeableDays: AdjustedTotal(r, raw, normalized, cal),
		Flags:          normalized,
		StartEligible:  IsHalfDayEligible(r.Start, cal),
		EndEligible:    IsHalfDayEligible(r.End, cal),
		Days:           days,
	}, nil
}

func (s *Service) ValidateRequest(d *Draft) (Submission, error) {
	return Validate(d, s.Calendar(), s.policy)
}

type BoundaryInfo struct {
	Date             CalendarDate `json:"date"`
	Weekend          bool         `json:"weekend"`
	Holiday          bool         `json:"holiday"`
	HolidayName      string       `json:"holidayName,omitempty"`
	HalfDayEligible  bool         `json:"halfDayEligible"`
	RejectedBoundary bool         `json:"rejectedBoundary"`
}

// Eligibility tells the form whether a picked date can carry a half-day flag
// and whether the current policy would refuse it as a boundary.
func (s *Service) Eligibility(d CalendarDate) BoundaryInfo {
	cal := s.Calendar()
	holiday := cal.IsHoliday(d)
	return BoundaryInfo{
		Date:             d,
		Weekend:          cal.IsWeekend(d),
		Holiday:          holiday,
		HolidayName:      cal.HolidayName(d),
		HalfDayEligible:  IsHalfDayEligible(d, cal),
		RejectedBoundary: holiday && s.policy.RejectHolidayBoundary,
	}
}

// ReloadFromStore rebuilds the calendar from stored holidays for the given
// years, keeping the current weekend definition.
func (s *Service) ReloadFromStore(ctx context.Context, src HolidaySource, years []int) error {
	var entries []HolidayEntry
	for _, year := range years {
		rows, err := src.ListHolidays(ctx, year)
		if err != nil {
			return fmt.Errorf("load holidays for %d: %w", year, err)
		}
		entries = append(entries, rows...)
	}
	weekend := s.Calendar().Weekend()
	s.SetCalendar(NewCalendar(entries, WithWeekend(weekend...)))
	slog.Info("holiday calendar reloaded", "years", years, "holidays", len(entries))
	return nil
}
