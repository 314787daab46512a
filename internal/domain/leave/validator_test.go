package leave

import (
	"errors"
	"testing"
	"time"
)

func completeDraft(cal *HolidayCalendar) *Draft {
	return NewDraft(cal).
		SetLeaveType("WFH").
		SetStartDate(Date(2026, time.May, 25)).
		SetEndDate(Date(2026, time.May, 29)).
		SetReason("Personal Work")
}

func TestValidateSuccess(t *testing.T) {
	cal := testCalendar(t)
	d := completeDraft(cal).SetHalfDayEnd(true).SetOtherReason("ignored")

	sub, err := Validate(d, cal, Policy{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.LeaveType != "WFH" || sub.Reason != "Personal Work" {
		t.Fatalf("unexpected submission %+v", sub)
	}
	if sub.StartDate.String() != "2026-05-25" || sub.EndDate.String() != "2026-05-29" {
		t.Fatalf("unexpected dates %s..%s", sub.StartDate, sub.EndDate)
	}
	if sub.OtherReason != "" {
		t.Fatalf("other reason should be empty unless reason is Others, got %q", sub.OtherReason)
	}
	if sub.BusinessDays != 4 || sub.ChargeableDays != 3.5 {
		t.Fatalf("expected 4 business / 3.5 chargeable, got %d / %v", sub.BusinessDays, sub.ChargeableDays)
	}
	if sub.HalfDayStart || !sub.HalfDayEnd {
		t.Fatalf("unexpected flags %+v", sub)
	}
}

func TestValidateMissingRequiredFields(t *testing.T) {
	cal := testCalendar(t)
	cases := map[string]*Draft{
		"no leave type": completeDraft(cal).SetLeaveType("  "),
		"no start":      completeDraft(cal).SetStartDate(CalendarDate{}),
		"no end":        completeDraft(cal).SetEndDate(CalendarDate{}),
		"blank reason":  completeDraft(cal).SetReason("   "),
		"empty draft":   NewDraft(cal),
	}
	for name, d := range cases {
		if _, err := Validate(d, cal, Policy{}); !errors.Is(err, ErrMissingRequiredFields) {
			t.Fatalf("%s: expected ErrMissingRequiredFields, got %v", name, err)
		}
	}
}

func TestValidateInvalidDateOrder(t *testing.T) {
	cal := testCalendar(t)
	d := completeDraft(cal).
		SetStartDate(Date(2026, time.June, 10)).
		SetEndDate(Date(2026, time.June, 5))
	if _, err := Validate(d, cal, Policy{}); !errors.Is(err, ErrInvalidDateOrder) {
		t.Fatalf("expected ErrInvalidDateOrder, got %v", err)
	}
}

func TestValidateOthersNeedsText(t *testing.T) {
	cal := testCalendar(t)
	d := completeDraft(cal).SetReason("Others").SetOtherReason("   ")
	if _, err := Validate(d, cal, Policy{}); !errors.Is(err, ErrMissingConditionalField) {
		t.Fatalf("expected ErrMissingConditionalField, got %v", err)
	}

	d.SetReason(" others ").SetOtherReason("  moving house  ")
	sub, err := Validate(d, cal, Policy{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.OtherReason != "moving house" {
		t.Fatalf("expected trimmed other reason, got %q", sub.OtherReason)
	}
}

func TestValidateFirstRuleWins(t *testing.T) {
	cal := testCalendar(t)

	d := completeDraft(cal).
		SetReason("").
		SetStartDate(Date(2026, time.June, 10)).
		SetEndDate(Date(2026, time.June, 5))
	if _, err := Validate(d, cal, Policy{}); !errors.Is(err, ErrMissingRequiredFields) {
		t.Fatalf("expected missing fields before date order, got %v", err)
	}

	d.SetReason(ReasonOthers)
	if _, err := Validate(d, cal, Policy{}); !errors.Is(err, ErrInvalidDateOrder) {
		t.Fatalf("expected date order before conditional field, got %v", err)
	}

	d.SetStartDate(Date(2026, time.May, 27)).SetEndDate(Date(2026, time.May, 29))
	if _, err := Validate(d, cal, Policy{RejectHolidayBoundary: true}); !errors.Is(err, ErrMissingConditionalField) {
		t.Fatalf("expected conditional field before holiday boundary, got %v", err)
	}
}

func TestValidateHolidayBoundaryPolicy(t *testing.T) {
	cal := testCalendar(t)
	d := completeDraft(cal).SetStartDate(Date(2026, time.May, 27))

	if _, err := Validate(d, cal, Policy{RejectHolidayBoundary: true}); !errors.Is(err, ErrBoundaryOnHoliday) {
		t.Fatalf("expected ErrBoundaryOnHoliday, got %v", err)
	}

	d.SetStartDate(Date(2026, time.May, 25)).SetEndDate(Date(2026, time.May, 27))
	if _, err := Validate(d, cal, Policy{RejectHolidayBoundary: true}); !errors.Is(err, ErrBoundaryOnHoliday) {
		t.Fatalf("expected ErrBoundaryOnHoliday for end date, got %v", err)
	}

	sub, err := Validate(d, cal, Policy{})
	if err != nil {
		t.Fatalf("lenient policy should accept holiday boundary: %v", err)
	}
	if sub.ChargeableDays != 2 {
		t.Fatalf("expected holiday excluded from count, got %v", sub.ChargeableDays)
	}

	// Weekends are not holidays; the strict policy leaves them alone.
	d.SetStartDate(Date(2026, time.May, 23)).SetEndDate(Date(2026, time.May, 26))
	if _, err := Validate(d, cal, Policy{RejectHolidayBoundary: true}); err != nil {
		t.Fatalf("weekend boundary should pass strict policy: %v", err)
	}
}

func TestValidateSingleHalfDay(t *testing.T) {
	cal := testCalendar(t)
	d := completeDraft(cal).SetEndDate(Date(2026, time.May, 25)).SetHalfDayStart(true)
	sub, err := Validate(d, cal, Policy{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.ChargeableDays != 0.5 {
		t.Fatalf("expected 0.5, got %v", sub.ChargeableDays)
	}
}

func TestValidateReturnsEngineErrorType(t *testing.T) {
	cal := testCalendar(t)
	_, err := Validate(NewDraft(cal), cal, Policy{})
	var engineErr *Error
	if !errors.As(err, &engineErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if engineErr.Kind != KindMissingRequiredFields || engineErr.Message == "" {
		t.Fatalf("unexpected error %+v", engineErr)
	}
}

func TestDraftClearsStaleHalfDayFlags(t *testing.T) {
	cal := testCalendar(t)
	d := NewDraft(cal)

	d.SetHalfDayStart(true)
	if d.HalfDayFlags().Start {
		t.Fatal("flag must stay false while start date is unset")
	}

	d.SetStartDate(Date(2026, time.May, 25)).SetHalfDayStart(true)
	if !d.HalfDayFlags().Start || !d.StartEligible() {
		t.Fatal("flag should be accepted on a business day")
	}

	d.SetStartDate(Date(2026, time.May, 27))
	if d.HalfDayFlags().Start {
		t.Fatal("moving start onto a holiday should clear the flag")
	}
	if d.StartEligible() {
		t.Fatal("holiday start should not be eligible")
	}

	d.SetEndDate(Date(2026, time.May, 28)).SetHalfDayEnd(true)
	d.SetEndDate(Date(2026, time.May, 30))
	if d.HalfDayFlags().End || d.EndEligible() {
		t.Fatal("moving end onto a weekend should clear the flag")
	}

	d.SetHalfDayEnd(true)
	if d.HalfDayFlags().End {
		t.Fatal("flag on a weekend end date must be refused")
	}
}

func TestDraftReset(t *testing.T) {
	cal := testCalendar(t)
	d := completeDraft(cal).SetHalfDayStart(true).SetOtherReason("x")
	d.Reset()
	if d.LeaveType() != "" || !d.StartDate().IsZero() || !d.EndDate().IsZero() || d.Reason() != "" || d.OtherReason() != "" || d.HalfDayFlags().Any() {
		t.Fatalf("expected empty draft after reset, got %+v", d)
	}
	d.SetStartDate(Date(2026, time.May, 25)).SetHalfDayStart(true)
	if !d.HalfDayFlags().Start {
		t.Fatal("reset draft should keep its calendar")
	}
}

func TestZeroDraftIsUsable(t *testing.T) {
	var d Draft
	d.SetStartDate(Date(2026, time.May, 25)).
		SetEndDate(Date(2026, time.May, 27)).
		SetHalfDayStart(true).
		SetHalfDayEnd(true).
		SetLeaveType("WFH").
		SetReason("Medical")

	if !d.StartEligible() || !d.HalfDayFlags().Start {
		t.Fatal("expected zero draft to accept a flag on a set date")
	}

	cal := testCalendar(t)
	sub, err := Validate(&d, cal, Policy{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// May 27 is a holiday, so the end flag is dropped at validation.
	if !sub.HalfDayStart || sub.HalfDayEnd {
		t.Fatalf("expected flags normalized against the calendar, got %+v", sub)
	}
	if sub.BusinessDays != 2 || sub.ChargeableDays != 1.5 {
		t.Fatalf("unexpected totals %+v", sub)
	}

	var empty Draft
	empty.SetHalfDayEnd(true)
	if empty.HalfDayFlags().End {
		t.Fatal("expected flag without an end date to stay false")
	}
}
