package leave

import "fmt"

type ErrorKind string

const (
	KindInvalidHolidayEntry     ErrorKind = "invalid_holiday_entry"
	KindInvalidRange            ErrorKind = "invalid_range"
	KindMissingRequiredFields   ErrorKind = "missing_required_fields"
	KindInvalidDateOrder        ErrorKind = "invalid_date_order"
	KindMissingConditionalField ErrorKind = "missing_conditional_field"
	KindBoundaryOnHoliday       ErrorKind = "boundary_on_holiday"
)

// Error is the only error type the engine returns. Message is safe to show
// to the end user verbatim.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches on kind so callers can test against the sentinels below even
// when the message carries detail.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

var (
	ErrInvalidHolidayEntry     = &Error{Kind: KindInvalidHolidayEntry, Message: "invalid holiday entry"}
	ErrInvalidRange            = &Error{Kind: KindInvalidRange, Message: "End date must not be before start date."}
	ErrMissingRequiredFields   = &Error{Kind: KindMissingRequiredFields, Message: "Please fill the required details."}
	ErrInvalidDateOrder        = &Error{Kind: KindInvalidDateOrder, Message: "End date must be on or after start date."}
	ErrMissingConditionalField = &Error{Kind: KindMissingConditionalField, Message: "Please specify the other reason."}
	ErrBoundaryOnHoliday       = &Error{Kind: KindBoundaryOnHoliday, Message: "Start or end date falls on a holiday."}
)

func invalidHolidayEntry(entry string) *Error {
	return &Error{Kind: KindInvalidHolidayEntry, Message: fmt.Sprintf("invalid holiday entry %q", entry)}
}
