package mercato

import (
	"errors"
	"fmt"
)

type ErrKind int

const (
	// ErrKindPlayerNotFound: no search candidate met the match threshold.
	// A reported outcome, not a failure.
	ErrKindPlayerNotFound ErrKind = iota + 1
	// ErrKindFetchFailure: a network or HTTP error on search or profile
	// fetch.
	ErrKindFetchFailure
	// ErrKindAutomationFailure: the rendered fetch path could not drive
	// the browser or the awaited element never appeared.
	ErrKindAutomationFailure
)

// Error pairs a machine-readable kind with the localized message shown to
// the user. User-facing text is Arabic, matching the product's audience.
type Error struct {
	Kind        ErrKind
	UserMessage string
	cause       error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.UserMessage, e.cause.Error())
	}
	return e.UserMessage
}

func (e *Error) Unwrap() error {
	return e.cause
}

func newPlayerNotFound(player string) *Error {
	return &Error{
		Kind:        ErrKindPlayerNotFound,
		UserMessage: fmt.Sprintf("❌ لم يتم العثور على اللاعب: %s", player),
	}
}

func newFetchFailure(cause error) *Error {
	return &Error{
		Kind:        ErrKindFetchFailure,
		UserMessage: "❌ حدث خطأ أثناء جلب البيانات",
		cause:       cause,
	}
}

func newAutomationFailure(cause error) *Error {
	return &Error{
		Kind:        ErrKindAutomationFailure,
		UserMessage: "❌ فشل في تحميل صفحة اللاعب",
		cause:       cause,
	}
}

// AsError classifies an arbitrary error into *Error, wrapping unknown
// errors as fetch failures so nothing unclassified crosses the service
// boundary.
func AsError(err error) *Error {
	var kindErr *Error
	if errors.As(err, &kindErr) {
		return kindErr
	}
	return newFetchFailure(err)
}
