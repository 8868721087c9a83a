package domain

import "fmt"

// Error kinds. Match with errors.Is; the HTTP adapter maps each to a status.
var (
	ErrNotFound       = errString("not found")
	ErrUnavailable    = errString("reference data unavailable")
	ErrInvalidRequest = errString("invalid request")
	ErrLoad           = errString("reference data load failed")
)

type errString string

func (e errString) Error() string { return string(e) }

// Error carries a caller-facing message tagged with one of the kinds above.
type Error struct {
	Kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func NotFoundf(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Msg: fmt.Sprintf(format, args...)}
}

func Invalidf(format string, args ...any) error {
	return &Error{Kind: ErrInvalidRequest, Msg: fmt.Sprintf(format, args...)}
}

func LoadErrorf(format string, args ...any) error {
	return &Error{Kind: ErrLoad, Msg: fmt.Sprintf(format, args...)}
}

// Unavailable wraps the load failure that left a dataset unset.
func Unavailable(msg string, cause error) error {
	return &Error{Kind: ErrUnavailable, Msg: msg, Err: cause}
}
