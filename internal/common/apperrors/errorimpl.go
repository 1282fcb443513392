package apperrors

import "errors"

// libError is the concrete implementation behind Error. Derived errors keep
// a pointer to their template in parent so that errors.Is walks the whole
// derivation chain, and carry any attached causes in causes.
type libError struct {
	msg        string
	parent     error
	causes     []error
	statuscode int
}

// New creates a root-level error with the given message. This is the entry
// point for declaring error templates.
func New(msg string) Error {
	return &libError{msg: msg}
}

func (e *libError) Error() string {
	return e.msg
}

// Unwrap returns the template this error was derived from.
func (e *libError) Unwrap() error {
	return e.parent
}

// UnwrapAll returns the attached causes in the order they were added.
func (e *libError) UnwrapAll() []error {
	return e.causes
}

// New derives a fresh error from the current one. The derived error keeps
// the status code but carries no causes.
func (e *libError) New(msg string) Error {
	return &libError{
		msg:        msg,
		parent:     e,
		statuscode: e.statuscode,
	}
}

// Msg derives an error with a new message and the current error attached
// as a cause.
func (e *libError) Msg(msg string) Error {
	return &libError{
		msg:        msg,
		parent:     e,
		causes:     append([]error{e}, e.causes...),
		statuscode: e.statuscode,
	}
}

// Err derives an error with the same message and the given causes attached.
func (e *libError) Err(errs ...error) Error {
	return &libError{
		msg:        e.msg,
		parent:     e,
		causes:     append([]error{e}, errs...),
		statuscode: e.statuscode,
	}
}

// SetStatusCode returns a copy with an updated status code. The original
// error remains unchanged.
func (e *libError) SetStatusCode(code int) Error {
	cp := *e
	cp.statuscode = code
	return &cp
}

// StatusCode returns the HTTP status code associated with this error.
func (e *libError) StatusCode() int {
	return e.statuscode
}

// Is reports whether target matches this error, its template chain, or any
// attached cause.
func (e *libError) Is(target error) bool {
	if target == nil {
		return false
	}
	if errors.Is(e.parent, target) {
		return true
	}
	for _, cause := range e.causes {
		if errors.Is(cause, target) {
			return true
		}
	}
	return false
}
