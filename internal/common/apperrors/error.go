// Package apperrors provides the error type used throughout the library.
// Errors form chains: a root error acts as a template from which more
// specific errors are derived, and errors.Is matches any ancestor in the
// chain. An optional HTTP status code rides along with each error.
package apperrors

// Error is the interface implemented by all library errors. It extends the
// standard error interface with derivation and status code management.
// Methods that produce errors return Error so calls can be chained.
type Error interface {
	error
	Unwrap() error // support for errors.Is / errors.As

	New(msg string) Error    // derives a fresh error using current as template
	Msg(msg string) Error    // derives an error with message, wrapping current
	Err(err ...error) Error  // attaches additional causes to current error
	SetStatusCode(int) Error // sets the HTTP status code
	StatusCode() int         // returns the current status code
	UnwrapAll() []error      // returns all attached causes
}
