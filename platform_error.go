package syserr

import "syscall"

// PlatformError represents a failed platform call identified by its numeric code.
//
// Values are immutable once constructed and are built only through the
// package constructors, which resolve the message eagerly.
type PlatformError struct {
	code          Code
	message       string
	customMessage string
	cause         error
}

// Error returns the display form of the error.
// Format: "<code>: <message>". The custom message is not included.
func (e *PlatformError) Error() string {
	return e.code.String() + ": " + e.message
}

// Code returns the platform error code.
func (e *PlatformError) Code() Code {
	return e.code
}

// Message returns the platform-supplied description of the code.
func (e *PlatformError) Message() string {
	return e.message
}

// CustomMessage returns the caller-supplied annotation, or "" if none was given.
func (e *PlatformError) CustomMessage() string {
	return e.customMessage
}

// Name returns the symbolic name of the code (e.g. "EACCES" or
// "ERROR_ACCESS_DENIED"), or "" when the platform does not know one.
// Names are those declared by golang.org/x/sys for the target platform.
func (e *PlatformError) Name() string {
	return codeName(e.code)
}

// Unwrap returns the error the code was extracted from. Errors built
// directly from a code unwrap to the equivalent syscall.Errno, so checks
// such as errors.Is(err, fs.ErrNotExist) see through them.
func (e *PlatformError) Unwrap() error {
	if e.cause != nil {
		return e.cause
	}
	return syscall.Errno(e.code)
}

// Is reports whether target names the same platform code.
// It matches another *PlatformError or a syscall.Errno with an equal code.
func (e *PlatformError) Is(target error) bool {
	switch t := target.(type) {
	case *PlatformError:
		return t != nil && t.code == e.code
	case syscall.Errno:
		return Code(t) == e.code
	default:
		return false
	}
}
