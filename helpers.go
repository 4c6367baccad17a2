package syserr

import (
	"errors"
	"syscall"
)

// FromError extracts a PlatformError from err's chain.
//
// If the chain already contains a *PlatformError it is returned as is.
// Otherwise the first syscall.Errno in the chain is resolved into a new
// PlatformError that records err as its cause. Reports false when err is
// nil or carries no platform code.
//
// Example:
//
//	if _, err := os.Open(path); err != nil {
//	    if perr, ok := syserr.FromError(err); ok {
//	        log.Printf("open failed with code %d", perr.Code())
//	    }
//	}
func FromError(err error) (*PlatformError, bool) {
	if err == nil {
		return nil, false
	}

	var platformErr *PlatformError
	if errors.As(err, &platformErr) {
		return platformErr, true
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		code := Code(errno)
		return &PlatformError{
			code:    code,
			message: Lookup(code),
			cause:   err,
		}, true
	}

	return nil, false
}

// GetCode returns the platform code carried by err's chain.
// Reports false when err is nil or carries no platform code.
//
// Example:
//
//	if code, ok := syserr.GetCode(err); ok && code == 5 {
//	    // Handle access denied
//	}
func GetCode(err error) (Code, bool) {
	platformErr, ok := FromError(err)
	if !ok {
		return 0, false
	}
	return platformErr.Code(), true
}
