package syserr

import "sync/atomic"

// lastCode is the last-error slot. The Go runtime clears the Windows
// thread value before every system call and hands the code back as the
// call's error result instead, and errno is never visible to Go code, so
// the slot is maintained here and written by interop code.
var lastCode atomic.Uint32

// CaptureLast returns the code held in the last-error slot.
//
// The slot is process-wide. It is only meaningful right after the failed
// call whose code was published with SetLast or Record, with no other
// platform call in between. Prefer passing a code you already hold to New;
// CaptureLast exists for interop boundaries that only expose the ambient
// value.
func CaptureLast() Code {
	return Code(lastCode.Load())
}

// SetLast stores code in the last-error slot.
func SetLast(code Code) {
	lastCode.Store(uint32(code))
}

// Record publishes the platform code carried by err, if any, to the
// last-error slot and returns err unchanged. Errors without a code leave
// the slot untouched.
//
// Example:
//
//	r, _, callErr := procCreateMutex.Call(0, 0, uintptr(unsafe.Pointer(name)))
//	if r == 0 {
//	    syserr.Record(callErr)
//	    return syserr.LastWithMessage("creating mutex")
//	}
func Record(err error) error {
	if code, ok := GetCode(err); ok {
		SetLast(code)
	}
	return err
}
