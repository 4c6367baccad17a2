// Package syserr turns native platform error codes into Go error values.
//
// A PlatformError carries the numeric code reported by a failed platform
// call (a Win32 error on Windows, an errno value elsewhere), the platform's
// human-readable description of it, and an optional annotation supplied by
// the caller. The description is resolved once, at construction, and the
// value is immutable afterwards.
//
// # Creating errors
//
// Pass the code you just observed:
//
//	r1, _, errno := syscall.Syscall(...)
//	if r1 == 0 {
//	    return syserr.New(syserr.Code(errno))
//	}
//
// Attach an annotation for programmatic handling by callers:
//
//	err := syserr.NewWithMessage(code, "reading registry key")
//	err.CustomMessage() // "reading registry key"
//	err.Error()         // "<code>: <message>", annotation not included
//
// Bridge from errors that already carry a syscall.Errno:
//
//	if perr, ok := syserr.FromError(err); ok {
//	    fmt.Println(perr.Code(), perr.Name())
//	}
//
// # The last-error slot
//
// CaptureLast, Last and LastWithMessage read an ambient last-error slot.
// Go never exposes errno, and the runtime clears the Windows thread value
// before each system call, so the slot lives in this package and interop
// code publishes to it with SetLast or Record right after a failed call:
//
//	r, _, callErr := proc.Call(args...)
//	if r == 0 {
//	    syserr.Record(callErr)
//	    return syserr.Last()
//	}
//
// The slot is process-wide and meaningful only until the next publish.
// Explicit capture with New is preferred wherever the code is already in
// hand.
//
// # Messages
//
// Lookup resolves a code through the platform message tables
// (FormatMessage on Windows, the x/sys/unix errno tables elsewhere).
// It never fails: unresolvable codes produce "Unknown error (0x<hex>)".
//
// # Standard Library Compatibility
//
// PlatformError unwraps to its cause, or to the equivalent syscall.Errno,
// so errors.Is(err, fs.ErrNotExist) and errors.Is(err, syscall.ENOENT)
// work as expected. errors.As(err, &perr) with perr of type
// *syserr.PlatformError retrieves the value from any chain.
package syserr
