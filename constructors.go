package syserr

import "fmt"

// New creates a PlatformError for code, resolving its message immediately.
// It never fails: codes the platform cannot describe get a generic message.
//
// Example:
//
//	err := syserr.New(5)
//	fmt.Println(err) // 5: Access is denied. (on Windows)
func New(code Code) *PlatformError {
	return &PlatformError{
		code:    code,
		message: Lookup(code),
	}
}

// NewWithMessage creates a PlatformError carrying a caller annotation.
// The annotation is available through CustomMessage and does not change
// Message or the display form.
//
// Example:
//
//	err := syserr.NewWithMessage(code, "opening config file")
func NewWithMessage(code Code, customMessage string) *PlatformError {
	return &PlatformError{
		code:          code,
		message:       Lookup(code),
		customMessage: customMessage,
	}
}

// NewWithMessagef creates a PlatformError with a formatted annotation.
//
// Example:
//
//	err := syserr.NewWithMessagef(code, "opening %s", path)
func NewWithMessagef(code Code, format string, args ...interface{}) *PlatformError {
	return NewWithMessage(code, fmt.Sprintf(format, args...))
}

// NewInLanguage creates a PlatformError whose message is looked up in the
// given Windows language identifier. Platforms without localized message
// tables ignore langID.
func NewInLanguage(code Code, langID uint32) *PlatformError {
	return &PlatformError{
		code:    code,
		message: Lookup(code, WithLanguage(langID)),
	}
}

// Last creates a PlatformError from the last-error slot.
// See CaptureLast for the ordering requirements.
func Last() *PlatformError {
	return New(CaptureLast())
}

// LastWithMessage is like Last but stores customMessage on the result.
func LastWithMessage(customMessage string) *PlatformError {
	return NewWithMessage(CaptureLast(), customMessage)
}
