package syserr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidCode is returned by ParseCode when the input is not a 32-bit code.
var ErrInvalidCode = errors.New("invalid platform error code")

// Code is an opaque platform status code.
// On Windows it is a Win32 error (DWORD); elsewhere it is an errno value.
type Code uint32

// String returns the decimal representation of the code.
func (c Code) String() string {
	return strconv.FormatUint(uint64(c), 10)
}

// Hex returns the code as a 0x-prefixed lowercase hex string, the form
// used by the unknown-code fallback message.
func (c Code) Hex() string {
	return fmt.Sprintf("0x%x", uint32(c))
}

// ParseCode parses a code from decimal, 0x-prefixed hex, or a negative
// 32-bit decimal value. Negative values are reinterpreted as their unsigned
// bit pattern, so HRESULTs printed as signed integers round-trip.
//
// Example:
//
//	c, _ := syserr.ParseCode("0x80070005")   // 2147942405
//	c, _ = syserr.ParseCode("-2147024891")   // same code
func ParseCode(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidCode)
	}

	if strings.HasPrefix(s, "-") {
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidCode, s)
		}
		return Code(uint32(int32(v))), nil
	}

	digits, base := s, 10
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		digits, base = s[2:], 16
	}

	v, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCode, s)
	}
	return Code(v), nil
}
