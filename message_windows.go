//go:build windows

package syserr

import (
	"cmp"
	"errors"
	"slices"
	"strings"

	"golang.org/x/sys/windows"
)

const (
	// initialMessageBuffer fits every system message table entry in practice.
	initialMessageBuffer = 512

	// maxMessageBuffer is the FormatMessage limit for a non-allocated buffer.
	maxMessageBuffer = 64 * 1024
)

const formatFlags = windows.FORMAT_MESSAGE_FROM_SYSTEM |
	windows.FORMAT_MESSAGE_IGNORE_INSERTS |
	windows.FORMAT_MESSAGE_ARGUMENT_ARRAY

// platformMessage resolves code through FormatMessage. A language without a
// message table falls back to the default search order.
func platformMessage(code Code, langID uint32) (string, bool) {
	msg, err := formatMessage(code, langID)
	if err != nil && langID != 0 {
		msg, err = formatMessage(code, 0)
	}
	if err != nil {
		return "", false
	}
	return msg, true
}

func formatMessage(code Code, langID uint32) (string, error) {
	for size := initialMessageBuffer; ; size *= 2 {
		buf := make([]uint16, size)
		n, err := windows.FormatMessage(formatFlags, 0, uint32(code), langID, buf, nil)
		if err == nil {
			return strings.TrimRight(windows.UTF16ToString(buf[:n]), " \t\r\n"), nil
		}
		if !errors.Is(err, windows.ERROR_INSUFFICIENT_BUFFER) || size >= maxMessageBuffer {
			return "", err
		}
	}
}

//go:generate go run mknames.go

type win32Name struct {
	code Code
	name string
}

// codeName returns the x/sys/windows constant name for code. Codes x/sys
// does not declare have no name.
func codeName(code Code) string {
	i, ok := slices.BinarySearchFunc(win32Names, code, func(n win32Name, c Code) int {
		return cmp.Compare(n.code, c)
	})
	if !ok {
		return ""
	}
	return win32Names[i].name
}
