//go:build unix

package syserr

import (
	"strings"
	"syscall"

	"golang.org/x/sys/unix"
)

// platformMessage resolves errno descriptions. A code is known only when
// x/sys/unix names it and the syscall table has text for it; x/sys names
// newer errnos that the syscall table renders as "errno N".
func platformMessage(code Code, _ uint32) (string, bool) {
	if code == 0 {
		return successMessage, true
	}
	errno := syscall.Errno(code)
	if unix.ErrnoName(errno) == "" {
		return "", false
	}
	msg := errno.Error()
	if strings.HasPrefix(msg, "errno ") {
		return "", false
	}
	return msg, true
}

func codeName(code Code) string {
	if code == 0 {
		return ""
	}
	return unix.ErrnoName(syscall.Errno(code))
}
