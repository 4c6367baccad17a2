//go:build !unix && !windows

package syserr

import (
	"strings"
	"syscall"
)

func platformMessage(code Code, _ uint32) (string, bool) {
	if code == 0 {
		return successMessage, true
	}
	msg := syscall.Errno(code).Error()
	if strings.HasPrefix(msg, "errno ") {
		return "", false
	}
	return msg, true
}

func codeName(Code) string {
	return ""
}
