//go:build unix

package syserr

import (
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup_Errno(t *testing.T) {
	tests := []struct {
		name  string
		errno syscall.Errno
		sym   string
	}{
		{"permission", syscall.EPERM, "EPERM"},
		{"not exist", syscall.ENOENT, "ENOENT"},
		{"io", syscall.EIO, "EIO"},
		{"access", syscall.EACCES, "EACCES"},
		{"invalid", syscall.EINVAL, "EINVAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(Code(tt.errno))
			require.Equal(t, tt.errno.Error(), err.Message())
			require.Equal(t, tt.sym, err.Name())
		})
	}
}

func TestLookup_ZeroIsSuccess(t *testing.T) {
	require.Equal(t, "Success", Lookup(0))
	require.Empty(t, New(0).Name())
}

func TestName_Unknown(t *testing.T) {
	require.Empty(t, New(0xDEADBEEF).Name())
}

func TestLookup_NoRawErrnoText(t *testing.T) {
	for code := Code(1); code < 4096; code++ {
		msg := Lookup(code)
		require.False(t, strings.HasPrefix(msg, "errno "), "code %d (%s): %q", code, New(code).Name(), msg)
	}
}

func TestLookup_NamedWithoutText(t *testing.T) {
	// Names stay available for codes whose text falls back.
	for code := Code(1); code < 4096; code++ {
		if !strings.HasPrefix(syscall.Errno(code).Error(), "errno ") || codeName(code) == "" {
			continue
		}
		err := New(code)
		require.Equal(t, unknownMessage(code), err.Message())
		require.NotEmpty(t, err.Name())
	}
}
