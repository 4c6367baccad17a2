package syserr

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlatformError_Error(t *testing.T) {
	err := New(5)
	want := "5: " + err.Message()
	require.Equal(t, want, err.Error())
}

func TestPlatformError_Error_ExcludesCustomMessage(t *testing.T) {
	err := NewWithMessage(5, "opening settings")
	require.Equal(t, "5: "+err.Message(), err.Error())
	require.NotContains(t, err.Error(), "opening settings")
}

func TestPlatformError_Code(t *testing.T) {
	codes := []Code{0, 1, 2, 5, 87, 0xDEADBEEF, 0xFFFFFFFF}

	for _, code := range codes {
		t.Run(code.String(), func(t *testing.T) {
			require.Equal(t, code, New(code).Code())
		})
	}
}

func TestPlatformError_Message_NeverEmpty(t *testing.T) {
	for code := Code(0); code < 256; code++ {
		require.NotEmpty(t, New(code).Message(), "code %d", code)
	}
	require.NotEmpty(t, New(0xFFFFFFFF).Message())
}

func TestPlatformError_CustomMessage(t *testing.T) {
	require.Empty(t, New(2).CustomMessage())
	require.Equal(t, "x", NewWithMessage(2, "x").CustomMessage())
}

func TestPlatformError_Unwrap_Errno(t *testing.T) {
	err := New(2)

	var errno syscall.Errno
	require.True(t, stderrors.As(err, &errno))
	require.Equal(t, syscall.Errno(2), errno)
}

func TestPlatformError_Unwrap_Cause(t *testing.T) {
	cause := fmt.Errorf("stat: %w", syscall.Errno(2))
	err, ok := FromError(cause)
	require.True(t, ok)
	require.Equal(t, cause, err.Unwrap())
}

func TestPlatformError_Is(t *testing.T) {
	tests := []struct {
		name   string
		target error
		want   bool
	}{
		{"same code platform error", New(2), true},
		{"different code platform error", New(3), false},
		{"matching errno", syscall.Errno(2), true},
		{"different errno", syscall.Errno(3), false},
		{"unrelated error", stderrors.New("boom"), false},
		{"nil platform error", (*PlatformError)(nil), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, New(2).Is(tt.target))
		})
	}
}

func TestPlatformError_Is_StandardLibrary(t *testing.T) {
	// Code 2 is ENOENT on unix and ERROR_FILE_NOT_FOUND on Windows.
	err := fmt.Errorf("loading profile: %w", New(2))

	require.ErrorIs(t, err, fs.ErrNotExist)
	require.ErrorIs(t, err, syscall.Errno(2))
	require.ErrorIs(t, err, New(2))
	require.NotErrorIs(t, err, New(3))
}

func TestPlatformError_As(t *testing.T) {
	err := fmt.Errorf("outer: %w", NewWithMessage(87, "bad flags"))

	var platformErr *PlatformError
	require.ErrorAs(t, err, &platformErr)
	require.Equal(t, Code(87), platformErr.Code())
	require.Equal(t, "bad flags", platformErr.CustomMessage())
}
