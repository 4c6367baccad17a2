package syserr

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromError_Nil(t *testing.T) {
	err, ok := FromError(nil)
	require.False(t, ok)
	require.Nil(t, err)
}

func TestFromError_PlatformError(t *testing.T) {
	original := NewWithMessage(5, "opening device")
	wrapped := fmt.Errorf("init: %w", original)

	err, ok := FromError(wrapped)
	require.True(t, ok)
	require.Same(t, original, err)
}

func TestFromError_Errno(t *testing.T) {
	cause := fmt.Errorf("read: %w", syscall.Errno(5))

	err, ok := FromError(cause)
	require.True(t, ok)
	require.Equal(t, Code(5), err.Code())
	require.Equal(t, Lookup(5), err.Message())
	require.Empty(t, err.CustomMessage())
	require.Equal(t, cause, err.Unwrap())
}

func TestFromError_PathError(t *testing.T) {
	_, openErr := os.Open(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, openErr)

	err, ok := FromError(openErr)
	require.True(t, ok)
	require.Equal(t, Code(2), err.Code())
	require.ErrorIs(t, err, fs.ErrNotExist)

	var pathErr *fs.PathError
	require.ErrorAs(t, err, &pathErr)
}

func TestFromError_NoCode(t *testing.T) {
	err, ok := FromError(stderrors.New("plain failure"))
	require.False(t, ok)
	require.Nil(t, err)
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		want   Code
		wantOK bool
	}{
		{"nil", nil, 0, false},
		{"plain error", stderrors.New("boom"), 0, false},
		{"platform error", New(87), 87, true},
		{"wrapped platform error", fmt.Errorf("x: %w", New(6)), 6, true},
		{"errno", syscall.Errno(13), 13, true},
		{"wrapped errno", fmt.Errorf("x: %w", syscall.Errno(1)), 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := GetCode(tt.err)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, code)
		})
	}
}
