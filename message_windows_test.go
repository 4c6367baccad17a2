//go:build windows

package syserr

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

func TestLookup_MatchesFormatMessage(t *testing.T) {
	codes := []Code{
		Code(windows.ERROR_FILE_NOT_FOUND),
		Code(windows.ERROR_ACCESS_DENIED),
		Code(windows.ERROR_INVALID_PARAMETER),
	}

	for _, code := range codes {
		t.Run(code.String(), func(t *testing.T) {
			msg, err := formatMessage(code, 0)
			require.NoError(t, err)
			require.Equal(t, msg, Lookup(code))
		})
	}
}

func TestLookup_ZeroIsSystemText(t *testing.T) {
	msg, err := formatMessage(0, 0)
	require.NoError(t, err)
	require.Equal(t, msg, Lookup(0))
}

func TestName_Win32(t *testing.T) {
	require.Equal(t, "ERROR_ACCESS_DENIED", New(5).Name())
	require.Equal(t, "ERROR_SUCCESS", New(0).Name())
	require.Empty(t, New(0xDEADBEEF).Name())
}

func TestName_CoversSystemConstants(t *testing.T) {
	tests := []struct {
		errno windows.Errno
		want  string
	}{
		{windows.ERROR_FILE_NOT_FOUND, "ERROR_FILE_NOT_FOUND"},
		{windows.WAIT_TIMEOUT, "WAIT_TIMEOUT"},
		{windows.ERROR_ELEVATION_REQUIRED, "ERROR_ELEVATION_REQUIRED"},
		{windows.ERROR_SERVICE_DOES_NOT_EXIST, "ERROR_SERVICE_DOES_NOT_EXIST"},
		{windows.WSAECONNREFUSED, "WSAECONNREFUSED"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, New(Code(tt.errno)).Name())
		})
	}
}

func TestWin32Names_Sorted(t *testing.T) {
	require.True(t, slices.IsSortedFunc(win32Names, func(a, b win32Name) int {
		return cmp.Compare(a.code, b.code)
	}))
	for i := 1; i < len(win32Names); i++ {
		require.NotEqual(t, win32Names[i-1].code, win32Names[i].code)
	}
}

func TestFormatMessage_UnknownCode(t *testing.T) {
	_, err := formatMessage(0xDEADBEEF, 0)
	require.Error(t, err)
}
