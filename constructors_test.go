package syserr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(5)

	require.NotNil(t, err)
	require.Equal(t, Code(5), err.Code())
	require.Equal(t, Lookup(5), err.Message())
	require.Empty(t, err.CustomMessage())
}

func TestNew_Zero(t *testing.T) {
	require.NotPanics(t, func() {
		err := New(0)
		require.NotEmpty(t, err.Message())
		require.True(t, strings.HasPrefix(err.Error(), "0: "))
	})
}

func TestNew_UnknownCode(t *testing.T) {
	err := New(0xDEADBEEF)
	require.Equal(t, "Unknown error (0xdeadbeef)", err.Message())
	require.Equal(t, "3735928559: Unknown error (0xdeadbeef)", err.Error())
}

func TestNewWithMessage(t *testing.T) {
	plain := New(2)
	err := NewWithMessage(2, "x")

	require.Equal(t, Code(2), err.Code())
	require.Equal(t, "x", err.CustomMessage())
	require.Equal(t, plain.Message(), err.Message())
	require.Equal(t, plain.Error(), err.Error())
}

func TestNewWithMessagef(t *testing.T) {
	err := NewWithMessagef(3, "opening %s (attempt %d)", "/etc/app.conf", 2)
	require.Equal(t, "opening /etc/app.conf (attempt 2)", err.CustomMessage())
	require.Equal(t, New(3).Message(), err.Message())
}

func TestNewInLanguage(t *testing.T) {
	// 0x0409 is en-US; platforms without message tables ignore it and
	// Windows falls back to the default language when it is not installed.
	err := NewInLanguage(2, 0x0409)
	require.Equal(t, Code(2), err.Code())
	require.NotEmpty(t, err.Message())
}

func TestLast(t *testing.T) {
	SetLast(5)
	err := Last()

	require.Equal(t, Code(5), err.Code())
	require.True(t, strings.HasPrefix(err.Error(), "5: "))
	require.Greater(t, len(err.Error()), len("5: "))
}

func TestLastWithMessage(t *testing.T) {
	SetLast(87)
	err := LastWithMessage("setting pipe mode")

	require.Equal(t, Code(87), err.Code())
	require.Equal(t, "setting pipe mode", err.CustomMessage())
	require.Equal(t, New(87).Message(), err.Message())
}
