package syserr

import (
	stderrors "errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCaptureLast(t *testing.T) {
	tests := []Code{5, 0, 2, 0xDEADBEEF}

	for _, code := range tests {
		SetLast(code)
		require.Equal(t, code, CaptureLast())
	}
}

func TestCaptureLast_SimulatedFailure(t *testing.T) {
	// A failed call publishes access denied, then the caller captures it.
	failingCall := func() bool {
		SetLast(5)
		return false
	}

	require.False(t, failingCall())
	code := CaptureLast()
	require.Equal(t, Code(5), code)

	err := New(code)
	require.Equal(t, code, err.Code())
	require.Equal(t, "5: "+err.Message(), err.Error())
}

func TestCaptureLast_NonDestructive(t *testing.T) {
	SetLast(2)
	require.Equal(t, Code(2), CaptureLast())
	require.Equal(t, Code(2), CaptureLast())
}

func TestRecord(t *testing.T) {
	SetLast(0)

	err := fmt.Errorf("create mutex: %w", syscall.Errno(183))
	require.Equal(t, err, Record(err))
	require.Equal(t, Code(183), CaptureLast())
}

func TestRecord_NoCode(t *testing.T) {
	SetLast(5)

	err := stderrors.New("not a platform failure")
	require.Equal(t, err, Record(err))
	require.Nil(t, Record(nil))
	require.Equal(t, Code(5), CaptureLast())
}
