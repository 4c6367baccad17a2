package syserr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup_Fallback(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{0xDEADBEEF, "Unknown error (0xdeadbeef)"},
		{0xFFFFFFFF, "Unknown error (0xffffffff)"},
		{0x7FFFFFF0, "Unknown error (0x7ffffff0)"},
	}

	for _, tt := range tests {
		t.Run(tt.code.Hex(), func(t *testing.T) {
			require.Equal(t, tt.want, Lookup(tt.code))
		})
	}
}

func TestLookup_Zero(t *testing.T) {
	msg := Lookup(0)
	require.NotEmpty(t, msg)
	require.NotContains(t, msg, "Unknown error")
}

func TestLookup_KnownCodes(t *testing.T) {
	// Codes 1-5 exist on every supported platform's table.
	for code := Code(1); code <= 5; code++ {
		msg := Lookup(code)
		require.NotEmpty(t, msg)
		require.NotContains(t, msg, "Unknown error", "code %d", code)
	}
}

func TestLookup_NoTrailingWhitespace(t *testing.T) {
	for code := Code(0); code < 64; code++ {
		msg := Lookup(code)
		require.Equal(t, strings.TrimRight(msg, " \t\r\n"), msg, "code %d", code)
	}
}

func TestLookup_WithLanguage(t *testing.T) {
	msg := Lookup(5, WithLanguage(0x0409))
	require.NotEmpty(t, msg)
	require.NotContains(t, msg, "Unknown error")

	// An identifier no system has a table for still resolves.
	require.Equal(t, Lookup(5), Lookup(5, WithLanguage(0xFFFF)))
}

func TestUnknownMessage(t *testing.T) {
	require.Equal(t, "Unknown error (0x0)", unknownMessage(0))
	require.Equal(t, "Unknown error (0x5)", unknownMessage(5))
}

func TestLookup_FallbackUsesHex(t *testing.T) {
	code := Code(0xDEADBEEF)
	require.Equal(t, "Unknown error ("+code.Hex()+")", Lookup(code))
}
