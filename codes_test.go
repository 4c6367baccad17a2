package syserr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCode_String(t *testing.T) {
	require.Equal(t, "0", Code(0).String())
	require.Equal(t, "5", Code(5).String())
	require.Equal(t, "4294967295", Code(0xFFFFFFFF).String())
}

func TestCode_Hex(t *testing.T) {
	require.Equal(t, "0x5", Code(5).Hex())
	require.Equal(t, "0xdeadbeef", Code(0xDEADBEEF).Hex())
	require.Equal(t, "0x80070005", Code(0x80070005).Hex())
}

func TestParseCode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Code
	}{
		{"decimal", "5", 5},
		{"zero", "0", 0},
		{"leading zero is decimal", "010", 10},
		{"hex lower prefix", "0x80070005", 0x80070005},
		{"hex upper prefix", "0XFF", 0xFF},
		{"negative hresult", "-2147024891", 0x80070005},
		{"minus one", "-1", 0xFFFFFFFF},
		{"max uint32", "4294967295", 0xFFFFFFFF},
		{"surrounding space", "  2 ", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCode(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseCode_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"abc",
		"0x",
		"0xZZ",
		"4294967296",
		"-2147483649",
		"1.5",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseCode(input)
			require.ErrorIs(t, err, ErrInvalidCode)
		})
	}
}
