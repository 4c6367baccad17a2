package locale

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLangID(t *testing.T) {
	tests := []struct {
		tag  string
		want uint32
	}{
		{"", 0},
		{"en-US", 0x0409},
		{"en-GB", 0x0809},
		{"en", 0x0009},
		{"de-DE", 0x0407},
		{"de-AT", 0x0c07},
		{"fr-CA", 0x0c0c},
		{"ja-JP", 0x0411},
		{"zh-CN", 0x0804},
		{"zh-TW", 0x0404},
		{"pt-BR", 0x0416},
		{"es-ES", 0x0c0a},
		{"es-AR", 0x040a},
		{"EN-us", 0x0409},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := LangID(tt.tag)
			require.NoError(t, err)
			require.Equal(t, tt.want, got, "got 0x%04x", got)
		})
	}
}

func TestLangID_Unsupported(t *testing.T) {
	tags := []string{"not a tag", "xx-YY", "tlh"}

	for _, tag := range tags {
		t.Run(tag, func(t *testing.T) {
			_, err := LangID(tag)
			require.ErrorIs(t, err, ErrUnsupportedLanguage)
		})
	}
}
