package render

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/syserr"
	"github.com/jmgilman/go/syserr/internal/config"
)

const unknownCode syserr.Code = 0xDEADBEEF

func TestRender_Text(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{Format: config.FormatText})

	require.NoError(t, r.Render(syserr.NewWithMessage(unknownCode, "probe")))
	require.Equal(t, "3735928559: Unknown error (0xdeadbeef)\n", buf.String())
}

func TestRender_Text_MatchesDisplayForm(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{Format: config.FormatText})

	err := syserr.New(5)
	require.NoError(t, r.Render(err))
	require.Equal(t, err.Error()+"\n", buf.String())
}

func TestRender_Text_ShowCustom(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{Format: config.FormatText, ShowCustom: true})

	require.NoError(t, r.Render(syserr.NewWithMessage(unknownCode, "tool --flag")))
	require.Equal(t, "3735928559: Unknown error (0xdeadbeef)\n  tool --flag\n", buf.String())
}

func TestRender_Text_ShowName(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{Format: config.FormatText, ShowName: true})

	err := syserr.New(2)
	require.NoError(t, r.Render(err))

	want := err.Error()
	if err.Name() != "" {
		want += " (" + err.Name() + ")"
	}
	require.Equal(t, want+"\n", buf.String())
}

func TestRender_Text_Color(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{Format: config.FormatText, Color: true})

	require.NoError(t, r.Render(syserr.New(unknownCode)))
	require.Contains(t, buf.String(), "\x1b[")
	require.Contains(t, buf.String(), "Unknown error (0xdeadbeef)")
}

func TestRender_Text_NoColor(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{Format: config.FormatText})

	require.NoError(t, r.Render(syserr.New(unknownCode)))
	require.NotContains(t, buf.String(), "\x1b[")
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{Format: config.FormatJSON})

	require.NoError(t, r.Render(syserr.NewWithMessage(unknownCode, "probe")))
	require.NoError(t, r.Render(syserr.New(unknownCode)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first syserr.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.Equal(t, uint32(unknownCode), first.Code)
	require.Equal(t, "probe", first.CustomMessage)
	require.JSONEq(t, `{"code":3735928559,"message":"Unknown error (0xdeadbeef)"}`, lines[1])
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	require.True(t, UseColor(config.ColorAlways, &buf))
	require.False(t, UseColor(config.ColorNever, os.Stdout))
	require.False(t, UseColor(config.ColorAuto, &buf))

	t.Setenv("NO_COLOR", "1")
	require.False(t, UseColor(config.ColorAuto, os.Stdout))
}
