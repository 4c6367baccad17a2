// Package render writes platform errors for the syserr CLI.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/jmgilman/go/syserr"
	"github.com/jmgilman/go/syserr/internal/config"
)

// Options controls how a Renderer writes errors.
type Options struct {
	// Format is config.FormatText or config.FormatJSON.
	Format string

	// Color enables ANSI styling of text output.
	Color bool

	// ShowName appends the symbolic code name in text output.
	ShowName bool

	// ShowCustom prints the custom message below the display form in text output.
	ShowCustom bool
}

// Renderer writes platform errors to an output stream.
type Renderer struct {
	w    io.Writer
	opts Options
	enc  *json.Encoder

	code   lipgloss.Style
	name   lipgloss.Style
	detail lipgloss.Style
}

// New creates a Renderer writing to w.
func New(w io.Writer, opts Options) *Renderer {
	r := lipgloss.NewRenderer(w)
	if opts.Color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		w:      w,
		opts:   opts,
		enc:    json.NewEncoder(w),
		code:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		name:   r.NewStyle().Foreground(lipgloss.Color("8")),
		detail: r.NewStyle().Faint(true),
	}
}

// Render writes err. Text output is the "<code>: <message>" display form,
// optionally followed by the code name and the custom message; JSON output
// is one object per line.
func (r *Renderer) Render(err *syserr.PlatformError) error {
	if r.opts.Format == config.FormatJSON {
		if encErr := r.enc.Encode(err); encErr != nil {
			return fmt.Errorf("encoding platform error: %w", encErr)
		}
		return nil
	}

	line := r.code.Render(err.Code().String()+":") + " " + err.Message()
	if name := err.Name(); r.opts.ShowName && name != "" {
		line += " " + r.name.Render("("+name+")")
	}
	if _, writeErr := fmt.Fprintln(r.w, line); writeErr != nil {
		return fmt.Errorf("writing platform error: %w", writeErr)
	}

	if custom := err.CustomMessage(); r.opts.ShowCustom && custom != "" {
		if _, writeErr := fmt.Fprintln(r.w, "  "+r.detail.Render(custom)); writeErr != nil {
			return fmt.Errorf("writing platform error: %w", writeErr)
		}
	}
	return nil
}

// UseColor resolves a color mode for output written to w.
// "auto" enables color only for terminals when NO_COLOR is unset.
func UseColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
