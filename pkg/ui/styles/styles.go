// Package styles defines the visual styling for dotools' terminal output.
//
// Styles are bound to a lipgloss renderer for one writer, so color
// decisions follow that writer: a pipe or file gets plain text unless
// color is forced.
package styles

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Color modes accepted by New
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Adaptive colors for light and dark terminals
var (
	colorKey   = lipgloss.AdaptiveColor{Light: "#005F87", Dark: "#5FD7FF"}
	colorPath  = lipgloss.AdaptiveColor{Light: "#5F8700", Dark: "#AFD75F"}
	colorError = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}
	colorMuted = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#8A8A8A"}
)

// Styles holds the semantic styles used by command output
type Styles struct {
	Key     lipgloss.Style
	Path    lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
}

// New builds styles for w using the given color mode
func New(w io.Writer, mode string) *Styles {
	r := lipgloss.NewRenderer(w)
	if UseColor(w, mode) {
		if mode == ColorAlways && r.ColorProfile() == termenv.Ascii {
			r.SetColorProfile(termenv.ANSI256)
		}
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		Key:     r.NewStyle().Foreground(colorKey).Bold(true),
		Path:    r.NewStyle().Foreground(colorPath),
		Error:   r.NewStyle().Foreground(colorError).Bold(true),
		Muted:   r.NewStyle().Foreground(colorMuted),
		Success: r.NewStyle().Foreground(colorPath).Bold(true),
	}
}

// Plain returns styles that never emit escape codes
func Plain(w io.Writer) *Styles {
	return New(w, ColorNever)
}

// UseColor reports whether output to w should be colored
func UseColor(w io.Writer, mode string) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.NewOutput(f).Profile != termenv.Ascii
}
