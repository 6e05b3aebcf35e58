// Package statusbar renders the bottom line of the shelf TUI.
package statusbar

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/macropower/shelf/pkg/ui/theme"
	"github.com/macropower/shelf/pkg/version"
)

const (
	helpText  = "? help"
	errorText = "! error"
	ellipsis  = "…"
)

type Style int

const (
	StyleNormal Style = iota
	StyleSuccess
	StyleError
)

// Renderer renders a status bar of a fixed width.
type Renderer struct {
	theme   *theme.Theme
	message string
	width   int
	style   Style
}

type Opt func(*Renderer)

// WithMessage replaces the note with a success message.
func WithMessage(message string) Opt {
	return func(r *Renderer) {
		r.style = StyleSuccess
		r.message = message
	}
}

// WithError replaces the note with an error message.
func WithError(message string) Opt {
	return func(r *Renderer) {
		r.style = StyleError
		r.message = message
	}
}

func New(t *theme.Theme, width int, opts ...Opt) *Renderer {
	r := &Renderer{theme: t, width: max(0, width)}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Render lays out the logo, the note, the scroll position and the help note
// over the full width. Messages set with [WithMessage] or [WithError] take
// the place of note.
func (r *Renderer) Render(note string, scrollPercent float64) string {
	logo := r.theme.LogoStyle.Render(fmt.Sprintf("shelf %s", version.GetVersion()))
	position := r.render(fmt.Sprintf(" %3.f%% ", min(1, max(0, scrollPercent))*100))
	help := r.helpNote()

	available := max(0, r.width-width(logo)-width(position)-width(help))

	if r.message != "" {
		note = r.message
	}

	note = strings.TrimSpace(strings.ReplaceAll(note, "\n", " "))
	//nolint:gosec // G115: available is never negative.
	note = r.render(truncate.StringWithTail(" "+note+" ", uint(available), ellipsis))

	fill := r.render(strings.Repeat(" ", max(0, available-width(note))))

	return logo + note + fill + position + help
}

func (r *Renderer) helpNote() string {
	if r.style == StyleError {
		return r.theme.ErrorTitleStyle.Render(errorText)
	}

	return r.theme.LogoStyle.Render(helpText)
}

func (r *Renderer) render(s string) string {
	switch r.style {
	case StyleError:
		return r.theme.ErrorTitleStyle.UnsetPadding().Render(s)
	case StyleSuccess:
		return r.theme.StatusBarMessageStyle.Render(s)
	case StyleNormal:
	}

	return r.theme.StatusBarStyle.Render(s)
}

func width(s string) int {
	return ansi.PrintableRuneWidth(s)
}
