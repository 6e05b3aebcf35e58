// Package theme derives the shelf TUI styles from a chroma style, so that any
// chroma theme name can be used to color the interface.
package theme

import (
	"os"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var Default = New("auto")

type Theme struct {
	ErrorTextStyle        lipgloss.Style
	ErrorTitleStyle       lipgloss.Style
	GenericTextStyle      lipgloss.Style
	HelpStyle             lipgloss.Style
	LogoStyle             lipgloss.Style
	SelectedStyle         lipgloss.Style
	SelectedSubtleStyle   lipgloss.Style
	StatusBarMessageStyle lipgloss.Style
	StatusBarStyle        lipgloss.Style
	SubtleStyle           lipgloss.Style

	// ChromaStyle is the resolved chroma style, also used to highlight YAML.
	ChromaStyle *chroma.Style
	Name        string
}

// New returns the [Theme] for a chroma style name. "auto" (or an empty name)
// picks "github" or "github-dark" based on the terminal background, "light"
// and "dark" are shorthands for those. Unknown names fall back to chroma's
// fallback style.
func New(name string) *Theme {
	cs := newChromaStyle(name)

	var (
		genericStyle = lipgloss.NewStyle().
				Foreground(cs.fg(chroma.Background))

		logoStyle = lipgloss.NewStyle().
				Foreground(cs.bg(chroma.Background)).
				Background(cs.fg(chroma.NameTag)).
				Bold(true).
				Padding(0, 1)

		selectedStyle = lipgloss.NewStyle().
				Foreground(cs.fg(chroma.NameTag))

		selectedSubtleStyle = lipgloss.NewStyle().
					Foreground(cs.fgWithFactor(chroma.NameTag, 0.3))

		subtleStyle = lipgloss.NewStyle().
				Foreground(cs.fg(chroma.Comment))

		helpStyle = lipgloss.NewStyle().
				Foreground(cs.fgWithFactor(chroma.Background, 0.2))

		statusBarStyle = lipgloss.NewStyle().
				Foreground(cs.fg(chroma.Background)).
				Background(cs.bgWithFactor(chroma.Background, 0.1))

		statusBarMessageStyle = lipgloss.NewStyle().
					Foreground(cs.bg(chroma.Background)).
					Background(cs.fgWithFactor(chroma.NameTag, 0.15))

		errorTitleStyle = lipgloss.NewStyle().
				Foreground(cs.bg(chroma.Background)).
				Background(cs.fg(chroma.GenericDeleted)).
				Padding(0, 1)

		errorTextStyle = lipgloss.NewStyle().
				Foreground(cs.fg(chroma.GenericDeleted))
	)

	return &Theme{
		ErrorTextStyle:        errorTextStyle,
		ErrorTitleStyle:       errorTitleStyle,
		GenericTextStyle:      genericStyle,
		HelpStyle:             helpStyle,
		LogoStyle:             logoStyle,
		SelectedStyle:         selectedStyle,
		SelectedSubtleStyle:   selectedSubtleStyle,
		StatusBarMessageStyle: statusBarMessageStyle,
		StatusBarStyle:        statusBarStyle,
		SubtleStyle:           subtleStyle,

		ChromaStyle: cs.style,
		Name:        cs.style.Name,
	}
}

type chromaStyle struct {
	style *chroma.Style
}

func newChromaStyle(name string) chromaStyle {
	s := styles.Get(resolveName(name))
	if s == nil {
		s = styles.Fallback
	}

	return chromaStyle{style: s}
}

func (cs chromaStyle) fg(c chroma.TokenType) lipgloss.Color {
	return lipgloss.Color(cs.style.Get(c).Colour.String()) //nolint:misspell // Chroma naming.
}

func (cs chromaStyle) bg(c chroma.TokenType) lipgloss.Color {
	return lipgloss.Color(cs.style.Get(c).Background.String())
}

func (cs chromaStyle) fgWithFactor(c chroma.TokenType, factor float64) lipgloss.Color {
	return lipgloss.Color(cs.style.Get(c).Colour.BrightenOrDarken(factor).String()) //nolint:misspell // Chroma naming.
}

func (cs chromaStyle) bgWithFactor(c chroma.TokenType, factor float64) lipgloss.Color {
	return lipgloss.Color(cs.style.Get(c).Background.BrightenOrDarken(factor).String())
}

func resolveName(name string) string {
	switch name {
	case "dark":
		return "github-dark"
	case "light":
		return "github"
	case "auto", "":
		return detectName()
	default:
		return name
	}
}

func detectName() string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return "github"
	}
	if termenv.HasDarkBackground() {
		return "github-dark"
	}

	return "github"
}
