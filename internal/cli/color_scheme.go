package cli

import (
	"image/color"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/exp/charmtone"

	lipglossv1 "github.com/charmbracelet/lipgloss"

	"github.com/macropower/shelf/pkg/config"
	"github.com/macropower/shelf/pkg/ui/theme"
)

// ColorSchemeFunc styles help and error output with the configured theme.
func ColorSchemeFunc(c lipgloss.LightDarkFunc) fang.ColorScheme {
	return NewColorSchemeFunc(os.Args[1:], os.LookupEnv)(c)
}

// NewColorSchemeFunc returns a [fang.ColorScheme] func for the configuration
// selected by args (--config) or the SHELF_CONFIG environment variable.
// fang asks for the scheme outside of any command, so the flag is read from
// the raw arguments.
func NewColorSchemeFunc(
	args []string,
	lookupEnv func(string) (string, bool),
) func(lipgloss.LightDarkFunc) fang.ColorScheme {
	return func(c lipgloss.LightDarkFunc) fang.ColorScheme {
		return themeFromConfig(schemeConfigPath(args, lookupEnv), c)
	}
}

func schemeConfigPath(args []string, lookupEnv func(string) (string, bool)) string {
	const flag = "--config"

	for i, arg := range args {
		if arg == "--" {
			break
		}
		if v, ok := strings.CutPrefix(arg, flag+"="); ok {
			return v
		}
		if arg == flag && i+1 < len(args) {
			return args[i+1]
		}
	}

	env := envBinder{prefix: cmdName}
	if v, ok := lookupEnv(env.envName("config")); ok && v != "" {
		return v
	}

	return config.GetPath()
}

func themeFromConfig(path string, c lipgloss.LightDarkFunc) fang.ColorScheme {
	cl, err := config.NewLoaderFromFile(path)
	if err != nil {
		return ThemeColorScheme(theme.Default, c)
	}

	cfg, err := cl.Load()
	if err != nil {
		return ThemeColorScheme(theme.Default, c)
	}

	return ThemeColorScheme(theme.New(cfg.UI.Theme), c)
}

func ThemeColorScheme(t *theme.Theme, c lipgloss.LightDarkFunc) fang.ColorScheme {
	return fang.ColorScheme{
		Base:           fg(t.GenericTextStyle),
		Title:          bg(t.LogoStyle),
		Codeblock:      c(charmtone.Salt, lipgloss.Color("#2F2E36")),
		Program:        fg(t.SelectedStyle),
		Command:        fg(t.SelectedStyle),
		DimmedArgument: fg(t.SubtleStyle),
		Comment:        fg(t.SubtleStyle),
		Flag:           fg(t.SelectedStyle),
		Argument:       fg(t.GenericTextStyle),
		Description:    fg(t.GenericTextStyle),
		FlagDefault:    fg(t.SelectedSubtleStyle),
		QuotedString:   fg(t.GenericTextStyle),
		ErrorHeader: [2]color.Color{
			fg(t.ErrorTitleStyle),
			bg(t.ErrorTitleStyle),
		},
	}
}

func fg(s lipglossv1.Style) color.Color {
	return toColor(s.GetForeground())
}

func bg(s lipglossv1.Style) color.Color {
	return toColor(s.GetBackground())
}

// toColor converts a theme color to the color type used by fang. Colors that
// are not hex strings are dropped.
func toColor(c lipglossv1.TerminalColor) color.Color {
	hex, ok := c.(lipglossv1.Color)
	if !ok || hex == "" {
		return nil
	}

	return lipgloss.Color(string(hex))
}
