package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"

	"github.com/macropower/shelf/pkg/catalog"
	"github.com/macropower/shelf/pkg/record"
)

// ErrorHandler renders errors returned by commands. Usage errors and
// recognized record errors are followed by a hint.
func ErrorHandler(w io.Writer, styles fang.Styles, err error) {
	mustN(fmt.Fprintln(w, styles.ErrorHeader.String()))
	mustN(fmt.Fprintln(w, lipgloss.NewStyle().MarginLeft(2).Render(err.Error())))
	mustN(fmt.Fprintln(w))

	hint, reason := errorHint(err)
	if hint == "" {
		return
	}

	mustN(fmt.Fprintln(w, lipgloss.JoinHorizontal(
		lipgloss.Left,
		styles.ErrorText.UnsetWidth().Render("Try"),
		styles.Program.Flag.Render(hint),
		styles.ErrorText.UnsetWidth().UnsetMargins().UnsetTransform().PaddingLeft(1).Render(reason),
	)))
	mustN(fmt.Fprintln(w))
}

func errorHint(err error) (string, string) {
	switch {
	case isUsageError(err):
		return "--help", "for usage."
	case errors.Is(err, record.ErrUnknownKey):
		return strings.Join(record.KeyNames, ", "), "as sort keys."
	case errors.Is(err, catalog.ErrEmptyCollection),
		errors.Is(err, record.ErrMissingField),
		errors.Is(err, record.ErrInvalidYear),
		errors.Is(err, catalog.ErrNotScalar):
		return cmdName + " sort --help", "for the records file format."
	}

	return "", ""
}

// XXX: this is a hack to detect usage errors.
// See: https://github.com/spf13/cobra/pull/2266
func isUsageError(err error) bool {
	s := err.Error()
	for _, prefix := range []string{
		"flag needs an argument:",
		"unknown flag:",
		"unknown shorthand flag:",
		"unknown command",
		"invalid argument",
		"accepts at most",
		"accepts between",
	} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}

	return false
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func mustN(_ int, err error) {
	must(err)
}
