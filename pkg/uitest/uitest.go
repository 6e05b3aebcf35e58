package uitest

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/teatest"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTimeout bounds every wait in this package.
const DefaultTimeout = 3 * time.Second

// Size is a terminal size in cells.
type Size struct {
	Width  int
	Height int
}

// Compact is the classic 80x24 terminal.
var Compact = Size{Width: 80, Height: 24}

// NewTestModel starts m in a test program with the given terminal size.
func NewTestModel(tb testing.TB, m tea.Model, size Size) *teatest.TestModel {
	tb.Helper()

	return teatest.NewTestModel(tb, m,
		teatest.WithInitialTermSize(size.Width, size.Height),
	)
}

// WaitForText waits until the plain text of the output contains all of want.
func WaitForText(tb testing.TB, r io.Reader, want ...string) {
	tb.Helper()

	teatest.WaitFor(tb, r, func(b []byte) bool {
		plain := []byte(PlainText(string(b)))
		for _, w := range want {
			if !bytes.Contains(plain, []byte(w)) {
				return false
			}
		}

		return true
	}, teatest.WithDuration(DefaultTimeout), teatest.WithCheckInterval(10*time.Millisecond))
}

// FinalModel quits the program and returns its final model.
//
//nolint:ireturn // Returns whatever model the program was started with.
func FinalModel(tb testing.TB, tm *teatest.TestModel) tea.Model {
	tb.Helper()

	err := tm.Quit()
	if err != nil {
		tb.Fatal(err)
	}

	return tm.FinalModel(tb, teatest.WithFinalTimeout(DefaultTimeout))
}

// PlainText strips all ANSI sequences from s.
func PlainText(s string) string {
	return ansi.Strip(s)
}
