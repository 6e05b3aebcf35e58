// Package uitest provides testing utilities for Bubble Tea programs.
//
// It wraps [teatest] with terminal size presets and helpers that match
// against rendered output with ANSI sequences removed:
//
//	func TestMyComponent(t *testing.T) {
//	    t.Parallel()
//
//	    tm := uitest.NewTestModel(t, NewMyModel(), uitest.Compact)
//	    tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
//	    uitest.WaitForText(t, tm.Output(), "done")
//	}
package uitest
