package theme

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// HuhTheme returns a [huh.Theme] for the add and save forms, using the
// colors of t.
func HuhTheme(t *Theme) *huh.Theme {
	var (
		accent = t.SelectedStyle.GetForeground()
		muted  = t.SubtleStyle.GetForeground()
		errFg  = t.ErrorTextStyle.GetForeground()
	)

	h := huh.ThemeBase()

	f := &h.Focused
	f.Base = f.Base.BorderForeground(accent)
	f.Card = f.Base
	f.Title = f.Title.Foreground(accent).Bold(true)
	f.Description = f.Description.Foreground(t.SelectedSubtleStyle.GetForeground())
	f.ErrorIndicator = f.ErrorIndicator.Foreground(errFg)
	f.ErrorMessage = f.ErrorMessage.Foreground(errFg)
	f.TextInput.Cursor = f.TextInput.Cursor.Foreground(accent)
	f.TextInput.Prompt = f.TextInput.Prompt.Foreground(accent)
	f.TextInput.Placeholder = f.TextInput.Placeholder.Foreground(muted)
	f.TextInput.Text = t.GenericTextStyle

	b := &h.Blurred
	*b = *f
	b.Base = b.Base.BorderStyle(lipgloss.HiddenBorder())
	b.Card = b.Base
	b.Title = b.Title.UnsetBold().Foreground(muted)
	b.TextInput.Prompt = b.TextInput.Prompt.Foreground(muted)

	h.Group.Title = f.Title
	h.Group.Description = f.Description

	return h
}
