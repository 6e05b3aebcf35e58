package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/shelf/pkg/record"
	"github.com/macropower/shelf/pkg/ui/theme"
)

var errEmptyPath = errors.New("path cannot be empty")

// openAddForm shows the add form, bound to in.
func (m *model) openAddForm(in *record.Input) tea.Cmd {
	m.input = in
	m.state = stateAdd
	m.form = m.newForm(
		huh.NewGroup(
			huh.NewInput().
				Key("title").
				Title("Title").
				Placeholder("Dune").
				Value(&in.Title),
			huh.NewInput().
				Key("genre").
				Title("Genre").
				Placeholder("Sci-Fi").
				Value(&in.Genre),
			huh.NewInput().
				Key("creator").
				Title("Creator").
				Placeholder("Frank Herbert").
				Value(&in.Creator),
			huh.NewInput().
				Key("year").
				Title("Year").
				Placeholder("1965").
				Value(&in.Year),
		).
			Title("Add a record").
			Description("All fields are required."),
	)
	m.resize()

	return m.form.Init()
}

func (m *model) openSaveForm() tea.Cmd {
	m.state = stateSave
	m.form = m.newForm(
		huh.NewGroup(
			huh.NewInput().
				Key("path").
				Title("Save to").
				Description("Records are written in the order they were added.").
				Value(&m.savePath).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errEmptyPath
					}

					return nil
				}),
		),
	)
	m.resize()

	return m.form.Init()
}

func (m *model) newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).
		WithShowHelp(false).
		WithTheme(theme.HuhTheme(m.theme)).
		WithWidth(min(m.width, 60))
}
