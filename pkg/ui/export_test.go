package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/shelf/pkg/record"
)

type Model = model

func NewModel(p Params) *Model {
	return newModel(p)
}

// SubmitRecord fills the add form with in and submits it.
func (m *model) SubmitRecord(in record.Input) tea.Cmd {
	m.openAddForm(&in)

	return m.submitRecord()
}

// SubmitSave fills the save dialog with path and submits it.
func (m *model) SubmitSave(path string) tea.Cmd {
	m.openSaveForm()
	m.savePath = path

	return m.submitSave()
}

func (m *model) State() string {
	return m.state.String()
}

func (m *model) Lines() []string {
	return m.lines
}

func (m *model) Status() (string, bool) {
	return m.status.text, m.status.isError
}

func (m *model) Input() *record.Input {
	return m.input
}
