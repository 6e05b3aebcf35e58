package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize/english"

	xstrings "github.com/charmbracelet/x/exp/strings"

	"github.com/macropower/shelf/pkg/keys"
	"github.com/macropower/shelf/pkg/record"
	"github.com/macropower/shelf/pkg/ui/statusbar"
)

const helpColumns = 3

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n\n")

	switch m.state {
	case stateAdd, stateSave:
		b.WriteString(lipgloss.NewStyle().
			Height(m.viewport.Height).
			MaxHeight(m.viewport.Height).
			Render(m.form.View()))
	case stateList, stateFilter:
		b.WriteString(m.viewport.View())
	}

	b.WriteString("\n")

	if m.showFilter() {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString(m.helpView())
		b.WriteString("\n")
	}

	b.WriteString(m.statusBarView())

	return b.String()
}

func (m *model) headerView() string {
	info := fmt.Sprintf("%s, sorted by %s", plural(m.cat.Len(), "record"), describeOrders(m.orders))
	if m.state != stateList {
		info += " · " + m.state.String()
	}

	return m.theme.SelectedStyle.Bold(true).Render("Shelf") + " " + m.theme.SubtleStyle.Render(info)
}

func (m *model) listView() string {
	switch {
	case len(m.sorted) == 0:
		return m.theme.SubtleStyle.Render(
			fmt.Sprintf("No records yet. Press %s to add one.", m.kb.Add.String()))
	case len(m.lines) == 0:
		return m.theme.SubtleStyle.Render("No matching records.")
	}

	var b strings.Builder
	for i, line := range m.lines {
		if i > 0 {
			b.WriteString("\n")
		}

		b.WriteString(m.theme.GenericTextStyle.Render(line))
	}

	return b.String()
}

func (m *model) helpView() string {
	return m.theme.HelpStyle.Render(keys.RenderHelp(m.width, helpColumns, m.kb.GetKeyBinds()...))
}

func (m *model) statusBarView() string {
	var opts []statusbar.Opt

	switch {
	case m.status.isError:
		opts = append(opts, statusbar.WithError(m.status.text))
	case m.status.text != "":
		opts = append(opts, statusbar.WithMessage(m.status.text))
	}

	hint := fmt.Sprintf("%s add · %s sort · %s reverse · %s save",
		m.kb.Add.String(),
		m.kb.Sort.String(),
		m.kb.Reverse.String(),
		m.kb.Save.String(),
	)

	return statusbar.New(m.theme, m.width, opts...).Render(hint, m.viewport.ScrollPercent())
}

func (m *model) showFilter() bool {
	return m.state == stateFilter || m.filter.Value() != ""
}

// resize fits the viewport between the header and the footer.
func (m *model) resize() {
	footer := 1
	if m.showFilter() {
		footer++
	}

	if m.showHelp {
		footer += lipgloss.Height(m.helpView())
	}

	const header = 2

	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-header-footer-1, 1)
	m.filter.Width = max(m.width-lipgloss.Width(m.filter.Prompt)-1, 1)

	if m.form != nil {
		m.form = m.form.WithWidth(min(m.width, 60)).WithHeight(m.viewport.Height)
	}
}

func describeOrders(orders []record.Order) string {
	parts := make([]string, 0, len(orders))
	for _, o := range orders {
		s := o.Key.String()
		if o.Descending {
			s += " (descending)"
		}

		parts = append(parts, s)
	}

	return xstrings.EnglishJoin(parts, true)
}

func plural(n int, singular string) string {
	return english.Plural(n, singular, "")
}
