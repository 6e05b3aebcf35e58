// Package ui provides the interactive terminal interface for shelf.
//
// The interface has a form for adding records, a read-only view of the
// records sorted by the current sort key, and a dialog for saving the
// collection to a text file.
package ui

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/huh"
	"github.com/dustin/go-humanize"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/shelf/pkg/catalog"
	"github.com/macropower/shelf/pkg/record"
	"github.com/macropower/shelf/pkg/ui/theme"
)

const StatusMessageTimeout = time.Second * 3 // How long to show status messages.

// Params configures a new program.
type Params struct {
	Config  *Config
	Catalog *catalog.Catalog
	// Clipboard writes text to the system clipboard. Defaults to
	// [clipboard.WriteAll].
	Clipboard func(string) error
	// SavePath is the path suggested by the save dialog.
	SavePath string
	// Orders is the initial sort order.
	Orders []record.Order
}

// NewProgram returns a new Tea program.
func NewProgram(p Params) *tea.Program {
	slog.Debug("starting shelf ui")

	return tea.NewProgram(newModel(p), tea.WithAltScreen())
}

type state int

const (
	stateList state = iota
	stateAdd
	stateSave
	stateFilter
)

func (s state) String() string {
	return map[state]string{
		stateList:   "showing records",
		stateAdd:    "adding record",
		stateSave:   "saving records",
		stateFilter: "filtering records",
	}[s]
}

type (
	savedMsg struct {
		path  string
		size  int64
		count int
	}
	copiedMsg struct {
		count int
	}
	errMsg struct {
		err error
	}
	statusTimeoutMsg struct {
		id int
	}
)

type status struct {
	text    string
	isError bool
}

type model struct {
	cat      *catalog.Catalog
	theme    *theme.Theme
	kb       *KeyBinds
	form     *huh.Form
	input    *record.Input
	copyFn   func(string) error
	status   status
	savePath string
	orders   []record.Order
	sorted   []record.Record
	lines    []string
	viewport viewport.Model
	filter   textinput.Model
	state    state
	statusID int
	width    int
	height   int
	showHelp bool
}

func newModel(p Params) *model {
	cfg := p.Config
	if cfg == nil {
		cfg = NewConfig()
	} else {
		cfg.EnsureDefaults()
	}

	cat := p.Catalog
	if cat == nil {
		cat = catalog.New()
	}

	orders := p.Orders
	if len(orders) == 0 {
		orders = []record.Order{{Key: record.KeyTitle}}
	}

	copyFn := p.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	t := theme.New(cfg.Theme)

	fi := textinput.New()
	fi.Prompt = "/ "
	fi.Placeholder = "filter records"
	fi.PromptStyle = t.SelectedStyle
	fi.PlaceholderStyle = t.SubtleStyle

	m := &model{
		cat:      cat,
		theme:    t,
		kb:       cfg.KeyBinds,
		copyFn:   copyFn,
		savePath: p.SavePath,
		orders:   orders,
		viewport: viewport.New(80, 20),
		filter:   fi,
		width:    80,
		height:   24,
	}

	m.refresh()
	m.resize()

	if cat.Len() == 0 {
		m.openAddForm(&record.Input{})
	}

	return m
}

func (m *model) Init() tea.Cmd {
	if m.form != nil {
		return m.form.Init()
	}

	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

		return m, nil

	case statusTimeoutMsg:
		if msg.id == m.statusID {
			m.status = status{}
		}

		return m, nil

	case savedMsg:
		slog.Info("saved records",
			slog.String("path", msg.path),
			slog.Int("count", msg.count),
			slog.Int64("bytes", msg.size),
		)

		//nolint:gosec // G115: size is never negative.
		return m, m.sendStatus(fmt.Sprintf("Saved %s to %s (%s)",
			plural(msg.count, "record"), msg.path, humanize.Bytes(uint64(msg.size))))

	case copiedMsg:
		return m, m.sendStatus(fmt.Sprintf("Copied %s to the clipboard", plural(msg.count, "line")))

	case errMsg:
		slog.Error("action failed", slog.Any("err", msg.err))

		return m, m.sendError(msg.err)
	}

	switch m.state {
	case stateAdd, stateSave:
		return m, m.updateForm(msg)
	case stateFilter:
		return m, m.updateFilter(msg)
	case stateList:
	}

	return m, m.updateList(msg)
}

func (m *model) updateList(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if ok {
		key := km.String()

		switch {
		case m.kb.Quit.Match(key):
			return tea.Quit

		case m.kb.Help.Match(key):
			m.showHelp = !m.showHelp
			m.resize()

			return nil

		case m.kb.Add.Match(key):
			return m.openAddForm(&record.Input{})

		case m.kb.Sort.Match(key):
			next := record.Order{Key: m.orders[0].Key.Next(), Descending: m.orders[0].Descending}

			return m.sortBy([]record.Order{next})

		case m.kb.Reverse.Match(key):
			reversed := make([]record.Order, 0, len(m.orders))
			for _, o := range m.orders {
				reversed = append(reversed, record.Order{Key: o.Key, Descending: !o.Descending})
			}

			return m.sortBy(reversed)

		case m.kb.Save.Match(key):
			return m.openSave()

		case m.kb.Copy.Match(key):
			return m.copyLines()

		case m.kb.Filter.Match(key):
			m.state = stateFilter
			m.resize()

			return m.filter.Focus()

		case m.kb.Escape.Match(key):
			if m.filter.Value() != "" {
				m.filter.SetValue("")
				m.applyFilter()
				m.resize()
			}

			return nil
		}
	}

	var cmd tea.Cmd

	m.viewport, cmd = m.viewport.Update(msg)

	return cmd
}

func (m *model) updateFilter(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case km.Type == tea.KeyEnter:
			m.filter.Blur()
			m.state = stateList
			m.resize()

			return nil

		case m.kb.Escape.Match(km.String()):
			m.filter.Blur()
			m.filter.SetValue("")
			m.state = stateList
			m.applyFilter()
			m.resize()

			return nil
		}
	}

	var cmd tea.Cmd

	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()

	return cmd
}

func (m *model) updateForm(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok && m.kb.Escape.Match(km.String()) {
		m.closeForm()

		return nil
	}

	f, cmd := m.form.Update(msg)
	if form, ok := f.(*huh.Form); ok {
		m.form = form
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.state == stateSave {
			return tea.Batch(cmd, m.submitSave())
		}

		return tea.Batch(cmd, m.submitRecord())

	case huh.StateAborted:
		m.closeForm()

	case huh.StateNormal:
	}

	return cmd
}

// submitRecord adds the record from the current add form. Invalid input is
// reported and the form is shown again with the values that were entered.
func (m *model) submitRecord() tea.Cmd {
	in := *m.input

	r, err := m.cat.Add(in)
	if err != nil {
		slog.Debug("rejected record", slog.Any("err", err))

		return tea.Batch(m.openAddForm(&in), m.sendError(err))
	}

	slog.Debug("added record", slog.String("record", r.String()))

	m.closeForm()

	return m.sendStatus("Added " + r.String())
}

func (m *model) openSave() tea.Cmd {
	if m.cat.Len() == 0 {
		return m.sendError(fmt.Errorf("save: %w", catalog.ErrEmptyCollection))
	}

	return m.openSaveForm()
}

func (m *model) submitSave() tea.Cmd {
	path := strings.TrimSpace(m.savePath)

	m.closeForm()

	return saveCmd(m.cat, path)
}

func saveCmd(cat *catalog.Catalog, path string) tea.Cmd {
	return func() tea.Msg {
		count := cat.Len()

		size, err := cat.Save(path)
		if err != nil {
			return errMsg{err: err}
		}

		return savedMsg{path: path, size: size, count: count}
	}
}

func (m *model) copyLines() tea.Cmd {
	if len(m.lines) == 0 {
		return m.sendError(fmt.Errorf("copy: %w", catalog.ErrEmptyCollection))
	}

	text := strings.Join(m.lines, "\n") + "\n"
	count := len(m.lines)
	copyFn := m.copyFn

	return func() tea.Msg {
		err := copyFn(text)
		if err != nil {
			return errMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}

		return copiedMsg{count: count}
	}
}

// sortBy switches the display to the given orders. The current display is
// kept when there is nothing to sort.
func (m *model) sortBy(orders []record.Order) tea.Cmd {
	sorted, err := m.cat.Sorted(orders...)
	if err != nil {
		return m.sendError(err)
	}

	m.orders = orders
	m.sorted = sorted
	m.applyFilter()
	m.viewport.GotoTop()

	return m.sendStatus("Sorted by " + describeOrders(orders))
}

// refresh re-sorts the catalog with the current orders.
func (m *model) refresh() {
	sorted, err := m.cat.Sorted(m.orders...)
	if err != nil {
		sorted = nil
	}

	m.sorted = sorted
	m.applyFilter()
}

// applyFilter narrows the sorted lines down to fuzzy matches of the filter,
// keeping the sort order.
func (m *model) applyFilter() {
	all := catalog.Lines(m.sorted)

	query := m.filter.Value()
	if query == "" {
		m.lines = all
	} else {
		matches := fuzzy.Find(query, all)

		idx := make([]int, 0, len(matches))
		for _, match := range matches {
			idx = append(idx, match.Index)
		}

		slices.Sort(idx)

		m.lines = make([]string, 0, len(idx))
		for _, i := range idx {
			m.lines = append(m.lines, all[i])
		}
	}

	m.viewport.SetContent(m.listView())
}

func (m *model) closeForm() {
	m.form = nil
	m.input = nil
	m.state = stateList
	m.refresh()
	m.resize()
}

func (m *model) sendStatus(text string) tea.Cmd {
	return m.setStatus(status{text: text})
}

func (m *model) sendError(err error) tea.Cmd {
	return m.setStatus(status{text: err.Error(), isError: true})
}

func (m *model) setStatus(s status) tea.Cmd {
	m.statusID++
	id := m.statusID
	m.status = s

	return tea.Tick(StatusMessageTimeout, func(time.Time) tea.Msg {
		return statusTimeoutMsg{id: id}
	})
}
