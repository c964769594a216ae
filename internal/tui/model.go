package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tada/internal/log"
	"github.com/idilsaglam/tada/internal/todo"
	"github.com/idilsaglam/tada/internal/ui"
)

var logger = log.GetLogger("tui")

// Loader produces the initial list.
type Loader interface {
	Load(ctx context.Context) (todo.List, error)
}

// Submitter receives every new list value for persisting.
type Submitter interface {
	Submit(l todo.List)
}

type focus int

const (
	focusInput focus = iota
	focusList
)

type loadedMsg struct {
	list todo.List
	err  error
}

// Model is the single screen: input line, mode, rows and the delete prompt.
type Model struct {
	loader Loader
	saver  Submitter
	keys   keyMap

	loaded     bool
	items      todo.List
	mode       todo.Mode
	focus      focus
	confirming string // id awaiting confirmation, "" when none
	status     string

	list  list.Model
	input textinput.Model
	help  help.Model

	width, height int
}

func New(loader Loader, saver Submitter) Model {
	keys := defaultKeys()

	l := list.New(nil, rowDelegate{}, 80, 20)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.Styles.PaginationStyle = ui.Current().Help
	l.DisableQuitKeybindings()

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Add a todo..."

	m := Model{
		loader: loader,
		saver:  saver,
		keys:   keys,
		list:   l,
		input:  ti,
		help:   help.New(),
		width:  80,
		height: 24,
	}
	m.setFocus(focusInput)
	return m
}

// Items returns the current list.
func (m Model) Items() todo.List { return m.items }

// Mode returns the current tap mode.
func (m Model) Mode() todo.Mode { return m.mode }

// Confirming reports the id awaiting delete confirmation.
func (m Model) Confirming() (string, bool) { return m.confirming, m.confirming != "" }

func (m Model) Init() tea.Cmd {
	loader := m.loader
	return tea.Batch(textinput.Blink, func() tea.Msg {
		l, err := loader.Load(context.Background())
		return loadedMsg{list: l, err: err}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case loadedMsg:
		if msg.err != nil {
			logger.Error().Err(msg.err).Msg("load failed, using defaults")
			if errors.Is(msg.err, todo.ErrCorruptSnapshot) {
				m.status = "saved list was unreadable; a copy was kept under " + todo.CorruptKey
			}
		}
		m.loaded = true
		m.items = msg.list
		return m, m.list.SetItems(rows(m.items))

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQ) {
			return m, tea.Quit
		}
		// nothing is interactive until the list is there
		if !m.loaded {
			return m, nil
		}
		if m.confirming != "" {
			return m.updateConfirm(msg)
		}
		if key.Matches(msg, m.keys.Mode) {
			m.mode = m.mode.Flip()
			m.list.SetDelegate(rowDelegate{mode: m.mode, focused: m.focus == focusList})
			logger.Debug().Str("mode", m.mode.String()).Msg("mode changed")
			return m, nil
		}
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		next := todo.Add(m.items, m.input.Value())
		m.input.SetValue("")
		if len(next) == len(m.items) {
			return m, nil
		}
		cmd := m.apply(next)
		m.list.Select(len(m.items) - 1)
		return m, cmd
	case key.Matches(msg, m.keys.Focus), msg.Type == tea.KeyEsc:
		m.setFocus(focusList)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Focus), key.Matches(msg, m.keys.Compose):
		m.setFocus(focusInput)
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Tap):
		return m.tap(m.list.Index())
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) tap(index int) (tea.Model, tea.Cmd) {
	id, err := m.items.IDAt(index)
	if err != nil {
		logger.Warn().Err(err).Int("index", index).Msg("tap ignored")
		return m, nil
	}
	act := todo.Tap(m.mode, m.items, id)
	if act.Err != nil {
		logger.Warn().Err(act.Err).Msg("tap ignored")
		return m, nil
	}
	if act.Kind == todo.ActionConfirm {
		m.confirming = act.ID
		return m, nil
	}
	return m, m.apply(act.List)
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var accepted bool
	switch {
	case key.Matches(msg, m.keys.Yes):
		accepted = true
	case key.Matches(msg, m.keys.No):
	default:
		return m, nil
	}
	id := m.confirming
	m.confirming = ""
	act := todo.Confirm(m.items, id, accepted)
	if act.Err != nil {
		logger.Warn().Err(act.Err).Msg("delete ignored")
		return m, nil
	}
	if !act.Changed {
		return m, nil
	}
	return m, m.apply(act.List)
}

// apply installs a new list value and hands it to the saver.
func (m *Model) apply(next todo.List) tea.Cmd {
	idx := m.list.Index()
	m.items = next
	m.status = ""
	if m.saver != nil {
		m.saver.Submit(next)
	}
	cmd := m.list.SetItems(rows(next))
	if idx >= len(next) {
		idx = len(next) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
	return cmd
}

func (m *Model) setFocus(f focus) {
	m.focus = f
	if f == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	m.list.SetDelegate(rowDelegate{mode: m.mode, focused: f == focusList})
}

func (m *Model) resize() {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	h := m.height - 10
	if h < 3 {
		h = 3
	}
	m.list.SetSize(w, h)
	m.input.Width = w - 4
}

func (m Model) View() string {
	t := ui.Current()
	if !m.loaded {
		return ui.Panel([]string{t.Muted.Render("loading…")})
	}

	modeLabel := t.Accent.Render("tap: toggle")
	if m.mode == todo.ModeDelete {
		modeLabel = t.Danger.Render("tap: delete")
	}
	done, _ := m.items.Stats()

	var b strings.Builder
	b.WriteString(ui.Header(m.items) + "   " + modeLabel + "\n")
	b.WriteString(t.Muted.Render(ui.ProgressBar(done, len(m.items), 28)) + "\n\n")

	inputBox := lipgloss.NewStyle().Border(t.Border).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
	b.WriteString(inputBox.Render(m.input.View()) + "\n")

	if len(m.items) == 0 {
		b.WriteString(t.Muted.Render("no items") + "\n")
	} else {
		b.WriteString(m.list.View() + "\n")
	}

	if id, ok := m.Confirming(); ok {
		text := id
		if i := m.items.Index(id); i >= 0 {
			text = m.items[i].Text
		}
		b.WriteString(t.Error.Render(fmt.Sprintf("Delete %q? [y/N]", text)) + "\n")
	} else if m.status != "" {
		b.WriteString(t.Pending.Render(m.status) + "\n")
	}

	b.WriteString(m.help.ShortHelpView(m.keys.listHelp()))
	return ui.Panel([]string{b.String()})
}
