package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/phonebook/internal/domain"
	"github.com/aalvaropc/phonebook/internal/usecase"
)

type screen int

const (
	screenEntry screen = iota
	screenBook
)

type model struct {
	theme Theme
	deps  Deps

	scr     screen
	session *usecase.EntrySession
	input   textinput.Model

	toast    string
	toastSeq int
	width    int
}

func Run(deps Deps) error {
	p := tea.NewProgram(wrapSafe(newModel(deps), deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	if deps.Directory == nil {
		deps.Directory = domain.NewDirectory()
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	in := textinput.New()
	in.CharLimit = 128
	in.Width = 40
	in.Focus()

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		scr:   screenEntry,
		session: usecase.NewEntrySession(
			deps.Directory,
			usecase.WithEntryConfig(deps.Config),
			usecase.WithEntryLogger(deps.Logger),
		),
		input: in,
	}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if w := msg.Width - 10; w > 10 {
			m.input.Width = w
		}
		return m, nil

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.scr == screenBook {
			return m.updateBook(msg)
		}
		return m.updateEntry(msg)
	}

	if m.scr == screenEntry {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit

	case "enter":
		if err := m.session.Submit(m.input.Value()); err != nil {
			if !usecase.Retryable(err) {
				m.deps.Logger.Error("tui.submit.failed", "step", m.session.Step().String(), "err", err)
			}
			m.toast = userMessage(m.deps.Config, err)
			m.toastSeq++
			return m, cmdExpireToast(m.toastSeq)
		}

		m.input.Reset()
		m.toast = ""
		if m.session.Done() {
			m.scr = screenBook
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) updateBook(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "n":
		m.session.Reset()
		m.input.Reset()
		m.scr = screenEntry
		return m, textinput.Blink
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Phonebook") + "\n" +
		m.theme.Subtitle.Render(m.subtitle()) + "\n"

	switch m.scr {
	case screenEntry:
		var b strings.Builder
		b.WriteString(m.theme.Prompt.Render(strings.TrimSpace(m.session.Prompt())))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		if rec := m.session.Record(); rec != nil {
			b.WriteString("\n\n")
			b.WriteString(m.theme.Help.Render(rec.String()))
		}
		if m.toast != "" {
			b.WriteString("\n\n")
			b.WriteString(m.theme.Toast.Render(m.toast))
		}

		help := m.theme.Help.Render("enter submit • esc quit")
		return wrap.Render(header + "\n" + m.theme.Card.Render(b.String()) + "\n" + help)

	case screenBook:
		card := m.theme.Card.Render(
			m.theme.Title.Render(m.deps.Config.Messages.Header) + "\n\n" +
				renderBook(m.deps.Directory, m.width-10),
		)
		help := m.theme.Help.Render("n new contact • q quit")
		return wrap.Render(header + "\n" + card + "\n" + help)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}

func (m model) subtitle() string {
	root := m.deps.WorkspaceRoot
	if root == "" {
		root = "no workspace"
	}
	s := fmt.Sprintf("%d contact(s) • %s", m.deps.Directory.Len(), root)
	if m.deps.Debug {
		s += fmt.Sprintf(" • step=%s", m.session.Step())
	}
	return s
}
