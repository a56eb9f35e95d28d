package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

// safeModel keeps a panic in the entry flow from tearing down the terminal:
// the half-entered contact is dropped and the user lands on a fresh entry screen.
type safeModel struct {
	m   model
	log *slog.Logger
}

var _ tea.Model = safeModel{}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd { return s.m.Init() }

func (s safeModel) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	defer func() {
		if s.recovered("tui.update", recover()) {
			s.m.session.Reset()
			s.m.input.Reset()
			s.m.scr = screenEntry
			s.m.toast = unexpectedError
			next, cmd = s, nil
		}
	}()

	inner, c := s.m.Update(msg)
	switch v := inner.(type) {
	case model:
		s.m = v
	case safeModel:
		s = v
	}
	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if s.recovered("tui.view", recover()) {
			out = unexpectedError
		}
	}()
	return s.m.View()
}

func (s safeModel) recovered(where string, r any) bool {
	if r == nil {
		return false
	}
	s.log.Error("panic.recovered",
		"where", where,
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)
	return true
}
