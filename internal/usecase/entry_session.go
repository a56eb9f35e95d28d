package usecase

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/phonebook/internal/domain"
)

// Step is the position of an EntrySession in the contact entry flow.
type Step int

const (
	StepName Step = iota
	StepPhone
	StepMore
	StepDone
)

func (s Step) String() string {
	switch s {
	case StepName:
		return "name"
	case StepPhone:
		return "phone"
	case StepMore:
		return "more"
	case StepDone:
		return "done"
	default:
		return "unknown"
	}
}

// EntrySession drives the read-validate-retry flow for one contact:
// a name, then one or more phones, then commit into the directory.
// A rejected value leaves the session on the same step so the caller can re-prompt.
type EntrySession struct {
	dir *domain.Directory
	cfg domain.Config
	log *slog.Logger

	step   Step
	record *domain.Record
}

type EntryOption func(*EntrySession)

func WithEntryConfig(cfg domain.Config) EntryOption {
	return func(s *EntrySession) { s.cfg = cfg }
}

func WithEntryLogger(log *slog.Logger) EntryOption {
	return func(s *EntrySession) {
		if log != nil {
			s.log = log
		}
	}
}

func NewEntrySession(dir *domain.Directory, opts ...EntryOption) *EntrySession {
	s := &EntrySession{
		dir: dir,
		cfg: domain.DefaultConfig(),
		log: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *EntrySession) Step() Step { return s.step }

func (s *EntrySession) Done() bool { return s.step == StepDone }

// Record is the contact being entered; nil until a name is accepted.
func (s *EntrySession) Record() *domain.Record { return s.record }

// Prompt returns the configured prompt for the current step.
func (s *EntrySession) Prompt() string {
	switch s.step {
	case StepName:
		return s.cfg.Messages.NamePrompt
	case StepPhone:
		return s.cfg.Messages.PhonePrompt
	case StepMore:
		return s.cfg.Messages.MorePrompt
	default:
		return ""
	}
}

// Reset starts a new contact on the same directory.
func (s *EntrySession) Reset() {
	s.step = StepName
	s.record = nil
}

// Submit feeds one line of user input to the current step. Input is trimmed here,
// since trimming belongs to the harness and not to the domain.
func (s *EntrySession) Submit(raw string) error {
	in := strings.TrimSpace(raw)

	switch s.step {
	case StepName:
		rec, err := domain.NewRecord(in)
		if err != nil {
			s.log.Info("entry.name.rejected", "len", utf8.RuneCountInString(in))
			return err
		}
		s.record = rec
		s.step = StepPhone
		s.log.Info("entry.name.accepted", "len", utf8.RuneCountInString(in))
		return nil

	case StepPhone:
		if err := s.record.AddPhone(in); err != nil {
			s.log.Info("entry.phone.rejected", "len", len(in))
			return err
		}
		s.step = StepMore
		s.log.Info("entry.phone.accepted", "phones", len(s.record.Phones()))
		return nil

	case StepMore:
		if strings.ToLower(in) == strings.ToLower(s.cfg.ConfirmWord) {
			s.step = StepPhone
			return nil
		}
		s.dir.AddRecord(s.record)
		s.step = StepDone
		s.log.Info("entry.committed",
			"phones", len(s.record.Phones()),
			"directory_size", s.dir.Len(),
		)
		return nil

	default:
		return &domain.OpError{
			Op:   "usecase.entry.submit",
			Kind: domain.KindExecution,
			Err:  errors.New("entry already committed"),
		}
	}
}

// Retryable reports whether err is a validation failure the user can fix by re-entering the value.
func Retryable(err error) bool {
	return errors.Is(err, domain.ErrInvalidName) || errors.Is(err, domain.ErrInvalidPhone)
}
