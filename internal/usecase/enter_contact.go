package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/aalvaropc/phonebook/internal/domain"
	"github.com/aalvaropc/phonebook/internal/ports"
)

// EnterContact runs one EntrySession over a line Prompter, re-prompting on
// validation errors until the contact is committed.
type EnterContact struct {
	prompter ports.Prompter
	cfg      domain.Config
	log      *slog.Logger
}

func NewEnterContact(p ports.Prompter, cfg domain.Config, log *slog.Logger) *EnterContact {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &EnterContact{prompter: p, cfg: cfg, log: log}
}

func (uc *EnterContact) Execute(ctx context.Context, dir *domain.Directory) (*domain.Record, error) {
	s := NewEntrySession(dir, WithEntryConfig(uc.cfg), WithEntryLogger(uc.log))

	for !s.Done() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line, err := uc.prompter.Ask(s.Prompt())
		if err != nil {
			return nil, &domain.OpError{
				Op:   "usecase.enter_contact",
				Kind: domain.KindExecution,
				Err:  err,
			}
		}

		if err := s.Submit(line); err != nil {
			if !Retryable(err) {
				return nil, err
			}
			if err := uc.prompter.Say(RetryMessage(uc.cfg.Messages, err)); err != nil {
				return nil, err
			}
		}
	}

	return s.Record(), nil
}
