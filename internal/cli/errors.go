package cli

import (
	"github.com/aalvaropc/phonebook/internal/domain"
	"github.com/aalvaropc/phonebook/internal/usecase"
)

// userError prints the localized message but keeps the cause for errors.Is.
type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg }

func (e *userError) Unwrap() error { return e.err }

func explain(cfg domain.Config, err error) error {
	if err == nil {
		return nil
	}
	return &userError{msg: usecase.Explain(cfg.Messages, err), err: err}
}
