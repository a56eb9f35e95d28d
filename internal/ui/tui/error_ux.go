package tui

import (
	"github.com/aalvaropc/phonebook/internal/domain"
	"github.com/aalvaropc/phonebook/internal/usecase"
)

const unexpectedError = "Unexpected error (see logs)"

func userMessage(cfg domain.Config, err error) string {
	if err == nil {
		return ""
	}
	if usecase.Retryable(err) {
		return usecase.RetryMessage(cfg.Messages, err)
	}
	return unexpectedError
}
