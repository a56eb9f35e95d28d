package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aalvaropc/phonebook/internal/domain"
)

// Explain turns an error into the configured user-facing text.
func Explain(msgs domain.MessagesConfig, err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrInvalidName):
		return msgs.InvalidName
	case errors.Is(err, domain.ErrInvalidPhone):
		return msgs.InvalidPhone
	case errors.Is(err, domain.ErrNotFound):
		return msgs.NotFound
	}

	var oe *domain.OpError
	if errors.As(err, &oe) && oe.Kind == domain.KindUsage && oe.Err != nil {
		return strings.TrimSuffix(oe.Err.Error(), ": "+domain.ErrUsage.Error())
	}
	return err.Error()
}

// RetryMessage formats Explain(err) with the configured retry template.
func RetryMessage(msgs domain.MessagesConfig, err error) string {
	return fmt.Sprintf(msgs.Retry, Explain(msgs, err))
}
