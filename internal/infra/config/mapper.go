package config

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/phonebook/internal/domain"
)

// MapConfig applies the parsed file on top of domain.DefaultConfig.
func MapConfig(path string, y YAMLFile) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if y.Phonebook.ConfirmWord != nil {
		w := strings.TrimSpace(*y.Phonebook.ConfirmWord)
		if w == "" {
			return domain.Config{}, invalidField(path, "phonebook.confirm_word", "confirm word must not be blank")
		}
		cfg.ConfirmWord = w
	}

	m := y.Phonebook.Messages
	if m.Retry != "" && strings.Count(m.Retry, "%s") != 1 {
		return domain.Config{}, invalidField(path, "phonebook.messages.retry", "retry message needs exactly one %s")
	}

	setIf(&cfg.Messages.NamePrompt, m.NamePrompt)
	setIf(&cfg.Messages.PhonePrompt, m.PhonePrompt)
	setIf(&cfg.Messages.MorePrompt, m.MorePrompt)
	setIf(&cfg.Messages.Retry, m.Retry)
	setIf(&cfg.Messages.InvalidName, m.InvalidName)
	setIf(&cfg.Messages.InvalidPhone, m.InvalidPhone)
	setIf(&cfg.Messages.NotFound, m.NotFound)
	setIf(&cfg.Messages.NoPhone, m.NoPhone)
	setIf(&cfg.Messages.Header, m.Header)

	return cfg, nil
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
