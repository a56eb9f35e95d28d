package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/phonebook/internal/domain"
)

func TestEnterContact_RetriesUntilValid(t *testing.T) {
	cfg := domain.DefaultConfig()
	p := &fakePrompter{inputs: []string{"", "Alice", "12345", "0501234567", "так", "0661112233", "ні"}}
	dir := domain.NewDirectory()

	rec, err := NewEnterContact(p, cfg, nil).Execute(context.Background(), dir)
	require.NoError(t, err)
	require.Equal(t, "Alice", rec.Name().Value())

	require.Equal(t, []string{
		"Помилка: Ім'я повинно бути непорожнім рядком. Спробуйте ще раз.",
		"Помилка: Телефон повинен містити рівно 10 цифр. Спробуйте ще раз.",
	}, p.said)

	require.Equal(t, []string{
		cfg.Messages.NamePrompt,
		cfg.Messages.NamePrompt,
		cfg.Messages.PhonePrompt,
		cfg.Messages.PhonePrompt,
		cfg.Messages.MorePrompt,
		cfg.Messages.PhonePrompt,
		cfg.Messages.MorePrompt,
	}, p.prompts)

	require.Equal(t, "Ім'я контакту: Alice, телефони: 0501234567; 0661112233", dir.String())
}

func TestEnterContact_EOFAborts(t *testing.T) {
	p := &fakePrompter{inputs: []string{"Alice"}}
	dir := domain.NewDirectory()

	_, err := NewEnterContact(p, domain.DefaultConfig(), nil).Execute(context.Background(), dir)
	require.Error(t, err)
	require.True(t, errors.Is(err, io.EOF))
	require.True(t, domain.IsKind(err, domain.KindExecution))
	require.Equal(t, 0, dir.Len())
}

func TestEnterContact_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEnterContact(&fakePrompter{}, domain.DefaultConfig(), nil).Execute(ctx, domain.NewDirectory())
	require.ErrorIs(t, err, context.Canceled)
}
