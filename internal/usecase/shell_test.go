package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/phonebook/internal/domain"
)

func TestShell_Exec(t *testing.T) {
	dir := domain.NewDirectory()
	sh := NewShell(dir, domain.DefaultConfig(), nil)

	out, quit, err := sh.Exec("add Alice 0501234567 0661112233")
	require.NoError(t, err)
	require.False(t, quit)
	require.Equal(t, "Ім'я контакту: Alice, телефони: 0501234567; 0661112233", out)

	out, _, err = sh.Exec("phone edit Alice 0501234567 0671112233")
	require.NoError(t, err)
	require.Equal(t, "Ім'я контакту: Alice, телефони: 0671112233; 0661112233", out)

	out, _, err = sh.Exec("phone find Alice 0661112233")
	require.NoError(t, err)
	require.Equal(t, "0661112233", out)

	out, _, err = sh.Exec("phone find Alice 0000000000")
	require.NoError(t, err)
	require.Equal(t, "Телефон не знайдено", out)

	out, _, err = sh.Exec("phone remove Alice 0661112233")
	require.NoError(t, err)
	require.Equal(t, "Ім'я контакту: Alice, телефони: 0671112233", out)

	out, _, err = sh.Exec("phone add Alice 0501234567")
	require.NoError(t, err)
	require.Equal(t, "Ім'я контакту: Alice, телефони: 0671112233; 0501234567", out)

	out, _, err = sh.Exec("find Bob")
	require.NoError(t, err)
	require.Equal(t, "Контакт не знайдено", out)

	out, _, err = sh.Exec("delete Alice")
	require.NoError(t, err)
	require.Equal(t, "OK", out)

	out, _, err = sh.Exec("show")
	require.NoError(t, err)
	require.Equal(t, domain.EmptyDirectoryMessage, out)

	_, quit, err = sh.Exec("exit")
	require.NoError(t, err)
	require.True(t, quit)
}

func TestShell_AddIsAllOrNothing(t *testing.T) {
	dir := domain.NewDirectory()
	sh := NewShell(dir, domain.DefaultConfig(), nil)

	_, _, err := sh.Exec("add Alice 0501234567 123")
	require.ErrorIs(t, err, domain.ErrInvalidPhone)
	require.Equal(t, 0, dir.Len())
}

func TestShell_AddOverwrites(t *testing.T) {
	dir := domain.NewDirectory()
	sh := NewShell(dir, domain.DefaultConfig(), nil)

	_, _, err := sh.Exec("add Alice 0501234567")
	require.NoError(t, err)
	_, _, err = sh.Exec("add Alice 0661112233")
	require.NoError(t, err)

	rec, ok := dir.Find("Alice")
	require.True(t, ok)
	require.Equal(t, []string{"0661112233"}, rec.PhoneValues())
}

func TestShell_Errors(t *testing.T) {
	sh := NewShell(domain.NewDirectory(), domain.DefaultConfig(), nil)

	_, _, err := sh.Exec("phone add Ghost 0501234567")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.True(t, domain.IsKind(err, domain.KindNotFound))

	_, _, err = sh.Exec("frobnicate")
	require.True(t, domain.IsKind(err, domain.KindUsage))

	_, _, err = sh.Exec("find")
	require.True(t, domain.IsKind(err, domain.KindUsage))

	out, quit, err := sh.Exec("   ")
	require.NoError(t, err)
	require.False(t, quit)
	require.Empty(t, out)
}

func TestShell_Run(t *testing.T) {
	dir := domain.NewDirectory()
	sh := NewShell(dir, domain.DefaultConfig(), nil)
	p := &fakePrompter{inputs: []string{
		"add Alice 0501234567",
		"phone edit Alice 0501234567 bad",
		"bogus",
		"quit",
		"add Never 0501234567",
	}}

	require.NoError(t, sh.Run(context.Background(), p))
	require.Equal(t, []string{
		"Ім'я контакту: Alice, телефони: 0501234567",
		"Помилка: Телефон повинен містити рівно 10 цифр. Спробуйте ще раз.",
		`Помилка: unknown command "bogus" (try help). Спробуйте ще раз.`,
	}, p.said)
	require.Equal(t, []string{"Alice"}, dir.Names())
}

func TestShell_RunStopsAtEOF(t *testing.T) {
	sh := NewShell(domain.NewDirectory(), domain.DefaultConfig(), nil)
	p := &fakePrompter{inputs: []string{"show"}}

	require.NoError(t, sh.Run(context.Background(), p))
	require.Equal(t, []string{domain.EmptyDirectoryMessage}, p.said)
}
