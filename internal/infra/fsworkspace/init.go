package fsworkspace

import (
	_ "embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/phonebook/internal/domain"
	"github.com/aalvaropc/phonebook/internal/infra/logger"
	"github.com/aalvaropc/phonebook/internal/ports"
)

const (
	configName     = "phonebook.yaml"
	gitignoreName  = ".gitignore"
	gitignoreTitle = "# Phonebook"
	gitignoreEntry = ".phonebook/"
)

//go:embed templates/phonebook.yaml
var configTemplate []byte

// Initializer scaffolds a workspace: config template, log directory and a
// .gitignore entry for the log directory. Contacts are never written.
type Initializer struct{}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

func NewInitializer() *Initializer {
	return &Initializer{}
}

func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)

	steps := []func(string) error{
		func(r string) error { return os.MkdirAll(logger.Dir(r), 0o755) },
		func(r string) error { return writeConfig(r, force) },
		ensureGitignore,
	}
	for _, step := range steps {
		if err := step(root); err != nil {
			return &domain.OpError{
				Op:   "fsworkspace.init",
				Kind: domain.KindExecution,
				Path: root,
				Err:  err,
			}
		}
	}
	return nil
}

func writeConfig(root string, force bool) error {
	dst := filepath.Join(root, configName)
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}

	f, err := os.OpenFile(dst, flags, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if _, err := f.Write(configTemplate); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// ensureGitignore appends the log directory to .gitignore unless some line
// already ignores it.
func ensureGitignore(root string) error {
	path := filepath.Join(root, gitignoreName)

	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	hasTitle := false
	for _, line := range strings.Split(string(existing), "\n") {
		switch strings.TrimSpace(line) {
		case gitignoreEntry:
			return nil
		case gitignoreTitle:
			hasTitle = true
		}
	}

	var b strings.Builder
	b.Write(existing)
	if len(existing) > 0 {
		if existing[len(existing)-1] != '\n' {
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	if !hasTitle {
		b.WriteString(gitignoreTitle + "\n")
	}
	b.WriteString(gitignoreEntry + "\n")

	return os.WriteFile(path, []byte(b.String()), 0o644)
}
