package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aalvaropc/phonebook/internal/domain"
	"github.com/aalvaropc/phonebook/internal/ports"
)

const shellHelp = `Commands:
  add <name> [phone...]            create or replace a contact
  phone add <name> <phone>         add a phone to a contact
  phone remove <name> <phone>      remove every matching phone
  phone edit <name> <old> <new>    replace the first matching phone
  phone find <name> <phone>        look up a phone
  find <name>                      show a contact
  delete <name>                    delete a contact
  show                             show the whole book
  help                             show this help
  exit | quit                      leave the shell`

// Shell is a line command interpreter over a Directory.
type Shell struct {
	dir *domain.Directory
	cfg domain.Config
	log *slog.Logger
}

func NewShell(dir *domain.Directory, cfg domain.Config, log *slog.Logger) *Shell {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Shell{dir: dir, cfg: cfg, log: log}
}

// Run reads commands until exit or end of input.
func (sh *Shell) Run(ctx context.Context, p ports.Prompter) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := p.Ask("> ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		out, quit, err := sh.Exec(line)
		if err != nil {
			if !Retryable(err) && !domain.IsKind(err, domain.KindNotFound) && !domain.IsKind(err, domain.KindUsage) {
				return err
			}
			out = RetryMessage(sh.cfg.Messages, err)
		}
		if out != "" {
			if err := p.Say(out); err != nil {
				return err
			}
		}
		if quit {
			return nil
		}
	}
}

// Exec runs a single command line and returns what to print.
func (sh *Shell) Exec(line string) (out string, quit bool, err error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return "", false, nil
	}

	sh.log.Debug("shell.exec", "cmd", args[0], "argc", len(args)-1)
	defer func() {
		if err != nil {
			sh.log.Info("shell.error", "cmd", args[0], "kind", kindOf(err))
		}
	}()

	switch args[0] {
	case "add":
		if len(args) < 2 {
			return "", false, usage("add <name> [phone...]")
		}
		rec, err := domain.NewRecord(args[1])
		if err != nil {
			return "", false, err
		}
		for _, p := range args[2:] {
			if err := rec.AddPhone(p); err != nil {
				return "", false, err
			}
		}
		sh.dir.AddRecord(rec)
		return rec.String(), false, nil

	case "phone":
		return sh.execPhone(args[1:])

	case "find":
		if len(args) != 2 {
			return "", false, usage("find <name>")
		}
		rec, ok := sh.dir.Find(args[1])
		if !ok {
			return sh.cfg.Messages.NotFound, false, nil
		}
		return rec.String(), false, nil

	case "delete":
		if len(args) != 2 {
			return "", false, usage("delete <name>")
		}
		sh.dir.Delete(args[1])
		return "OK", false, nil

	case "show":
		return sh.dir.String(), false, nil

	case "help":
		return shellHelp, false, nil

	case "exit", "quit":
		return "", true, nil

	default:
		return "", false, &domain.OpError{
			Op:   "usecase.shell",
			Kind: domain.KindUsage,
			Err:  fmt.Errorf("unknown command %q (try help): %w", args[0], domain.ErrUsage),
		}
	}
}

func (sh *Shell) execPhone(args []string) (string, bool, error) {
	if len(args) < 3 {
		return "", false, usage("phone add|remove|edit|find <name> <phone> [new]")
	}

	sub, name := args[0], args[1]
	rec, ok := sh.dir.Find(name)
	if !ok {
		return "", false, &domain.OpError{
			Op:   "usecase.shell.phone",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("contact %q: %w", name, domain.ErrNotFound),
		}
	}

	switch sub {
	case "add":
		if err := rec.AddPhone(args[2]); err != nil {
			return "", false, err
		}
		return rec.String(), false, nil

	case "remove":
		rec.RemovePhone(args[2])
		return rec.String(), false, nil

	case "edit":
		if len(args) != 4 {
			return "", false, usage("phone edit <name> <old> <new>")
		}
		if err := rec.EditPhone(args[2], args[3]); err != nil {
			return "", false, err
		}
		return rec.String(), false, nil

	case "find":
		p, ok := rec.FindPhone(args[2])
		if !ok {
			return sh.cfg.Messages.NoPhone, false, nil
		}
		return p.String(), false, nil

	default:
		return "", false, usage("phone add|remove|edit|find <name> <phone> [new]")
	}
}

func usage(form string) error {
	return &domain.OpError{
		Op:   "usecase.shell",
		Kind: domain.KindUsage,
		Err:  fmt.Errorf("usage: %s: %w", form, domain.ErrUsage),
	}
}

func kindOf(err error) string {
	var oe *domain.OpError
	if errors.As(err, &oe) {
		return string(oe.Kind)
	}
	return string(domain.KindExecution)
}
