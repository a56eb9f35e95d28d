package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/phonebook/internal/domain"
	"github.com/aalvaropc/phonebook/internal/infra/logger"
	"github.com/aalvaropc/phonebook/internal/infra/workspacefinder"
	"github.com/aalvaropc/phonebook/internal/ports"
)

type workspaceCtx struct {
	root string // empty when no phonebook.yaml was found
	cfg  domain.Config
	log  *slog.Logger

	closeLog func() error
}

// loadWorkspace resolves config and starts file logging. A missing workspace is
// not an error: the entry commands run on defaults and log under the working directory.
func loadWorkspace(opts *rootOptions) (*workspaceCtx, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	finder := workspacefinder.NewFinder()
	var (
		locator ports.WorkspaceLocator = finder
		loader  ports.ConfigLoader     = finder
	)
	ws := &workspaceCtx{}

	if w := strings.TrimSpace(opts.workspace); w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return nil, fmt.Errorf("invalid workspace path: %w", err)
		}
		ws.root = abs
		ws.cfg, err = loader.LoadConfig(abs)
		if err != nil {
			if !domain.IsKind(err, domain.KindNotFound) {
				return nil, err
			}
			ws.cfg = domain.DefaultConfig()
		}
	} else {
		ws.root, ws.cfg, err = workspacefinder.ResolveConfig(locator, loader, wd)
		if err != nil {
			return nil, err
		}
	}

	logRoot := ws.root
	if logRoot == "" {
		logRoot = wd
	}
	cleanup, setupErr := logger.Setup(logger.Config{Root: logRoot, Debug: opts.debug})
	ws.closeLog = cleanup
	ws.log = logger.L()

	if err := logger.IsReady(); err != nil {
		if opts.debug {
			fmt.Fprintf(os.Stderr, "phonebook: file logging disabled: %v\n", setupErr)
		}
		return ws, nil
	}
	ws.log.Debug("workspace.loaded",
		"root", ws.root,
		"defaults", ws.root == "",
		"log_path", logger.Path(),
		"log_started", logger.InitTime(),
	)
	return ws, nil
}

func (ws *workspaceCtx) Close() error {
	if ws.closeLog == nil {
		return nil
	}
	return ws.closeLog()
}

func resolveInitRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(w)
	if err != nil {
		return "", fmt.Errorf("invalid workspace path: %w", err)
	}
	return abs, nil
}
