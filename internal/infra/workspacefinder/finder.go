package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/phonebook/internal/domain"
	"github.com/aalvaropc/phonebook/internal/ports"
)

// ConfigFile marks a workspace root.
const ConfigFile = "phonebook.yaml"

// Finder walks up from a directory to the nearest one holding its marker file.
type Finder struct {
	ConfigFile string
}

var (
	_ ports.WorkspaceLocator = (*Finder)(nil)
	_ ports.ConfigLoader     = (*Finder)(nil)
)

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFile}
}

func (f *Finder) FindRoot(startDir string) (string, error) {
	const op = "workspacefinder.find_root"

	if startDir == "" {
		return "", &domain.OpError{Op: op, Kind: domain.KindInvalidConfig, Err: errors.New("start directory is empty")}
	}
	dir, err := startingDir(startDir)
	if err != nil {
		return "", &domain.OpError{Op: op, Kind: domain.KindExecution, Path: startDir, Err: err}
	}

	for _, d := range ancestors(dir) {
		if isFile(filepath.Join(d, f.ConfigFile)) {
			return d, nil
		}
	}
	return "", &domain.OpError{Op: op, Kind: domain.KindNotFound, Path: dir, Err: domain.ErrNotFound}
}

// LoadConfig reads the marker file under root.
func (f *Finder) LoadConfig(root string) (domain.Config, error) {
	return loadConfig(filepath.Join(root, f.ConfigFile))
}

// startingDir resolves p to an absolute directory; a file path yields its parent.
func startingDir(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}
	return filepath.Clean(abs), nil
}

// ancestors lists dir and its parents up to the filesystem root, nearest first.
func ancestors(dir string) []string {
	var out []string
	for {
		out = append(out, dir)
		parent := filepath.Dir(dir)
		if parent == dir {
			return out
		}
		dir = parent
	}
}

func isFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
