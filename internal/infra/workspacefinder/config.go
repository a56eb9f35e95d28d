package workspacefinder

import (
	"path/filepath"

	"github.com/aalvaropc/phonebook/internal/domain"
	"github.com/aalvaropc/phonebook/internal/infra/config"
	"github.com/aalvaropc/phonebook/internal/ports"
)

// LoadConfig loads phonebook.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	return loadConfig(filepath.Join(root, ConfigFile))
}

// ResolveConfig finds the workspace above startDir and loads its config.
// No workspace, or a workspace without a readable config, yields the defaults
// and an empty root; malformed config is an error.
func ResolveConfig(loc ports.WorkspaceLocator, loader ports.ConfigLoader, startDir string) (root string, cfg domain.Config, err error) {
	root, err = loc.FindRoot(startDir)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return "", domain.DefaultConfig(), nil
		}
		return "", domain.DefaultConfig(), err
	}

	cfg, err = loader.LoadConfig(root)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return root, domain.DefaultConfig(), nil
		}
		return root, domain.DefaultConfig(), err
	}
	return root, cfg, nil
}

func loadConfig(path string) (domain.Config, error) {
	return config.LoadConfig(path)
}
