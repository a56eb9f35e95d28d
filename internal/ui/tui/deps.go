package tui

import (
	"log/slog"

	"github.com/aalvaropc/phonebook/internal/domain"
)

type Deps struct {
	Directory     *domain.Directory
	Config        domain.Config
	WorkspaceRoot string

	Logger *slog.Logger
	Debug  bool
}
