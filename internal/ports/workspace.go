package ports

import "github.com/aalvaropc/phonebook/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
