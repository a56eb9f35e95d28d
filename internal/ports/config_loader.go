package ports

import "github.com/aalvaropc/phonebook/internal/domain"

// ConfigLoader reads phonebook.yaml from a workspace root.
type ConfigLoader interface {
	LoadConfig(root string) (domain.Config, error)
}
