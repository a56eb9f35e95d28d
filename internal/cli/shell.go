package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/phonebook/internal/domain"
	"github.com/aalvaropc/phonebook/internal/infra/console"
	"github.com/aalvaropc/phonebook/internal/usecase"
)

func shellCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive command shell over an in-memory book (type help)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(opts)
			if err != nil {
				return err
			}
			defer func() { _ = ws.Close() }()

			sh := usecase.NewShell(domain.NewDirectory(), ws.cfg, ws.log)
			return sh.Run(cmd.Context(), console.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()))
		},
	}
}
