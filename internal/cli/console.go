package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/phonebook/internal/domain"
	"github.com/aalvaropc/phonebook/internal/infra/console"
	"github.com/aalvaropc/phonebook/internal/usecase"
)

func consoleCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Enter a contact line by line, then print the book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(opts)
			if err != nil {
				return err
			}
			defer func() { _ = ws.Close() }()

			out := cmd.OutOrStdout()
			dir := domain.NewDirectory()
			p := console.NewPrompter(cmd.InOrStdin(), out)

			if _, err := usecase.NewEnterContact(p, ws.cfg, ws.log).Execute(cmd.Context(), dir); err != nil {
				return err
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, ws.cfg.Messages.Header)
			fmt.Fprintln(out, dir.String())
			return nil
		},
	}
}
