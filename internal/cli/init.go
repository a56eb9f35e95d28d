package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/phonebook/internal/infra/fsworkspace"
	"github.com/aalvaropc/phonebook/internal/usecase"
)

func initCmd(opts *rootOptions) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create phonebook.yaml and the log directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := resolveInitRoot(opts.workspace)
			if err != nil {
				return err
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(root, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized Phonebook workspace at %s\n", root)
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "Overwrite phonebook.yaml if it exists")
	return c
}
