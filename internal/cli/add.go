package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/phonebook/internal/domain"
)

func addCmd(opts *rootOptions) *cobra.Command {
	var name string
	var phones []string

	c := &cobra.Command{
		Use:   "add",
		Short: "Validate one contact and print the resulting book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(opts)
			if err != nil {
				return err
			}
			defer func() { _ = ws.Close() }()

			rec, err := domain.NewRecord(name)
			if err != nil {
				return explain(ws.cfg, err)
			}
			for _, p := range phones {
				if err := rec.AddPhone(p); err != nil {
					return explain(ws.cfg, err)
				}
			}

			dir := domain.NewDirectory()
			dir.AddRecord(rec)
			ws.log.Info("add.ok", "phones", len(phones))

			fmt.Fprintln(cmd.OutOrStdout(), dir.String())
			return nil
		},
	}

	c.Flags().StringVarP(&name, "name", "n", "", "Contact name (required)")
	c.Flags().StringArrayVarP(&phones, "phone", "p", nil, "Phone number, 10 digits (repeatable)")

	_ = c.MarkFlagRequired("name")
	return c
}
