package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/phonebook/internal/domain"
	"github.com/aalvaropc/phonebook/internal/ui/tui"
)

type rootOptions struct {
	workspace string
	debug     bool
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "phonebook",
		Short:        "Phonebook: contacts with validated phone numbers",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(opts)
			if err != nil {
				return err
			}
			defer func() { _ = ws.Close() }()

			return tui.Run(tui.Deps{
				Directory:     domain.NewDirectory(),
				Config:        ws.cfg,
				WorkspaceRoot: ws.root,
				Logger:        ws.log,
				Debug:         opts.debug,
			})
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .phonebook/logs/phonebook.log")
	cmd.PersistentFlags().StringVarP(&opts.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")

	cmd.AddCommand(
		consoleCmd(opts),
		shellCmd(opts),
		addCmd(opts),
		initCmd(opts),
		versionCmd(),
	)
	return cmd
}
