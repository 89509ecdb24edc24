package client

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-envelope/internal/tui"
)

func (a *App) newShellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run commands in one session until exit or auto-lock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a.print.line("type a command, `exit` to leave")

			for ctx.Err() == nil {
				line, err := a.prompter.Text(ctx, "passenv>", "")
				if errors.Is(err, tui.ErrUserQuit) {
					return nil
				}
				if err != nil {
					return err
				}

				args := strings.Fields(line)
				if len(args) == 0 {
					continue
				}
				switch args[0] {
				case "exit", "quit":
					return nil
				case "shell":
					a.print.warn("already in the shell")
					continue
				}

				if err := a.execute(ctx, args); err != nil {
					a.print.failure(err)
				}
			}
			return ctx.Err()
		},
	}
}

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationOffline: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.print.line("%s", a.buildInfo)
			return nil
		},
	}
}
