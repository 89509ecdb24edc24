package client

import (
	"github.com/spf13/cobra"
)

const annotationOffline = "offline"

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "passenv",
		Short: "Password vault with a PIN-sealed master password",
		Long: `passenv keeps a password vault whose entries are sealed under a master
password. The master password itself is sealed under a short PIN and
stored as an envelope document, locally or on an envelope server.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[annotationOffline] != "" || cmd.Name() == "help" {
				return nil
			}
			return a.ensureRuntime(cmd)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", a.configPath, "path to the JSON config file")

	root.AddCommand(
		a.newSetupCommand(),
		a.newUnlockCommand(),
		a.newLockCommand(),
		a.newStatusCommand(),
		a.newRotateCommand(),
		a.newAddCommand(),
		a.newListCommand(),
		a.newShowCommand(),
		a.newRemoveCommand(),
		a.newExportCommand(),
		a.newImportCommand(),
		a.newShellCommand(),
		a.newVersionCommand(),
	)
	return root
}
