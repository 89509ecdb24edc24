package client

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-envelope/models"
)

func (a *App) newExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Write every entry to a portable export file",
		Long: `Writes an export file whose passwords stay sealed under the master
password. The file can be imported into any vault that knows the same
master password.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.ensureUnlocked(ctx); err != nil {
				return err
			}

			info, err := payload[models.ExportInfo](a.vault().ExportVault(ctx, args[0]))
			if err != nil {
				return err
			}
			a.print.success("exported %d entries to %s (format v%d)", info.EntryCount, args[0], info.Version)
			return nil
		},
	}
}

func (a *App) newImportCommand() *cobra.Command {
	var (
		strategy string
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import entries from an export file",
		Long: `Imports an export file. Entries with the same title, username and
website as an existing one are duplicates and handled by --strategy:
  skip     keep the existing entry
  replace  overwrite the existing entry
  merge    keep the existing entry and fill its empty fields`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			merge, err := models.ParseMergeStrategy(strategy)
			if err != nil {
				return err
			}
			if err := a.ensureUnlocked(ctx); err != nil {
				return err
			}

			res := a.vault().ImportVault(ctx, args[0], models.ImportOptions{Strategy: merge, DryRun: dryRun})
			result, ok := res.Data.(models.ImportResult)
			if ok {
				a.print.importResult(result)
			}
			if err := check(res); err != nil {
				return err
			}
			if !ok {
				return errUnexpectedResult
			}
			a.print.success("import finished")
			return nil
		},
	}
	cmd.Flags().StringVar(&strategy, "strategy", string(models.MergeSkip), "duplicate handling: skip, replace or merge")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "decrypt and classify entries without writing")
	return cmd
}
