package client

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-envelope/models"
)

type addOptions struct {
	title    string
	username string
	website  string
	category string
	notes    string
	tags     []string
	favorite bool
}

func (a *App) newAddCommand() *cobra.Command {
	var opts addOptions

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an entry; the password is asked for interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := a.ensureUnlocked(ctx); err != nil {
				return err
			}

			title := opts.title
			if title == "" {
				var err error
				if title, err = a.prompter.Text(ctx, "Title:", ""); err != nil {
					return err
				}
			}
			password, err := a.prompter.NewSecret(ctx, "Entry password:")
			if err != nil {
				return err
			}

			entry := models.VaultEntry{
				Title:      title,
				Username:   opts.username,
				Website:    opts.website,
				Category:   opts.category,
				Notes:      opts.notes,
				Tags:       opts.tags,
				IsFavorite: opts.favorite,
			}
			saved, err := payload[models.VaultEntry](a.vault().SaveEntry(ctx, entry, password))
			if err != nil {
				return err
			}
			a.print.success("added %s (%s)", saved.Title, saved.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.title, "title", "t", "", "entry title")
	f.StringVarP(&opts.username, "username", "u", "", "login name")
	f.StringVarP(&opts.website, "website", "w", "", "site address")
	f.StringVar(&opts.category, "category", "", "category")
	f.StringVar(&opts.notes, "notes", "", "free-form notes")
	f.StringSliceVar(&opts.tags, "tag", nil, "tag, repeatable")
	f.BoolVar(&opts.favorite, "favorite", false, "mark as favorite")
	return cmd
}

func (a *App) newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List entries without revealing passwords",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := a.ensureUnlocked(ctx); err != nil {
				return err
			}

			entries, err := payload[[]models.VaultEntry](a.vault().ListEntries(ctx))
			if err != nil {
				return err
			}
			a.print.entries(entries)
			return nil
		},
	}
}

func (a *App) newShowCommand() *cobra.Command {
	var copyPassword bool

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show an entry and reveal its password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.ensureUnlocked(ctx); err != nil {
				return err
			}

			entry, err := payload[models.VaultEntry](a.vault().GetEntry(ctx, args[0]))
			if err != nil {
				return err
			}
			password, err := payload[string](a.vault().RevealEntry(ctx, args[0]))
			if err != nil {
				return err
			}

			a.print.entry(entry)
			if copyPassword {
				if err := a.clipboard.WriteAll(password); err != nil {
					a.log().Err(err).Msg("clipboard write failed")
					return err
				}
				a.print.success("password copied to clipboard")
				return nil
			}
			a.print.line("Password: %s", password)
			return nil
		},
	}
	cmd.Flags().BoolVar(&copyPassword, "copy", false, "copy the password to the clipboard instead of printing it")
	return cmd
}

func (a *App) newRemoveCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Delete an entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.ensureUnlocked(ctx); err != nil {
				return err
			}

			entry, err := payload[models.VaultEntry](a.vault().GetEntry(ctx, args[0]))
			if err != nil {
				return err
			}
			if !yes {
				ok, err := a.prompter.Confirm(ctx, "Delete \""+entry.Title+"\"?")
				if err != nil {
					return err
				}
				if !ok {
					return errAborted
				}
			}

			if err := check(a.vault().DeleteEntry(ctx, entry.ID)); err != nil {
				return err
			}
			a.print.success("deleted %s", entry.Title)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}
