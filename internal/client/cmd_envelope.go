package client

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-envelope/models"
)

func (a *App) newSetupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Create the envelope: choose a master password and a PIN",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			masterPassword, err := a.prompter.NewSecret(ctx, "Master password:")
			if err != nil {
				return err
			}
			pin, err := a.prompter.NewSecret(ctx, "PIN:")
			if err != nil {
				return err
			}

			if err := check(a.vault().Setup(ctx, masterPassword, pin)); err != nil {
				return err
			}
			a.print.success("vault set up for %s", a.vault().Account().Email)
			return nil
		},
	}
}

func (a *App) newUnlockCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unlock",
		Short: "Check the PIN and unlock the vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureUnlocked(cmd.Context()); err != nil {
				return err
			}
			a.print.success("vault unlocked")
			return nil
		},
	}
}

func (a *App) newLockCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lock",
		Short: "Forget the unlocked master password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := check(a.vault().Lock(cmd.Context())); err != nil {
				return err
			}
			a.print.success("vault locked")
			return nil
		},
	}
}

func (a *App) newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether the vault is set up and unlocked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := payload[models.EnvelopeState](a.vault().Status(cmd.Context()))
			if err != nil {
				return err
			}
			account := a.vault().Account()
			a.print.line("account: %s <%s>", account.UID, account.Email)
			a.print.line("state:   %s", state)
			return nil
		},
	}
}

func (a *App) newRotateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rotate",
		Short: "Change the master password and the PIN, re-sealing every entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var req models.RotateRequest
			var err error
			if req.OldPassword, err = a.prompter.Secret(ctx, "Current master password:"); err != nil {
				return err
			}
			if req.OldPIN, err = a.prompter.Secret(ctx, "Current PIN:"); err != nil {
				return err
			}
			if req.NewPassword, err = a.prompter.NewSecret(ctx, "New master password:"); err != nil {
				return err
			}
			if req.NewPIN, err = a.prompter.NewSecret(ctx, "New PIN:"); err != nil {
				return err
			}

			if err := check(a.vault().Rotate(ctx, req)); err != nil {
				return err
			}
			a.print.success("master password and PIN rotated")
			return nil
		},
	}
}
