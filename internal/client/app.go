package client

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-envelope/internal/logger"
	"github.com/MKhiriev/go-pass-envelope/internal/tui"
	"github.com/MKhiriev/go-pass-envelope/models"
)

type App struct {
	buildInfo models.AppBuildInfo

	in        io.Reader
	prompter  Prompter
	clipboard Clipboard
	open      runtimeOpener
	print     printer

	configPath string
	rt         *runtime
}

type Option func(*App)

// WithIO replaces stdin, stdout and stderr.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(a *App) {
		a.in = in
		a.print = printer{out: out, errOut: errOut}
	}
}

func WithPrompter(p Prompter) Option {
	return func(a *App) { a.prompter = p }
}

func WithClipboard(c Clipboard) Option {
	return func(a *App) { a.clipboard = c }
}

func withRuntimeOpener(open runtimeOpener) Option {
	return func(a *App) { a.open = open }
}

func NewApp(buildInfo models.AppBuildInfo, opts ...Option) *App {
	a := &App{
		buildInfo: buildInfo,
		in:        os.Stdin,
		clipboard: systemClipboard{},
		open:      openRuntime,
		print:     printer{out: os.Stdout, errOut: os.Stderr},
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.prompter == nil {
		a.prompter = tui.New(a.in, a.print.errOut)
	}
	return a
}

// Run executes the command line args and prints any failure. The stores
// opened on the way are closed before it returns.
func (a *App) Run(ctx context.Context, args []string) error {
	defer a.closeRuntime(ctx)

	err := a.execute(ctx, args)
	if err != nil {
		a.print.failure(err)
	}
	return err
}

func (a *App) execute(ctx context.Context, args []string) error {
	root := a.newRootCommand()
	root.SetArgs(args)
	root.SetIn(a.in)
	root.SetOut(a.print.out)
	root.SetErr(a.print.errOut)
	return root.ExecuteContext(ctx)
}

// ensureRuntime opens the runtime once per process.
func (a *App) ensureRuntime(cmd *cobra.Command) error {
	if a.rt != nil {
		return nil
	}
	rt, err := a.open(cmd.Context(), a.configPath)
	if err != nil {
		return err
	}
	a.rt = rt
	return nil
}

func (a *App) closeRuntime(ctx context.Context) {
	if a.rt == nil {
		return
	}
	if err := a.rt.close(context.WithoutCancel(ctx)); err != nil {
		a.rt.logger.Err(err).Msg("error closing client runtime")
	}
	a.rt = nil
}

func (a *App) vault() Vault {
	return a.rt.vault
}

func (a *App) log() *logger.Logger {
	if a.rt == nil {
		return logger.Nop()
	}
	return a.rt.logger
}
var _ Client = (*App)(nil)
