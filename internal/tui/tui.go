// Package tui implements the client's interactive prompts on Bubble Tea.
package tui

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs one small Bubble Tea program per prompt on the given streams.
type TUI struct {
	in  io.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *TUI {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}
	return &TUI{in: in, out: out}
}

// Secret reads a masked, non-empty value such as a PIN or a password.
func (t *TUI) Secret(ctx context.Context, label string) (string, error) {
	return t.prompt(ctx, newPromptModel(label, "", true, true))
}

// NewSecret reads a masked value twice and fails with [ErrSecretMismatch]
// when the two entries differ.
func (t *TUI) NewSecret(ctx context.Context, label string) (string, error) {
	first, err := t.Secret(ctx, label)
	if err != nil {
		return "", err
	}
	second, err := t.Secret(ctx, "Repeat "+label)
	if err != nil {
		return "", err
	}
	if first != second {
		return "", ErrSecretMismatch
	}
	return first, nil
}

// Text reads a visible value prefilled with initial. Empty is allowed.
func (t *TUI) Text(ctx context.Context, label, initial string) (string, error) {
	return t.prompt(ctx, newPromptModel(label, initial, false, false))
}

// Confirm asks a yes/no question; anything but "y" is no.
func (t *TUI) Confirm(ctx context.Context, question string) (bool, error) {
	final, err := t.run(ctx, confirmModel{question: question})
	if err != nil {
		return false, err
	}

	m, ok := final.(confirmModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if m.cancelled || !m.done {
		return false, ErrUserQuit
	}
	return m.answer, nil
}

func (t *TUI) prompt(ctx context.Context, model promptModel) (string, error) {
	final, err := t.run(ctx, model)
	if err != nil {
		return "", err
	}

	m, ok := final.(promptModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if m.cancelled || !m.done {
		return "", ErrUserQuit
	}
	return m.Value(), nil
}

func (t *TUI) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	return tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	).Run()
}
