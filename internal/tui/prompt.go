// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const secretCharLimit = 1024

// promptModel reads one line. With masked set the input echoes '*' and the
// value never appears in View.
type promptModel struct {
	label    string
	input    textinput.Model
	required bool

	errMsg    string
	done      bool
	cancelled bool
}

func newPromptModel(label, initial string, masked, required bool) promptModel {
	in := textinput.New()
	in.CharLimit = secretCharLimit
	in.Width = 40
	in.Prompt = ""
	if masked {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	} else {
		in.SetValue(initial)
	}
	in.Focus()

	return promptModel{label: label, input: in, required: required}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.enter):
			if m.required && m.input.Value() == "" {
				m.errMsg = "a value is required"
				return m, nil
			}
			m.errMsg = ""
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	return renderPrompt(m.label, m.input.View(), m.errMsg, "enter: confirm │ esc: cancel")
}

func (m promptModel) Value() string {
	return m.input.Value()
}
