package tui

import "strings"

func renderPrompt(label, input, errMsg, hotKeys string) string {
	var b strings.Builder

	b.WriteString(labelStyle.Render(label))
	b.WriteString(" ")
	b.WriteString(input)
	b.WriteString("\n")

	if errMsg != "" {
		b.WriteString(errorStyle.Render(errMsg))
		b.WriteString("\n")
	}
	if hotKeys != "" {
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}

	return b.String()
}
