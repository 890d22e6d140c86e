package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/term"
)

const (
	defaultWidth = 80
	maxWidth     = 120
)

// renders assistant markdown for the terminal; falls back to the raw text
func RenderMarkdown(text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(min(width, maxWidth)-2),
	)
	if err != nil {
		return text
	}

	out, err := renderer.Render(text)
	if err != nil {
		return text
	}

	return strings.TrimRight(out, "\n") + "\n"
}

// width of the attached terminal, or the default when stdout is not one
func TerminalWidth() int {
	fd := os.Stdout.Fd()
	if !term.IsTerminal(fd) {
		return defaultWidth
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultWidth
	}

	return width
}

// reports whether stdout is attached to a terminal
func IsInteractive() bool {
	return term.IsTerminal(os.Stdout.Fd())
}
