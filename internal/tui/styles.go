package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorDarkGray  = lipgloss.Color("#444444")
	colorPurple    = lipgloss.Color("#8524a6")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorPurple)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDarkGray).
			Italic(true)
)
