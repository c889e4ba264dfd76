package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bytes00000111/nativelink/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Accent).
			Foreground(style.White)

	stoppedTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				Background(style.Red).
				Foreground(style.White)

	labelStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Width(16)

	valueStyle = lipgloss.NewStyle().
			Foreground(style.White)

	okStyle = lipgloss.NewStyle().
		Foreground(style.Green)

	errorStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	helpStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)
)
