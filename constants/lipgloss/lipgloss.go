package lipgloss

import (
	gloss "github.com/charmbracelet/lipgloss"
)

// Shared console styles used across commands.
var (
	Red     = gloss.NewStyle().Foreground(gloss.Color("#FF5555"))
	Green   = gloss.NewStyle().Foreground(gloss.Color("#50FA7B"))
	Yellow  = gloss.NewStyle().Foreground(gloss.Color("#F1FA8C"))
	BlueSky = gloss.NewStyle().Foreground(gloss.Color("#8BE9FD"))
	Gray    = gloss.NewStyle().Foreground(gloss.Color("#6272A4"))
	Info    = gloss.NewStyle().Foreground(gloss.Color("#8BE9FD")).Bold(true)

	BoxStyle = gloss.NewStyle().
			Border(gloss.RoundedBorder()).
			BorderForeground(gloss.Color("#6272A4")).
			Padding(0, 1)
)
