package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha subset, the palette the hosting dashboard draws with.
const (
	colorText    lipgloss.Color = "#cdd6f4"
	colorSubtext lipgloss.Color = "#a6adc8"
	colorOverlay lipgloss.Color = "#6c7086"
	colorGreen   lipgloss.Color = "#a6e3a1"
	colorRed     lipgloss.Color = "#f38ba8"
	colorBlue    lipgloss.Color = "#89b4fa"
	colorTeal    lipgloss.Color = "#94e2d5"
)

var (
	styleText        = lipgloss.NewStyle().Foreground(colorText)
	styleBold        = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	styleSubtle      = lipgloss.NewStyle().Foreground(colorSubtext)
	styleOK          = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	styleError       = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	styleSpark       = lipgloss.NewStyle().Foreground(colorTeal)
	styleAction      = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	styleTableHeader = lipgloss.NewStyle().Foreground(colorSubtext).Bold(true)
	styleBorder      = lipgloss.NewStyle().Foreground(colorOverlay)
	stylePaneTitle   = lipgloss.NewStyle().Foreground(colorText).Bold(true)
)
