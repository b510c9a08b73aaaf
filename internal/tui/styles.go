package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"}
	accentColor  = lipgloss.AdaptiveColor{Light: "#9333ea", Dark: "#c084fc"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#64748b", Dark: "#94a3b8"}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	crumbStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(accentColor).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderLeft(true).
				BorderForeground(primaryColor)

	depthStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)
