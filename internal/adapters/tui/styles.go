package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#1d4ed8", Dark: "#60a5fa"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	colorPrice  = lipgloss.AdaptiveColor{Light: "#15803d", Dark: "#4ade80"}
	colorError  = lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#f87171"}

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	FilterStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	BadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(colorAccent).
			Padding(0, 1)

	PriceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrice)

	MutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	CardStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	SelectedCardStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(colorAccent).
				PaddingLeft(1)

	PagerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError)
)
