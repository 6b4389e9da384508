// Package theme holds the Catppuccin Mocha palette and the shared lipgloss
// styles of the console.
package theme

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette, true-color hex values.
// https://catppuccin.com/palette
const (
	Rosewater lipgloss.Color = "#f5e0dc"
	Pink      lipgloss.Color = "#f5c2e7"
	Mauve     lipgloss.Color = "#cba6f7"
	Red       lipgloss.Color = "#f38ba8"
	Peach     lipgloss.Color = "#fab387"
	Yellow    lipgloss.Color = "#f9e2af"
	Green     lipgloss.Color = "#a6e3a1"
	Teal      lipgloss.Color = "#94e2d5"
	Sky       lipgloss.Color = "#89dceb"
	Blue      lipgloss.Color = "#89b4fa"
	Lavender  lipgloss.Color = "#b4befe"

	Text     lipgloss.Color = "#cdd6f4"
	Subtext0 lipgloss.Color = "#a6adc8"
	Overlay1 lipgloss.Color = "#7f849c"
	Overlay0 lipgloss.Color = "#6c7086"
	Surface2 lipgloss.Color = "#585b70"
	Surface0 lipgloss.Color = "#313244"
	Base     lipgloss.Color = "#1e1e2e"
	Mantle   lipgloss.Color = "#181825"
)

// Semantic aliases.
const (
	Accent  = Blue
	Focus   = Lavender
	Success = Green
	Error   = Red
	Warning = Yellow
	Info    = Teal
	Muted   = Subtext0
	Border  = Surface2
	TabOff  = Overlay1
)

var (
	App = lipgloss.NewStyle().Foreground(Text)

	Title     = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	HeaderBar = lipgloss.NewStyle().Background(Mantle).Foreground(Text)
	TabSep    = lipgloss.NewStyle().Foreground(Border).Background(Mantle)

	ActiveTab = lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Accent).
			Bold(true).
			Padding(0, 1)
	InactiveTab = lipgloss.NewStyle().
			Background(Mantle).
			Foreground(TabOff).
			Padding(0, 1)

	Status    = lipgloss.NewStyle().Foreground(Success).Background(Surface0)
	StatusErr = lipgloss.NewStyle().Foreground(Error).Background(Surface0)

	Key      = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	HelpDesc = lipgloss.NewStyle().Foreground(Muted)

	TableHeader = lipgloss.NewStyle().Foreground(Subtext0).Bold(true)
	Cursor      = lipgloss.NewStyle().Background(Surface0).Foreground(Lavender)
	Dim         = lipgloss.NewStyle().Foreground(Overlay0)
	Chip        = lipgloss.NewStyle().Foreground(Base).Background(Mauve).Padding(0, 1)
)
