package terminal

import "github.com/charmbracelet/lipgloss"

var (
	cpMauve    = lipgloss.Color("#cba6f7")
	cpRed      = lipgloss.Color("#f38ba8")
	cpPeach    = lipgloss.Color("#fab387")
	cpYellow   = lipgloss.Color("#f9e2af")
	cpGreen    = lipgloss.Color("#a6e3a1")
	cpTeal     = lipgloss.Color("#94e2d5")
	cpBlue     = lipgloss.Color("#89b4fa")
	cpLavender = lipgloss.Color("#b4befe")
	cpText     = lipgloss.Color("#cdd6f4")
	cpSubtext0 = lipgloss.Color("#a6adc8")
	cpSubtext1 = lipgloss.Color("#bac2de")
	cpOverlay1 = lipgloss.Color("#7f849c")
	cpSurface0 = lipgloss.Color("#313244")

	headingBars = []lipgloss.Style{
		lipgloss.NewStyle().Bold(true).Foreground(cpBlue),
		lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		lipgloss.NewStyle().Bold(true).Foreground(cpTeal),
		lipgloss.NewStyle().Bold(true).Foreground(cpGreen),
	}
	headingStyle    = lipgloss.NewStyle().Bold(true).Foreground(cpLavender)
	linkURLStyle    = lipgloss.NewStyle().Foreground(cpBlue).Faint(true)
	buttonStyle     = lipgloss.NewStyle().Foreground(cpPeach)
	imageLabelStyle = lipgloss.NewStyle().Foreground(cpMauve).Faint(true).Italic(true)
	imageTextStyle  = lipgloss.NewStyle().Foreground(cpSubtext1).Italic(true)
	publisherStyle  = lipgloss.NewStyle().Foreground(cpSubtext0)
	previewTitle    = lipgloss.NewStyle().Foreground(cpText)
	previewOpen     = lipgloss.NewStyle().Bold(true).Foreground(cpYellow)
	userBadgeStyle  = lipgloss.NewStyle().Foreground(cpTeal).Faint(true)
	cursorStyle     = lipgloss.NewStyle().Background(cpSurface0).Foreground(cpText)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(cpRed)
	messageStyle    = lipgloss.NewStyle().Foreground(cpGreen)
	spinnerStyle    = lipgloss.NewStyle().Foreground(cpOverlay1).Italic(true)
)
