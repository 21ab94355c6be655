package formatter

import (
	"fmt"
	"strings"

	"github.com/arjunshenoy/funnelcast/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// DeliveryColor returns the lipgloss style for a delivery status band.
func DeliveryColor(status domain.DeliveryStatus) lipgloss.Style {
	switch status {
	case domain.DeliveryOnTrack:
		return StyleGreen
	case domain.DeliveryAtRisk:
		return StyleYellow
	case domain.DeliveryOffTrack:
		return StyleRed
	default:
		return StyleDim
	}
}

// DeliveryIndicator returns a colored status string such as "● ON TRACK".
func DeliveryIndicator(status domain.DeliveryStatus) string {
	switch status {
	case domain.DeliveryOnTrack:
		return StyleGreen.Render("● ON TRACK")
	case domain.DeliveryAtRisk:
		return StyleYellow.Render("● AT RISK")
	case domain.DeliveryOffTrack:
		return StyleRed.Render("● OFF TRACK")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
