package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorFg        = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	// Item styles
	IndexStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(5).
			Align(lipgloss.Right)

	ItemStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	ReservedStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	// History styles
	CommandStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	ResultStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(colorError)

	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151")).
			Foreground(colorFg).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	FocusedInputStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(colorPrimary).
				Padding(0, 1)
)

func RenderTitle(title string) string {
	return TitleStyle.Render(title)
}

func RenderError(err string) string {
	return ErrorMessageStyle.Render("error: " + err)
}

func RenderHelp(help string) string {
	return HelpStyle.Render(help)
}

// RenderItems renders one line per slot: live items with their index and
// quoted text, then a single summary line for the reserved slots.
func RenderItems(items []string, capacity int) string {
	var s strings.Builder
	for i, item := range items {
		s.WriteString(IndexStyle.Render(fmt.Sprint(i)))
		s.WriteString("  ")
		s.WriteString(ItemStyle.Render(fmt.Sprintf("[%q]", item)))
		s.WriteString("\n")
	}
	if free := capacity - len(items); free > 0 {
		s.WriteString(ReservedStyle.Render(fmt.Sprintf("%d reserved", free)))
	} else if len(items) == 0 {
		s.WriteString(ReservedStyle.Render("empty"))
	}
	return strings.TrimRight(s.String(), "\n")
}
