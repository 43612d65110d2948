package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorText     = lipgloss.Color("#cdd6f4")
	colorSubtext  = lipgloss.Color("#a6adc8")
	colorOverlay  = lipgloss.Color("#7f849c")
	colorLavender = lipgloss.Color("#b4befe")
	colorRedUI    = lipgloss.Color("#f38ba8")

	titleStyle   = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(colorLavender)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	labelStyle   = lipgloss.NewStyle().Foreground(colorSubtext)
	dimStyle     = lipgloss.NewStyle().Foreground(colorOverlay)
	statusStyle  = lipgloss.NewStyle().Foreground(colorSubtext)
	errTextStyle = lipgloss.NewStyle().Foreground(colorRedUI)
	cursorStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorLavender)
)

func renderHeader(app, screenTitle string, width int) string {
	left := headerStyle.Render(app)
	right := dimStyle.Render(screenTitle)
	line := left + "  " + right
	if width > 0 && lipgloss.Width(line) < width {
		line += strings.Repeat(" ", width-lipgloss.Width(line))
	}
	return line
}

// renderFooter shows the hints relevant to the screen on top.
func renderFooter(s screen, keys keyMap) string {
	var bindings []key.Binding
	switch s.(type) {
	case *homeScreen:
		bindings = []key.Binding{keys.Colors, keys.Users, keys.Quit}
	case *colorPickerScreen:
		bindings = []key.Binding{keys.UpDown, keys.Select, keys.Back}
	case *userListScreen:
		bindings = []key.Binding{keys.ListNav, keys.Select, keys.Back}
	case *userDetailScreen:
		bindings = []key.Binding{keys.Back, keys.Quit}
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, dimStyle.Render("["+h.Key+"] "+h.Desc))
	}
	return strings.Join(parts, "  ")
}

// swatch renders a colored block for a hex value.
func swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■")
}
