package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmcrawford/crewbook/internal/directory"
	"github.com/kmcrawford/crewbook/internal/nav"
)

// homeScreen is the root screen. It owns the result slot the color
// picker writes into: it observes the slot, records a delivered hex
// value and consumes it on the spot, so revisits never replay a stale
// selection.
type homeScreen struct {
	app    *App
	entry  *nav.Entry
	result string // picked hex, empty until a selection lands
}

func newHomeScreen(a *App, entry *nav.Entry) *homeScreen {
	h := &homeScreen{app: a, entry: entry}
	// The root entry lives for the whole program, so the subscription
	// is never cancelled.
	entry.State().Observe(nav.KeySelectedColor, func(v string, ok bool) {
		if !ok {
			return
		}
		h.result = v
		entry.State().ConsumeAndClear(nav.KeySelectedColor)
	})
	return h
}

func (h *homeScreen) Init() tea.Cmd { return nil }

func (h *homeScreen) Title() string { return "Home" }

func (h *homeScreen) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, h.app.keys.Quit):
		return tea.Quit
	case key.Matches(msg, h.app.keys.Colors):
		return h.app.push(nav.RouteColorPicker)
	case key.Matches(msg, h.app.keys.Users):
		return h.app.push(nav.RouteUserList)
	}
	return nil
}

func (h *homeScreen) View(width int) string {
	out := titleStyle.Render("Welcome") + "\n\n"
	accent := h.app.cfg.UI.AccentDefault
	if accent == "" {
		accent = "none"
	}
	if h.result == "" {
		out += labelStyle.Render("Accent color: ") + dimStyle.Render(accent)
	} else {
		out += labelStyle.Render("Accent color: ") + swatch(h.result) + " " + h.result
		if name := colorName(h.result); name != "" {
			out += dimStyle.Render(fmt.Sprintf(" (%s)", name))
		}
	}
	return out
}

func colorName(hex string) string {
	for _, opt := range directory.ColorOptions {
		if opt.Hex == hex {
			return opt.Name
		}
	}
	return ""
}
