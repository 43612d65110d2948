package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmcrawford/crewbook/internal/directory"
	"github.com/kmcrawford/crewbook/internal/nav"
)

// colorPickerScreen offers the fixed accent palette. Selecting writes
// the hex into the previous entry's state and pops; cancelling pops
// without writing, leaving the caller exactly as it was.
type colorPickerScreen struct {
	app    *App
	entry  *nav.Entry
	cursor int
}

func newColorPickerScreen(a *App, entry *nav.Entry) *colorPickerScreen {
	return &colorPickerScreen{app: a, entry: entry}
}

func (p *colorPickerScreen) Init() tea.Cmd { return nil }

func (p *colorPickerScreen) Title() string { return "Pick Accent Color" }

func (p *colorPickerScreen) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, p.app.keys.Quit):
		return tea.Quit
	case key.Matches(msg, p.app.keys.Back):
		p.app.pop()
		return nil
	case key.Matches(msg, p.app.keys.UpDown):
		switch msg.String() {
		case "up", "k":
			if p.cursor > 0 {
				p.cursor--
			}
		case "down", "j":
			if p.cursor < len(directory.ColorOptions)-1 {
				p.cursor++
			}
		}
		return nil
	case key.Matches(msg, p.app.keys.Select):
		opt := directory.ColorOptions[p.cursor]
		if prev := p.app.stack.Previous(); prev != nil {
			prev.State().Set(nav.KeySelectedColor, opt.Hex)
		}
		p.app.pop()
		return nil
	}
	return nil
}

func (p *colorPickerScreen) View(width int) string {
	out := titleStyle.Render("Accent Color") + "\n\n"
	for i, opt := range directory.ColorOptions {
		marker := "  "
		name := labelStyle.Render(opt.Name)
		if i == p.cursor {
			marker = cursorStyle.Render("▶ ")
			name = cursorStyle.Render(opt.Name)
		}
		out += marker + swatch(opt.Hex) + " " + name + " " + dimStyle.Render(opt.Hex) + "\n"
	}
	return out
}
