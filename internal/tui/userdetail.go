package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmcrawford/crewbook/internal/directory"
	"github.com/kmcrawford/crewbook/internal/nav"
)

// detailPhase is the detail screen's exposed state. Exactly one phase
// holds at any time.
type detailPhase int

const (
	phaseLoading detailPhase = iota
	phaseFound
	phaseNotFound
)

// userDetailScreen resolves its own record from the id in its route
// params. An absent or malformed id lands on notFound immediately,
// without passing through loading.
type userDetailScreen struct {
	app   *App
	entry *nav.Entry
	id    int
	phase detailPhase
	user  *directory.User
}

func newUserDetailScreen(a *App, entry *nav.Entry) *userDetailScreen {
	d := &userDetailScreen{app: a, entry: entry}
	id, ok := entry.Params().IntParam(nav.ParamID)
	if !ok {
		d.phase = phaseNotFound
		return d
	}
	d.id = id
	d.phase = phaseLoading
	return d
}

func (d *userDetailScreen) Init() tea.Cmd {
	if d.phase != phaseLoading {
		return nil
	}
	entryID := d.entry.ID()
	id := d.id
	return func() tea.Msg {
		u, err := d.app.dir.Find(d.app.ctx, id)
		return userFetchedMsg{entryID: entryID, user: u, err: err}
	}
}

// resolve moves the screen out of loading. A nil user means the lookup
// missed.
func (d *userDetailScreen) resolve(u *directory.User) {
	if d.phase != phaseLoading {
		return
	}
	if u == nil {
		d.phase = phaseNotFound
		return
	}
	d.user = u
	d.phase = phaseFound
}

func (d *userDetailScreen) Title() string { return "Member" }

func (d *userDetailScreen) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, d.app.keys.Quit):
		return tea.Quit
	case key.Matches(msg, d.app.keys.Back):
		d.app.pop()
	}
	return nil
}

func (d *userDetailScreen) View(width int) string {
	out := titleStyle.Render("Member Detail") + "\n\n"
	switch d.phase {
	case phaseLoading:
		return out + dimStyle.Render("loading...")
	case phaseNotFound:
		return out + errTextStyle.Render("User not found.")
	default:
		out += labelStyle.Render("ID:    ") + fmt.Sprintf("%d", d.user.ID) + "\n"
		out += labelStyle.Render("Name:  ") + d.user.Name + "\n"
		out += labelStyle.Render("Email: ") + d.user.Email
		return out
	}
}
