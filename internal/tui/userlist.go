package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmcrawford/crewbook/internal/directory"
	"github.com/kmcrawford/crewbook/internal/nav"
)

// userListScreen shows the directory. Selecting a row forwards only
// the integer id into the detail route; the destination re-fetches the
// record itself.
type userListScreen struct {
	app    *App
	entry  *nav.Entry
	users  []directory.User
	ranked []directory.User
	query  string
	cursor int
	loaded bool
}

func newUserListScreen(a *App, entry *nav.Entry) *userListScreen {
	return &userListScreen{app: a, entry: entry}
}

func (l *userListScreen) Init() tea.Cmd {
	entryID := l.entry.ID()
	return func() tea.Msg {
		users, err := l.app.dir.List(l.app.ctx)
		return usersLoadedMsg{entryID: entryID, users: users, err: err}
	}
}

func (l *userListScreen) Title() string { return "Team" }

func (l *userListScreen) setUsers(users []directory.User) {
	l.users = users
	l.loaded = true
	l.rerank()
}

func (l *userListScreen) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, l.app.keys.Back):
		l.app.pop()
		return nil
	case msg.String() == "up", msg.String() == "ctrl+p":
		if l.cursor > 0 {
			l.cursor--
		}
		return nil
	case msg.String() == "down", msg.String() == "ctrl+n":
		if l.cursor < len(l.ranked)-1 {
			l.cursor++
		}
		return nil
	case key.Matches(msg, l.app.keys.Select):
		if l.cursor >= len(l.ranked) {
			return nil
		}
		u := l.ranked[l.cursor]
		return l.app.push(nav.FillRoute(nav.RouteUserDetail, nav.Params{nav.ParamID: strconv.Itoa(u.ID)}))
	}

	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if len(l.query) > 0 {
			l.query = l.query[:len(l.query)-1]
			l.rerank()
		}
	case tea.KeySpace:
		l.query += " "
		l.rerank()
	case tea.KeyRunes:
		l.query += string(msg.Runes)
		l.rerank()
	}
	return nil
}

func (l *userListScreen) rerank() {
	l.ranked = rankUsers(l.users, l.query)
	if l.cursor >= len(l.ranked) {
		l.cursor = 0
	}
}

func (l *userListScreen) View(width int) string {
	out := titleStyle.Render("Team Directory") + "\n\n"
	search := dimStyle.Render("(type to filter)")
	if strings.TrimSpace(l.query) != "" {
		search = l.query
	}
	out += labelStyle.Render("Filter: ") + search + "\n\n"

	if !l.loaded {
		return out + dimStyle.Render("loading...")
	}
	if len(l.ranked) == 0 {
		return out + dimStyle.Render("(no users)")
	}
	for i, u := range l.ranked {
		marker := "  "
		name := labelStyle.Render(u.Name)
		if i == l.cursor {
			marker = cursorStyle.Render("▶ ")
			name = cursorStyle.Render(u.Name)
		}
		out += fmt.Sprintf("%s%s %s\n", marker, name, dimStyle.Render(fmt.Sprintf("#%d  %s", u.ID, u.Email)))
	}
	return out
}

// rankUsers orders users by relevance to query: substring matches
// first, then by edit distance to the name, ties broken by id. An
// empty query keeps the id order.
func rankUsers(users []directory.User, query string) []directory.User {
	out := append([]directory.User(nil), users...)
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
		return out
	}
	type scored struct {
		user      directory.User
		substring bool
		distance  int
	}
	rows := make([]scored, 0, len(out))
	for _, u := range out {
		name := strings.ToLower(u.Name)
		rows = append(rows, scored{
			user:      u,
			substring: strings.Contains(name, q),
			distance:  levenshtein.ComputeDistance(q, name),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].substring != rows[j].substring {
			return rows[i].substring
		}
		if rows[i].distance != rows[j].distance {
			return rows[i].distance < rows[j].distance
		}
		return rows[i].user.ID < rows[j].user.ID
	})
	for i := range rows {
		out[i] = rows[i].user
	}
	return out
}
