package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmcrawford/crewbook/internal/config"
	"github.com/kmcrawford/crewbook/internal/directory"
	"github.com/kmcrawford/crewbook/internal/nav"
)

// Directory is the lookup surface the screens need. Both the sqlite
// repository and the in-memory table satisfy it.
type Directory interface {
	Find(ctx context.Context, id int) (*directory.User, error)
	List(ctx context.Context) ([]directory.User, error)
}

// screen is one entry's worth of UI state. Screens live and die with
// their navigation entry.
type screen interface {
	// Init returns the screen's startup command, if any.
	Init() tea.Cmd
	// HandleKey reacts to a key press while the screen is on top.
	HandleKey(msg tea.KeyMsg) tea.Cmd
	// View renders the screen body.
	View(width int) string
	// Title labels the header while the screen is on top.
	Title() string
}

// App ties together the navigation stack and its screens.
type App struct {
	ctx     context.Context
	cfg     config.Config
	dir     Directory
	stack   *nav.Stack
	screens []screen // parallel to the stack entries
	keys    keyMap
	status  string
	width   int
	height  int
}

func New(ctx context.Context, cfg config.Config, dir Directory) *App {
	a := &App{
		ctx:  ctx,
		cfg:  cfg,
		dir:  dir,
		keys: newKeyMap(),
	}
	a.stack = nav.NewStack(nav.RouteHome, nil)
	a.screens = []screen{newHomeScreen(a, a.stack.Current())}
	return a
}

func (a *App) Init() tea.Cmd {
	return a.top().Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		return a, nil
	case tea.KeyMsg:
		switch m.String() {
		case "ctrl+c":
			return a, tea.Quit
		}
		return a, a.top().HandleKey(m)
	case usersLoadedMsg:
		// Routed by entry ID so a load finishing while the list is
		// covered by a detail screen still lands.
		for _, s := range a.screens {
			if list, ok := s.(*userListScreen); ok && list.entry.ID() == m.entryID {
				list.setUsers(m.users)
			}
		}
		if m.err != nil {
			a.status = "error: " + m.err.Error()
		}
		return a, nil
	case userFetchedMsg:
		// Delivered to the detail screen only if its entry is still on
		// the stack; a result for a popped screen is discarded.
		for _, s := range a.screens {
			if d, ok := s.(*userDetailScreen); ok && d.entry.ID() == m.entryID {
				d.resolve(m.user)
			}
		}
		if m.err != nil {
			a.status = "error: " + m.err.Error()
		}
		return a, nil
	}
	return a, nil
}

func (a *App) View() string {
	body := a.top().View(a.contentWidth())
	out := renderHeader(appName, a.top().Title(), a.contentWidth()) + "\n\n" + body
	if a.status != "" {
		out += "\n\n" + statusStyle.Render(a.status)
	}
	return out + "\n\n" + renderFooter(a.top(), a.keys)
}

// push creates a new entry plus its screen and returns the screen's
// startup command. route is a concrete route; parameterized screens
// recover their arguments by parsing it against the pattern.
func (a *App) push(route string) tea.Cmd {
	var params nav.Params
	if nav.RouteBase(route) == nav.RouteBase(nav.RouteUserDetail) {
		params, _ = nav.ParseRoute(nav.RouteUserDetail, route)
	}
	entry := a.stack.Push(route, params)
	var s screen
	switch nav.RouteBase(route) {
	case nav.RouteColorPicker:
		s = newColorPickerScreen(a, entry)
	case nav.RouteUserList:
		s = newUserListScreen(a, entry)
	case nav.RouteBase(nav.RouteUserDetail):
		s = newUserDetailScreen(a, entry)
	default:
		s = newHomeScreen(a, entry)
	}
	a.screens = append(a.screens, s)
	return s.Init()
}

// pop drops the top entry and its screen. The root stays put.
func (a *App) pop() {
	if a.stack.Pop() == nil {
		return
	}
	a.screens = a.screens[:len(a.screens)-1]
}

func (a *App) top() screen {
	return a.screens[len(a.screens)-1]
}

func (a *App) contentWidth() int {
	if a.width == 0 {
		return 80
	}
	return a.width
}

const appName = "Crewbook"

// messages
type usersLoadedMsg struct {
	entryID string
	users   []directory.User
	err     error
}

type userFetchedMsg struct {
	entryID string
	user    *directory.User
	err     error
}
