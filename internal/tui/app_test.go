package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmcrawford/crewbook/internal/config"
	"github.com/kmcrawford/crewbook/internal/directory"
	"github.com/kmcrawford/crewbook/internal/nav"
)

func newTestApp() *App {
	cfg := config.Config{UI: config.UIConfig{AccentDefault: "none"}}
	dir := directory.NewTable(directory.DefaultUsers, 0)
	return New(context.Background(), cfg, dir)
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func keyEnter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }

func keyEsc() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEsc} }

func keyDown() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyDown} }

func keyBackspace() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyBackspace} }

// press feeds a message into the app and runs any resulting command to
// completion, feeding produced messages back in, the way the runtime
// would.
func press(t *testing.T, a *App, msg tea.Msg) {
	t.Helper()
	_, cmd := a.Update(msg)
	runCmd(t, a, cmd)
}

func runCmd(t *testing.T, a *App, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	if msg == nil {
		return
	}
	if _, quit := msg.(tea.QuitMsg); quit {
		return
	}
	_, next := a.Update(msg)
	runCmd(t, a, next)
}

func TestPickEachColorReturnsItsHexToHome(t *testing.T) {
	for i, opt := range directory.ColorOptions {
		t.Run(opt.Name, func(t *testing.T) {
			a := newTestApp()
			press(t, a, keyRune('c'))
			if _, ok := a.top().(*colorPickerScreen); !ok {
				t.Fatal("picker should be on top")
			}
			for n := 0; n < i; n++ {
				press(t, a, keyRune('j'))
			}
			press(t, a, keyEnter())

			home, ok := a.top().(*homeScreen)
			if !ok {
				t.Fatal("home should be back on top after selection")
			}
			if home.result != opt.Hex {
				t.Fatalf("result = %q, want %q", home.result, opt.Hex)
			}

			view := a.View()
			if !strings.Contains(view, opt.Hex) {
				t.Fatalf("home view missing %s:\n%s", opt.Hex, view)
			}
			for _, other := range directory.ColorOptions {
				if other.Hex != opt.Hex && strings.Contains(view, other.Hex) {
					t.Fatalf("home view shows unselected hex %s:\n%s", other.Hex, view)
				}
			}
		})
	}
}

func TestCancelledPickerLeavesHomeDefault(t *testing.T) {
	a := newTestApp()
	before := a.View()

	press(t, a, keyRune('c'))
	press(t, a, keyDown())
	press(t, a, keyEsc())

	home, ok := a.top().(*homeScreen)
	if !ok {
		t.Fatal("home should be back on top after cancel")
	}
	if home.result != "" {
		t.Fatalf("result = %q, want empty after cancel", home.result)
	}
	if a.View() != before {
		t.Fatalf("home view changed after cancelled pick:\nbefore:\n%s\nafter:\n%s", before, a.View())
	}
}

func TestConsumedResultIsNotReplayed(t *testing.T) {
	a := newTestApp()
	press(t, a, keyRune('c'))
	press(t, a, keyEnter())

	home := a.top().(*homeScreen)
	if home.result == "" {
		t.Fatal("selection should have landed")
	}

	// The slot must be empty the moment the result was consumed.
	if _, ok := a.stack.Current().State().Get(nav.KeySelectedColor); ok {
		t.Fatal("result slot should be cleared after consumption")
	}

	// A fresh subscriber on the same entry sees nothing: revisiting the
	// screen cannot replay the old result.
	replayed := false
	cancel := a.stack.Current().State().Observe(nav.KeySelectedColor, func(_ string, ok bool) {
		if ok {
			replayed = true
		}
	})
	defer cancel()
	if replayed {
		t.Fatal("consumed result was replayed to a new observer")
	}

	// Opening and cancelling the picker again changes nothing.
	got := home.result
	press(t, a, keyRune('c'))
	press(t, a, keyEsc())
	if a.top().(*homeScreen).result != got {
		t.Fatal("cancelled revisit altered the displayed result")
	}
}

func TestHomeNavigatesToUserList(t *testing.T) {
	a := newTestApp()
	press(t, a, keyRune('u'))
	list, ok := a.top().(*userListScreen)
	if !ok {
		t.Fatal("user list should be on top")
	}
	if !list.loaded || len(list.ranked) != 3 {
		t.Fatalf("list loaded=%v len=%d, want 3 users", list.loaded, len(list.ranked))
	}
	press(t, a, keyEsc())
	if _, ok := a.top().(*homeScreen); !ok {
		t.Fatal("esc should return to home")
	}
}

func TestQuitKeysFromHome(t *testing.T) {
	a := newTestApp()
	_, cmd := a.Update(keyRune('q'))
	if cmd == nil {
		t.Fatal("q should produce a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q should quit from home")
	}
}
