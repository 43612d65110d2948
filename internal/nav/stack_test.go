package nav

import "testing"

func TestStackPushPop(t *testing.T) {
	s := NewStack(RouteHome, nil)
	if s.Len() != 1 {
		t.Fatalf("len = %d, want 1", s.Len())
	}
	if s.Previous() != nil {
		t.Fatal("root entry should have no previous")
	}

	picker := s.Push(RouteColorPicker, nil)
	if s.Current() != picker {
		t.Fatal("pushed entry should be current")
	}
	if s.Previous() == nil || s.Previous().Route() != RouteHome {
		t.Fatal("previous should be the home entry")
	}

	popped := s.Pop()
	if popped != picker {
		t.Fatal("pop should return the picker entry")
	}
	if s.Current().Route() != RouteHome {
		t.Fatalf("current route = %q, want home", s.Current().Route())
	}
}

func TestStackRootIsNotPoppable(t *testing.T) {
	s := NewStack(RouteHome, nil)
	if s.Pop() != nil {
		t.Fatal("popping the root should be a no-op")
	}
	if s.Len() != 1 || s.Current() == nil {
		t.Fatal("root entry must survive")
	}
}

func TestStackEntriesHaveDistinctIDsAndStores(t *testing.T) {
	s := NewStack(RouteHome, nil)
	home := s.Current()
	picker := s.Push(RouteColorPicker, nil)

	if home.ID() == picker.ID() {
		t.Fatal("entries should have distinct ids")
	}
	picker.State().Set("k", "v")
	if _, ok := home.State().Get("k"); ok {
		t.Fatal("entry stores must be independent")
	}
}

func TestStackEntryStateDroppedOnPop(t *testing.T) {
	s := NewStack(RouteHome, nil)
	s.Push(RouteColorPicker, nil)
	s.Current().State().Set("k", "v")
	s.Pop()

	// A revisit gets a fresh entry with a fresh store.
	again := s.Push(RouteColorPicker, nil)
	if _, ok := again.State().Get("k"); ok {
		t.Fatal("new entry should not carry the popped entry's state")
	}
}

func TestStackPushCarriesParams(t *testing.T) {
	s := NewStack(RouteHome, nil)
	e := s.Push(RouteUserDetail, Params{ParamID: "101"})
	id, ok := e.Params().IntParam(ParamID)
	if !ok || id != 101 {
		t.Fatalf("id = %d (ok=%v), want 101", id, ok)
	}
}
