package nav

import "github.com/google/uuid"

// Entry is one screen instance on the navigation stack. Its State
// lives exactly as long as the entry does: created on push, dropped on
// pop.
type Entry struct {
	id     string
	route  string
	params Params
	state  *State
}

// ID is the entry's unique handle, stable for its lifetime.
func (e *Entry) ID() string { return e.id }

// Route returns the pattern the entry was pushed under.
func (e *Entry) Route() string { return e.route }

// Params returns the entry's route arguments.
func (e *Entry) Params() Params { return e.params }

// State returns the entry's key/value store.
func (e *Entry) State() *State { return e.state }

// Stack is a plain back stack of entries. The root entry is never
// popped; screens above it come and go.
type Stack struct {
	entries []*Entry
}

// NewStack starts a stack with a root entry for route.
func NewStack(route string, params Params) *Stack {
	s := &Stack{}
	s.Push(route, params)
	return s
}

// Push creates a new entry on top of the stack and returns it.
func (s *Stack) Push(route string, params Params) *Entry {
	e := &Entry{
		id:     uuid.NewString(),
		route:  route,
		params: params,
		state:  NewState(),
	}
	s.entries = append(s.entries, e)
	return e
}

// Pop removes and returns the top entry. Popping the root is a no-op
// returning nil.
func (s *Stack) Pop() *Entry {
	if len(s.entries) <= 1 {
		return nil
	}
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return top
}

// Current returns the top entry, or nil on an empty stack.
func (s *Stack) Current() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

// Previous returns the entry under the top, the one a popped screen
// hands results back to. Nil when the top is the root.
func (s *Stack) Previous() *Entry {
	if len(s.entries) < 2 {
		return nil
	}
	return s.entries[len(s.entries)-2]
}

// Len reports the stack depth.
func (s *Stack) Len() int { return len(s.entries) }
