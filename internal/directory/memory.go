package directory

import (
	"context"
	"sort"
	"sync"
	"time"
)

// DefaultUsers is the fixed seed table. The same three rows back demo
// mode and the sqlite seed.
var DefaultUsers = []User{
	{ID: 101, Name: "Alice Johnson", Email: "alice@example.com"},
	{ID: 202, Name: "Ben Miller", Email: "ben@example.com"},
	{ID: 303, Name: "Carla Rossi", Email: "carla@example.com"},
}

// Table is an in-memory Lookup over a fixed set of users, with an
// optional artificial delay so screens exercise their loading state.
type Table struct {
	mu    sync.RWMutex
	users map[int]User
	delay time.Duration
}

// NewTable builds a table from users. delay is applied to every Find.
func NewTable(users []User, delay time.Duration) *Table {
	m := make(map[int]User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return &Table{users: m, delay: delay}
}

// Find looks up id after the configured delay. Cancelling the context
// short-circuits the wait.
func (t *Table) Find(ctx context.Context, id int) (*User, error) {
	if t.delay > 0 {
		select {
		case <-time.After(t.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	u, ok := t.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// List returns the users ordered by id.
func (t *Table) List(ctx context.Context) ([]User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]User, 0, len(t.users))
	for _, u := range t.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
