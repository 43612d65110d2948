package directory

import (
	"context"
	"testing"
	"time"
)

func TestTableFind(t *testing.T) {
	tests := []struct {
		name     string
		id       int
		wantUser bool
		wantName string
	}{
		{name: "ben", id: 202, wantUser: true, wantName: "Ben Miller"},
		{name: "alice", id: 101, wantUser: true, wantName: "Alice Johnson"},
		{name: "carla", id: 303, wantUser: true, wantName: "Carla Rossi"},
		{name: "miss", id: 999, wantUser: false},
		{name: "zero", id: 0, wantUser: false},
		{name: "negative", id: -101, wantUser: false},
	}

	tbl := NewTable(DefaultUsers, 0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := tbl.Find(context.Background(), tt.id)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (u != nil) != tt.wantUser {
				t.Fatalf("found = %v, want %v", u != nil, tt.wantUser)
			}
			if u != nil && u.Name != tt.wantName {
				t.Fatalf("name = %q, want %q", u.Name, tt.wantName)
			}
		})
	}
}

func TestTableFindBenIsExact(t *testing.T) {
	tbl := NewTable(DefaultUsers, 0)
	u, err := tbl.Find(context.Background(), 202)
	if err != nil || u == nil {
		t.Fatalf("find 202 = (%v, %v), want user", u, err)
	}
	if u.ID != 202 || u.Name != "Ben Miller" || u.Email != "ben@example.com" {
		t.Fatalf("user = %+v", *u)
	}
}

func TestTableFindRespectsCancellation(t *testing.T) {
	tbl := NewTable(DefaultUsers, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := tbl.Find(ctx, 202); err == nil {
		t.Fatal("cancelled find should error")
	}
}

func TestTableListOrderedByID(t *testing.T) {
	tbl := NewTable([]User{
		{ID: 303, Name: "Carla Rossi"},
		{ID: 101, Name: "Alice Johnson"},
		{ID: 202, Name: "Ben Miller"},
	}, 0)
	users, err := tbl.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("len = %d, want 3", len(users))
	}
	for i := 1; i < len(users); i++ {
		if users[i].ID < users[i-1].ID {
			t.Fatalf("users not ordered: %v", users)
		}
	}
}
