// Package directory holds the domain records the screens work with and
// the lookup contract both backends satisfy.
package directory

import "context"

// User is a directory record. Immutable once constructed.
type User struct {
	ID    int
	Name  string
	Email string
}

// Lookup resolves a user by id. A miss is (nil, nil): absence is a
// normal state the caller renders, not a failure.
type Lookup interface {
	Find(ctx context.Context, id int) (*User, error)
}
