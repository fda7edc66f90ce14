package admin

import (
	"context"
	"errors"
)

// ErrNotFound marks the authoritative "no admin row" answer. Callers use
// it to tell a non-admin apart from a storage failure, which must never be
// treated as a negative answer.
var ErrNotFound = errors.New("admin not found")

type Repository interface {
	Save(ctx context.Context, a *Admin) error
	// DeleteByUserID removes the admin row for a user. The existence check
	// and owner guard live in the use case layer.
	DeleteByUserID(ctx context.Context, userID uint) error
	// FindByUserID returns ErrNotFound when the user has no admin row.
	FindByUserID(ctx context.Context, userID uint) (*Admin, error)
	List(ctx context.Context) ([]*Admin, error)
}
