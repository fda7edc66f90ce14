package user

import "context"

type Repository interface {
	Save(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	// FindByEmail matches case-insensitively; callers pass any casing.
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByIDs(ctx context.Context, ids []uint) ([]*User, error)
	List(ctx context.Context) ([]*User, error)
}
