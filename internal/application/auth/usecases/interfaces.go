package usecases

import (
	"context"
	"time"
)

// PasswordHasher abstracts the bcrypt work so use cases stay test-fast.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer mints and validates the bearer tokens the HTTP layer consumes.
type TokenIssuer interface {
	Issue(userID uint, email string) (token string, expiresAt time.Time, err error)
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type GetCurrentUserExecutor interface {
	Execute(ctx context.Context, cmd GetCurrentUserCommand) (*GetCurrentUserResult, error)
}
