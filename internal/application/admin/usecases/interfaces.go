package usecases

import "context"

// AdminFlags is the cached shape of an access check.
type AdminFlags struct {
	IsAdmin bool
	IsOwner bool
}

// AdminFlagsCache is a short-TTL cache over the admin row lookup. All
// implementations must be safe to skip: a nil cache disables caching and a
// cache error falls through to the repository.
type AdminFlagsCache interface {
	Get(ctx context.Context, userID uint) (*AdminFlags, error)
	Set(ctx context.Context, userID uint, flags AdminFlags) error
	Invalidate(ctx context.Context, userID uint) error
}

type CheckAccessExecutor interface {
	Execute(ctx context.Context, cmd CheckAccessCommand) (*CheckAccessResult, error)
}

type GrantAdminExecutor interface {
	Execute(ctx context.Context, cmd GrantAdminCommand) (*GrantAdminResult, error)
}

type RevokeAdminExecutor interface {
	Execute(ctx context.Context, cmd RevokeAdminCommand) (*RevokeAdminResult, error)
}

type ListAdminsExecutor interface {
	Execute(ctx context.Context) (*ListAdminsResult, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context) (*ListUsersResult, error)
}
