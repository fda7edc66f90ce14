package usecases

import "context"

// Transactor runs a function inside a database transaction. Satisfied by
// db.TransactionManager.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateWorkspaceExecutor interface {
	Execute(ctx context.Context, cmd CreateWorkspaceCommand) (*CreateWorkspaceResult, error)
}

type UpdateWorkspaceExecutor interface {
	Execute(ctx context.Context, cmd UpdateWorkspaceCommand) (*UpdateWorkspaceResult, error)
}

type DeleteWorkspaceExecutor interface {
	Execute(ctx context.Context, cmd DeleteWorkspaceCommand) (*DeleteWorkspaceResult, error)
}

type ListWorkspacesExecutor interface {
	Execute(ctx context.Context) (*ListWorkspacesResult, error)
}

type ListUserWorkspacesExecutor interface {
	Execute(ctx context.Context, cmd ListUserWorkspacesCommand) (*ListUserWorkspacesResult, error)
}

type GetUserPermissionsExecutor interface {
	Execute(ctx context.Context, cmd GetUserPermissionsCommand) (*GetUserPermissionsResult, error)
}

type SetUserPermissionsExecutor interface {
	Execute(ctx context.Context, cmd SetUserPermissionsCommand) (*SetUserPermissionsResult, error)
}
