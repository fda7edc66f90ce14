package workspace

import "context"

type Repository interface {
	Save(ctx context.Context, w *Workspace) error
	Update(ctx context.Context, w *Workspace) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Workspace, error)
	FindBySlug(ctx context.Context, slug string) (*Workspace, error)
	FindDefault(ctx context.Context) (*Workspace, error)
	List(ctx context.Context) ([]*Workspace, error)
	FindByIDs(ctx context.Context, ids []uint) ([]*Workspace, error)
}

// PermissionRepository manages the (user, workspace) grant rows. The default
// workspace is never materialized as a row; its grant is implicit.
type PermissionRepository interface {
	// GetWorkspaceIDsForUser returns the explicitly granted workspace ids.
	GetWorkspaceIDsForUser(ctx context.Context, userID uint) ([]uint, error)
	// ReplaceForUser is a full replace: grants not in ids are revoked,
	// new ids are granted.
	ReplaceForUser(ctx context.Context, userID uint, ids []uint) error
	// DeleteByWorkspaceID cascades grant removal when a workspace is deleted.
	DeleteByWorkspaceID(ctx context.Context, workspaceID uint) error
}
