package dto

import "time"

type WorkspaceDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	IsDefault   bool      `json:"is_default"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserPermissionsDTO lists the workspace ids a user can see. The default
// workspace id is always present.
type UserPermissionsDTO struct {
	UserID       uint   `json:"user_id"`
	WorkspaceIDs []uint `json:"workspace_ids"`
}
