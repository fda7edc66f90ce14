// Package models holds the gorm persistence models. Timestamps are stored as
// millisecond unix integers; no foreign key constraints or associations are
// declared, all relationships are managed by application logic.
package models

type UserModel struct {
	ID            uint   `gorm:"primaryKey"`
	Email         string `gorm:"uniqueIndex;size:255;not null"`
	Name          string `gorm:"size:100;not null"`
	PasswordHash  string `gorm:"size:255;not null"`
	EmailVerified bool   `gorm:"not null;default:false"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt     int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}

type AdminModel struct {
	ID        uint  `gorm:"primaryKey"`
	UserID    uint  `gorm:"uniqueIndex;not null"`
	IsOwner   bool  `gorm:"not null;default:false"`
	CreatedBy *uint `gorm:"index"`
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (AdminModel) TableName() string {
	return "admins"
}

type WorkspaceModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Slug        string `gorm:"uniqueIndex;size:100;not null"`
	Description string `gorm:"type:text"`
	IsDefault   bool   `gorm:"not null;default:false;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (WorkspaceModel) TableName() string {
	return "workspaces"
}

// WorkspacePermissionModel is one explicit (user, workspace) grant. The
// default workspace is never materialized here.
type WorkspacePermissionModel struct {
	ID          uint  `gorm:"primaryKey"`
	UserID      uint  `gorm:"not null;index:idx_user_workspace,unique"`
	WorkspaceID uint  `gorm:"not null;index:idx_user_workspace,unique;index"`
	CreatedAt   int64 `gorm:"autoCreateTime:milli;not null"`
}

func (WorkspacePermissionModel) TableName() string {
	return "workspace_permissions"
}

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"not null;index"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	Category    string `gorm:"size:50;not null;index"`
	Priority    string `gorm:"size:20;not null;index"`
	Status      string `gorm:"size:20;not null;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketModel) TableName() string {
	return "tickets"
}

type CommentModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	UserID     uint   `gorm:"not null;index"`
	AuthorRole string `gorm:"size:20;not null"`
	Comment    string `gorm:"type:text;not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (CommentModel) TableName() string {
	return "ticket_comments"
}

type StatusHistoryModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	OldStatus string `gorm:"size:20;not null"`
	NewStatus string `gorm:"size:20;not null"`
	ChangedBy uint   `gorm:"not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (StatusHistoryModel) TableName() string {
	return "ticket_status_history"
}
