package workspace

import "atende/internal/application/workspace/usecases"

type CreateWorkspaceRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Slug        string `json:"slug" binding:"max=100"`
	Description string `json:"description"`
}

func (r *CreateWorkspaceRequest) ToCommand() usecases.CreateWorkspaceCommand {
	return usecases.CreateWorkspaceCommand{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
	}
}

type UpdateWorkspaceRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Slug        string `json:"slug" binding:"max=100"`
	Description string `json:"description"`
}

func (r *UpdateWorkspaceRequest) ToCommand(workspaceID uint) usecases.UpdateWorkspaceCommand {
	return usecases.UpdateWorkspaceCommand{
		WorkspaceID: workspaceID,
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
	}
}

type SetPermissionsRequest struct {
	UserID       uint   `json:"userId" binding:"required"`
	WorkspaceIDs []uint `json:"workspaceIds"`
}

func (r *SetPermissionsRequest) ToCommand() usecases.SetUserPermissionsCommand {
	return usecases.SetUserPermissionsCommand{
		UserID:       r.UserID,
		WorkspaceIDs: r.WorkspaceIDs,
	}
}
