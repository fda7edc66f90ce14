package workspace

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atende/internal/application/workspace/usecases"
	"atende/internal/interfaces/http/middleware"
	"atende/internal/shared/logger"
	"atende/internal/shared/utils"
)

type WorkspaceHandler struct {
	createUC         usecases.CreateWorkspaceExecutor
	updateUC         usecases.UpdateWorkspaceExecutor
	deleteUC         usecases.DeleteWorkspaceExecutor
	listUC           usecases.ListWorkspacesExecutor
	listUserUC       usecases.ListUserWorkspacesExecutor
	getPermissionsUC usecases.GetUserPermissionsExecutor
	setPermissionsUC usecases.SetUserPermissionsExecutor
	logger           logger.Interface
}

func NewWorkspaceHandler(
	createUC usecases.CreateWorkspaceExecutor,
	updateUC usecases.UpdateWorkspaceExecutor,
	deleteUC usecases.DeleteWorkspaceExecutor,
	listUC usecases.ListWorkspacesExecutor,
	listUserUC usecases.ListUserWorkspacesExecutor,
	getPermissionsUC usecases.GetUserPermissionsExecutor,
	setPermissionsUC usecases.SetUserPermissionsExecutor,
	logger logger.Interface,
) *WorkspaceHandler {
	return &WorkspaceHandler{
		createUC:         createUC,
		updateUC:         updateUC,
		deleteUC:         deleteUC,
		listUC:           listUC,
		listUserUC:       listUserUC,
		getPermissionsUC: getPermissionsUC,
		setPermissionsUC: setPermissionsUC,
		logger:           logger,
	}
}

// List handles GET /admin/workspaces
func (h *WorkspaceHandler) List(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Create handles POST /admin/workspaces
func (h *WorkspaceHandler) Create(c *gin.Context) {
	var req CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "workspace created successfully")
}

// Update handles PUT /admin/workspaces/:id
func (h *WorkspaceHandler) Update(c *gin.Context) {
	workspaceID, err := utils.ParseUintParam(c, "id", "workspace")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(workspaceID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "workspace updated successfully", result)
}

// Delete handles DELETE /admin/workspaces/:id
func (h *WorkspaceHandler) Delete(c *gin.Context) {
	workspaceID, err := utils.ParseUintParam(c, "id", "workspace")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteWorkspaceCommand{WorkspaceID: workspaceID}

	result, err := h.deleteUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "workspace deleted successfully", result)
}

// GetUserPermissions handles GET /admin/workspaces/permissions/:userId
func (h *WorkspaceHandler) GetUserPermissions(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "userId", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.GetUserPermissionsCommand{UserID: userID}

	result, err := h.getPermissionsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// SetUserPermissions handles PUT /admin/workspaces/permissions
func (h *WorkspaceHandler) SetUserPermissions(c *gin.Context) {
	var req SetPermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.setPermissionsUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "permissions updated successfully", result)
}

// MyWorkspaces handles GET /workspace/permissions, the caller's own
// visible workspaces.
func (h *WorkspaceHandler) MyWorkspaces(c *gin.Context) {
	cmd := usecases.ListUserWorkspacesCommand{
		UserID: middleware.CurrentUserID(c),
	}

	result, err := h.listUserUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
