package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atende/internal/application/admin/usecases"
	"atende/internal/interfaces/http/middleware"
	"atende/internal/shared/logger"
	"atende/internal/shared/utils"
)

type AdminHandler struct {
	checkAccessUC usecases.CheckAccessExecutor
	grantAdminUC  usecases.GrantAdminExecutor
	revokeAdminUC usecases.RevokeAdminExecutor
	listAdminsUC  usecases.ListAdminsExecutor
	listUsersUC   usecases.ListUsersExecutor
	logger        logger.Interface
}

func NewAdminHandler(
	checkAccessUC usecases.CheckAccessExecutor,
	grantAdminUC usecases.GrantAdminExecutor,
	revokeAdminUC usecases.RevokeAdminExecutor,
	listAdminsUC usecases.ListAdminsExecutor,
	listUsersUC usecases.ListUsersExecutor,
	logger logger.Interface,
) *AdminHandler {
	return &AdminHandler{
		checkAccessUC: checkAccessUC,
		grantAdminUC:  grantAdminUC,
		revokeAdminUC: revokeAdminUC,
		listAdminsUC:  listAdminsUC,
		listUsersUC:   listUsersUC,
		logger:        logger,
	}
}

type userIDRequest struct {
	UserID uint `json:"userId" binding:"required"`
}

// CheckAccess handles GET /admin/check. Any authenticated caller may ask;
// the answer says whether they are an admin, it does not gate anything.
func (h *AdminHandler) CheckAccess(c *gin.Context) {
	cmd := usecases.CheckAccessCommand{
		UserID: middleware.CurrentUserID(c),
	}

	result, err := h.checkAccessUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListUsers handles GET /admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	result, err := h.listUsersUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListAdmins handles GET /admin/admins
func (h *AdminHandler) ListAdmins(c *gin.Context) {
	result, err := h.listAdminsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GrantAdmin handles POST /admin/admins/add
func (h *AdminHandler) GrantAdmin(c *gin.Context) {
	var req userIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.GrantAdminCommand{
		TargetUserID: req.UserID,
		GrantedBy:    middleware.CurrentUserID(c),
	}

	result, err := h.grantAdminUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "admin access granted")
}

// RevokeAdmin handles POST /admin/admins/remove
func (h *AdminHandler) RevokeAdmin(c *gin.Context) {
	var req userIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.RevokeAdminCommand{
		TargetUserID: req.UserID,
		RevokedBy:    middleware.CurrentUserID(c),
	}

	result, err := h.revokeAdminUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "admin access revoked", result)
}
