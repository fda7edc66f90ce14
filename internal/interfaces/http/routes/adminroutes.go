package routes

import (
	"github.com/gin-gonic/gin"

	adminhandlers "atende/internal/interfaces/http/handlers/admin"
	tickethandlers "atende/internal/interfaces/http/handlers/ticket"
	workspacehandlers "atende/internal/interfaces/http/handlers/workspace"
	"atende/internal/interfaces/http/middleware"
)

type AdminRouteConfig struct {
	AdminHandler     *adminhandlers.AdminHandler
	TicketHandler    *tickethandlers.TicketHandler
	WorkspaceHandler *workspacehandlers.WorkspaceHandler
	AuthMiddleware   *middleware.AuthMiddleware
	AdminMiddleware  *middleware.AdminMiddleware
}

func SetupAdminRoutes(engine *gin.Engine, config *AdminRouteConfig) {
	admin := engine.Group("/admin")
	admin.Use(config.AuthMiddleware.RequireAuth())
	{
		// Any authenticated user may ask; the answer is the gate, not the route.
		admin.GET("/check", config.AdminHandler.CheckAccess)

		gated := admin.Group("")
		gated.Use(config.AdminMiddleware.RequireAdmin())
		{
			gated.GET("/users", config.AdminHandler.ListUsers)
			gated.GET("/admins", config.AdminHandler.ListAdmins)
			gated.POST("/admins/add", config.AdminHandler.GrantAdmin)
			gated.POST("/admins/remove", config.AdminHandler.RevokeAdmin)

			gated.GET("/tickets", config.TicketHandler.ListAll)
			gated.PUT("/tickets/:id", config.TicketHandler.Update)

			gated.GET("/workspaces", config.WorkspaceHandler.List)
			gated.POST("/workspaces", config.WorkspaceHandler.Create)
			gated.GET("/workspaces/permissions/:userId", config.WorkspaceHandler.GetUserPermissions)
			gated.PUT("/workspaces/permissions", config.WorkspaceHandler.SetUserPermissions)
			gated.PUT("/workspaces/:id", config.WorkspaceHandler.Update)
			gated.DELETE("/workspaces/:id", config.WorkspaceHandler.Delete)
		}
	}
}
