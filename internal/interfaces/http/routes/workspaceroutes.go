package routes

import (
	"github.com/gin-gonic/gin"

	workspacehandlers "atende/internal/interfaces/http/handlers/workspace"
	"atende/internal/interfaces/http/middleware"
)

type WorkspaceRouteConfig struct {
	WorkspaceHandler *workspacehandlers.WorkspaceHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

func SetupWorkspaceRoutes(engine *gin.Engine, config *WorkspaceRouteConfig) {
	workspace := engine.Group("/workspace")
	workspace.Use(config.AuthMiddleware.RequireAuth())
	{
		workspace.GET("/permissions", config.WorkspaceHandler.MyWorkspaces)
	}
}
