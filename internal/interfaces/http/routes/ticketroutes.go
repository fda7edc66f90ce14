package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "atende/internal/interfaces/http/handlers/ticket"
	"atende/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler   *tickethandlers.TicketHandler
	AuthMiddleware  *middleware.AuthMiddleware
	AdminMiddleware *middleware.AdminMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(
		config.AuthMiddleware.RequireAuth(),
		// Reads are shared between owners and admins; the flag decides
		// whose tickets are visible.
		config.AdminMiddleware.AnnotateAdmin(),
	)
	{
		// Specific paths before parameterized ones to avoid route conflicts.
		tickets.POST("/create", config.TicketHandler.Create)
		tickets.GET("/my-tickets", config.TicketHandler.MyTickets)

		tickets.GET("/:id/comments", config.TicketHandler.ListComments)
		tickets.POST("/:id/comments", config.TicketHandler.AddComment)
		tickets.GET("/:id/history", config.TicketHandler.ListHistory)
		tickets.GET("/:id", config.TicketHandler.Get)
	}
}
