package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "skymaint/internal/interfaces/http/handlers/ticket"
	"skymaint/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/api/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// Collection operations
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		// Action endpoints come before the bare /:id route
		tickets.POST("/:id/assign", config.TicketHandler.AssignTicket)
		tickets.POST("/:id/reports", config.TicketHandler.AddReport)
		tickets.POST("/:id/close", config.TicketHandler.CloseTicket)
		tickets.POST("/:id/attachments", config.TicketHandler.AttachFile)
		tickets.GET("/:id/events", config.TicketHandler.GetTicketEvents)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
	}
}
