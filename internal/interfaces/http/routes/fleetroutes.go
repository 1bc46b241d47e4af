package routes

import (
	"github.com/gin-gonic/gin"

	fleethandlers "skymaint/internal/interfaces/http/handlers/fleet"
	"skymaint/internal/interfaces/http/middleware"
)

type FleetRouteConfig struct {
	FleetHandler   *fleethandlers.FleetHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupFleetRoutes(engine *gin.Engine, config *FleetRouteConfig) {
	fleet := engine.Group("/api/fleet")
	fleet.Use(config.AuthMiddleware.RequireAuth())
	{
		fleet.GET("/statuses", config.FleetHandler.ListStatuses)
	}
}
