package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"bus_tracker/internal/controllers"
)

func SetupRouter(
	auth *controllers.AuthController,
	bus *controllers.BusController,
	loc *controllers.LocationController,
	hub *controllers.LocationHub,
) *gin.Engine {
	r := gin.New()

	// Middleware goes on before any route so every handler gets it
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	AuthRoutes(r, auth)
	BusRoutes(r, bus)
	LocationRoutes(r, loc)
	WebSocketRoutes(r, hub)

	return r
}
