package routes

import (
	"bus_tracker/internal/controllers"

	"github.com/gin-gonic/gin"
)

func WebSocketRoutes(r *gin.Engine, hub *controllers.LocationHub) {
	ws := r.Group("/ws")
	{
		ws.GET("/locations/:bus_id", hub.Subscribe)
	}
}
