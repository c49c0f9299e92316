package routes

import (
	"bus_tracker/internal/controllers"
	"bus_tracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

// LocationRoutes mounts ingestion and the dashboard read paths. Writing
// needs any authenticated principal; reading is open.
func LocationRoutes(r *gin.Engine, loc *controllers.LocationController) {
	ingest := r.Group("/locations")
	ingest.Use(middleware.RequireAuth())
	{
		ingest.POST("", loc.Ingest)
	}

	r.GET("/locations", loc.List)
	r.GET("/buses/:bus_id/location", loc.Latest)
	r.GET("/buses/:bus_id/track.geojson", loc.Track)
	r.GET("/bus-locations", loc.ListWithBuses)
	r.GET("/healthz", loc.Health)
}
