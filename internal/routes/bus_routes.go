package routes

import (
	"bus_tracker/internal/controllers"
	"bus_tracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

// BusRoutes mounts the registry. Mutations are admin-only; reads are open so
// dashboards can resolve bus metadata without a token.
func BusRoutes(r *gin.Engine, bus *controllers.BusController) {
	grp := r.Group("/buses")
	{
		grp.GET("/:bus_id", bus.Get)
	}

	adm := r.Group("/buses")
	adm.Use(middleware.RequireAuthWithRole(middleware.RoleAdmin))
	{
		adm.POST("", bus.Register)
		adm.PUT("/:bus_id/deactivate", bus.Deactivate)
	}
}
