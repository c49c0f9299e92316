package routes

import (
	"bus_tracker/internal/controllers"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine, auth *controllers.AuthController) {
	grp := r.Group("/auth")
	{
		grp.POST("/signup", auth.Signup)
		grp.POST("/login", auth.Login)
	}
}
