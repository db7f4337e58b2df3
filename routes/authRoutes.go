package routes

import (
	"github.com/gin-gonic/gin"

	"civicpulse/controllers"
)

// AuthRoutes sets up the authentication routes
func AuthRoutes(r *gin.Engine, ctl *controllers.Controller, auth gin.HandlerFunc) {
	group := r.Group("/api/auth")
	{
		group.POST("/register", ctl.RegisterUser)
		group.POST("/login", ctl.LoginUser)
		group.POST("/logout", ctl.LogoutUser)
		group.GET("/me", auth, ctl.GetMe)
	}
}
