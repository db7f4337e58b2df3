package routes

import (
	"github.com/gin-gonic/gin"

	"civicpulse/controllers"
)

// SessionRoutes sets up the view-state and leaderboard routes
func SessionRoutes(r *gin.Engine, ctl *controllers.Controller, auth gin.HandlerFunc) {
	r.GET("/api/leaderboard", auth, ctl.Leaderboard)

	group := r.Group("/api/session", auth)
	{
		group.GET("/view", ctl.GetView)
		group.PUT("/view", ctl.UpdateView)
		group.DELETE("/view", ctl.ClearView)
	}
}
