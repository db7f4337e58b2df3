package routes

import (
	"github.com/gin-gonic/gin"

	"civicpulse/controllers"
	"civicpulse/middlewares"
	"civicpulse/models"
)

// WorkerRoutes sets up the workforce routes for the department and authority portals
func WorkerRoutes(r *gin.Engine, ctl *controllers.Controller, auth gin.HandlerFunc) {
	group := r.Group("/api/workers", auth, middlewares.RequireRole(models.RoleDepartment, models.RoleAuthority))
	{
		group.GET("", ctl.ListWorkers)
		group.GET("/recommendation", ctl.RecommendWorker)
		group.GET("/stats", ctl.WorkerStats)
	}
}
