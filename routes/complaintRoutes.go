package routes

import (
	"github.com/gin-gonic/gin"

	"civicpulse/controllers"
	"civicpulse/middlewares"
	"civicpulse/models"
)

// ComplaintRoutes sets up the complaint routes shared by every portal
func ComplaintRoutes(r *gin.Engine, ctl *controllers.Controller, auth, reportLimiter gin.HandlerFunc) {
	group := r.Group("/api/complaints", auth)
	{
		group.GET("", ctl.ListComplaints)
		group.GET("/summary", ctl.ComplaintSummary)
		group.GET("/sla", ctl.SLAReport)
		group.GET("/mine", middlewares.RequireRole(models.RoleCitizen), ctl.MyComplaints)
		group.GET("/:id", ctl.GetComplaint)
		group.POST("", middlewares.RequireRole(models.RoleCitizen), reportLimiter, ctl.CreateComplaint)
		group.POST("/:id/assign", middlewares.RequireRole(models.RoleAuthority, models.RoleDepartment), ctl.AssignWorker)
	}
}
