package routes

import (
	"github.com/gin-gonic/gin"

	"civicpulse/controllers"
	"civicpulse/middlewares"
	"civicpulse/models"
)

// ProjectRoutes sets up the CSR project routes
func ProjectRoutes(r *gin.Engine, ctl *controllers.Controller, auth gin.HandlerFunc) {
	group := r.Group("/api/projects", auth)
	{
		group.GET("", ctl.ListProjects)
		group.GET("/summary", ctl.ProjectSummary)
		group.GET("/:id", ctl.GetProject)
		group.POST("/:id/sponsor", middlewares.RequireRole(models.RoleCSR), ctl.SponsorProject)
	}
}
