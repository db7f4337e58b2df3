package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"civicpulse/controllers"
	"civicpulse/middlewares"
)

// Register mounts every route group plus /ping and /metrics on r.
func Register(r *gin.Engine, ctl *controllers.Controller, auth, reportLimiter gin.HandlerFunc) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/metrics", middlewares.MetricsHandler())

	AuthRoutes(r, ctl, auth)
	ComplaintRoutes(r, ctl, auth, reportLimiter)
	WorkerRoutes(r, ctl, auth)
	ProjectRoutes(r, ctl, auth)
	SessionRoutes(r, ctl, auth)
}
