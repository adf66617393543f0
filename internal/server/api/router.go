package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"siteproof/internal/server/httpmiddleware"
)

// NewRouter builds the gin engine with all routes and middleware attached.
// healthz may be nil, in which case a trivial 200 handler is used.
func NewRouter(h *Handlers, limiter *httpmiddleware.SimpleTokenBucket, healthz gin.HandlerFunc) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/healthz", "/metrics"},
	}))
	if limiter != nil {
		r.Use(limiter.GinMiddleware())
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if healthz == nil {
		healthz = func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) }
	}
	r.GET("/healthz", healthz)

	api := r.Group("/api")
	{
		api.GET("/users/me", h.GetMe)
		api.GET("/tasks", h.ListTasks)
		api.PATCH("/tasks/:id/status", h.UpdateTaskStatus)
		api.POST("/attendance", h.MarkAttendance)
		api.GET("/attendance", h.AttendanceHistory)
	}

	return r
}
