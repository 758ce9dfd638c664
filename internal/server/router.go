package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with all dashboard routes.
func NewRouter(s *Server) *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")
	{
		api.GET("/projects", s.listProjects)
		api.GET("/projects/:id", s.projectDetail)
		api.GET("/stats", s.stats)
		api.GET("/sites", s.sites)
		api.GET("/programme", s.programme)

		api.GET("/selection", s.getSelection)
		api.PUT("/selection", s.setSelection)

		api.POST("/projects/:id/status", s.cycleProjectStatus)
		api.POST("/projects/:id/tasks/:taskID/status", s.cycleTaskStatus)

		api.POST("/reload", s.reloadWorkbook)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
