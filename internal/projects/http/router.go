package http

import (
	"github.com/gin-gonic/gin"

	"github.com/ideaboard-app/go-ideaboard-backend/internal/projects/service"
)

type Handler struct {
	svc *service.ProjectService
}

// Register mounts the project CRUD routes.
func Register(rg *gin.RouterGroup, svc *service.ProjectService) {
	h := &Handler{svc: svc}

	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.GET("/priority-preview", h.priorityPreview)
	rg.PATCH("/:id/status", h.updateStatus)
	rg.DELETE("/:id", h.delete)
}

// RegisterDashboard mounts the dashboard aggregate route.
func RegisterDashboard(rg *gin.RouterGroup, svc *service.ProjectService) {
	h := &Handler{svc: svc}

	rg.GET("/stats", h.dashboardStats)
}
