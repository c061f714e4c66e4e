package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ideaboard-app/go-ideaboard-backend/internal/auth"
	"github.com/ideaboard-app/go-ideaboard-backend/internal/projects/domain"
	"github.com/ideaboard-app/go-ideaboard-backend/internal/projects/priority"
	"github.com/ideaboard-app/go-ideaboard-backend/internal/projects/service"
)

// Denials and validation failures are carried in-band in the ActionResult:
// callers inspect success, not the status code.

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	res := h.svc.CreateProject(c.Request.Context(), auth.CurrentActor(c), service.CreateProjectInput{
		Title:         req.Title,
		Description:   req.Description,
		BusinessValue: req.BusinessValue,
		ImpactScore:   req.ImpactScore,
		UrgencyScore:  req.UrgencyScore,
		EffortSize:    domain.EffortSize(req.EffortSize),
	})
	if !res.Success {
		c.JSON(http.StatusOK, res)
		return
	}

	c.JSON(http.StatusCreated, res)
}

func (h *Handler) list(c *gin.Context) {
	items := h.svc.GetProjects(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

// priorityPreview backs the live form preview: same calculation as creation,
// nothing persisted.
func (h *Handler) priorityPreview(c *gin.Context) {
	impact, err := strconv.Atoi(c.Query("impact"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "impact must be an integer"})
		return
	}
	urgency, err := strconv.Atoi(c.Query("urgency"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "urgency must be an integer"})
		return
	}

	prio, err := priority.Calculate(impact, urgency, domain.EffortSize(c.Query("effort")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "priority": prio})
}

func (h *Handler) dashboardStats(c *gin.Context) {
	stats := h.svc.GetDashboardStats(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"ok": true, "stats": stats})
}

func (h *Handler) updateStatus(c *gin.Context) {
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	res := h.svc.UpdateProjectStatus(
		c.Request.Context(),
		auth.CurrentActor(c),
		c.Param("id"),
		domain.ProjectStatus(req.Status),
	)
	c.JSON(http.StatusOK, res)
}

func (h *Handler) delete(c *gin.Context) {
	res := h.svc.DeleteProject(c.Request.Context(), auth.CurrentActor(c), c.Param("id"))
	c.JSON(http.StatusOK, res)
}
