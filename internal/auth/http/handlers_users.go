package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ideaboard-app/go-ideaboard-backend/internal/auth"
	"github.com/ideaboard-app/go-ideaboard-backend/internal/auth/repository"
	"github.com/ideaboard-app/go-ideaboard-backend/internal/authz"
)

type SettingsHandler struct {
	userRepo *repository.UserRepository
}

// ListUsers returns every account for the admin settings page. The role is
// checked here as well as in the route guard.
func (h *SettingsHandler) ListUsers(c *gin.Context) {
	actor := auth.CurrentActor(c)
	if actor == nil || !authz.CanViewSettings(actor.Role) {
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "admin only"})
		return
	}

	users, err := h.userRepo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	out := make([]userView, 0, len(users))
	for _, u := range users {
		out = append(out, userView{
			ID:    u.ID,
			Email: u.Email,
			Name:  u.Name,
			Role:  u.Role.String(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "users": out})
}
