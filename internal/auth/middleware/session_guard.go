package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ideaboard-app/go-ideaboard-backend/internal/auth"
	"github.com/ideaboard-app/go-ideaboard-backend/internal/auth/domain"
	"github.com/ideaboard-app/go-ideaboard-backend/internal/auth/session"
	"github.com/ideaboard-app/go-ideaboard-backend/internal/authz"
)

// CookieName is the session cookie set at sign-in. A Bearer token in the
// Authorization header is accepted as well.
const CookieName = "ideaboard_session"

const (
	signInLocation = "/api/v1/auth/signin"
	homeLocation   = "/"
)

// SessionGuard resolves the caller's session and applies the route-level
// authorization rules before any handler runs. This is only the outer layer:
// the action layer re-checks roles on every mutation and must never trust
// that this middleware ran.
func SessionGuard(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var actor *domain.Actor

		if token := extractToken(c); token != "" {
			if sess, err := sessions.Get(c.Request.Context(), token); err == nil {
				actor = &domain.Actor{ID: sess.UserID, Role: sess.Role}
			}
		}

		switch authz.CheckRoute(actor, c.Request.Method, c.Request.URL.Path) {
		case authz.RedirectSignIn:
			c.Redirect(http.StatusSeeOther, signInLocation)
			c.Abort()
			return
		case authz.RedirectHome:
			c.Redirect(http.StatusSeeOther, homeLocation)
			c.Abort()
			return
		}

		if actor != nil {
			auth.SetActor(c, actor)
		}
		c.Next()
	}
}

// extractToken prefers the Authorization header over the session cookie.
func extractToken(c *gin.Context) string {
	bearer := c.GetHeader("Authorization")
	if strings.HasPrefix(bearer, "Bearer ") {
		return strings.TrimSpace(bearer[7:])
	}

	cookie, err := c.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie
}
