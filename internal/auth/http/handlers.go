package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ideaboard-app/go-ideaboard-backend/internal/auth/domain"
	"github.com/ideaboard-app/go-ideaboard-backend/internal/auth/middleware"
)

// SignIn verifies credentials and issues a session. The token is returned in
// the body and also set as an HttpOnly cookie for browser callers.
func (h *Handler) SignIn(c *gin.Context) {
	if !h.limiter.Allow() {
		c.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "too many sign-in attempts"})
		return
	}

	var req signInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	sess, user, err := h.authService.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "sign-in failed"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CookieName, sess.Token, int(h.sessionTTL.Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": sess.Token,
		"user": userView{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role.String(),
		},
	})
}

// SignOut revokes the current session and clears the cookie.
func (h *Handler) SignOut(c *gin.Context) {
	token, _ := c.Cookie(middleware.CookieName)
	if token == "" {
		bearer := c.GetHeader("Authorization")
		if len(bearer) > 7 && bearer[:7] == "Bearer " {
			token = bearer[7:]
		}
	}

	if token != "" {
		if err := h.authService.SignOut(c.Request.Context(), token); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "sign-out failed"})
			return
		}
	}

	c.SetCookie(middleware.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
