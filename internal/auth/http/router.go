package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/ideaboard-app/go-ideaboard-backend/internal/auth/repository"
	"github.com/ideaboard-app/go-ideaboard-backend/internal/auth/service"
)

type Handler struct {
	authService *service.AuthService
	limiter     *rate.Limiter
	sessionTTL  time.Duration
}

// Register mounts the credential sign-in/sign-out routes. ratePerMin bounds
// sign-in attempts process-wide; sessionTTL sets the cookie lifetime and
// must match the Redis session TTL.
func Register(rg *gin.RouterGroup, authService *service.AuthService, ratePerMin int, sessionTTL time.Duration) {
	if ratePerMin <= 0 {
		ratePerMin = 10
	}
	if sessionTTL <= 0 {
		sessionTTL = 72 * time.Hour
	}

	h := &Handler{
		authService: authService,
		limiter:     rate.NewLimiter(rate.Limit(float64(ratePerMin)/60.0), ratePerMin),
		sessionTTL:  sessionTTL,
	}

	rg.POST("/signin", h.SignIn)
	rg.POST("/signout", h.SignOut)
}

// RegisterSettings mounts the administrative settings routes. The route
// guard redirects non-admin roles away; the handler checks again.
func RegisterSettings(rg *gin.RouterGroup, userRepo *repository.UserRepository) {
	h := &SettingsHandler{userRepo: userRepo}

	rg.GET("/users", h.ListUsers)
}
