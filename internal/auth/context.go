package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/ideaboard-app/go-ideaboard-backend/internal/auth/domain"
)

const ctxActor = "actor"

// SetActor stores the resolved actor in the Gin context.
// This is set by the session guard middleware.
func SetActor(c *gin.Context, actor *domain.Actor) {
	c.Set(ctxActor, actor)
}

// CurrentActor returns the actor for the request, or nil if the request is
// unauthenticated.
func CurrentActor(c *gin.Context) *domain.Actor {
	v, ok := c.Get(ctxActor)
	if !ok {
		return nil
	}
	actor, ok := v.(*domain.Actor)
	if !ok {
		return nil
	}
	return actor
}
