package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/ideaboard-app/go-ideaboard-backend/internal/api/http"
	apimw "github.com/ideaboard-app/go-ideaboard-backend/internal/api/http/middleware"
	authhttp "github.com/ideaboard-app/go-ideaboard-backend/internal/auth/http"
	authmw "github.com/ideaboard-app/go-ideaboard-backend/internal/auth/middleware"
	authrepo "github.com/ideaboard-app/go-ideaboard-backend/internal/auth/repository"
	authservice "github.com/ideaboard-app/go-ideaboard-backend/internal/auth/service"
	"github.com/ideaboard-app/go-ideaboard-backend/internal/auth/session"
	projhttp "github.com/ideaboard-app/go-ideaboard-backend/internal/projects/http"
	projservice "github.com/ideaboard-app/go-ideaboard-backend/internal/projects/service"
)

type RouterDeps struct {
	ServiceName      string
	Version          string
	Environment      string
	SigninRatePerMin int
	SessionTTL       time.Duration
	DB               *pgxpool.Pool
	Redis            *redis.Client
	Sessions         *session.Store
	Users            *authrepo.UserRepository
	AuthService      *authservice.AuthService
	ProjectService   *projservice.ProjectService
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	if dep.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(apimw.RequestIDMiddleware())

	authhttp.Register(api.Group("/auth"), dep.AuthService, dep.SigninRatePerMin, dep.SessionTTL)

	// Route guard: second enforcement layer on top of the action-level
	// role checks inside the services.
	guarded := api.Group("")
	guarded.Use(authmw.SessionGuard(dep.Sessions))

	projhttp.Register(guarded.Group("/projects"), dep.ProjectService)
	projhttp.RegisterDashboard(guarded.Group("/dashboard"), dep.ProjectService)
	authhttp.RegisterSettings(guarded.Group("/settings"), dep.Users)

	return r
}
