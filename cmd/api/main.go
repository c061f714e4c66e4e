package main

import (
	"context"
	"log"

	"github.com/ideaboard-app/go-ideaboard-backend/config"
	authrepo "github.com/ideaboard-app/go-ideaboard-backend/internal/auth/repository"
	authservice "github.com/ideaboard-app/go-ideaboard-backend/internal/auth/service"
	"github.com/ideaboard-app/go-ideaboard-backend/internal/auth/session"
	"github.com/ideaboard-app/go-ideaboard-backend/internal/bootstrap"
	"github.com/ideaboard-app/go-ideaboard-backend/internal/projects/cache"
	cronjob "github.com/ideaboard-app/go-ideaboard-backend/internal/projects/cron"
	projrepo "github.com/ideaboard-app/go-ideaboard-backend/internal/projects/repository"
	projservice "github.com/ideaboard-app/go-ideaboard-backend/internal/projects/service"
	"github.com/ideaboard-app/go-ideaboard-backend/internal/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	pool, err := bootstrap.OpenDB(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	sqlDB, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("postgres (database/sql): %v", err)
	}
	defer sqlDB.Close()

	rdb, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	sessions := session.NewStore(rdb, cfg.Auth.SessionTTL)
	userRepo := authrepo.NewUserRepository(sqlDB)
	authSvc := authservice.NewAuthService(userRepo, sessions)

	projectSvc := projservice.NewProjectService(projrepo.NewRepo(pool), cache.New(rdb))

	cronjob.NewWarmer(projectSvc).Start()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:      "ideaboard-backend",
		Version:          cfg.App.Version,
		Environment:      cfg.App.Environment,
		SigninRatePerMin: cfg.Auth.SigninRatePerMin,
		SessionTTL:       cfg.Auth.SessionTTL,
		DB:               pool,
		Redis:            rdb,
		Sessions:         sessions,
		Users:            userRepo,
		AuthService:      authSvc,
		ProjectService:   projectSvc,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	log.Fatal(r.Run(":" + cfg.Server.Port))
}
