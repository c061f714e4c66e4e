// Seed creates the schema and the three well-known demo accounts, one per
// role. Safe to run repeatedly: accounts are upserted by email.
package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/ideaboard-app/go-ideaboard-backend/config"
	"github.com/ideaboard-app/go-ideaboard-backend/internal/auth/domain"
	"github.com/ideaboard-app/go-ideaboard-backend/internal/auth/repository"
	"github.com/ideaboard-app/go-ideaboard-backend/internal/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("schema: %v", err)
	}

	repo := repository.NewUserRepository(db)

	accounts := []struct {
		email    string
		name     string
		password string
		role     domain.Role
	}{
		{"admin@example.com", "Admin User", "admin123", domain.RoleAdmin},
		{"user@example.com", "Normal User", "user123", domain.RoleUser},
		{"guest@example.com", "Guest User", "guest123", domain.RoleGuest},
	}

	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("bcrypt: %v", err)
		}

		id, err := repo.Upsert(ctx, a.email, a.name, string(hash), a.role)
		if err != nil {
			log.Fatalf("seed %s: %v", a.email, err)
		}

		log.Printf("seeded %s role=%s id=%s", a.email, a.role, id)
	}
}
