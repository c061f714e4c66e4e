package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/ideaboard-app/go-ideaboard-backend/internal/auth/domain"
	"github.com/ideaboard-app/go-ideaboard-backend/internal/auth/repository"
	"github.com/ideaboard-app/go-ideaboard-backend/internal/auth/session"
)

type AuthService struct {
	userRepo *repository.UserRepository
	sessions *session.Store
}

func NewAuthService(userRepo *repository.UserRepository, sessions *session.Store) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		sessions: sessions,
	}
}

// SignIn verifies credentials against the users table and issues a session.
// An unknown email and a wrong password both surface ErrInvalidCredentials
// so the response does not reveal which one failed.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*session.Session, *domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	sess, err := s.sessions.Create(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	return sess, user, nil
}

// SignOut revokes the session for the given token.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}
