package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/favoritos/favorites-api/internal/core/domain"
	"github.com/favoritos/favorites-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.UserRepository
	tokens ports.TokenIssuer
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenIssuer) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register hashes the password, inserts the user and issues a token for the
// new account. A duplicate email is resolved by the store's uniqueness
// constraint and surfaces as domain.ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, *domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", nil, domain.ErrPasswordTooLong
		}
		return "", nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return "", nil, err
	}
	return token, created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrWrongPassword
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
