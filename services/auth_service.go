package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Leerling-hub/Booking/cache"
	"github.com/Leerling-hub/Booking/domain"
	"github.com/Leerling-hub/Booking/dto"
	"github.com/Leerling-hub/Booking/repositories"
	"github.com/Leerling-hub/Booking/utils"
)

// AuthService logs users in and resolves bearer tokens to accounts
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// TokenIssuer is the part of utils.TokenService the auth service needs
type TokenIssuer interface {
	Issue(username string) (string, error)
	Verify(token string) (*utils.Claims, error)
}

type authService struct {
	users    repositories.UserRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	accounts cache.AccountCache
}

// NewAuthService creates the auth service. accounts may be nil to disable caching.
func NewAuthService(users repositories.UserRepository, hasher PasswordHasher, tokens TokenIssuer, accounts cache.AccountCache) AuthService {
	return &authService{users: users, hasher: hasher, tokens: tokens, accounts: accounts}
}

// Login checks the credentials and issues a token
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	// 1. Look the user up; an unknown username gets the same error as a wrong password
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			log.Printf("Invalid credentials for username: %s", req.Username)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login lookup %s: %w", req.Username, err)
	}

	// 2. Compare the stored hash with the password sent
	if !s.hasher.CheckPasswordHash(req.Password, user.Password) {
		log.Printf("Invalid credentials for username: %s", req.Username)
		return nil, ErrInvalidCredentials
	}

	// 3. Issue the token
	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return nil, fmt.Errorf("issue token for %s: %w", user.Username, err)
	}

	log.Printf("User authenticated successfully: %s", user.Username)
	return &dto.LoginResponse{Token: token}, nil
}

// Authenticate verifies token and returns the account it names
func (s *authService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		log.Printf("Token verification failed: %v", err)
		return nil, ErrInvalidToken
	}

	if s.accounts != nil {
		if user, ok := s.accounts.Get(claims.Username); ok {
			return user, nil
		}
	}

	user, err := s.users.GetByUsername(ctx, claims.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			log.Printf("User not found in database: %s", claims.Username)
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("authenticate %s: %w", claims.Username, err)
	}

	if s.accounts != nil {
		s.accounts.Set(user)
	}
	return user, nil
}
