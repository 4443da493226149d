package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"blogwhale-server/internal/models"
	"blogwhale-server/internal/repo"
	"blogwhale-server/internal/utils"
)

type AuthService struct {
	users          UserRepository
	tokens         *TokenManager
	passwordMinLen int
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func NewAuthService(users UserRepository, tokens *TokenManager, passwordMinLen int) *AuthService {
	return &AuthService{users: users, tokens: tokens, passwordMinLen: passwordMinLen}
}

// Register creates a normal-role account. The response never carries the
// password and registration does not log the user in.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if name == "" || email == "" || password == "" {
		return nil, utils.NewAppError(http.StatusBadRequest, "VALIDATION_ERROR", "Please provide name, email and password")
	}
	if len(password) < s.passwordMinLen {
		return nil, utils.NewAppError(http.StatusBadRequest, "VALIDATION_ERROR",
			fmt.Sprintf("Password must be at least %d characters", s.passwordMinLen))
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, utils.NewAppError(http.StatusBadRequest, "CONFLICT", "User already exists")
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}

	user, err := s.users.Create(ctx, &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleNormal,
	})
	if err != nil {
		// The lookup above races with concurrent registrations; the unique
		// index is the authority.
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, utils.NewAppError(http.StatusBadRequest, "CONFLICT", "User already exists")
		}
		return nil, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}

	return user, nil
}

// Login authenticates by email and password and mints a session token. An
// unknown email and a wrong password produce the same response so callers
// cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, utils.NewAppError(http.StatusBadRequest, "VALIDATION_ERROR", "Please provide email and password")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, utils.NewAppError(http.StatusUnauthorized, "AUTHENTICATION_ERROR", "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, utils.NewAppError(http.StatusUnauthorized, "AUTHENTICATION_ERROR", "Invalid credentials")
	}

	token, err := s.tokens.Issue(Principal{UserID: user.ID, Email: user.Email, Role: user.Role})
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "Could not generate token")
	}

	return &LoginResponse{Token: token, User: user}, nil
}
