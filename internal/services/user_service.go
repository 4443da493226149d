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

type UserService struct {
	users          UserRepository
	blogs          BlogRepository
	passwordMinLen int
}

// UserUpdate carries the mutable profile fields. Empty strings mean
// "leave unchanged".
type UserUpdate struct {
	Name  string
	Email string
	Role  string
}

type Author struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthorStats struct {
	Author Author `json:"author"`
	Count  int64  `json:"count"`
}

type Statistics struct {
	TotalUsers     int64         `json:"totalUsers"`
	TotalBlogs     int64         `json:"totalBlogs"`
	BlogsPerAuthor []AuthorStats `json:"blogsPerAuthor"`
}

type Overview struct {
	Users      []models.User
	Statistics Statistics
}

func NewUserService(users UserRepository, blogs BlogRepository, passwordMinLen int) *UserService {
	return &UserService{users: users, blogs: blogs, passwordMinLen: passwordMinLen}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// Get returns a single user. Non-admins may only read their own record.
func (s *UserService) Get(ctx context.Context, principal Principal, id string) (*models.User, error) {
	if !principal.IsAdmin() && principal.UserID != id {
		return nil, utils.NewAppError(http.StatusForbidden, "AUTHORIZATION_ERROR", "Not authorized")
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, utils.NewAppError(http.StatusNotFound, "NOT_FOUND", "User not found")
		}
		return nil, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
	return user, nil
}

// Create is the admin-create path; the admin gate runs in the router.
func (s *UserService) Create(ctx context.Context, name, email, password, role string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if name == "" || email == "" || password == "" {
		return nil, utils.NewAppError(http.StatusBadRequest, "VALIDATION_ERROR", "Please provide name, email and password")
	}
	if len(password) < s.passwordMinLen {
		return nil, utils.NewAppError(http.StatusBadRequest, "VALIDATION_ERROR",
			fmt.Sprintf("Password must be at least %d characters", s.passwordMinLen))
	}
	if role == "" {
		role = string(models.RoleNormal)
	}
	if !models.ValidRole(role) {
		return nil, utils.NewAppError(http.StatusBadRequest, "VALIDATION_ERROR", "Invalid role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}

	user, err := s.users.Create(ctx, &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.Role(role),
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, utils.NewAppError(http.StatusBadRequest, "CONFLICT", "User already exists")
		}
		return nil, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
	return user, nil
}

// Update lets users edit their own name and email; role changes are reserved
// for admins, who may also edit anyone.
func (s *UserService) Update(ctx context.Context, principal Principal, id string, update UserUpdate) (*models.User, error) {
	if update.Role != "" && !principal.IsAdmin() {
		return nil, utils.NewAppError(http.StatusForbidden, "AUTHORIZATION_ERROR", "Only administrators can modify user roles")
	}
	if !principal.IsAdmin() && principal.UserID != id {
		return nil, utils.NewAppError(http.StatusForbidden, "AUTHORIZATION_ERROR", "Not authorized to modify other users")
	}
	if update.Role != "" && !models.ValidRole(update.Role) {
		return nil, utils.NewAppError(http.StatusBadRequest, "VALIDATION_ERROR", "Invalid role")
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, utils.NewAppError(http.StatusNotFound, "NOT_FOUND", "User not found")
		}
		return nil, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}

	if name := strings.TrimSpace(update.Name); name != "" {
		user.Name = name
	}
	if email := strings.ToLower(strings.TrimSpace(update.Email)); email != "" {
		user.Email = email
	}
	if update.Role != "" {
		user.Role = models.Role(update.Role)
	}

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, utils.NewAppError(http.StatusBadRequest, "CONFLICT", "Email already exists")
		}
		return nil, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
	return updated, nil
}

// Delete removes a user and cascades over their blogs. Admin accounts are
// absolutely protected: nobody deletes them through this path, admins
// included.
func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return utils.NewAppError(http.StatusNotFound, "NOT_FOUND", "User not found")
		}
		return utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}

	if user.Role == models.RoleAdmin {
		return utils.NewAppError(http.StatusForbidden, "AUTHORIZATION_ERROR", "Cannot delete admin user")
	}

	// Blogs first so a failure cannot orphan content.
	if err := s.blogs.DeleteByUser(ctx, id); err != nil {
		return utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
	return nil
}

// Overview backs the admin dashboard: the user list plus aggregate counts.
func (s *UserService) Overview(ctx context.Context) (*Overview, error) {
	users, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
	totalBlogs, err := s.blogs.Count(ctx)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
	byAuthor, err := s.blogs.CountByAuthor(ctx)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}

	stats := Statistics{
		TotalUsers:     totalUsers,
		TotalBlogs:     totalBlogs,
		BlogsPerAuthor: make([]AuthorStats, 0, len(byAuthor)),
	}
	for _, ac := range byAuthor {
		stats.BlogsPerAuthor = append(stats.BlogsPerAuthor, AuthorStats{
			Author: Author{ID: ac.AuthorID, Name: ac.AuthorName, Email: ac.AuthorEmail},
			Count:  ac.Count,
		})
	}

	return &Overview{Users: users, Statistics: stats}, nil
}
