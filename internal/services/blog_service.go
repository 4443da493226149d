package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"blogwhale-server/internal/models"
	"blogwhale-server/internal/repo"
	"blogwhale-server/internal/utils"
)

type BlogService struct {
	blogs BlogRepository
}

func NewBlogService(blogs BlogRepository) *BlogService {
	return &BlogService{blogs: blogs}
}

func (s *BlogService) List(ctx context.Context) ([]models.Blog, error) {
	blogs, err := s.blogs.List(ctx)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
	if blogs == nil {
		blogs = []models.Blog{}
	}
	return blogs, nil
}

func (s *BlogService) Get(ctx context.Context, id string) (*models.Blog, error) {
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, utils.NewAppError(http.StatusNotFound, "NOT_FOUND", "Blog not found")
		}
		return nil, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
	return blog, nil
}

func (s *BlogService) Create(ctx context.Context, principal Principal, title, content string) (*models.Blog, error) {
	title = strings.TrimSpace(title)
	if title == "" || content == "" {
		return nil, utils.NewAppError(http.StatusBadRequest, "VALIDATION_ERROR", "Please provide title and content")
	}

	blog, err := s.blogs.Create(ctx, &models.Blog{
		Title:   title,
		Content: content,
		UserID:  principal.UserID,
	})
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
	return blog, nil
}

// Update applies the author-or-admin rule. Existence is checked before
// ownership so a missing blog is always 404, never a 403 that would reveal
// whether the id exists.
func (s *BlogService) Update(ctx context.Context, principal Principal, id, title, content string) (*models.Blog, error) {
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, utils.NewAppError(http.StatusNotFound, "NOT_FOUND", "Blog not found")
		}
		return nil, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}

	if !principal.IsAdmin() && blog.UserID != principal.UserID {
		return nil, utils.NewAppError(http.StatusForbidden, "AUTHORIZATION_ERROR", "Not authorized to update this blog")
	}

	if title = strings.TrimSpace(title); title != "" {
		blog.Title = title
	}
	if content != "" {
		blog.Content = content
	}

	updated, err := s.blogs.Update(ctx, blog)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
	return updated, nil
}

func (s *BlogService) Delete(ctx context.Context, principal Principal, id string) error {
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return utils.NewAppError(http.StatusNotFound, "NOT_FOUND", "Blog not found")
		}
		return utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}

	if !principal.IsAdmin() && blog.UserID != principal.UserID {
		return utils.NewAppError(http.StatusForbidden, "AUTHORIZATION_ERROR", "Not authorized to delete this blog")
	}

	if err := s.blogs.Delete(ctx, id); err != nil {
		return utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
	return nil
}
