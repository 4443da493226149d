package services

import (
	"context"

	"blogwhale-server/internal/models"
	"blogwhale-server/internal/repo"
)

// UserRepository is the slice of the user store the services need. The pgx
// implementation lives in internal/repo; tests plug in memory-backed fakes.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type BlogRepository interface {
	GetByID(ctx context.Context, id string) (*models.Blog, error)
	List(ctx context.Context) ([]models.Blog, error)
	Create(ctx context.Context, blog *models.Blog) (*models.Blog, error)
	Update(ctx context.Context, blog *models.Blog) (*models.Blog, error)
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
	Count(ctx context.Context) (int64, error)
	CountByAuthor(ctx context.Context) ([]repo.AuthorCount, error)
}

var (
	_ UserRepository = (*repo.UserRepo)(nil)
	_ BlogRepository = (*repo.BlogRepo)(nil)
)
