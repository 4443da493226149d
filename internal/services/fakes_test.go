package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"blogwhale-server/internal/models"
	"blogwhale-server/internal/repo"
)

// In-memory stand-ins for the pgx repos. They honor the same sentinel
// contract (repo.ErrNotFound / repo.ErrDuplicateEmail) the services match on.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return nil, repo.ErrDuplicateEmail
		}
	}
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	f.users[user.ID] = &copied
	return user, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return nil, repo.ErrNotFound
	}
	for id, u := range f.users {
		if id != user.ID && u.Email == user.Email {
			return nil, repo.ErrDuplicateEmail
		}
	}
	user.UpdatedAt = time.Now()
	copied := *user
	f.users[user.ID] = &copied
	return user, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

type fakeBlogRepo struct {
	mu    sync.Mutex
	blogs map[string]*models.Blog
	users *fakeUserRepo
}

func newFakeBlogRepo(users *fakeUserRepo) *fakeBlogRepo {
	return &fakeBlogRepo{blogs: map[string]*models.Blog{}, users: users}
}

func (f *fakeBlogRepo) GetByID(_ context.Context, id string) (*models.Blog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.blogs[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBlogRepo) List(_ context.Context) ([]models.Blog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Blog
	for _, b := range f.blogs {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBlogRepo) Create(_ context.Context, blog *models.Blog) (*models.Blog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	blog.ID = uuid.NewString()
	blog.CreatedAt = time.Now()
	blog.UpdatedAt = blog.CreatedAt
	copied := *blog
	f.blogs[blog.ID] = &copied
	return blog, nil
}

func (f *fakeBlogRepo) Update(_ context.Context, blog *models.Blog) (*models.Blog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.blogs[blog.ID]; !ok {
		return nil, repo.ErrNotFound
	}
	blog.UpdatedAt = time.Now()
	copied := *blog
	f.blogs[blog.ID] = &copied
	return blog, nil
}

func (f *fakeBlogRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.blogs[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.blogs, id)
	return nil
}

func (f *fakeBlogRepo) DeleteByUser(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, b := range f.blogs {
		if b.UserID == userID {
			delete(f.blogs, id)
		}
	}
	return nil
}

func (f *fakeBlogRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.blogs)), nil
}

func (f *fakeBlogRepo) CountByAuthor(_ context.Context) ([]repo.AuthorCount, error) {
	f.mu.Lock()
	counts := map[string]int64{}
	for _, b := range f.blogs {
		counts[b.UserID]++
	}
	f.mu.Unlock()

	var out []repo.AuthorCount
	for userID, count := range counts {
		ac := repo.AuthorCount{AuthorID: userID, Count: count}
		if f.users != nil {
			if u, err := f.users.GetByID(context.Background(), userID); err == nil {
				ac.AuthorName = u.Name
				ac.AuthorEmail = u.Email
			}
		}
		out = append(out, ac)
	}
	return out, nil
}
