package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blogwhale-server/internal/models"
)

type BlogRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// AuthorCount is one row of the per-author blog statistics.
type AuthorCount struct {
	AuthorID    string
	AuthorName  string
	AuthorEmail string
	Count       int64
}

func NewBlogRepo(pool *pgxpool.Pool, timeout time.Duration) *BlogRepo {
	return &BlogRepo{pool: pool, timeout: timeout}
}

const blogColumns = "id, title, content, user_id, created_at, updated_at"

func scanBlog(row pgx.Row) (*models.Blog, error) {
	var blog models.Blog
	err := row.Scan(
		&blog.ID,
		&blog.Title,
		&blog.Content,
		&blog.UserID,
		&blog.CreatedAt,
		&blog.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan blog: %w", err)
	}
	return &blog, nil
}

func (r *BlogRepo) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		SELECT `+blogColumns+`
		FROM blogs
		WHERE id = $1
	`, id)
	return scanBlog(row)
}

func (r *BlogRepo) List(ctx context.Context) ([]models.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT `+blogColumns+`
		FROM blogs
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	defer rows.Close()

	var blogs []models.Blog
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, *blog)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	return blogs, nil
}

func (r *BlogRepo) Create(ctx context.Context, blog *models.Blog) (*models.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		INSERT INTO blogs (title, content, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, blog.Title, blog.Content, blog.UserID)

	if err := row.Scan(&blog.ID, &blog.CreatedAt, &blog.UpdatedAt); err != nil {
		return nil, fmt.Errorf("insert blog: %w", err)
	}
	return blog, nil
}

func (r *BlogRepo) Update(ctx context.Context, blog *models.Blog) (*models.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		UPDATE blogs
		SET title = $1, content = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`, blog.Title, blog.Content, blog.ID)

	if err := row.Scan(&blog.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update blog: %w", err)
	}
	return blog, nil
}

func (r *BlogRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByUser removes every blog owned by userID. Deleting zero rows is not
// an error; the cascade caller does not care whether the user ever wrote.
func (r *BlogRepo) DeleteByUser(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.pool.Exec(ctx, `DELETE FROM blogs WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete blogs by user: %w", err)
	}
	return nil
}

func (r *BlogRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM blogs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count blogs: %w", err)
	}
	return count, nil
}

// CountByAuthor returns blog counts grouped by owning user. Authors without
// any blogs do not appear.
func (r *BlogRepo) CountByAuthor(ctx context.Context) ([]AuthorCount, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT u.id, u.name, u.email, COUNT(b.id)
		FROM users u
		JOIN blogs b ON b.user_id = u.id
		GROUP BY u.id, u.name, u.email
		ORDER BY COUNT(b.id) DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("count blogs by author: %w", err)
	}
	defer rows.Close()

	var counts []AuthorCount
	for rows.Next() {
		var ac AuthorCount
		if err := rows.Scan(&ac.AuthorID, &ac.AuthorName, &ac.AuthorEmail, &ac.Count); err != nil {
			return nil, fmt.Errorf("scan author count: %w", err)
		}
		counts = append(counts, ac)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count blogs by author: %w", err)
	}
	return counts, nil
}
