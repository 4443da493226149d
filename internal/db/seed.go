package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"blogwhale-server/internal/models"
)

type SeedUser struct {
	Name     string
	Email    string
	Password string
	Role     models.Role
}

// EnsureSeedUsers inserts the bootstrap accounts the teaching client ships
// with. Existing rows are left untouched, so the seed is safe to rerun.
func EnsureSeedUsers(ctx context.Context, pool *pgxpool.Pool, timeout time.Duration) error {
	seeds := []SeedUser{
		{Name: "Admin", Email: "admin@example.com", Password: "admin123", Role: models.RoleAdmin},
		{Name: "Demo User", Email: "user@example.com", Password: "user123", Role: models.RoleNormal},
	}

	for _, seed := range seeds {
		exists, err := userExists(ctx, pool, timeout, seed.Email)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}

		ctxInsert, cancel := context.WithTimeout(ctx, timeout)
		_, err = pool.Exec(ctxInsert, `
			INSERT INTO users (name, email, password_hash, role)
			VALUES ($1, $2, $3, $4)
		`, seed.Name, seed.Email, string(hash), seed.Role)
		cancel()
		if err != nil {
			return fmt.Errorf("insert seed user %s: %w", seed.Email, err)
		}
	}

	return nil
}

func userExists(ctx context.Context, pool *pgxpool.Pool, timeout time.Duration, email string) (bool, error) {
	ctxCheck, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	row := pool.QueryRow(ctxCheck, "SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", email)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return exists, nil
}
