package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogwhale-server/internal/models"
	"blogwhale-server/internal/services"
)

type userFixture struct {
	svc    *services.UserService
	users  *fakeUserRepo
	blogs  *fakeBlogRepo
	admin  *models.User
	normal *models.User
}

func newUserFixture(t *testing.T) *userFixture {
	t.Helper()
	users := newFakeUserRepo()
	blogs := newFakeBlogRepo(users)
	svc := services.NewUserService(users, blogs, 6)

	admin, err := users.Create(context.Background(), &models.User{
		Name: "Admin", Email: "admin@example.com", PasswordHash: "x", Role: models.RoleAdmin,
	})
	require.NoError(t, err)
	normal, err := users.Create(context.Background(), &models.User{
		Name: "Normal", Email: "user@example.com", PasswordHash: "x", Role: models.RoleNormal,
	})
	require.NoError(t, err)

	return &userFixture{svc: svc, users: users, blogs: blogs, admin: admin, normal: normal}
}

func principalFor(u *models.User) services.Principal {
	return services.Principal{UserID: u.ID, Email: u.Email, Role: u.Role}
}

func TestUserGet_SelfOrAdmin(t *testing.T) {
	f := newUserFixture(t)

	got, err := f.svc.Get(context.Background(), principalFor(f.normal), f.normal.ID)
	require.NoError(t, err)
	assert.Equal(t, f.normal.ID, got.ID)

	got, err = f.svc.Get(context.Background(), principalFor(f.admin), f.normal.ID)
	require.NoError(t, err)
	assert.Equal(t, f.normal.ID, got.ID)

	_, err = f.svc.Get(context.Background(), principalFor(f.normal), f.admin.ID)
	requireAppError(t, err, http.StatusForbidden, "Not authorized")
}

func TestUserUpdate_RoleChangeIsAdminOnly(t *testing.T) {
	f := newUserFixture(t)

	_, err := f.svc.Update(context.Background(), principalFor(f.normal), f.normal.ID,
		services.UserUpdate{Role: "admin"})
	requireAppError(t, err, http.StatusForbidden, "Only administrators can modify user roles")

	updated, err := f.svc.Update(context.Background(), principalFor(f.admin), f.normal.ID,
		services.UserUpdate{Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, updated.Role)
}

func TestUserUpdate_SelfOnlyForNonAdmins(t *testing.T) {
	f := newUserFixture(t)

	_, err := f.svc.Update(context.Background(), principalFor(f.normal), f.admin.ID,
		services.UserUpdate{Name: "Hacked"})
	requireAppError(t, err, http.StatusForbidden, "Not authorized to modify other users")

	updated, err := f.svc.Update(context.Background(), principalFor(f.normal), f.normal.ID,
		services.UserUpdate{Name: "Self Updated", Email: "SELF@Example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Self Updated", updated.Name)
	assert.Equal(t, "self@example.com", updated.Email)
	assert.Equal(t, models.RoleNormal, updated.Role)
}

func TestUserUpdate_InvalidRole(t *testing.T) {
	f := newUserFixture(t)

	_, err := f.svc.Update(context.Background(), principalFor(f.admin), f.normal.ID,
		services.UserUpdate{Role: "superuser"})
	requireAppError(t, err, http.StatusBadRequest, "Invalid role")
}

func TestUserUpdate_MissingUser(t *testing.T) {
	f := newUserFixture(t)

	_, err := f.svc.Update(context.Background(), principalFor(f.admin), "missing-id",
		services.UserUpdate{Name: "X"})
	requireAppError(t, err, http.StatusNotFound, "User not found")
}

func TestUserCreate_AdminPath(t *testing.T) {
	f := newUserFixture(t)

	user, err := f.svc.Create(context.Background(), "New", "new@example.com", "password1", "")
	require.NoError(t, err)
	assert.Equal(t, models.RoleNormal, user.Role, "role defaults to normal")
	assert.NotEqual(t, "password1", user.PasswordHash)

	_, err = f.svc.Create(context.Background(), "Dup", "NEW@example.com", "password1", "normal")
	requireAppError(t, err, http.StatusBadRequest, "User already exists")

	_, err = f.svc.Create(context.Background(), "Bad", "bad@example.com", "password1", "root")
	requireAppError(t, err, http.StatusBadRequest, "Invalid role")
}

func TestUserDelete_CascadesBlogs(t *testing.T) {
	f := newUserFixture(t)

	for _, title := range []string{"B1", "B2"} {
		_, err := f.blogs.Create(context.Background(), &models.Blog{
			Title: title, Content: "C", UserID: f.normal.ID,
		})
		require.NoError(t, err)
	}
	_, err := f.blogs.Create(context.Background(), &models.Blog{
		Title: "Other", Content: "C", UserID: f.admin.ID,
	})
	require.NoError(t, err)

	err = f.svc.Delete(context.Background(), f.normal.ID)
	require.NoError(t, err)

	_, err = f.users.GetByID(context.Background(), f.normal.ID)
	assert.Error(t, err)

	remaining, err := f.blogs.List(context.Background())
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, f.admin.ID, remaining[0].UserID, "only the other author's blogs survive")
}

func TestUserDelete_AdminIsProtected(t *testing.T) {
	f := newUserFixture(t)

	// The rule is absolute: even an admin cannot delete an admin account.
	err := f.svc.Delete(context.Background(), f.admin.ID)
	requireAppError(t, err, http.StatusForbidden, "Cannot delete admin user")

	_, err = f.users.GetByID(context.Background(), f.admin.ID)
	assert.NoError(t, err)
}

func TestUserDelete_Missing(t *testing.T) {
	f := newUserFixture(t)

	err := f.svc.Delete(context.Background(), "missing-id")
	requireAppError(t, err, http.StatusNotFound, "User not found")
}

func TestOverview_Statistics(t *testing.T) {
	f := newUserFixture(t)

	for _, title := range []string{"B1", "B2"} {
		_, err := f.blogs.Create(context.Background(), &models.Blog{
			Title: title, Content: "C", UserID: f.normal.ID,
		})
		require.NoError(t, err)
	}
	_, err := f.blogs.Create(context.Background(), &models.Blog{
		Title: "Admin Blog", Content: "C", UserID: f.admin.ID,
	})
	require.NoError(t, err)

	overview, err := f.svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Len(t, overview.Users, 2)
	assert.Equal(t, int64(2), overview.Statistics.TotalUsers)
	assert.Equal(t, int64(3), overview.Statistics.TotalBlogs)
	require.Len(t, overview.Statistics.BlogsPerAuthor, 2)

	byEmail := map[string]int64{}
	for _, stats := range overview.Statistics.BlogsPerAuthor {
		byEmail[stats.Author.Email] = stats.Count
	}
	assert.Equal(t, int64(2), byEmail["user@example.com"])
	assert.Equal(t, int64(1), byEmail["admin@example.com"])
}
