package services_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"blogwhale-server/internal/models"
	"blogwhale-server/internal/services"
	"blogwhale-server/internal/utils"
)

func newAuthFixture(t *testing.T) (*services.AuthService, *fakeUserRepo, *services.TokenManager) {
	t.Helper()
	users := newFakeUserRepo()
	tokens := services.NewTokenManager("test-secret", time.Hour)
	return services.NewAuthService(users, tokens, 6), users, tokens
}

func requireAppError(t *testing.T, err error, status int, message string) {
	t.Helper()
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, status, appErr.Status)
	assert.Equal(t, message, appErr.Message)
}

func TestRegister_HashesPasswordAndStripsIt(t *testing.T) {
	auth, users, _ := newAuthFixture(t)

	user, err := auth.Register(context.Background(), "A", "a@x.com", "password1")
	require.NoError(t, err)

	assert.NotEqual(t, "password1", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password1")))
	assert.Equal(t, models.RoleNormal, user.Role)

	stored, err := users.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "password1", stored.PasswordHash)
}

func TestRegister_LowercasesEmail(t *testing.T) {
	auth, users, _ := newAuthFixture(t)

	_, err := auth.Register(context.Background(), "A", "MiXeD@X.CoM", "password1")
	require.NoError(t, err)

	stored, err := users.GetByEmail(context.Background(), "mixed@x.com")
	require.NoError(t, err)
	assert.Equal(t, "mixed@x.com", stored.Email)
}

func TestRegister_DuplicateEmailCaseInsensitive(t *testing.T) {
	auth, _, _ := newAuthFixture(t)

	_, err := auth.Register(context.Background(), "A", "a@x.com", "password1")
	require.NoError(t, err)

	_, err = auth.Register(context.Background(), "B", "A@X.COM", "password2")
	requireAppError(t, err, http.StatusBadRequest, "User already exists")
}

func TestRegister_MissingFields(t *testing.T) {
	auth, _, _ := newAuthFixture(t)

	cases := []struct {
		name, userName, email, password string
	}{
		{"no name", "", "a@x.com", "password1"},
		{"no email", "A", "", "password1"},
		{"no password", "A", "a@x.com", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := auth.Register(context.Background(), tc.userName, tc.email, tc.password)
			requireAppError(t, err, http.StatusBadRequest, "Please provide name, email and password")
		})
	}
}

func TestRegister_ShortPassword(t *testing.T) {
	auth, _, _ := newAuthFixture(t)

	_, err := auth.Register(context.Background(), "A", "a@x.com", "p1")
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestLogin_Success(t *testing.T) {
	auth, _, tokens := newAuthFixture(t)

	_, err := auth.Register(context.Background(), "A", "a@x.com", "password1")
	require.NoError(t, err)

	resp, err := auth.Login(context.Background(), "A@X.com", "password1")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "a@x.com", resp.User.Email)

	principal, err := tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, principal.UserID)
	assert.Equal(t, models.RoleNormal, principal.Role)
}

func TestLogin_GenericFailureMessage(t *testing.T) {
	auth, _, _ := newAuthFixture(t)

	_, err := auth.Register(context.Background(), "A", "a@x.com", "password1")
	require.NoError(t, err)

	// Unknown email and wrong password must be indistinguishable.
	_, errUnknown := auth.Login(context.Background(), "nobody@x.com", "password1")
	requireAppError(t, errUnknown, http.StatusUnauthorized, "Invalid credentials")

	_, errWrongPw := auth.Login(context.Background(), "a@x.com", "wrong-password")
	requireAppError(t, errWrongPw, http.StatusUnauthorized, "Invalid credentials")
}

func TestLogin_MissingFields(t *testing.T) {
	auth, _, _ := newAuthFixture(t)

	_, err := auth.Login(context.Background(), "", "")
	requireAppError(t, err, http.StatusBadRequest, "Please provide email and password")
}
