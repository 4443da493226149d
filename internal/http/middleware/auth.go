package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blogwhale-server/internal/services"
	"blogwhale-server/internal/utils"
)

const principalKey = "auth_principal"

// CurrentUser returns the authenticated principal placed by RequireAuth.
// It is the only way handlers read the request identity.
func CurrentUser(c *gin.Context) (services.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return services.Principal{}, false
	}
	principal, ok := value.(services.Principal)
	return principal, ok
}

// RequireAuth extracts the bearer token, verifies it and attaches the
// principal. Failures abort with 401 and the precise reason; the downstream
// handler never runs.
func RequireAuth(tokens *services.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			abortAuth(c, services.ErrMissingToken)
			return
		}

		principal, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			abortAuth(c, err)
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireAdmin composes after RequireAuth and gates admin-only routes.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := CurrentUser(c)
		if !ok {
			abortAuth(c, services.ErrMissingToken)
			return
		}
		if !principal.IsAdmin() {
			utils.RespondError(c, utils.NewAppError(http.StatusForbidden, "AUTHORIZATION_ERROR", "Not authorized as admin"))
			c.Abort()
			return
		}
		c.Next()
	}
}

func abortAuth(c *gin.Context, err error) {
	message := "Invalid token"
	switch {
	case errors.Is(err, services.ErrMissingToken):
		message = "No token provided"
	case errors.Is(err, services.ErrTokenExpired):
		message = "Token expired"
	}
	utils.RespondError(c, utils.NewAppError(http.StatusUnauthorized, "AUTHENTICATION_ERROR", message))
	c.Abort()
}
