package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogwhale-server/internal/services"
	"blogwhale-server/internal/utils"
)

type AuthHandler struct {
	auth *services.AuthService
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, "Please provide name, email and password")
		return
	}

	if _, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"message": "User registered successfully"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, "Please provide email and password")
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   resp.Token,
		"user":    resp.User,
	})
}

// Logout only acknowledges; tokens are stateless and die by expiry. Clients
// drop their copy. There is no server-side revocation list.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.RespondOK(c, gin.H{"message": "Logout successful"})
}
