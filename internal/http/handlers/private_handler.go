package handlers

import (
	"github.com/gin-gonic/gin"

	"blogwhale-server/internal/services"
	"blogwhale-server/internal/utils"
)

// PrivateHandler serves the admin dashboard endpoint: the full user list plus
// content statistics.
type PrivateHandler struct {
	users *services.UserService
}

func NewPrivateHandler(users *services.UserService) *PrivateHandler {
	return &PrivateHandler{users: users}
}

func (h *PrivateHandler) Overview(c *gin.Context) {
	overview, err := h.users.Overview(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, gin.H{
		"users":      overview.Users,
		"statistics": overview.Statistics,
	})
}
