package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogwhale-server/internal/http/middleware"
	"blogwhale-server/internal/services"
	"blogwhale-server/internal/utils"
)

type BlogHandler struct {
	blogs *services.BlogService
}

type BlogRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func NewBlogHandler(blogs *services.BlogService) *BlogHandler {
	return &BlogHandler{blogs: blogs}
}

func (h *BlogHandler) List(c *gin.Context) {
	blogs, err := h.blogs.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"data": blogs})
}

func (h *BlogHandler) Get(c *gin.Context) {
	blog, err := h.blogs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"data": blog})
}

func (h *BlogHandler) Create(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, utils.NewAppError(http.StatusUnauthorized, "AUTHENTICATION_ERROR", "No token provided"))
		return
	}

	var req BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, "Please provide title and content")
		return
	}

	blog, err := h.blogs.Create(c.Request.Context(), principal, req.Title, req.Content)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"data": blog})
}

func (h *BlogHandler) Update(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, utils.NewAppError(http.StatusUnauthorized, "AUTHENTICATION_ERROR", "No token provided"))
		return
	}

	var req BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, "Invalid request body")
		return
	}

	blog, err := h.blogs.Update(c.Request.Context(), principal, c.Param("id"), req.Title, req.Content)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, gin.H{"data": blog})
}

func (h *BlogHandler) Delete(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, utils.NewAppError(http.StatusUnauthorized, "AUTHENTICATION_ERROR", "No token provided"))
		return
	}

	if err := h.blogs.Delete(c.Request.Context(), principal, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, gin.H{"message": "Blog deleted successfully"})
}
