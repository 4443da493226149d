package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"blogwhale-server/internal/config"
	"blogwhale-server/internal/http/handlers"
	"blogwhale-server/internal/http/middleware"
	"blogwhale-server/internal/services"
)

type Dependencies struct {
	Config      *config.Config
	Tokens      *services.TokenManager
	AuthService *services.AuthService
	BlogService *services.BlogService
	UserService *services.UserService
	Logger      *slog.Logger
	RateLimiter *middleware.RateLimiter
}

func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(deps.Config.AllowedOrigins))

	authHandler := handlers.NewAuthHandler(deps.AuthService)
	blogHandler := handlers.NewBlogHandler(deps.BlogService)
	userHandler := handlers.NewUserHandler(deps.UserService)
	privateHandler := handlers.NewPrivateHandler(deps.UserService)

	router.GET("/healthz", handlers.Health)

	api := router.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Use(deps.RateLimiter.Middleware())
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/logout", authHandler.Logout)

	blogs := api.Group("/blogs")
	blogs.GET("", blogHandler.List)
	blogs.GET("/:id", blogHandler.Get)

	blogsAuth := api.Group("/blogs")
	blogsAuth.Use(middleware.RequireAuth(deps.Tokens))
	blogsAuth.POST("", blogHandler.Create)
	blogsAuth.PUT("/:id", blogHandler.Update)
	blogsAuth.DELETE("/:id", blogHandler.Delete)

	users := api.Group("/users")
	users.Use(middleware.RequireAuth(deps.Tokens))
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)

	usersAdmin := api.Group("/users")
	usersAdmin.Use(middleware.RequireAuth(deps.Tokens), middleware.RequireAdmin())
	usersAdmin.GET("", userHandler.List)
	usersAdmin.POST("", userHandler.Create)
	usersAdmin.DELETE("/:id", userHandler.Delete)

	private := api.Group("/private")
	private.Use(middleware.RequireAuth(deps.Tokens), middleware.RequireAdmin())
	private.GET("", privateHandler.Overview)

	return router
}
