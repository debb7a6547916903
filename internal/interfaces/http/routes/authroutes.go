package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/interfaces/http/handlers"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for the public routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	BoardHandler   *handlers.BoardHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter // may be nil when redis is disabled
}

// SetupAuthRoutes configures the welcome page, login, registration and logout.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	engine.GET("/healthz", cfg.BoardHandler.HealthCheck)
	engine.GET("/", cfg.AuthMiddleware.OptionalAuth(), cfg.BoardHandler.Index)

	engine.GET("/login", cfg.AuthHandler.LoginPage)
	engine.POST("/login", cfg.RateLimiter.Limit("login"), cfg.AuthHandler.Login)
	engine.GET("/register", cfg.AuthHandler.RegisterPage)
	engine.POST("/register", cfg.RateLimiter.Limit("register"), cfg.AuthHandler.Register)

	engine.GET("/logout", cfg.AuthHandler.LogoutPage)
	engine.POST("/logout", cfg.AuthHandler.Logout)

	engine.GET("/api/me", cfg.AuthMiddleware.OptionalAuth(), cfg.AuthHandler.Me)
}
