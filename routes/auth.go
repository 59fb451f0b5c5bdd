package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ductho-dev/ecommerce-api/config"
	authControllers "github.com/ductho-dev/ecommerce-api/controllers/auth"
	"github.com/ductho-dev/ecommerce-api/middleware"
)

// SetupAuthRoutes registers registration, login, and the token-protected
// profile endpoint.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	v1 := r.Group("/api/v1")
	{
		v1.POST("/register", authControllers.Register(db))
		v1.POST("/login", authControllers.Login(db, cfg.JWTSecret))
		v1.GET("/me", middleware.RequireAuth(cfg.JWTSecret), authControllers.Me(db))
	}
}
