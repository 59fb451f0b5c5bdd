package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ductho-dev/ecommerce-api/config"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	SetupAuthRoutes(r, db, cfg)
	SetupCatalogRoutes(r, db)
	SetupCartRoutes(r, db)
	SetupOrderRoutes(r, db)
}
