package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ductho-dev/ecommerce-api/models"
	"github.com/ductho-dev/ecommerce-api/pkg/apperr"
)

// GetProducts returns the whole catalog with tags expanded.
// GET /api/products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Tags").Find(&products).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to fetch products"))
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetProductByID returns a single product with its attribute and values.
// GET /api/products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			apperr.Respond(c, apperr.Validation("invalid product id"))
			return
		}

		var product models.Product
		if err := db.Preload("Tags").Preload("Attribute.Values").First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperr.Respond(c, apperr.NotFound("product not found"))
				return
			}
			apperr.Respond(c, apperr.Internal("failed to retrieve product"))
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
