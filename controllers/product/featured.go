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

type featuredInput struct {
	Featured *bool `json:"featured" binding:"required"`
}

// ToggleFeatured sets the featured flag and nothing else.
// PATCH /api/products/:id/featured
func ToggleFeatured(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			apperr.Respond(c, apperr.Validation("invalid product id"))
			return
		}

		var input featuredInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Respond(c, apperr.Validation("featured flag is required"))
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperr.Respond(c, apperr.NotFound("product not found"))
				return
			}
			apperr.Respond(c, apperr.Internal("failed to retrieve product"))
			return
		}

		if err := db.Model(&product).Update("featured", *input.Featured).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to update product"))
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
