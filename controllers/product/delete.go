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

// DeleteProduct removes a product and its tag associations.
// DELETE /api/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			apperr.Respond(c, apperr.Validation("invalid product id"))
			return
		}

		var product models.Product
		if err := db.Preload("Tags").First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperr.Respond(c, apperr.NotFound("product not found"))
				return
			}
			apperr.Respond(c, apperr.Internal("failed to retrieve product"))
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&product).Association("Tags").Clear(); err != nil {
				return err
			}
			return tx.Delete(&product).Error
		})
		if err != nil {
			apperr.Respond(c, apperr.Internal("failed to delete product"))
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
