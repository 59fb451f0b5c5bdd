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

// ProductUpdateInput uses pointers so only the fields the client actually
// sent get replaced.
type ProductUpdateInput struct {
	Name        *string   `json:"name"`
	CategoryID  *uint     `json:"category_id"`
	Slug        *string   `json:"slug"`
	Images      *[]string `json:"img"`
	Price       *float64  `json:"price"`
	Description *string   `json:"description"`
	Discount    *float64  `json:"discount"`
	Featured    *bool     `json:"featured"`
	TagIDs      *[]uint   `json:"tag_ids"`
	Stock       *int      `json:"stock"`
	AttributeID *uint     `json:"attribute_id"`
}

// UpdateProduct replaces the provided fields on an existing product.
// PUT /api/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
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

		var input ProductUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Respond(c, apperr.Validation(err.Error()))
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.CategoryID != nil {
			product.CategoryID = *input.CategoryID
		}
		if input.Slug != nil && *input.Slug != product.Slug {
			var count int64
			if err := db.Model(&models.Product{}).Where("slug = ? AND id <> ?", *input.Slug, product.ID).Count(&count).Error; err != nil {
				apperr.Respond(c, apperr.Internal("failed to check slug"))
				return
			}
			if count > 0 {
				apperr.Respond(c, apperr.Conflict("product slug already exists"))
				return
			}
			product.Slug = *input.Slug
		}
		if input.Images != nil {
			product.Images = *input.Images
		}
		if input.Price != nil {
			if *input.Price < 0 {
				apperr.Respond(c, apperr.Validation("price must not be negative"))
				return
			}
			product.Price = *input.Price
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Discount != nil {
			if *input.Discount < 0 {
				apperr.Respond(c, apperr.Validation("discount must not be negative"))
				return
			}
			product.Discount = *input.Discount
		}
		if input.Featured != nil {
			product.Featured = *input.Featured
		}
		if input.Stock != nil {
			if *input.Stock < 0 {
				apperr.Respond(c, apperr.Validation("stock must not be negative"))
				return
			}
			product.Stock = *input.Stock
		}
		if input.AttributeID != nil {
			product.AttributeID = input.AttributeID
		}

		if input.TagIDs != nil {
			var tags []models.Tag
			if len(*input.TagIDs) > 0 {
				if err := db.Where("id IN ?", *input.TagIDs).Find(&tags).Error; err != nil {
					apperr.Respond(c, apperr.Internal("failed to fetch tags"))
					return
				}
			}
			if err := db.Model(&product).Association("Tags").Replace(tags); err != nil {
				apperr.Respond(c, apperr.Internal("failed to update tags"))
				return
			}
			product.Tags = tags
		}

		if err := db.Save(&product).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to update product"))
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
