package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/ductho-dev/ecommerce-api/models"
	"github.com/ductho-dev/ecommerce-api/pkg/apperr"
)

type ProductInput struct {
	Name        string   `json:"name" binding:"required"`
	CategoryID  uint     `json:"category_id" binding:"required"`
	Slug        string   `json:"slug"`
	Images      []string `json:"img"`
	Price       float64  `json:"price" binding:"gte=0"`
	Description string   `json:"description"`
	Discount    float64  `json:"discount" binding:"gte=0"`
	Featured    bool     `json:"featured"`
	TagIDs      []uint   `json:"tag_ids"`
	Stock       int      `json:"stock" binding:"gte=0"`
	AttributeID *uint    `json:"attribute_id"`
}

// CreateProduct creates a new product. The slug is derived from the name
// when the client does not supply one.
// POST /api/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Respond(c, apperr.Validation(err.Error()))
			return
		}

		var category models.Category
		if err := db.First(&category, input.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperr.Respond(c, apperr.NotFound("category not found"))
				return
			}
			apperr.Respond(c, apperr.Internal("failed to validate category"))
			return
		}

		var tags []models.Tag
		if len(input.TagIDs) > 0 {
			if err := db.Where("id IN ?", input.TagIDs).Find(&tags).Error; err != nil {
				apperr.Respond(c, apperr.Internal("failed to fetch tags"))
				return
			}
		}

		productSlug := input.Slug
		if productSlug == "" {
			productSlug = slug.Make(input.Name)
		}
		var count int64
		if err := db.Model(&models.Product{}).Where("slug = ?", productSlug).Count(&count).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to check slug"))
			return
		}
		if count > 0 {
			apperr.Respond(c, apperr.Conflict("product slug already exists"))
			return
		}

		product := models.Product{
			Name:        input.Name,
			CategoryID:  input.CategoryID,
			Slug:        productSlug,
			Images:      input.Images,
			Price:       input.Price,
			Description: input.Description,
			Discount:    input.Discount,
			Featured:    input.Featured,
			Tags:        tags,
			Stock:       input.Stock,
			AttributeID: input.AttributeID,
		}
		if err := db.Create(&product).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to create product"))
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
