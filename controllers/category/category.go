package categoryControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ductho-dev/ecommerce-api/models"
	"github.com/ductho-dev/ecommerce-api/pkg/apperr"
)

type CategoryInput struct {
	Name string `json:"name" binding:"required"`
}

// GET /api/v1/category
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to fetch categories"))
			return
		}
		if len(categories) == 0 {
			apperr.Respond(c, apperr.NotFound("no categories found"))
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// GetCategoryByID returns the category together with the products filed
// under it.
// GET /api/v1/category/:id
func GetCategoryByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			apperr.Respond(c, apperr.Validation("invalid category id"))
			return
		}

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperr.Respond(c, apperr.NotFound("category not found"))
				return
			}
			apperr.Respond(c, apperr.Internal("failed to retrieve category"))
			return
		}

		var products []models.Product
		if err := db.Where("category_id = ?", category.ID).Find(&products).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to fetch category products"))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"category": category,
			"product":  products,
		})
	}
}

// POST /api/v1/category
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Respond(c, apperr.Validation("name is required"))
			return
		}

		category := models.Category{Name: input.Name}
		if err := db.Create(&category).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to create category"))
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// PUT /api/v1/category/:id
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			apperr.Respond(c, apperr.Validation("invalid category id"))
			return
		}

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperr.Respond(c, apperr.NotFound("category not found"))
				return
			}
			apperr.Respond(c, apperr.Internal("failed to retrieve category"))
			return
		}

		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Respond(c, apperr.Validation("name is required"))
			return
		}

		category.Name = input.Name
		if err := db.Save(&category).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to update category"))
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// DeleteCategory removes the category only. Products keep their category id;
// a dangling reference is accepted here.
// DELETE /api/v1/category/:id
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			apperr.Respond(c, apperr.Validation("invalid category id"))
			return
		}

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperr.Respond(c, apperr.NotFound("category not found"))
				return
			}
			apperr.Respond(c, apperr.Internal("failed to retrieve category"))
			return
		}

		if err := db.Delete(&category).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to delete category"))
			return
		}
		c.JSON(http.StatusOK, category)
	}
}
