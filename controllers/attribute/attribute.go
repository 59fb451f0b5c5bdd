package attributeControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ductho-dev/ecommerce-api/models"
	"github.com/ductho-dev/ecommerce-api/pkg/apperr"
)

type AttributeInput struct {
	Name string `json:"name" binding:"required"`
}

// POST /api/v1/attributes
func CreateAttribute(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AttributeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Respond(c, apperr.Validation("name is required"))
			return
		}

		var count int64
		if err := db.Model(&models.Attribute{}).Where("name = ?", input.Name).Count(&count).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to check attribute name"))
			return
		}
		if count > 0 {
			apperr.Respond(c, apperr.Conflict("attribute name already exists"))
			return
		}

		attribute := models.Attribute{Name: input.Name}
		if err := db.Create(&attribute).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to create attribute"))
			return
		}
		c.JSON(http.StatusCreated, attribute)
	}
}

// GetAttributes lists attributes with their values expanded.
// GET /api/v1/attributes
func GetAttributes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var attributes []models.Attribute
		if err := db.Preload("Values").Find(&attributes).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to fetch attributes"))
			return
		}
		c.JSON(http.StatusOK, attributes)
	}
}

// GetAttributeByID expands values and, under each value, its sizes.
// GET /api/v1/attributes/:id
func GetAttributeByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			apperr.Respond(c, apperr.Validation("invalid attribute id"))
			return
		}

		var attribute models.Attribute
		if err := db.Preload("Values.Sizes").First(&attribute, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperr.Respond(c, apperr.NotFound("attribute not found"))
				return
			}
			apperr.Respond(c, apperr.Internal("failed to retrieve attribute"))
			return
		}
		c.JSON(http.StatusOK, attribute)
	}
}

// PUT /api/v1/attributes/:id
func UpdateAttribute(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			apperr.Respond(c, apperr.Validation("invalid attribute id"))
			return
		}

		var attribute models.Attribute
		if err := db.First(&attribute, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperr.Respond(c, apperr.NotFound("attribute not found"))
				return
			}
			apperr.Respond(c, apperr.Internal("failed to retrieve attribute"))
			return
		}

		var input AttributeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Respond(c, apperr.Validation("name is required"))
			return
		}

		var count int64
		if err := db.Model(&models.Attribute{}).Where("name = ? AND id <> ?", input.Name, attribute.ID).Count(&count).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to check attribute name"))
			return
		}
		if count > 0 {
			apperr.Respond(c, apperr.Conflict("attribute name already exists"))
			return
		}

		attribute.Name = input.Name
		if err := db.Save(&attribute).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to update attribute"))
			return
		}
		c.JSON(http.StatusOK, attribute)
	}
}

// DELETE /api/v1/attributes/:id
func DeleteAttribute(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			apperr.Respond(c, apperr.Validation("invalid attribute id"))
			return
		}

		var attribute models.Attribute
		if err := db.First(&attribute, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperr.Respond(c, apperr.NotFound("attribute not found"))
				return
			}
			apperr.Respond(c, apperr.Internal("failed to retrieve attribute"))
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("attribute_id = ?", attribute.ID).Delete(&models.AttributeValue{}).Error; err != nil {
				return err
			}
			return tx.Delete(&attribute).Error
		})
		if err != nil {
			apperr.Respond(c, apperr.Internal("failed to delete attribute"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Attribute deleted"})
	}
}
