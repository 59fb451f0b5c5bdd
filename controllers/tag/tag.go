package tagControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ductho-dev/ecommerce-api/models"
	"github.com/ductho-dev/ecommerce-api/pkg/apperr"
)

type TagInput struct {
	Name string `json:"name" binding:"required"`
}

// GET /api/v1/tags
func GetTags(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tags []models.Tag
		if err := db.Find(&tags).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to fetch tags"))
			return
		}
		if len(tags) == 0 {
			apperr.Respond(c, apperr.NotFound("no tags found"))
			return
		}
		c.JSON(http.StatusOK, tags)
	}
}

// GET /api/v1/tags/:id
func GetTagByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			apperr.Respond(c, apperr.Validation("invalid tag id"))
			return
		}

		var tag models.Tag
		if err := db.First(&tag, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperr.Respond(c, apperr.NotFound("tag not found"))
				return
			}
			apperr.Respond(c, apperr.Internal("failed to retrieve tag"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"tag": tag})
	}
}

// POST /api/v1/tags
func CreateTag(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input TagInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Respond(c, apperr.Validation("name is required"))
			return
		}

		var count int64
		if err := db.Model(&models.Tag{}).Where("name = ?", input.Name).Count(&count).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to check tag name"))
			return
		}
		if count > 0 {
			apperr.Respond(c, apperr.Conflict("tag name already exists"))
			return
		}

		tag := models.Tag{Name: input.Name}
		if err := db.Create(&tag).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to create tag"))
			return
		}
		c.JSON(http.StatusCreated, tag)
	}
}

// PUT /api/v1/tags/:id
func UpdateTag(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			apperr.Respond(c, apperr.Validation("invalid tag id"))
			return
		}

		var tag models.Tag
		if err := db.First(&tag, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperr.Respond(c, apperr.NotFound("tag not found"))
				return
			}
			apperr.Respond(c, apperr.Internal("failed to retrieve tag"))
			return
		}

		var input TagInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Respond(c, apperr.Validation("name is required"))
			return
		}

		var count int64
		if err := db.Model(&models.Tag{}).Where("name = ? AND id <> ?", input.Name, tag.ID).Count(&count).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to check tag name"))
			return
		}
		if count > 0 {
			apperr.Respond(c, apperr.Conflict("tag name already exists"))
			return
		}

		tag.Name = input.Name
		if err := db.Save(&tag).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to update tag"))
			return
		}
		c.JSON(http.StatusOK, tag)
	}
}

// DELETE /api/v1/tags/:id
func DeleteTag(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			apperr.Respond(c, apperr.Validation("invalid tag id"))
			return
		}

		var tag models.Tag
		if err := db.First(&tag, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperr.Respond(c, apperr.NotFound("tag not found"))
				return
			}
			apperr.Respond(c, apperr.Internal("failed to retrieve tag"))
			return
		}

		if err := db.Delete(&tag).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to delete tag"))
			return
		}
		c.JSON(http.StatusOK, tag)
	}
}
