package sizeControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ductho-dev/ecommerce-api/models"
	"github.com/ductho-dev/ecommerce-api/pkg/apperr"
)

type SizeInput struct {
	Name string `json:"name" binding:"required"`
}

// GET /api/v1/size
func GetSizes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sizes []models.Size
		if err := db.Find(&sizes).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to fetch sizes"))
			return
		}
		if len(sizes) == 0 {
			apperr.Respond(c, apperr.NotFound("no sizes found"))
			return
		}
		c.JSON(http.StatusOK, sizes)
	}
}

// GET /api/v1/size/:id
func GetSizeByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			apperr.Respond(c, apperr.Validation("invalid size id"))
			return
		}

		var size models.Size
		if err := db.First(&size, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperr.Respond(c, apperr.NotFound("size not found"))
				return
			}
			apperr.Respond(c, apperr.Internal("failed to retrieve size"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"size": size})
	}
}

// POST /api/v1/size
func CreateSize(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SizeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Respond(c, apperr.Validation("name is required"))
			return
		}

		size := models.Size{Name: input.Name}
		if err := db.Create(&size).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to create size"))
			return
		}
		c.JSON(http.StatusCreated, size)
	}
}

// PUT /api/v1/size/:id
func UpdateSize(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			apperr.Respond(c, apperr.Validation("invalid size id"))
			return
		}

		var size models.Size
		if err := db.First(&size, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperr.Respond(c, apperr.NotFound("size not found"))
				return
			}
			apperr.Respond(c, apperr.Internal("failed to retrieve size"))
			return
		}

		var input SizeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Respond(c, apperr.Validation("name is required"))
			return
		}

		size.Name = input.Name
		if err := db.Save(&size).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to update size"))
			return
		}
		c.JSON(http.StatusOK, size)
	}
}

// DELETE /api/v1/size/:id
func DeleteSize(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			apperr.Respond(c, apperr.Validation("invalid size id"))
			return
		}

		var size models.Size
		if err := db.First(&size, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperr.Respond(c, apperr.NotFound("size not found"))
				return
			}
			apperr.Respond(c, apperr.Internal("failed to retrieve size"))
			return
		}

		if err := db.Delete(&size).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to delete size"))
			return
		}
		c.JSON(http.StatusOK, size)
	}
}
