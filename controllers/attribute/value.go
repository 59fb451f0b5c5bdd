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

type ValueInput struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"gte=0"`
	Quantity int     `json:"quantity" binding:"gte=0"`
	SizeIDs  []uint  `json:"size_ids"`
}

type ValueCreateInput struct {
	AttributeID uint    `json:"attribute_id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"gte=0"`
	Quantity    int     `json:"quantity" binding:"gte=0"`
	SizeIDs     []uint  `json:"size_ids"`
}

func fetchSizes(db *gorm.DB, ids []uint) ([]models.Size, error) {
	var sizes []models.Size
	if len(ids) == 0 {
		return sizes, nil
	}
	err := db.Where("id IN ?", ids).Find(&sizes).Error
	return sizes, err
}

func createValue(db *gorm.DB, c *gin.Context, attributeID uint, name string, price float64, quantity int, sizeIDs []uint) {
	var attribute models.Attribute
	if err := db.First(&attribute, attributeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apperr.Respond(c, apperr.NotFound("attribute not found"))
			return
		}
		apperr.Respond(c, apperr.Internal("failed to retrieve attribute"))
		return
	}

	sizes, err := fetchSizes(db, sizeIDs)
	if err != nil {
		apperr.Respond(c, apperr.Internal("failed to fetch sizes"))
		return
	}

	value := models.AttributeValue{
		AttributeID: attribute.ID,
		Name:        name,
		Price:       price,
		Quantity:    quantity,
		Sizes:       sizes,
	}
	if err := db.Create(&value).Error; err != nil {
		apperr.Respond(c, apperr.Internal("failed to create attribute value"))
		return
	}
	c.JSON(http.StatusCreated, value)
}

// CreateValueForAttribute hangs a new value under the attribute in the path.
// POST /api/v1/attributes/:id/values
func CreateValueForAttribute(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			apperr.Respond(c, apperr.Validation("invalid attribute id"))
			return
		}

		var input ValueInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Respond(c, apperr.Validation(err.Error()))
			return
		}
		createValue(db, c, uint(id), input.Name, input.Price, input.Quantity, input.SizeIDs)
	}
}

// CreateValue takes the owning attribute id in the body.
// POST /api/v1/attributesvalues
func CreateValue(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ValueCreateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Respond(c, apperr.Validation(err.Error()))
			return
		}
		createValue(db, c, input.AttributeID, input.Name, input.Price, input.Quantity, input.SizeIDs)
	}
}

// GET /api/v1/attributesvalues
func GetValues(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var values []models.AttributeValue
		if err := db.Find(&values).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to fetch attribute values"))
			return
		}
		c.JSON(http.StatusOK, values)
	}
}

// GET /api/v1/attributesvalues/:id
func GetValueByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			apperr.Respond(c, apperr.Validation("invalid value id"))
			return
		}

		var value models.AttributeValue
		if err := db.Preload("Sizes").First(&value, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperr.Respond(c, apperr.NotFound("attribute value not found"))
				return
			}
			apperr.Respond(c, apperr.Internal("failed to retrieve attribute value"))
			return
		}
		c.JSON(http.StatusOK, value)
	}
}

// PUT /api/v1/attributesvalues/:id
func UpdateValue(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			apperr.Respond(c, apperr.Validation("invalid value id"))
			return
		}

		var value models.AttributeValue
		if err := db.First(&value, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperr.Respond(c, apperr.NotFound("attribute value not found"))
				return
			}
			apperr.Respond(c, apperr.Internal("failed to retrieve attribute value"))
			return
		}

		var input ValueInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Respond(c, apperr.Validation(err.Error()))
			return
		}

		sizes, err := fetchSizes(db, input.SizeIDs)
		if err != nil {
			apperr.Respond(c, apperr.Internal("failed to fetch sizes"))
			return
		}

		value.Name = input.Name
		value.Price = input.Price
		value.Quantity = input.Quantity
		if err := db.Model(&value).Association("Sizes").Replace(sizes); err != nil {
			apperr.Respond(c, apperr.Internal("failed to update sizes"))
			return
		}
		value.Sizes = sizes
		if err := db.Save(&value).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to update attribute value"))
			return
		}
		c.JSON(http.StatusOK, value)
	}
}

// DELETE /api/v1/attributesvalues/:id
func DeleteValue(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			apperr.Respond(c, apperr.Validation("invalid value id"))
			return
		}

		var value models.AttributeValue
		if err := db.First(&value, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperr.Respond(c, apperr.NotFound("attribute value not found"))
				return
			}
			apperr.Respond(c, apperr.Internal("failed to retrieve attribute value"))
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&value).Association("Sizes").Clear(); err != nil {
				return err
			}
			return tx.Delete(&value).Error
		})
		if err != nil {
			apperr.Respond(c, apperr.Internal("failed to delete attribute value"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "ValueAttribute deleted"})
	}
}
