package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ductho-dev/ecommerce-api/models"
	"github.com/ductho-dev/ecommerce-api/pkg/apperr"
)

type AddToCartInput struct {
	UserID    string `json:"userId" binding:"required"`
	ProductID uint   `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type UpdateQuantityInput struct {
	UserID    string `json:"userId" binding:"required"`
	ProductID uint   `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// ItemInput addresses a line item by its own id, not the product's.
type ItemInput struct {
	UserID string `json:"userId" binding:"required"`
	ItemID uint   `json:"itemId" binding:"required"`
}

type ClearInput struct {
	UserID string `json:"userId" binding:"required"`
}

// CartLine is the projection of a line item joined to the current product.
type CartLine struct {
	ID        uint    `json:"id"`
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Img       string  `json:"img"`
	Quantity  int     `json:"quantity"`
}

func findCart(db *gorm.DB, userID string) (*models.Cart, error) {
	var cart models.Cart
	if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("cart not found")
		}
		return nil, apperr.Internal("failed to fetch cart")
	}
	return &cart, nil
}

func respondWithCart(c *gin.Context, db *gorm.DB, cartID uint) {
	var cart models.Cart
	if err := db.Preload("Items").First(&cart, cartID).Error; err != nil {
		apperr.Respond(c, apperr.Internal("failed to fetch cart"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

// GetCart joins each line item to the current product name, price, and first
// image. A user with no cart gets an empty list, not an error.
// GET /api/v1/carts/:userId
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")

		var cart models.Cart
		err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"products": []CartLine{}})
			return
		}
		if err != nil {
			apperr.Respond(c, apperr.Internal("failed to fetch cart"))
			return
		}

		productIDs := make([]uint, 0, len(cart.Items))
		for _, item := range cart.Items {
			productIDs = append(productIDs, item.ProductID)
		}
		var products []models.Product
		if len(productIDs) > 0 {
			if err := db.Where("id IN ?", productIDs).Find(&products).Error; err != nil {
				apperr.Respond(c, apperr.Internal("failed to fetch cart products"))
				return
			}
		}
		byID := make(map[uint]models.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}

		lines := make([]CartLine, 0, len(cart.Items))
		for _, item := range cart.Items {
			line := CartLine{
				ID:        item.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			}
			if p, ok := byID[item.ProductID]; ok {
				line.Name = p.Name
				line.Price = p.Price
				if len(p.Images) > 0 {
					line.Img = p.Images[0]
				}
			}
			lines = append(lines, line)
		}
		c.JSON(http.StatusOK, gin.H{"products": lines})
	}
}

// AddToCart creates the cart on first use, then merges the quantity into an
// existing line through a conditional upsert. Two simultaneous adds for the
// same product both land; neither overwrites the other.
// POST /api/v1/carts/add-to-cart
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Respond(c, apperr.Validation("userId, productId and a quantity of at least 1 are required"))
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperr.Respond(c, apperr.NotFound("product not found"))
				return
			}
			apperr.Respond(c, apperr.Internal("failed to validate product"))
			return
		}

		var cartID uint
		err := db.Transaction(func(tx *gorm.DB) error {
			var cart models.Cart
			if err := tx.Where(models.Cart{UserID: input.UserID}).FirstOrCreate(&cart).Error; err != nil {
				return err
			}
			cartID = cart.CartID

			item := models.CartItem{
				CartID:    cart.CartID,
				ProductID: input.ProductID,
				Quantity:  input.Quantity,
				AddedAt:   time.Now(),
			}
			return tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"quantity": gorm.Expr("quantity + ?", input.Quantity),
				}),
			}).Create(&item).Error
		})
		if err != nil {
			apperr.Respond(c, apperr.Internal("failed to add item to cart"))
			return
		}

		respondWithCart(c, db, cartID)
	}
}

// UpdateQuantity overwrites the quantity on the line matching the product.
// POST /api/v1/carts/update
func UpdateQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Respond(c, apperr.Validation("userId, productId and a quantity of at least 1 are required"))
			return
		}

		cart, err := findCart(db, input.UserID)
		if err != nil {
			apperr.Respond(c, err)
			return
		}

		res := db.Model(&models.CartItem{}).
			Where("cart_id = ? AND product_id = ?", cart.CartID, input.ProductID).
			UpdateColumn("quantity", input.Quantity)
		if res.Error != nil {
			apperr.Respond(c, apperr.Internal("failed to update cart item"))
			return
		}
		if res.RowsAffected == 0 {
			apperr.Respond(c, apperr.NotFound("product not found in cart"))
			return
		}

		respondWithCart(c, db, cart.CartID)
	}
}

// RemoveItem deletes the line item by its identifier.
// POST /api/v1/carts/remove
func RemoveItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Respond(c, apperr.Validation("userId and itemId are required"))
			return
		}

		cart, err := findCart(db, input.UserID)
		if err != nil {
			apperr.Respond(c, err)
			return
		}

		res := db.Where("cart_id = ? AND id = ?", cart.CartID, input.ItemID).Delete(&models.CartItem{})
		if res.Error != nil {
			apperr.Respond(c, apperr.Internal("failed to remove cart item"))
			return
		}
		if res.RowsAffected == 0 {
			apperr.Respond(c, apperr.NotFound("cart item not found"))
			return
		}

		respondWithCart(c, db, cart.CartID)
	}
}

// IncreaseQuantity bumps the line by one with a single conditional update.
// POST /api/v1/carts/increase
func IncreaseQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Respond(c, apperr.Validation("userId and itemId are required"))
			return
		}

		cart, err := findCart(db, input.UserID)
		if err != nil {
			apperr.Respond(c, err)
			return
		}

		res := db.Model(&models.CartItem{}).
			Where("cart_id = ? AND id = ?", cart.CartID, input.ItemID).
			UpdateColumn("quantity", gorm.Expr("quantity + 1"))
		if res.Error != nil {
			apperr.Respond(c, apperr.Internal("failed to update cart item"))
			return
		}
		if res.RowsAffected == 0 {
			apperr.Respond(c, apperr.NotFound("cart item not found"))
			return
		}

		respondWithCart(c, db, cart.CartID)
	}
}

// DecreaseQuantity drops the line by one; at quantity 1 the line is removed
// instead. The quantity can never reach 0 while the line still exists.
// POST /api/v1/carts/decrease
func DecreaseQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Respond(c, apperr.Validation("userId and itemId are required"))
			return
		}

		cart, err := findCart(db, input.UserID)
		if err != nil {
			apperr.Respond(c, err)
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			res := tx.Model(&models.CartItem{}).
				Where("cart_id = ? AND id = ? AND quantity > 1", cart.CartID, input.ItemID).
				UpdateColumn("quantity", gorm.Expr("quantity - 1"))
			if res.Error != nil {
				return apperr.Internal("failed to update cart item")
			}
			if res.RowsAffected > 0 {
				return nil
			}

			// Quantity was already 1 (or the item is gone): remove the line.
			res = tx.Where("cart_id = ? AND id = ?", cart.CartID, input.ItemID).Delete(&models.CartItem{})
			if res.Error != nil {
				return apperr.Internal("failed to remove cart item")
			}
			if res.RowsAffected == 0 {
				return apperr.NotFound("cart item not found")
			}
			return nil
		})
		if err != nil {
			apperr.Respond(c, err)
			return
		}

		respondWithCart(c, db, cart.CartID)
	}
}

// ClearCart deletes the user's cart and everything in it. Clearing an absent
// cart is not an error.
// POST /api/v1/carts/clear
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ClearInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Respond(c, apperr.Validation("userId is required"))
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var cart models.Cart
			if err := tx.Where("user_id = ?", input.UserID).First(&cart).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil
				}
				return err
			}
			if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&cart).Error
		})
		if err != nil {
			apperr.Respond(c, apperr.Internal("failed to clear cart"))
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
