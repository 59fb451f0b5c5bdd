package cartControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ductho-dev/ecommerce-api/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Tag{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.GET("/carts/:userId", GetCart(db))
	r.POST("/carts/add-to-cart", AddToCart(db))
	r.POST("/carts/update", UpdateQuantity(db))
	r.POST("/carts/remove", RemoveItem(db))
	r.POST("/carts/increase", IncreaseQuantity(db))
	r.POST("/carts/decrease", DecreaseQuantity(db))
	r.POST("/carts/clear", ClearCart(db))
	return r
}

func doJSON(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) models.Product {
	t.Helper()
	category := models.Category{Name: "shirts"}
	if err := db.Where(models.Category{Name: "shirts"}).FirstOrCreate(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	product := models.Product{
		Name:       name,
		CategoryID: category.ID,
		Slug:       name,
		Images:     []string{"/uploads/" + name + ".jpg"},
		Price:      price,
		Stock:      10,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product
}

func addToCart(t *testing.T, r http.Handler, userID string, productID uint, quantity int) {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/carts/add-to-cart", map[string]interface{}{
		"userId":    userID,
		"productId": productID,
		"quantity":  quantity,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("add-to-cart failed: %d %s", w.Code, w.Body.String())
	}
}

func cartItems(t *testing.T, db *gorm.DB, userID string) []models.CartItem {
	t.Helper()
	var cart models.Cart
	err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	if err != nil {
		t.Fatalf("load cart: %v", err)
	}
	return cart.Items
}

func TestAddToCartMergesQuantities(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)
	p1 := seedProduct(t, db, "tee", 120)

	addToCart(t, r, "u1", p1.ID, 2)
	addToCart(t, r, "u1", p1.ID, 3)

	items := cartItems(t, db, "u1")
	if len(items) != 1 {
		t.Fatalf("expected one merged line item, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", items[0].Quantity)
	}
}

func TestAddToCartUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	w := doJSON(r, http.MethodPost, "/carts/add-to-cart", map[string]interface{}{
		"userId":    "u1",
		"productId": 9999,
		"quantity":  1,
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestAddToCartRejectsNonPositiveQuantity(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)
	p1 := seedProduct(t, db, "tee", 120)

	w := doJSON(r, http.MethodPost, "/carts/add-to-cart", map[string]interface{}{
		"userId":    "u1",
		"productId": p1.ID,
		"quantity":  0,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetCartProjection(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)
	p1 := seedProduct(t, db, "tee", 120)

	addToCart(t, r, "u1", p1.ID, 2)

	w := doJSON(r, http.MethodGet, "/carts/u1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Products []CartLine `json:"products"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Products) != 1 {
		t.Fatalf("expected one line, got %d", len(resp.Products))
	}
	line := resp.Products[0]
	if line.ProductID != p1.ID || line.Name != "tee" || line.Price != 120 || line.Quantity != 2 {
		t.Fatalf("unexpected projection: %+v", line)
	}
	if line.Img != "/uploads/tee.jpg" {
		t.Fatalf("expected first product image, got %q", line.Img)
	}
}

func TestGetCartWithoutCart(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	w := doJSON(r, http.MethodGet, "/carts/nobody", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for missing cart, got %d", w.Code)
	}
	var resp struct {
		Products []CartLine `json:"products"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Products) != 0 {
		t.Fatalf("expected empty cart, got %+v", resp.Products)
	}
}

func TestUpdateQuantity(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)
	p1 := seedProduct(t, db, "tee", 120)

	addToCart(t, r, "u1", p1.ID, 2)

	w := doJSON(r, http.MethodPost, "/carts/update", map[string]interface{}{
		"userId":    "u1",
		"productId": p1.ID,
		"quantity":  7,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	items := cartItems(t, db, "u1")
	if len(items) != 1 || items[0].Quantity != 7 {
		t.Fatalf("expected quantity 7, got %+v", items)
	}

	w = doJSON(r, http.MethodPost, "/carts/update", map[string]interface{}{
		"userId":    "u1",
		"productId": 9999,
		"quantity":  1,
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for product not in cart, got %d", w.Code)
	}

	w = doJSON(r, http.MethodPost, "/carts/update", map[string]interface{}{
		"userId":    "nobody",
		"productId": p1.ID,
		"quantity":  1,
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing cart, got %d", w.Code)
	}
}

func TestRemoveItem(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)
	p1 := seedProduct(t, db, "tee", 120)

	addToCart(t, r, "u1", p1.ID, 2)
	items := cartItems(t, db, "u1")
	if len(items) != 1 {
		t.Fatalf("expected one line item, got %d", len(items))
	}

	w := doJSON(r, http.MethodPost, "/carts/remove", map[string]interface{}{
		"userId": "u1",
		"itemId": items[0].ID,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if remaining := cartItems(t, db, "u1"); len(remaining) != 0 {
		t.Fatalf("expected item removed, got %+v", remaining)
	}

	w = doJSON(r, http.MethodPost, "/carts/remove", map[string]interface{}{
		"userId": "u1",
		"itemId": items[0].ID,
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for absent item, got %d", w.Code)
	}
}

func TestIncreaseAndDecrease(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)
	p1 := seedProduct(t, db, "tee", 120)

	addToCart(t, r, "u1", p1.ID, 1)
	items := cartItems(t, db, "u1")
	itemID := items[0].ID

	w := doJSON(r, http.MethodPost, "/carts/increase", map[string]interface{}{
		"userId": "u1",
		"itemId": itemID,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("increase failed: %d", w.Code)
	}
	if items = cartItems(t, db, "u1"); items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", items[0].Quantity)
	}

	w = doJSON(r, http.MethodPost, "/carts/decrease", map[string]interface{}{
		"userId": "u1",
		"itemId": itemID,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("decrease failed: %d", w.Code)
	}
	if items = cartItems(t, db, "u1"); items[0].Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", items[0].Quantity)
	}

	// Decreasing a quantity of 1 removes the line; it never reaches 0.
	w = doJSON(r, http.MethodPost, "/carts/decrease", map[string]interface{}{
		"userId": "u1",
		"itemId": itemID,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("decrease-to-remove failed: %d", w.Code)
	}
	if remaining := cartItems(t, db, "u1"); len(remaining) != 0 {
		t.Fatalf("expected line removed, got %+v", remaining)
	}

	w = doJSON(r, http.MethodPost, "/carts/decrease", map[string]interface{}{
		"userId": "u1",
		"itemId": itemID,
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for absent item, got %d", w.Code)
	}
}

func TestClearCart(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)
	p1 := seedProduct(t, db, "tee", 120)
	p2 := seedProduct(t, db, "hoodie", 300)

	addToCart(t, r, "u1", p1.ID, 1)
	addToCart(t, r, "u1", p2.ID, 2)

	w := doJSON(r, http.MethodPost, "/carts/clear", map[string]interface{}{"userId": "u1"})
	if w.Code != http.StatusOK {
		t.Fatalf("clear failed: %d", w.Code)
	}

	var count int64
	db.Model(&models.Cart{}).Where("user_id = ?", "u1").Count(&count)
	if count != 0 {
		t.Fatalf("expected cart deleted, found %d", count)
	}
	db.Model(&models.CartItem{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected items deleted, found %d", count)
	}

	// Clearing again is a no-op, not an error.
	w = doJSON(r, http.MethodPost, "/carts/clear", map[string]interface{}{"userId": "u1"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for repeat clear, got %d", w.Code)
	}
}
