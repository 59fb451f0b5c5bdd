package authControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ductho-dev/ecommerce-api/auth"
	"github.com/ductho-dev/ecommerce-api/middleware"
	"github.com/ductho-dev/ecommerce-api/models"
)

var testSecret = []byte("test-secret")

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
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.POST("/register", Register(db))
	r.POST("/login", Login(db, testSecret))
	r.GET("/me", middleware.RequireAuth(testSecret), Me(db))
	return r
}

func doJSON(r http.Handler, method, path string, body interface{}, header map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerBody(name, email string) map[string]interface{} {
	return map[string]interface{}{
		"name":            name,
		"email":           email,
		"password":        "secret123",
		"confirmPassword": "secret123",
	}
}

func TestRegisterMismatchedConfirmPassword(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	body := registerBody("alice", "alice@example.com")
	body["confirmPassword"] = "different"
	w := doJSON(r, http.MethodPost, "/register", body, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Messages []string `json:"messages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	found := false
	for _, m := range resp.Messages {
		if m == "confirm password does not match password" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected confirm password violation, got %v", resp.Messages)
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no user rows, got %d", count)
	}
}

func TestRegisterReportsAllViolations(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	w := doJSON(r, http.MethodPost, "/register", map[string]interface{}{
		"name":            "   ",
		"email":           "not-an-email",
		"password":        "abc",
		"confirmPassword": "xyz",
	}, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var resp struct {
		Messages []string `json:"messages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Messages) < 4 {
		t.Fatalf("expected every violation reported, got %v", resp.Messages)
	}
}

func TestFirstUserBecomesAdmin(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	w := doJSON(r, http.MethodPost, "/register", registerBody("alice", "alice@example.com"), nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var first struct {
		User UserResponse `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &first); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if first.User.Role != models.RoleAdmin {
		t.Fatalf("expected first user to be admin, got %q", first.User.Role)
	}

	w = doJSON(r, http.MethodPost, "/register", registerBody("bob", "bob@example.com"), nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var second struct {
		User UserResponse `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &second); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if second.User.Role != models.RoleUser {
		t.Fatalf("expected second user to be a plain user, got %q", second.User.Role)
	}
}

func TestRegisterNormalizesName(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	w := doJSON(r, http.MethodPost, "/register", registerBody("  Alice  ", "alice@example.com"), nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var user models.User
	if err := db.First(&user).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if user.Name != "alice" {
		t.Fatalf("expected name to be trimmed and lowercased, got %q", user.Name)
	}
}

func TestRegisterConflicts(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	if w := doJSON(r, http.MethodPost, "/register", registerBody("alice", "alice@example.com"), nil); w.Code != http.StatusCreated {
		t.Fatalf("seed register failed: %d", w.Code)
	}

	w := doJSON(r, http.MethodPost, "/register", registerBody("alice", "other@example.com"), nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate name, got %d", w.Code)
	}

	w = doJSON(r, http.MethodPost, "/register", registerBody("carol", "alice@example.com"), nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", w.Code)
	}
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	if w := doJSON(r, http.MethodPost, "/register", registerBody("alice", "alice@example.com"), nil); w.Code != http.StatusCreated {
		t.Fatalf("seed register failed: %d", w.Code)
	}

	w := doJSON(r, http.MethodPost, "/login", map[string]string{
		"email":    "alice@example.com",
		"password": "secret123",
	}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		User  UserResponse `json:"user"`
		Token string       `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a session token")
	}

	claims, err := auth.ParseToken(testSecret, resp.Token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != resp.User.ID {
		t.Fatalf("token user %q does not match %q", claims.UserID, resp.User.ID)
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 6*24*time.Hour || ttl > 7*24*time.Hour {
		t.Fatalf("expected roughly 7 day expiry, got %s", ttl)
	}

	// Token grants access to the protected profile endpoint.
	w = doJSON(r, http.MethodGet, "/me", nil, map[string]string{"Authorization": "Bearer " + resp.Token})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from /me, got %d", w.Code)
	}
}

func TestLoginFailures(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	if w := doJSON(r, http.MethodPost, "/register", registerBody("alice", "alice@example.com"), nil); w.Code != http.StatusCreated {
		t.Fatalf("seed register failed: %d", w.Code)
	}

	w := doJSON(r, http.MethodPost, "/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "secret123",
	}, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown email, got %d", w.Code)
	}

	w = doJSON(r, http.MethodPost, "/login", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong-password",
	}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/me", nil, map[string]string{"Authorization": "Bearer garbage"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad token, got %d", w.Code)
	}
}
