package authControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ductho-dev/ecommerce-api/auth"
	"github.com/ductho-dev/ecommerce-api/models"
	"github.com/ductho-dev/ecommerce-api/pkg/apperr"
)

type RegisterInput struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Age             *int   `json:"age" validate:"omitempty,max=100"`
	Avatar          string `json:"avatar" validate:"omitempty,uri"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is what leaves the API; the password hash never does.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Age       *int      `json:"age,omitempty"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

func toResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Age:       u.Age,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	}
}

var validate = validator.New()

// validationMessages turns validator output into one message per violation,
// so a bad payload reports everything wrong with it at once.
func validationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Field() + "." + fe.Tag() {
		case "Name.required":
			messages = append(messages, "name is required")
		case "Email.required":
			messages = append(messages, "email is required")
		case "Email.email":
			messages = append(messages, "email is not valid")
		case "Password.required":
			messages = append(messages, "password is required")
		case "Password.min":
			messages = append(messages, "password must be at least 6 characters")
		case "ConfirmPassword.required":
			messages = append(messages, "confirm password is required")
		case "ConfirmPassword.eqfield":
			messages = append(messages, "confirm password does not match password")
		case "Age.max":
			messages = append(messages, "age is not valid")
		case "Avatar.uri":
			messages = append(messages, "avatar is not a valid URI")
		default:
			messages = append(messages, fe.Error())
		}
	}
	return messages
}

// POST /api/v1/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Respond(c, apperr.Validation("invalid request body"))
			return
		}

		// Account names are stored trimmed and lowercased.
		input.Name = strings.ToLower(strings.TrimSpace(input.Name))

		if err := validate.Struct(input); err != nil {
			apperr.Respond(c, apperr.Validation(validationMessages(err)...))
			return
		}

		// Name is checked before email; clients rely on that order.
		var count int64
		if err := db.Model(&models.User{}).Where("name = ?", input.Name).Count(&count).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to check account name"))
			return
		}
		if count > 0 {
			apperr.Respond(c, apperr.Conflict("account name already exists"))
			return
		}
		if err := db.Model(&models.User{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to check email"))
			return
		}
		if count > 0 {
			apperr.Respond(c, apperr.Conflict("email already exists"))
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			apperr.Respond(c, apperr.Internal("failed to hash password"))
			return
		}

		// The very first account ever created owns the shop.
		var total int64
		if err := db.Model(&models.User{}).Count(&total).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to count users"))
			return
		}
		role := models.RoleUser
		if total == 0 {
			role = models.RoleAdmin
		}

		avatar := input.Avatar
		if avatar == "" {
			avatar = models.DefaultAvatar
		}

		user := models.User{
			ID:       uuid.NewString(),
			Name:     input.Name,
			Email:    input.Email,
			Password: string(hashed),
			Role:     role,
			Age:      input.Age,
			Avatar:   avatar,
		}
		if err := db.Create(&user).Error; err != nil {
			apperr.Respond(c, apperr.Internal("failed to create user"))
			return
		}

		c.JSON(http.StatusCreated, gin.H{"user": toResponse(&user)})
	}
}

// POST /api/v1/login
func Login(db *gorm.DB, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperr.Respond(c, apperr.Validation("email and password are required"))
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperr.Respond(c, apperr.NotFound("email does not exist"))
				return
			}
			apperr.Respond(c, apperr.Internal("failed to look up user"))
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
			apperr.Respond(c, apperr.Auth("incorrect password"))
			return
		}

		token, err := auth.GenerateToken(secret, user.ID)
		if err != nil {
			apperr.Respond(c, apperr.Internal("failed to issue token"))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user":  toResponse(&user),
			"token": token,
		})
	}
}

// GET /api/v1/me (JWT-protected)
func Me(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			apperr.Respond(c, apperr.Auth("unauthorized"))
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperr.Respond(c, apperr.NotFound("user not found"))
				return
			}
			apperr.Respond(c, apperr.Internal("failed to look up user"))
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": toResponse(&user)})
	}
}
