package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// DefaultAvatar is served for accounts registered without one.
const DefaultAvatar = "/uploads/avatars/default-avatar.webp"

type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"type:VARCHAR(10);default:'user'" json:"role"`
	Age       *int      `json:"age,omitempty"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
