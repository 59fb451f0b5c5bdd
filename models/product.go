package models

import "time"

type Product struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	CategoryID  uint       `gorm:"not null;index" json:"category_id"`
	Category    *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Slug        string     `gorm:"uniqueIndex;not null" json:"slug"`
	Images      []string   `gorm:"serializer:json" json:"img"`
	Price       float64    `gorm:"not null;default:0" json:"price"`
	Description string     `json:"description"`
	Discount    float64    `gorm:"default:0" json:"discount"`
	Featured    bool       `gorm:"default:false" json:"featured"`
	Tags        []Tag      `gorm:"many2many:product_tags" json:"tags"`
	Stock       int        `gorm:"default:0" json:"stock"`
	AttributeID *uint      `json:"attribute_id,omitempty"`
	Attribute   *Attribute `gorm:"foreignKey:AttributeID" json:"attribute,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
