package models

type Attribute struct {
	ID     uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string           `gorm:"uniqueIndex;not null" json:"name"`
	Values []AttributeValue `gorm:"foreignKey:AttributeID;constraint:OnDelete:CASCADE" json:"values"`
}

type AttributeValue struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	AttributeID uint    `gorm:"index" json:"attribute_id"`
	Name        string  `gorm:"not null" json:"name"`
	Price       float64 `gorm:"not null" json:"price"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	Sizes       []Size  `gorm:"many2many:attribute_value_sizes" json:"size"`
}
