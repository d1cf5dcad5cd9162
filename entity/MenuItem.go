package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string `json:"name"`
	Price       int64  `json:"price"` // minor units (paise)
	Description string `json:"description"`
	PhotoURL    string `json:"photoUrl"`

	OrderItems []OrderItem `json:"-"`
}
