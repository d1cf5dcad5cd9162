package entity

import (
	"gorm.io/gorm"
)

type Outlet struct {
	gorm.Model
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`

	Orders []Order `json:"-"`
}
