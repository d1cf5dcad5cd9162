package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Quantity int `json:"quantity"`
	// UnitPrice is a snapshot of the menu item price at add-time; later
	// catalog price changes never touch it.
	UnitPrice int64 `json:"unitPrice"`

	// SubtotalAmount is derived (quantity * unit price) and never stored;
	// AfterFind fills it so reads still carry it.
	SubtotalAmount int64 `json:"subtotal" gorm:"-"`

	OrderID string `json:"orderId" gorm:"size:36;index"`
	Order   Order  `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`
}

func (oi *OrderItem) Subtotal() int64 {
	return int64(oi.Quantity) * oi.UnitPrice
}

func (oi *OrderItem) AfterFind(tx *gorm.DB) error {
	oi.SubtotalAmount = oi.Subtotal()
	return nil
}
