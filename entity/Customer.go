package entity

import (
	"gorm.io/gorm"
)

type Customer struct {
	gorm.Model
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	TableNumber   string `json:"tableNumber"`
	Email         string `json:"email"`
	LoyaltyPoints int    `json:"loyaltyPoints" gorm:"default:0"`

	Orders []Order `json:"-"`
}

// DisplayLabel is what the POS shows for a customer: the name when we have
// one, otherwise the table they are sitting at.
func (c *Customer) DisplayLabel() string {
	if c.Name != "" {
		return c.Name
	}
	return "Table " + c.TableNumber
}
