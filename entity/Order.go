package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Order struct {
	ID         string      `json:"id" gorm:"primaryKey;size:36"`
	CustomerID uint        `json:"customerId"`
	Customer   Customer    `json:"customer"`
	OutletID   *uint       `json:"outletId"`
	Outlet     *Outlet     `json:"-"`
	Status     OrderStatus `json:"status" gorm:"size:16;default:pending"`

	// TotalAmount is the sum of all line subtotals, fixed at commit time.
	TotalAmount int64 `json:"totalAmount"`

	OrderItems []OrderItem `json:"orderItems" gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// ShortID is the first 8 characters of the id, used on bills and in search.
func (o *Order) ShortID() string {
	if len(o.ID) < 8 {
		return o.ID
	}
	return o.ID[:8]
}
