package services

import (
	"github.com/Renison-Gohel/food-orderly/entity"
)

// DraftItem is one not-yet-persisted order line. UnitPrice is frozen at
// add-time and does not track later catalog changes.
type DraftItem struct {
	MenuItemID uint  `json:"menuItemId"`
	Quantity   int   `json:"quantity"`
	UnitPrice  int64 `json:"unitPrice"`
}

func (d DraftItem) Subtotal() int64 {
	return int64(d.Quantity) * d.UnitPrice
}

// OrderDraft is the local build phase of an order: a selected customer plus
// a list of snapshot line items. Nothing is written until CommitDraft.
type OrderDraft struct {
	CustomerID uint        `json:"customerId"`
	Items      []DraftItem `json:"items"`
}

// AddItem appends a line with the menu item's current price.
func (d *OrderDraft) AddItem(menu *entity.MenuItem, quantity int) error {
	if menu == nil {
		return validationf("menu item not found")
	}
	if quantity < 1 {
		return validationf("quantity must be at least 1")
	}
	d.Items = append(d.Items, DraftItem{
		MenuItemID: menu.ID,
		Quantity:   quantity,
		UnitPrice:  menu.Price,
	})
	return nil
}

// RemoveItem removes the line at index, keeping the remaining lines in order.
func (d *OrderDraft) RemoveItem(index int) error {
	if index < 0 || index >= len(d.Items) {
		return ErrLineItemIndex
	}
	d.Items = append(d.Items[:index], d.Items[index+1:]...)
	return nil
}

// Total is the sum of all line subtotals.
func (d *OrderDraft) Total() int64 {
	var total int64
	for _, it := range d.Items {
		total += it.Subtotal()
	}
	return total
}

func (d *OrderDraft) Reset() {
	d.CustomerID = 0
	d.Items = nil
}
