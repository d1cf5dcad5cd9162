// repository/order_repository.go
package repository

import (
	"time"

	"github.com/Renison-Gohel/food-orderly/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// lineItemOrder keeps preloaded items in the sequence they were added.
func lineItemOrder(db *gorm.DB) *gorm.DB {
	return db.Order("order_items.id ASC")
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("Customer").
		Preload("OrderItems", lineItemOrder).
		Preload("OrderItems.MenuItem").
		Where("id = ?", orderID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListOrders returns orders newest first, with customer and items attached.
// outletID == nil means all outlets.
func (r *OrderRepository) ListOrders(outletID *uint) ([]entity.Order, error) {
	db := r.DB.
		Preload("Customer").
		Preload("OrderItems", lineItemOrder).
		Preload("OrderItems.MenuItem")
	if outletID != nil && *outletID != 0 {
		db = db.Where("outlet_id = ?", *outletID)
	}
	var orders []entity.Order
	err := db.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// ListPaidSince returns paid orders of one outlet created at or after since.
// Used by the outlet statistics view.
func (r *OrderRepository) ListPaidSince(outletID uint, since time.Time) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Where("outlet_id = ? AND status = ? AND created_at >= ?", outletID, entity.StatusPaid, since).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}

// UpdateStatusGuard flips the status only when the order is still in the
// expected predecessor state. Returns affected rows so callers can tell a
// stale transition from a successful one.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID string, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) OrderExists(orderID string) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Order{}).Where("id = ?", orderID).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// DeleteOrder hard-deletes the order and its line items. Irreversible.
func (r *OrderRepository) DeleteOrder(tx *gorm.DB, orderID string) (int64, error) {
	if err := tx.Unscoped().Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
		return 0, err
	}
	res := tx.Unscoped().Where("id = ?", orderID).Delete(&entity.Order{})
	return res.RowsAffected, res.Error
}

// ---------------- Order Items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID string) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.
		Preload("MenuItem").
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}
