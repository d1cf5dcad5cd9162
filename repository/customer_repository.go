// repository/customer_repository.go
package repository

import (
	"github.com/Renison-Gohel/food-orderly/entity"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	DB *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) FindAll() ([]entity.Customer, error) {
	var customers []entity.Customer
	err := r.DB.Order("created_at DESC").Find(&customers).Error
	return customers, err
}

func (r *CustomerRepository) FindByID(id uint) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Customer{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *CustomerRepository) Create(c *entity.Customer) error {
	return r.DB.Create(c).Error
}

func (r *CustomerRepository) Update(c *entity.Customer) error {
	fields := map[string]interface{}{
		"name":           c.Name,
		"phone":          c.Phone,
		"table_number":   c.TableNumber,
		"email":          c.Email,
		"loyalty_points": c.LoyaltyPoints,
	}
	return r.DB.Model(&entity.Customer{}).
		Where("id = ?", c.ID).
		Updates(fields).Error
}

func (r *CustomerRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Customer{}, id).Error
}
