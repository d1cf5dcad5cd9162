// repository/outlet_repository.go
package repository

import (
	"github.com/Renison-Gohel/food-orderly/entity"
	"gorm.io/gorm"
)

type OutletRepository struct {
	DB *gorm.DB
}

func NewOutletRepository(db *gorm.DB) *OutletRepository {
	return &OutletRepository{DB: db}
}

func (r *OutletRepository) FindAll() ([]entity.Outlet, error) {
	var outlets []entity.Outlet
	err := r.DB.Order("name ASC").Find(&outlets).Error
	return outlets, err
}

func (r *OutletRepository) FindByID(id uint) (*entity.Outlet, error) {
	var o entity.Outlet
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OutletRepository) Create(o *entity.Outlet) error {
	return r.DB.Create(o).Error
}

func (r *OutletRepository) Update(o *entity.Outlet) error {
	fields := map[string]interface{}{
		"name":    o.Name,
		"address": o.Address,
		"phone":   o.Phone,
	}
	return r.DB.Model(&entity.Outlet{}).
		Where("id = ?", o.ID).
		Updates(fields).Error
}

func (r *OutletRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Outlet{}, id).Error
}
