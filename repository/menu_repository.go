// repository/menu_repository.go
package repository

import (
	"github.com/Renison-Gohel/food-orderly/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) FindAll() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Order("name ASC").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) Update(item *entity.MenuItem) error {
	fields := map[string]interface{}{
		"name":        item.Name,
		"price":       item.Price,
		"description": item.Description,
		"photo_url":   item.PhotoURL,
	}
	return r.DB.Model(&entity.MenuItem{}).
		Where("id = ?", item.ID).
		Updates(fields).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}
