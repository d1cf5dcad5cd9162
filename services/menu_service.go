// services/menu_service.go
package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Renison-Gohel/food-orderly/entity"
	"github.com/Renison-Gohel/food-orderly/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func validateMenuItem(item *entity.MenuItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return validationf("name is required")
	}
	if item.Price < 0 {
		return validationf("price cannot be negative")
	}
	return nil
}

func (s *MenuService) List() ([]entity.MenuItem, error) {
	return s.Repo.FindAll()
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Create(item *entity.MenuItem) error {
	if err := validateMenuItem(item); err != nil {
		return err
	}
	return s.Repo.Create(item)
}

func (s *MenuService) Update(item *entity.MenuItem) error {
	if err := validateMenuItem(item); err != nil {
		return err
	}
	if _, err := s.Get(item.ID); err != nil {
		return err
	}
	return s.Repo.Update(item)
}

func (s *MenuService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
