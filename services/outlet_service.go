// services/outlet_service.go
package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Renison-Gohel/food-orderly/entity"
	"github.com/Renison-Gohel/food-orderly/repository"
)

type OutletService struct {
	Repo      *repository.OutletRepository
	OrderRepo *repository.OrderRepository
}

func NewOutletService(repo *repository.OutletRepository, orderRepo *repository.OrderRepository) *OutletService {
	return &OutletService{Repo: repo, OrderRepo: orderRepo}
}

func (s *OutletService) List() ([]entity.Outlet, error) {
	return s.Repo.FindAll()
}

func (s *OutletService) Get(id uint) (*entity.Outlet, error) {
	o, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *OutletService) Create(o *entity.Outlet) error {
	if strings.TrimSpace(o.Name) == "" {
		return validationf("name is required")
	}
	return s.Repo.Create(o)
}

func (s *OutletService) Update(o *entity.Outlet) error {
	if strings.TrimSpace(o.Name) == "" {
		return validationf("name is required")
	}
	if _, err := s.Get(o.ID); err != nil {
		return err
	}
	return s.Repo.Update(o)
}

func (s *OutletService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

// Orders lists the outlet's orders, newest first.
func (s *OutletService) Orders(id uint) ([]entity.Order, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	return s.OrderRepo.ListOrders(&id)
}
