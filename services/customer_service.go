// services/customer_service.go
package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Renison-Gohel/food-orderly/entity"
	"github.com/Renison-Gohel/food-orderly/repository"
)

type CustomerService struct {
	Repo *repository.CustomerRepository
}

func NewCustomerService(repo *repository.CustomerRepository) *CustomerService {
	return &CustomerService{Repo: repo}
}

// SearchCustomers filters by case-insensitive substring across name, phone,
// email and table number. An empty query returns the input unchanged.
func SearchCustomers(customers []entity.Customer, query string) []entity.Customer {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return customers
	}
	out := make([]entity.Customer, 0, len(customers))
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Phone), q) ||
			strings.Contains(strings.ToLower(c.Email), q) ||
			strings.Contains(strings.ToLower(c.TableNumber), q) {
			out = append(out, c)
		}
	}
	return out
}

func (s *CustomerService) List(query string) ([]entity.Customer, error) {
	customers, err := s.Repo.FindAll()
	if err != nil {
		return nil, err
	}
	return SearchCustomers(customers, query), nil
}

func (s *CustomerService) Get(id uint) (*entity.Customer, error) {
	c, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *CustomerService) Create(c *entity.Customer) error {
	if c.LoyaltyPoints < 0 {
		return validationf("loyalty points cannot be negative")
	}
	return s.Repo.Create(c)
}

func (s *CustomerService) Update(c *entity.Customer) error {
	if c.LoyaltyPoints < 0 {
		return validationf("loyalty points cannot be negative")
	}
	if _, err := s.Get(c.ID); err != nil {
		return err
	}
	return s.Repo.Update(c)
}

func (s *CustomerService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
