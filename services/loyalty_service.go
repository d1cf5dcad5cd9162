// services/loyalty_service.go
package services

import (
	"github.com/Renison-Gohel/food-orderly/entity"
	"github.com/Renison-Gohel/food-orderly/repository"
)

// LoyaltyService manages the singleton loyalty-settings record. The settings
// are a stored preference; no automatic point accrual happens here.
type LoyaltyService struct {
	Repo *repository.LoyaltyRepository
}

func NewLoyaltyService(repo *repository.LoyaltyRepository) *LoyaltyService {
	return &LoyaltyService{Repo: repo}
}

func (s *LoyaltyService) Get() (*entity.LoyaltySettings, error) {
	return s.Repo.Get()
}

func (s *LoyaltyService) Update(pointsPerAmount, amountThreshold int64) (*entity.LoyaltySettings, error) {
	if pointsPerAmount < 0 || amountThreshold < 0 {
		return nil, validationf("loyalty settings cannot be negative")
	}
	return s.Repo.Update(pointsPerAmount, amountThreshold)
}
