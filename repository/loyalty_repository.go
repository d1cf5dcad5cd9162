// repository/loyalty_repository.go
package repository

import (
	"github.com/Renison-Gohel/food-orderly/entity"
	"gorm.io/gorm"
)

type LoyaltyRepository struct {
	DB *gorm.DB
}

func NewLoyaltyRepository(db *gorm.DB) *LoyaltyRepository {
	return &LoyaltyRepository{DB: db}
}

// Get returns the singleton settings row, creating it with defaults on first
// use.
func (r *LoyaltyRepository) Get() (*entity.LoyaltySettings, error) {
	var s entity.LoyaltySettings
	err := r.DB.
		Attrs(entity.LoyaltySettings{PointsPerAmount: 10, AmountThreshold: 100}).
		FirstOrCreate(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *LoyaltyRepository) Update(pointsPerAmount, amountThreshold int64) (*entity.LoyaltySettings, error) {
	s, err := r.Get()
	if err != nil {
		return nil, err
	}
	fields := map[string]interface{}{
		"points_per_amount": pointsPerAmount,
		"amount_threshold":  amountThreshold,
	}
	if err := r.DB.Model(s).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.Get()
}
