package entity

import (
	"gorm.io/gorm"
)

// LoyaltySettings is a singleton preference record. Points are not accrued
// automatically anywhere; staff adjust customer points by hand.
type LoyaltySettings struct {
	gorm.Model
	PointsPerAmount int64 `json:"pointsPerAmount"`
	AmountThreshold int64 `json:"amountThreshold"`
}
