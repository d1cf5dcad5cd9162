package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/Renison-Gohel/food-orderly/entity"
)

// SeedAdmin creates the first admin account from the environment.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Name:     "Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedDefaults makes sure the singleton records a fresh install needs are in
// place: one outlet to scope orders to and the loyalty settings row.
func SeedDefaults() error {
	db := DB()

	if err := db.FirstOrCreate(&entity.Outlet{}, entity.Outlet{Name: "Main Outlet"}).Error; err != nil {
		return err
	}

	var settings entity.LoyaltySettings
	if err := db.
		Attrs(entity.LoyaltySettings{PointsPerAmount: 10, AmountThreshold: 100}).
		FirstOrCreate(&settings).Error; err != nil {
		return err
	}

	log.Println("default records seeded")
	return nil
}
