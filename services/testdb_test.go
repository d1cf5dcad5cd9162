package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Renison-Gohel/food-orderly/entity"
	"github.com/Renison-Gohel/food-orderly/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Outlet{},
		&entity.MenuItem{},
		&entity.Customer{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.LoyaltySettings{},
	))
	return db
}

func newTestOrderService(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewMenuRepository(db),
		repository.NewCustomerRepository(db),
	)
	return svc, db
}

func seedMenuItem(t *testing.T, db *gorm.DB, name string, price int64) *entity.MenuItem {
	t.Helper()
	item := &entity.MenuItem{Name: name, Price: price}
	require.NoError(t, db.Create(item).Error)
	return item
}

func seedCustomer(t *testing.T, db *gorm.DB, c entity.Customer) *entity.Customer {
	t.Helper()
	require.NoError(t, db.Create(&c).Error)
	return &c
}
