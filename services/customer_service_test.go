package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Renison-Gohel/food-orderly/entity"
	"github.com/Renison-Gohel/food-orderly/repository"
)

func TestSearchCustomers(t *testing.T) {
	customers := []entity.Customer{
		{Name: "Priya Sharma", Phone: "9876500001", Email: "priya@example.com"},
		{TableNumber: "7", Phone: "9876500002"},
		{Name: "Rahul", Email: "rahul@waffles.in", TableNumber: "12"},
	}

	t.Run("empty query returns everything in order", func(t *testing.T) {
		got := SearchCustomers(customers, "")
		require.Len(t, got, 3)
		assert.Equal(t, customers, got)
	})

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "by name case-insensitive", query: "priya", want: 1},
		{name: "by phone fragment", query: "00002", want: 1},
		{name: "by email domain", query: "waffles.in", want: 1},
		{name: "by table number", query: "7", want: 2}, // "7" and "9876..."
		{name: "no match", query: "zzz", want: 0},
		{name: "whitespace only behaves like empty", query: "   ", want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, SearchCustomers(customers, tt.query), tt.want)
		})
	}
}

func TestCustomerDisplayLabel(t *testing.T) {
	named := entity.Customer{Name: "Priya", TableNumber: "4"}
	assert.Equal(t, "Priya", named.DisplayLabel())

	tableOnly := entity.Customer{TableNumber: "4"}
	assert.Equal(t, "Table 4", tableOnly.DisplayLabel())
}

func TestCustomerServiceCRUD(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(repository.NewCustomerRepository(db))

	c := entity.Customer{Name: "Priya", Phone: "98765"}
	require.NoError(t, svc.Create(&c))
	require.NotZero(t, c.ID)

	c.LoyaltyPoints = 50
	require.NoError(t, svc.Update(&c))

	got, err := svc.Get(c.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, got.LoyaltyPoints)

	require.NoError(t, svc.Delete(c.ID))
	_, err = svc.Get(c.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(c.ID), ErrNotFound)
}

func TestCustomerServiceRejectsNegativePoints(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(repository.NewCustomerRepository(db))

	c := entity.Customer{Name: "X", LoyaltyPoints: -1}
	var ve *ValidationError
	require.ErrorAs(t, svc.Create(&c), &ve)
}
