package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Renison-Gohel/food-orderly/entity"
	"github.com/Renison-Gohel/food-orderly/repository"
)

func TestMenuServiceValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(repository.NewMenuRepository(db))

	tests := []struct {
		name    string
		item    entity.MenuItem
		wantErr bool
	}{
		{name: "ok", item: entity.MenuItem{Name: "Classic Waffle", Price: 5000}},
		{name: "free item is fine", item: entity.MenuItem{Name: "Water", Price: 0}},
		{name: "missing name", item: entity.MenuItem{Price: 5000}, wantErr: true},
		{name: "blank name", item: entity.MenuItem{Name: "   ", Price: 100}, wantErr: true},
		{name: "negative price", item: entity.MenuItem{Name: "Oops", Price: -1}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Create(&tt.item)
			if tt.wantErr {
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMenuServiceCRUD(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(repository.NewMenuRepository(db))

	item := entity.MenuItem{Name: "Brownie Waffle", Price: 7500, Description: "with ice cream"}
	require.NoError(t, svc.Create(&item))

	item.Price = 8000
	require.NoError(t, svc.Update(&item))

	got, err := svc.Get(item.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(8000), got.Price)

	items, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, items, 1)

	require.NoError(t, svc.Delete(item.ID))
	_, err = svc.Get(item.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
