package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Renison-Gohel/food-orderly/entity"
)

func TestCommitDraft(t *testing.T) {
	svc, db := newTestOrderService(t)
	ctx := context.Background()

	itemA := seedMenuItem(t, db, "Item A", 5000) // 50.00
	itemB := seedMenuItem(t, db, "Item B", 3000) // 30.00
	c1 := seedCustomer(t, db, entity.Customer{Name: "C1", Phone: "9876500001"})

	draft, err := svc.BuildDraft(c1.ID, []OrderItemIn{
		{MenuItemID: itemA.ID, Quantity: 2},
		{MenuItemID: itemB.ID, Quantity: 1},
	})
	require.NoError(t, err)

	order, err := svc.CommitDraft(ctx, draft, nil)
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPending, order.Status)
	assert.Equal(t, int64(13000), order.TotalAmount) // 130.00
	require.Len(t, order.OrderItems, 2)
	assert.Equal(t, int64(10000), order.OrderItems[0].SubtotalAmount)
	assert.Equal(t, int64(3000), order.OrderItems[1].SubtotalAmount)
	assert.Len(t, order.ID, 36)

	// Total always equals the sum of line subtotals.
	var sum int64
	for _, it := range order.OrderItems {
		sum += it.Subtotal()
	}
	assert.Equal(t, order.TotalAmount, sum)

	// Draft resets only after a successful commit.
	assert.Zero(t, draft.CustomerID)
	assert.Empty(t, draft.Items)
}

func TestCommitDraftValidation(t *testing.T) {
	svc, db := newTestOrderService(t)
	ctx := context.Background()

	item := seedMenuItem(t, db, "Item", 1000)
	c := seedCustomer(t, db, entity.Customer{Name: "Walk-in"})

	t.Run("missing customer", func(t *testing.T) {
		draft := &OrderDraft{}
		require.NoError(t, draft.AddItem(item, 1))
		_, err := svc.CommitDraft(ctx, draft, nil)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		// Draft survives the failure so the user can retry.
		assert.Len(t, draft.Items, 1)
	})

	t.Run("empty order", func(t *testing.T) {
		draft := &OrderDraft{CustomerID: c.ID}
		_, err := svc.CommitDraft(ctx, draft, nil)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("unknown customer", func(t *testing.T) {
		draft := &OrderDraft{CustomerID: 9999}
		require.NoError(t, draft.AddItem(item, 1))
		_, err := svc.CommitDraft(ctx, draft, nil)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})

	// Nothing was written in any of the failed attempts.
	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestBuildDraftUnknownMenuItem(t *testing.T) {
	svc, db := newTestOrderService(t)
	c := seedCustomer(t, db, entity.Customer{Name: "C"})

	_, err := svc.BuildDraft(c.ID, []OrderItemIn{{MenuItemID: 42, Quantity: 1}})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestCommittedUnitPriceIgnoresCatalogChanges(t *testing.T) {
	svc, db := newTestOrderService(t)
	ctx := context.Background()

	item := seedMenuItem(t, db, "Item", 2500)
	c := seedCustomer(t, db, entity.Customer{Name: "C"})

	draft, err := svc.BuildDraft(c.ID, []OrderItemIn{{MenuItemID: item.ID, Quantity: 2}})
	require.NoError(t, err)
	order, err := svc.CommitDraft(ctx, draft, nil)
	require.NoError(t, err)

	// Reprice the catalog after the sale.
	require.NoError(t, db.Model(item).Update("price", int64(9900)).Error)

	got, err := svc.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2500), got.OrderItems[0].UnitPrice)
	assert.Equal(t, int64(5000), got.TotalAmount)
}

func TestListScopedToOutlet(t *testing.T) {
	svc, db := newTestOrderService(t)
	ctx := context.Background()

	item := seedMenuItem(t, db, "Item", 1000)
	c := seedCustomer(t, db, entity.Customer{Name: "C"})

	outlet := entity.Outlet{Name: "Koramangala"}
	require.NoError(t, db.Create(&outlet).Error)

	draft, err := svc.BuildDraft(c.ID, []OrderItemIn{{MenuItemID: item.ID, Quantity: 1}})
	require.NoError(t, err)
	_, err = svc.CommitDraft(ctx, draft, &outlet.ID)
	require.NoError(t, err)

	draft, err = svc.BuildDraft(c.ID, []OrderItemIn{{MenuItemID: item.ID, Quantity: 1}})
	require.NoError(t, err)
	_, err = svc.CommitDraft(ctx, draft, nil)
	require.NoError(t, err)

	all, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := svc.List(ctx, &outlet.ID)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	require.NotNil(t, scoped[0].OutletID)
	assert.Equal(t, outlet.ID, *scoped[0].OutletID)
}
