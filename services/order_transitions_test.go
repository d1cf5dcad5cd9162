package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Renison-Gohel/food-orderly/entity"
)

func commitTestOrder(t *testing.T, svc *OrderService) *entity.Order {
	t.Helper()
	ctx := context.Background()
	db := svc.DB

	item := seedMenuItem(t, db, "Masala Waffle", 12000)
	c := seedCustomer(t, db, entity.Customer{Name: "C1", TableNumber: "4"})

	draft, err := svc.BuildDraft(c.ID, []OrderItemIn{{MenuItemID: item.ID, Quantity: 1}})
	require.NoError(t, err)
	order, err := svc.CommitDraft(ctx, draft, nil)
	require.NoError(t, err)
	return order
}

func TestStatusAdvancesForwardOnly(t *testing.T) {
	svc, _ := newTestOrderService(t)
	ctx := context.Background()
	order := commitTestOrder(t, svc)

	order, err := svc.SetStatus(ctx, order.ID, entity.StatusReady)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReady, order.Status)

	order, err = svc.SetStatus(ctx, order.ID, entity.StatusPaid)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPaid, order.Status)

	// paid is terminal
	var te *InvalidTransitionError
	_, err = svc.SetStatus(ctx, order.ID, entity.StatusReady)
	require.ErrorAs(t, err, &te)
	_, err = svc.SetStatus(ctx, order.ID, entity.StatusPending)
	require.ErrorAs(t, err, &te)
	_, err = svc.SetStatus(ctx, order.ID, entity.StatusPaid)
	require.ErrorAs(t, err, &te)

	got, err := svc.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPaid, got.Status)
}

func TestStatusCannotSkip(t *testing.T) {
	svc, _ := newTestOrderService(t)
	ctx := context.Background()
	order := commitTestOrder(t, svc)

	var te *InvalidTransitionError
	_, err := svc.SetStatus(ctx, order.ID, entity.StatusPaid)
	require.ErrorAs(t, err, &te)
	assert.Equal(t, entity.StatusPending, te.From)
	assert.Equal(t, entity.StatusPaid, te.To)
}

func TestSetStatusUnknownValues(t *testing.T) {
	svc, _ := newTestOrderService(t)
	ctx := context.Background()
	order := commitTestOrder(t, svc)

	var ve *ValidationError
	_, err := svc.SetStatus(ctx, order.ID, "cancelled")
	require.ErrorAs(t, err, &ve)

	_, err = svc.SetStatus(ctx, "no-such-order", entity.StatusReady)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := svc.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, got.Status)
}

func TestDeleteOrderCascades(t *testing.T) {
	svc, db := newTestOrderService(t)
	ctx := context.Background()
	order := commitTestOrder(t, svc)

	require.NoError(t, svc.DeleteOrder(ctx, order.ID))

	_, err := svc.Get(order.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var items int64
	require.NoError(t, db.Model(&entity.OrderItem{}).Where("order_id = ?", order.ID).Count(&items).Error)
	assert.Zero(t, items)

	// Deleting a stale reference fails as a single-operation NotFound.
	assert.ErrorIs(t, svc.DeleteOrder(ctx, order.ID), ErrNotFound)
}

func TestDeleteAllowedInAnyStatus(t *testing.T) {
	svc, _ := newTestOrderService(t)
	ctx := context.Background()

	order := commitTestOrder(t, svc)
	_, err := svc.SetStatus(ctx, order.ID, entity.StatusReady)
	require.NoError(t, err)
	_, err = svc.SetStatus(ctx, order.ID, entity.StatusPaid)
	require.NoError(t, err)

	assert.NoError(t, svc.DeleteOrder(ctx, order.ID))
}
