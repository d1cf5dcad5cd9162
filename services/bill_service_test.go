package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Renison-Gohel/food-orderly/entity"
)

func TestBillOnlyForPaidOrders(t *testing.T) {
	orders, _ := newTestOrderService(t)
	bills := NewBillService(orders, "FOOD ORDERLY")
	ctx := context.Background()

	order := commitTestOrder(t, orders)

	_, _, err := bills.Render(order.ID)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	_, err = orders.SetStatus(ctx, order.ID, entity.StatusReady)
	require.NoError(t, err)
	_, err = orders.SetStatus(ctx, order.ID, entity.StatusPaid)
	require.NoError(t, err)

	pdf, filename, err := bills.Render(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "bill-"+order.ShortID()+".pdf", filename)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestBillUnknownOrder(t *testing.T) {
	orders, _ := newTestOrderService(t)
	bills := NewBillService(orders, "FOOD ORDERLY")

	_, _, err := bills.Render("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
