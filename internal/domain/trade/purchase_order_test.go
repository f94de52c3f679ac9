package trade

import (
	"testing"
	"time"

	"github.com/gaolamthuy/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *PurchaseOrder {
	t.Helper()
	order, err := NewPurchaseOrder("pn0042", "Vựa lúa Long An", time.Date(2026, 8, 15, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	return order
}

func TestNewPurchaseOrder(t *testing.T) {
	order := newTestOrder(t)

	assert.Equal(t, "PN0042", order.Code)
	assert.Equal(t, "Vựa lúa Long An", order.SupplierName)
	assert.Equal(t, PurchaseOrderStatusDraft, order.Status)
	assert.Empty(t, order.Items)
}

func TestNewPurchaseOrder_Validation(t *testing.T) {
	_, err := NewPurchaseOrder("", "Vựa lúa Long An", time.Now())
	assert.Error(t, err)

	_, err = NewPurchaseOrder("PN0042", "  ", time.Now())
	assert.Error(t, err)
}

func TestPurchaseOrder_AddItemAndTotal(t *testing.T) {
	order := newTestOrder(t)

	require.NoError(t, order.AddItem(nil, "Gạo ST25", "kg", decimal.NewFromInt(500), valueobject.NewMoneyFromInt(18000)))
	require.NoError(t, order.AddItem(nil, "Gạo thơm Lài", "kg", decimal.NewFromInt(200), valueobject.NewMoneyFromInt(15000)))

	require.Len(t, order.Items, 2)
	assert.Equal(t, "9000000", order.Items[0].Amount.String())
	assert.Equal(t, "12000000", order.Total().Amount().String())
}

func TestPurchaseOrder_AddItem_Validation(t *testing.T) {
	order := newTestOrder(t)

	err := order.AddItem(nil, "", "kg", decimal.NewFromInt(1), valueobject.NewMoneyFromInt(18000))
	assert.Error(t, err)

	err = order.AddItem(nil, "Gạo ST25", "kg", decimal.Zero, valueobject.NewMoneyFromInt(18000))
	assert.Error(t, err)

	err = order.AddItem(nil, "Gạo ST25", "kg", decimal.NewFromInt(1), valueobject.NewMoneyFromInt(-1))
	assert.Error(t, err)
}

func TestPurchaseOrder_RemoveItem(t *testing.T) {
	order := newTestOrder(t)
	require.NoError(t, order.AddItem(nil, "Gạo ST25", "kg", decimal.NewFromInt(500), valueobject.NewMoneyFromInt(18000)))

	err := order.RemoveItem(uuid.New())
	assert.Error(t, err)

	require.NoError(t, order.RemoveItem(order.Items[0].ID))
	assert.Empty(t, order.Items)
}

func TestPurchaseOrder_Lifecycle(t *testing.T) {
	order := newTestOrder(t)

	// empty draft cannot be confirmed
	assert.Error(t, order.Confirm())

	require.NoError(t, order.AddItem(nil, "Gạo ST25", "kg", decimal.NewFromInt(500), valueobject.NewMoneyFromInt(18000)))
	require.NoError(t, order.Confirm())
	assert.Equal(t, PurchaseOrderStatusConfirmed, order.Status)

	// confirming twice is rejected
	assert.Error(t, order.Confirm())

	require.NoError(t, order.Complete())
	assert.Equal(t, PurchaseOrderStatusCompleted, order.Status)

	// completed orders reject further mutation
	assert.Error(t, order.Cancel())
	assert.Error(t, order.AddItem(nil, "Gạo ST25", "kg", decimal.NewFromInt(1), valueobject.NewMoneyFromInt(18000)))
}

func TestPurchaseOrderItem_UpdateQuantity(t *testing.T) {
	order := newTestOrder(t)
	require.NoError(t, order.AddItem(nil, "Gạo ST25", "kg", decimal.NewFromInt(500), valueobject.NewMoneyFromInt(18000)))

	item := &order.Items[0]
	require.NoError(t, item.UpdateQuantity(decimal.NewFromInt(300)))
	assert.Equal(t, "5400000", item.Amount.String())

	assert.Error(t, item.UpdateQuantity(decimal.Zero))
}
