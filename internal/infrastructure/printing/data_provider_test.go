package printing

import (
	"testing"
	"time"

	"github.com/gaolamthuy/backend/internal/domain/catalog"
	"github.com/gaolamthuy/backend/internal/domain/shared/valueobject"
	"github.com/gaolamthuy/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrintableOrder(t *testing.T) *trade.PurchaseOrder {
	t.Helper()
	order, err := trade.NewPurchaseOrder("PO-2025-010", "Vựa lúa Long An",
		time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, order.AddItem(nil, "Gạo Nàng Hoa", "kg", decimal.NewFromInt(500), valueobject.NewMoneyFromInt(18000)))
	require.NoError(t, order.AddItem(nil, "Gạo ST25", "kg", decimal.NewFromInt(200), valueobject.NewMoneyFromInt(25000)))
	require.NoError(t, order.AddItem(nil, "Tấm thơm", "kg", decimal.NewFromInt(100), valueobject.NewMoneyFromInt(12000)))
	return order
}

func TestBuildPurchaseOrderContext(t *testing.T) {
	order := newPrintableOrder(t)

	pc, err := BuildPurchaseOrderContext(order)
	require.NoError(t, err)

	assert.Equal(t, "PO-2025-010", pc["Code"])
	assert.Equal(t, "Vựa lúa Long An", pc["SupplierName"])
	assert.Equal(t, "15/08/2025", pc["OrderDate"])
	assert.Equal(t, "15.200.000 ₫", pc["Total"])

	items, ok := pc["Items"].([]map[string]interface{})
	require.True(t, ok)
	require.Len(t, items, 3)
	assert.Equal(t, 1, items[0]["Index"])
	assert.Equal(t, "Gạo Nàng Hoa", items[0]["ProductName"])
	assert.Equal(t, "9.000.000 ₫", items[0]["Amount"])
}

func TestBuildPurchaseOrderContext_Validation(t *testing.T) {
	_, err := BuildPurchaseOrderContext(nil)
	assert.Error(t, err)

	order := newPrintableOrder(t)
	order.SupplierName = "  "
	_, err = BuildPurchaseOrderContext(order)
	assert.Error(t, err)
}

func TestBuildPurchaseOrderLineContext_SingleLineReprint(t *testing.T) {
	order := newPrintableOrder(t)
	full, err := BuildPurchaseOrderContext(order)
	require.NoError(t, err)

	target := order.Items[1]
	single, err := BuildPurchaseOrderLineContext(order, target.ID)
	require.NoError(t, err)

	// Exactly one entry in the repeating collection.
	items, ok := single["Items"].([]map[string]interface{})
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0]["Index"])
	assert.Equal(t, "Gạo ST25", items[0]["ProductName"])

	// Every parent field unchanged from the full-order context.
	for _, key := range []string{"Title", "Code", "SupplierName", "OrderDate", "Status", "Note", "Total"} {
		assert.Equal(t, full[key], single[key], "parent field %s must be preserved", key)
	}
}

func TestBuildPurchaseOrderLineContext_UnknownLine(t *testing.T) {
	order := newPrintableOrder(t)
	_, err := BuildPurchaseOrderLineContext(order, order.ID)
	assert.Error(t, err)
}

func TestBuildProductLabelContext(t *testing.T) {
	product, err := catalog.NewProduct("ST25", "Gạo ST25", "kg")
	require.NoError(t, err)
	product.Origin = "Sóc Trăng"
	require.NoError(t, product.SetPrice(valueobject.NewMoneyFromInt(27000)))

	pc, err := BuildProductLabelContext(product)
	require.NoError(t, err)

	assert.Equal(t, "Gạo ST25", pc["Name"])
	assert.Equal(t, "Sóc Trăng", pc["Origin"])
	assert.Equal(t, "27.000 ₫", pc["Price"])

	// No previous price: the comparison block is absent, not nil-panicking.
	_, hasPrevious := pc["Previous"]
	assert.False(t, hasPrevious)
}

func TestBuildProductLabelContext_WithPreviousPrice(t *testing.T) {
	product, err := catalog.NewProduct("NH01", "Gạo Nàng Hoa", "kg")
	require.NoError(t, err)
	require.NoError(t, product.SetPrice(valueobject.NewMoneyFromInt(17000)))
	require.NoError(t, product.SetPrice(valueobject.NewMoneyFromInt(18000)))

	pc, err := BuildProductLabelContext(product)
	require.NoError(t, err)

	previous, ok := pc["Previous"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "17.000 ₫", previous["Price"])
}

func TestBuildPriceTableContext(t *testing.T) {
	st25, err := catalog.NewProduct("ST25", "Gạo ST25", "kg")
	require.NoError(t, err)
	require.NoError(t, st25.SetPrice(valueobject.NewMoneyFromInt(27000)))

	nangHoa, err := catalog.NewProduct("NH01", "Gạo Nàng Hoa", "kg")
	require.NoError(t, err)
	require.NoError(t, nangHoa.SetPrice(valueobject.NewMoneyFromInt(18000)))

	pc := BuildPriceTableContext([]catalog.Product{*st25, *nangHoa},
		time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "01/09/2025", pc["Date"])
	entries, ok := pc["Products"].([]map[string]interface{})
	require.True(t, ok)
	require.Len(t, entries, 2)
	assert.Equal(t, "Gạo ST25", entries[0]["Name"])
	assert.Equal(t, 2, entries[1]["Index"])
	assert.Equal(t, "18.000 ₫", entries[1]["Price"])
}

func TestBuildRetailInvoiceContext(t *testing.T) {
	invoice, err := trade.NewRetailInvoice("HD-2025-0042", "",
		time.Date(2025, 8, 30, 9, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, invoice.AddLine(nil, "Gạo ST25", "kg", decimal.NewFromInt(10), valueobject.NewMoneyFromInt(27000)))
	require.NoError(t, invoice.RecordPayment(valueobject.NewMoneyFromInt(300000)))

	pc, err := BuildRetailInvoiceContext(invoice)
	require.NoError(t, err)

	assert.Equal(t, "Khách lẻ", pc["CustomerName"], "walk-in customers get the generic name")
	assert.Equal(t, "30/08/2025 09:30", pc["SoldAt"])
	assert.Equal(t, "270.000 ₫", pc["Total"])
	assert.Equal(t, "300.000 ₫", pc["Paid"])
	assert.Equal(t, "30.000 ₫", pc["Change"])
}
