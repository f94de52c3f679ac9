package printing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateType_IsValid(t *testing.T) {
	tests := []struct {
		name         string
		templateType TemplateType
		want         bool
	}{
		{"purchase order", TemplateTypePurchaseOrder, true},
		{"retail invoice", TemplateTypeRetailInvoice, true},
		{"product label", TemplateTypeProductLabel, true},
		{"price table", TemplateTypePriceTable, true},
		{"unknown", TemplateType("delivery_note"), false},
		{"empty", TemplateType(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.templateType.IsValid())
		})
	}
}

func TestTemplateType_DisplayName(t *testing.T) {
	assert.Equal(t, "Đơn mua hàng", TemplateTypePurchaseOrder.DisplayName())
	assert.Equal(t, "Hóa đơn bán lẻ", TemplateTypeRetailInvoice.DisplayName())
	assert.Equal(t, "Tem sản phẩm", TemplateTypeProductLabel.DisplayName())
	assert.Equal(t, "Bảng giá", TemplateTypePriceTable.DisplayName())
	// unknown types fall back to the raw string
	assert.Equal(t, "receipt", TemplateType("receipt").DisplayName())
}

func TestPageSize_Dimensions(t *testing.T) {
	tests := []struct {
		size       PageSize
		wantWidth  float64
		wantHeight float64
	}{
		{PageSizeA7, 75, 50},
		{PageSizeA6, 100, 75},
		{PageSizeA5, 148, 105},
		{PageSizeA4, 210, 297},
	}

	for _, tt := range tests {
		t.Run(string(tt.size), func(t *testing.T) {
			w, h := tt.size.Dimensions()
			assert.Equal(t, tt.wantWidth, w)
			assert.Equal(t, tt.wantHeight, h)
		})
	}
}

func TestPageSize_Dimensions_UnknownFallsBackToA4(t *testing.T) {
	w, h := PageSize("B5").Dimensions()
	assert.Equal(t, 210.0, w)
	assert.Equal(t, 297.0, h)
}

func TestAllPageSizes(t *testing.T) {
	sizes := AllPageSizes()
	assert.Len(t, sizes, 4)
	for _, s := range sizes {
		assert.True(t, s.IsValid())
	}
}

func TestAllTemplateTypes(t *testing.T) {
	types := AllTemplateTypes()
	assert.Len(t, types, 4)
	for _, tt := range types {
		assert.True(t, tt.IsValid())
		assert.NotEmpty(t, tt.DisplayName())
	}
}
