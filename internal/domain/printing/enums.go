package printing

// TemplateType identifies the kind of document a template renders.
type TemplateType string

const (
	// TemplateTypePurchaseOrder renders a supplier purchase order
	TemplateTypePurchaseOrder TemplateType = "purchase_order"
	// TemplateTypeRetailInvoice renders a retail sales invoice
	TemplateTypeRetailInvoice TemplateType = "invoice"
	// TemplateTypeProductLabel renders a single product price label
	TemplateTypeProductLabel TemplateType = "label-product"
	// TemplateTypePriceTable renders the shop price board
	TemplateTypePriceTable TemplateType = "price-table"
)

// IsValid checks if the template type is valid
func (t TemplateType) IsValid() bool {
	switch t {
	case TemplateTypePurchaseOrder, TemplateTypeRetailInvoice,
		TemplateTypeProductLabel, TemplateTypePriceTable:
		return true
	}
	return false
}

// String returns the string representation
func (t TemplateType) String() string {
	return string(t)
}

// DisplayName returns the Vietnamese display name shown in pickers
func (t TemplateType) DisplayName() string {
	switch t {
	case TemplateTypePurchaseOrder:
		return "Đơn mua hàng"
	case TemplateTypeRetailInvoice:
		return "Hóa đơn bán lẻ"
	case TemplateTypeProductLabel:
		return "Tem sản phẩm"
	case TemplateTypePriceTable:
		return "Bảng giá"
	default:
		return string(t)
	}
}

// AllTemplateTypes returns all valid template types
func AllTemplateTypes() []TemplateType {
	return []TemplateType{
		TemplateTypePurchaseOrder,
		TemplateTypeRetailInvoice,
		TemplateTypeProductLabel,
		TemplateTypePriceTable,
	}
}

// PageSize is a named physical page preset for label and receipt media.
type PageSize string

const (
	PageSizeA7 PageSize = "A7"
	PageSizeA6 PageSize = "A6"
	PageSizeA5 PageSize = "A5"
	PageSizeA4 PageSize = "A4"
)

// IsValid checks if the page size is a known preset
func (p PageSize) IsValid() bool {
	switch p {
	case PageSizeA7, PageSizeA6, PageSizeA5, PageSizeA4:
		return true
	}
	return false
}

// String returns the string representation
func (p PageSize) String() string {
	return string(p)
}

// Dimensions returns the preset width and height in millimeters.
// The A7 and A6 presets are the landscape thermal-label variants used
// by the shop's label printers, not the ISO portrait sheets.
func (p PageSize) Dimensions() (width, height float64) {
	switch p {
	case PageSizeA7:
		return 75, 50
	case PageSizeA6:
		return 100, 75
	case PageSizeA5:
		return 148, 105
	case PageSizeA4:
		return 210, 297
	default:
		return 210, 297
	}
}

// AllPageSizes returns all supported page size presets
func AllPageSizes() []PageSize {
	return []PageSize{PageSizeA7, PageSizeA6, PageSizeA5, PageSizeA4}
}
