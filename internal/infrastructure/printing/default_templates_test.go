package printing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gaolamthuy/backend/internal/domain/printing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBuiltinTemplates(t *testing.T) {
	templates, err := LoadBuiltinTemplates("")
	require.NoError(t, err)
	require.Len(t, templates, 4)

	byType := make(map[printing.TemplateType]printing.PrintTemplate)
	for _, tpl := range templates {
		assert.True(t, tpl.IsActive)
		assert.True(t, tpl.IsDefault)
		assert.NotEmpty(t, tpl.Content)
		byType[tpl.Type] = tpl
	}

	for _, templateType := range printing.AllTemplateTypes() {
		_, ok := byType[templateType]
		assert.True(t, ok, "missing builtin for %s", templateType)
	}

	assert.Equal(t, printing.PageSizeA7, byType[printing.TemplateTypeProductLabel].PageSize)
	assert.Equal(t, printing.PageSizeA4, byType[printing.TemplateTypePriceTable].PageSize)
}

func TestLoadBuiltinTemplates_StableIDs(t *testing.T) {
	first, err := LoadBuiltinTemplates("")
	require.NoError(t, err)
	second, err := LoadBuiltinTemplates("")
	require.NoError(t, err)

	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestLoadBuiltinTemplates_ExternalOverride(t *testing.T) {
	dir := t.TempDir()
	override := "<div>bản tùy chỉnh</div>"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "invoice.html"), []byte(override), 0o644))

	templates, err := LoadBuiltinTemplates(dir)
	require.NoError(t, err)

	for _, tpl := range templates {
		if tpl.Type == printing.TemplateTypeRetailInvoice {
			assert.Equal(t, override, tpl.Content)
		} else {
			assert.NotEqual(t, override, tpl.Content)
		}
	}
}

func TestBuiltinTemplatesCompile(t *testing.T) {
	engine := NewTemplateEngine()
	templates, err := LoadBuiltinTemplates("")
	require.NoError(t, err)

	contexts := map[printing.TemplateType]PrintContext{
		printing.TemplateTypePurchaseOrder: {
			"Title": "Đơn mua hàng", "Code": "PO-1", "SupplierName": "Vựa lúa",
			"OrderDate": "01/09/2025", "Note": "",
			"Items": []map[string]interface{}{{
				"Index": 1, "ProductName": "Gạo ST25", "Quantity": "500",
				"Unit": "kg", "UnitCost": "25.000 ₫", "Amount": "12.500.000 ₫",
			}},
			"Total": "12.500.000 ₫",
		},
		printing.TemplateTypeRetailInvoice: {
			"Title": "Hóa đơn bán lẻ", "Code": "HD-1", "CustomerName": "Khách lẻ",
			"SoldAt": "01/09/2025 10:00",
			"Lines": []map[string]interface{}{{
				"ProductName": "Gạo ST25", "Quantity": "10", "Unit": "kg",
				"UnitPrice": "27.000 ₫", "Amount": "270.000 ₫",
			}},
			"Total": "270.000 ₫", "Paid": "300.000 ₫", "Change": "30.000 ₫",
		},
		printing.TemplateTypeProductLabel: {
			"Name": "Gạo ST25", "Code": "ST25", "Origin": "Sóc Trăng",
			"Unit": "kg", "Price": "27.000 ₫",
		},
		printing.TemplateTypePriceTable: {
			"Date": "01/09/2025",
			"Products": []map[string]interface{}{{
				"Index": 1, "Name": "Gạo ST25", "Unit": "kg", "Price": "27.000 ₫",
			}},
		},
	}

	for _, tpl := range templates {
		t.Run(string(tpl.Type), func(t *testing.T) {
			html, err := engine.RenderString(string(tpl.Type), tpl.Content, contexts[tpl.Type])
			require.NoError(t, err)
			assert.Contains(t, html, "print-template")
		})
	}
}
