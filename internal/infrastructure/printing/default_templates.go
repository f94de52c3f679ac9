package printing

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gaolamthuy/backend/internal/domain/printing"
	"github.com/gaolamthuy/backend/internal/domain/shared"
	"github.com/google/uuid"
)

//go:embed templates/*.html
var templateFS embed.FS

// defaultTemplateDef describes one shipped template before its content
// is loaded.
type defaultTemplateDef struct {
	Name     string
	Type     printing.TemplateType
	FilePath string
	PageSize printing.PageSize
}

// defaultTemplateDefs lists the templates shipped with the service so a
// fresh install prints without any template administration.
func defaultTemplateDefs() []defaultTemplateDef {
	return []defaultTemplateDef{
		{
			Name:     "Đơn mua hàng A5",
			Type:     printing.TemplateTypePurchaseOrder,
			FilePath: "templates/purchase_order.html",
			PageSize: printing.PageSizeA5,
		},
		{
			Name:     "Hóa đơn bán lẻ A6",
			Type:     printing.TemplateTypeRetailInvoice,
			FilePath: "templates/invoice.html",
			PageSize: printing.PageSizeA6,
		},
		{
			Name:     "Tem sản phẩm A7",
			Type:     printing.TemplateTypeProductLabel,
			FilePath: "templates/label_product.html",
			PageSize: printing.PageSizeA7,
		},
		{
			Name:     "Bảng giá A4",
			Type:     printing.TemplateTypePriceTable,
			FilePath: "templates/price_table.html",
			PageSize: printing.PageSizeA4,
		},
	}
}

// LoadBuiltinTemplates loads the shipped templates as domain
// aggregates. When externalDir is set, a file with the same base name
// there overrides the embedded content, which lets a deployment adjust
// layouts without a rebuild. Each template gets a stable ID derived
// from its type so repeated loads agree.
func LoadBuiltinTemplates(externalDir string) ([]printing.PrintTemplate, error) {
	defs := defaultTemplateDefs()
	templates := make([]printing.PrintTemplate, 0, len(defs))

	for _, def := range defs {
		content, err := loadTemplateContent(externalDir, def.FilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load builtin template %s: %w", def.Name, err)
		}

		tpl := printing.PrintTemplate{
			BaseAggregateRoot: shared.BaseAggregateRoot{
				BaseEntity: shared.BaseEntity{ID: builtinTemplateID(def.Type)},
				Version:    1,
			},
			Name:      def.Name,
			Type:      def.Type,
			Content:   content,
			PageSize:  def.PageSize,
			IsActive:  true,
			IsDefault: true,
		}
		templates = append(templates, tpl)
	}

	return templates, nil
}

func loadTemplateContent(externalDir, embeddedPath string) (string, error) {
	if externalDir != "" {
		externalPath := filepath.Join(externalDir, filepath.Base(embeddedPath))
		if content, err := os.ReadFile(externalPath); err == nil {
			return string(content), nil
		}
		// Fall through to embedded when no override exists.
	}

	content, err := templateFS.ReadFile(embeddedPath)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// builtinTemplateID derives a stable UUID v5 for a shipped template so
// the same builtin always resolves to the same id.
func builtinTemplateID(templateType printing.TemplateType) uuid.UUID {
	namespace := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	return uuid.NewSHA1(namespace, []byte("builtin-print-template:"+string(templateType)))
}
