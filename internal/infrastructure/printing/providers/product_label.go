package providers

import (
	"context"
	"fmt"

	"github.com/gaolamthuy/backend/internal/domain/catalog"
	"github.com/gaolamthuy/backend/internal/domain/printing"
	infra "github.com/gaolamthuy/backend/internal/infrastructure/printing"
	"github.com/google/uuid"
)

// ProductLabelProvider feeds price-label print jobs from the product
// repository.
type ProductLabelProvider struct {
	products catalog.ProductRepository
}

// NewProductLabelProvider creates a new ProductLabelProvider
func NewProductLabelProvider(products catalog.ProductRepository) *ProductLabelProvider {
	return &ProductLabelProvider{products: products}
}

// TemplateType returns the template type this provider feeds
func (p *ProductLabelProvider) TemplateType() printing.TemplateType {
	return printing.TemplateTypeProductLabel
}

// BuildContext loads the product and shapes its label context
func (p *ProductLabelProvider) BuildContext(ctx context.Context, documentID uuid.UUID) (infra.PrintContext, error) {
	product, err := p.products.FindByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	return infra.BuildProductLabelContext(product)
}
