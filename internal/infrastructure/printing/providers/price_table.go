package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/gaolamthuy/backend/internal/domain/catalog"
	"github.com/gaolamthuy/backend/internal/domain/printing"
	infra "github.com/gaolamthuy/backend/internal/infrastructure/printing"
	"github.com/google/uuid"
)

// PriceTableProvider feeds price-board print jobs from the active
// product catalog. The board always covers the whole catalog, so the
// documentID is ignored.
type PriceTableProvider struct {
	products catalog.ProductRepository
	now      func() time.Time
}

// NewPriceTableProvider creates a new PriceTableProvider
func NewPriceTableProvider(products catalog.ProductRepository) *PriceTableProvider {
	return &PriceTableProvider{products: products, now: time.Now}
}

// TemplateType returns the template type this provider feeds
func (p *PriceTableProvider) TemplateType() printing.TemplateType {
	return printing.TemplateTypePriceTable
}

// BuildContext loads the active catalog in board order and shapes the
// price-table context.
func (p *PriceTableProvider) BuildContext(ctx context.Context, _ uuid.UUID) (infra.PrintContext, error) {
	products, err := p.products.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return infra.BuildPriceTableContext(products, p.now()), nil
}
