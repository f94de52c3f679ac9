package providers

import (
	"context"
	"fmt"

	"github.com/gaolamthuy/backend/internal/domain/printing"
	"github.com/gaolamthuy/backend/internal/domain/trade"
	infra "github.com/gaolamthuy/backend/internal/infrastructure/printing"
	"github.com/google/uuid"
)

// PurchaseOrderProvider feeds purchase-order print jobs from the
// order repository.
type PurchaseOrderProvider struct {
	orders trade.PurchaseOrderRepository
}

// NewPurchaseOrderProvider creates a new PurchaseOrderProvider
func NewPurchaseOrderProvider(orders trade.PurchaseOrderRepository) *PurchaseOrderProvider {
	return &PurchaseOrderProvider{orders: orders}
}

// TemplateType returns the template type this provider feeds
func (p *PurchaseOrderProvider) TemplateType() printing.TemplateType {
	return printing.TemplateTypePurchaseOrder
}

// BuildContext loads the order with its items and shapes the full
// print context.
func (p *PurchaseOrderProvider) BuildContext(ctx context.Context, documentID uuid.UUID) (infra.PrintContext, error) {
	order, err := p.orders.FindByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load purchase order: %w", err)
	}
	return infra.BuildPurchaseOrderContext(order)
}

// BuildLineContext shapes the single-line reprint variant for one
// order line.
func (p *PurchaseOrderProvider) BuildLineContext(ctx context.Context, documentID, lineID uuid.UUID) (infra.PrintContext, error) {
	order, err := p.orders.FindByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load purchase order: %w", err)
	}
	return infra.BuildPurchaseOrderLineContext(order, lineID)
}
