package providers

import (
	"context"
	"fmt"

	"github.com/gaolamthuy/backend/internal/domain/printing"
	"github.com/gaolamthuy/backend/internal/domain/trade"
	infra "github.com/gaolamthuy/backend/internal/infrastructure/printing"
	"github.com/google/uuid"
)

// RetailInvoiceProvider feeds receipt print jobs from the invoice
// repository.
type RetailInvoiceProvider struct {
	invoices trade.RetailInvoiceRepository
}

// NewRetailInvoiceProvider creates a new RetailInvoiceProvider
func NewRetailInvoiceProvider(invoices trade.RetailInvoiceRepository) *RetailInvoiceProvider {
	return &RetailInvoiceProvider{invoices: invoices}
}

// TemplateType returns the template type this provider feeds
func (p *RetailInvoiceProvider) TemplateType() printing.TemplateType {
	return printing.TemplateTypeRetailInvoice
}

// BuildContext loads the invoice with its lines and shapes the
// receipt context.
func (p *RetailInvoiceProvider) BuildContext(ctx context.Context, documentID uuid.UUID) (infra.PrintContext, error) {
	invoice, err := p.invoices.FindByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load retail invoice: %w", err)
	}
	return infra.BuildRetailInvoiceContext(invoice)
}
