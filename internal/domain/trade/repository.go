package trade

import (
	"context"

	"github.com/gaolamthuy/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PurchaseOrderRepository defines persistence operations for purchase orders
type PurchaseOrderRepository interface {
	// FindByID loads an order with its items
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseOrder, error)
	FindByCode(ctx context.Context, code string) (*PurchaseOrder, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]PurchaseOrder, error)
	Save(ctx context.Context, order *PurchaseOrder) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// RetailInvoiceRepository defines persistence operations for retail invoices
type RetailInvoiceRepository interface {
	// FindByID loads an invoice with its lines
	FindByID(ctx context.Context, id uuid.UUID) (*RetailInvoice, error)
	FindByCode(ctx context.Context, code string) (*RetailInvoice, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]RetailInvoice, error)
	Save(ctx context.Context, invoice *RetailInvoice) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
