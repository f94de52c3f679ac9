package printing

import (
	"strings"
	"time"

	"github.com/gaolamthuy/backend/internal/domain/catalog"
	"github.com/gaolamthuy/backend/internal/domain/printing"
	"github.com/gaolamthuy/backend/internal/domain/shared"
	"github.com/gaolamthuy/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// PrintContext is the data object a template is compiled against. A
// plain nested map so templates and builders agree on field names only;
// missing optional fields degrade to empty output via the engine's
// helper defensiveness.
type PrintContext map[string]interface{}

// The builders below are pure: given a loaded record they produce the
// context deterministically, with no storage or network access. Dates
// are pre-formatted dd/MM/yyyy and money fields pre-formatted with the
// same Vietnamese conventions as the engine helpers, so templates can
// interpolate them directly.

// BuildPurchaseOrderContext shapes a purchase order for printing
func BuildPurchaseOrderContext(order *trade.PurchaseOrder) (PrintContext, error) {
	if order == nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Purchase order is required")
	}
	if strings.TrimSpace(order.Code) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Purchase order code is required")
	}
	if strings.TrimSpace(order.SupplierName) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Supplier name is required")
	}

	items := lo.Map(order.Items, purchaseOrderItemEntry)

	return PrintContext{
		"Title":        printing.TemplateTypePurchaseOrder.DisplayName(),
		"Code":         order.Code,
		"SupplierName": order.SupplierName,
		"OrderDate":    formatDate(order.OrderDate),
		"Status":       string(order.Status),
		"Note":         order.Note,
		"Items":        items,
		"ItemCount":    len(items),
		"Total":        formatCurrency(order.Total().Amount()),
	}, nil
}

// BuildPurchaseOrderLineContext shapes a single-line reprint: the
// repeating collection holds exactly the requested line while every
// parent field stays identical to the full-order context, so a
// one-line reprint is visually a length-1 printout.
func BuildPurchaseOrderLineContext(order *trade.PurchaseOrder, lineID uuid.UUID) (PrintContext, error) {
	pc, err := BuildPurchaseOrderContext(order)
	if err != nil {
		return nil, err
	}

	line, err := order.FindItem(lineID)
	if err != nil {
		return nil, err
	}

	entry := purchaseOrderItemEntry(*line, 0)
	entry["Index"] = 1
	pc["Items"] = []map[string]interface{}{entry}
	pc["ItemCount"] = 1
	return pc, nil
}

func purchaseOrderItemEntry(item trade.PurchaseOrderItem, i int) map[string]interface{} {
	return map[string]interface{}{
		"Index":       i + 1,
		"ProductName": item.ProductName,
		"Quantity":    formatNumber(item.Quantity),
		"Unit":        item.Unit,
		"UnitCost":    formatCurrency(item.UnitCost),
		"Amount":      formatCurrency(item.Amount),
		"Remark":      item.Remark,
	}
}

// BuildProductLabelContext shapes one product for its price label.
// The previous-price comparison block is present only when the product
// carries one; templates guard it with {{if .Previous}}.
func BuildProductLabelContext(product *catalog.Product) (PrintContext, error) {
	if product == nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product is required")
	}
	if strings.TrimSpace(product.Name) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product name is required")
	}

	pc := PrintContext{
		"Title":  printing.TemplateTypeProductLabel.DisplayName(),
		"Code":   product.Code,
		"Name":   product.Name,
		"Origin": product.Origin,
		"Unit":   product.Unit,
		"Price":  formatCurrency(product.SellingPrice),
	}
	if product.PreviousPrice != nil {
		pc["Previous"] = map[string]interface{}{
			"Price": formatCurrency(*product.PreviousPrice),
		}
	}
	return pc, nil
}

// BuildPriceTableContext shapes the active catalog into the printed
// price board, preserving the given (sort-order) sequence.
func BuildPriceTableContext(products []catalog.Product, asOf time.Time) PrintContext {
	entries := lo.Map(products, func(p catalog.Product, i int) map[string]interface{} {
		return map[string]interface{}{
			"Index": i + 1,
			"Name":  p.Name,
			"Unit":  p.Unit,
			"Price": formatCurrency(p.SellingPrice),
		}
	})

	return PrintContext{
		"Title":    printing.TemplateTypePriceTable.DisplayName(),
		"Date":     formatDate(asOf),
		"Products": entries,
	}
}

// BuildRetailInvoiceContext shapes a retail sale for the receipt
// printer. Derived totals are pure sums of line amounts.
func BuildRetailInvoiceContext(invoice *trade.RetailInvoice) (PrintContext, error) {
	if invoice == nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invoice is required")
	}
	if strings.TrimSpace(invoice.Code) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invoice code is required")
	}

	lines := lo.Map(invoice.Lines, func(line trade.RetailInvoiceLine, i int) map[string]interface{} {
		return map[string]interface{}{
			"Index":       i + 1,
			"ProductName": line.ProductName,
			"Quantity":    formatNumber(line.Quantity),
			"Unit":        line.Unit,
			"UnitPrice":   formatCurrency(line.UnitPrice),
			"Amount":      formatCurrency(line.Amount),
		}
	})

	customer := invoice.CustomerName
	if strings.TrimSpace(customer) == "" {
		customer = "Khách lẻ"
	}

	total := lo.Reduce(invoice.Lines, func(acc decimal.Decimal, line trade.RetailInvoiceLine, _ int) decimal.Decimal {
		return acc.Add(line.Amount)
	}, decimal.Zero)

	return PrintContext{
		"Title":        printing.TemplateTypeRetailInvoice.DisplayName(),
		"Code":         invoice.Code,
		"CustomerName": customer,
		"SoldAt":       formatDateTime(invoice.SoldAt),
		"Lines":        lines,
		"Total":        formatCurrency(total),
		"Paid":         formatCurrency(invoice.Paid),
		"Change":       formatCurrency(invoice.Change().Amount()),
	}, nil
}
