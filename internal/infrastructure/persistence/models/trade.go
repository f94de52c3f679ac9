package models

import (
	"time"

	"github.com/gaolamthuy/backend/internal/domain/shared"
	"github.com/gaolamthuy/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// PurchaseOrderModel is the GORM model for the purchase_orders table
type PurchaseOrderModel struct {
	ID           uuid.UUID                `gorm:"type:uuid;primary_key"`
	Code         string                   `gorm:"type:varchar(50);not null;uniqueIndex"`
	SupplierName string                   `gorm:"column:supplier_name;type:varchar(200);not null"`
	OrderDate    time.Time                `gorm:"column:order_date;not null"`
	Status       string                   `gorm:"type:varchar(20);not null;default:'DRAFT'"`
	Note         string                   `gorm:"type:varchar(500)"`
	Items        []PurchaseOrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time                `gorm:"not null"`
	UpdatedAt    time.Time                `gorm:"not null"`
	Version      int                      `gorm:"not null;default:1"`
}

// TableName returns the table name for PurchaseOrderModel
func (PurchaseOrderModel) TableName() string {
	return "purchase_orders"
}

// PurchaseOrderItemModel is the GORM model for the purchase_order_items table
type PurchaseOrderItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID     uuid.UUID       `gorm:"column:order_id;type:uuid;not null;index"`
	ProductID   *uuid.UUID      `gorm:"column:product_id;type:uuid"`
	ProductName string          `gorm:"column:product_name;type:varchar(200);not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Unit        string          `gorm:"type:varchar(20);not null"`
	UnitCost    decimal.Decimal `gorm:"column:unit_cost;type:decimal(18,0);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,0);not null"`
	Remark      string          `gorm:"type:varchar(500)"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for PurchaseOrderItemModel
func (PurchaseOrderItemModel) TableName() string {
	return "purchase_order_items"
}

// ToDomain converts PurchaseOrderModel to the domain aggregate
func (m *PurchaseOrderModel) ToDomain() *trade.PurchaseOrder {
	items := lo.Map(m.Items, func(im PurchaseOrderItemModel, _ int) trade.PurchaseOrderItem {
		return trade.PurchaseOrderItem{
			ID:          im.ID,
			OrderID:     im.OrderID,
			ProductID:   im.ProductID,
			ProductName: im.ProductName,
			Quantity:    im.Quantity,
			Unit:        im.Unit,
			UnitCost:    im.UnitCost,
			Amount:      im.Amount,
			Remark:      im.Remark,
			CreatedAt:   im.CreatedAt,
			UpdatedAt:   im.UpdatedAt,
		}
	})

	return &trade.PurchaseOrder{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		Code:         m.Code,
		SupplierName: m.SupplierName,
		OrderDate:    m.OrderDate,
		Status:       trade.PurchaseOrderStatus(m.Status),
		Note:         m.Note,
		Items:        items,
	}
}

// PurchaseOrderModelFromDomain creates a PurchaseOrderModel from the domain aggregate
func PurchaseOrderModelFromDomain(o *trade.PurchaseOrder) *PurchaseOrderModel {
	items := lo.Map(o.Items, func(item trade.PurchaseOrderItem, _ int) PurchaseOrderItemModel {
		return PurchaseOrderItemModel{
			ID:          item.ID,
			OrderID:     item.OrderID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Unit:        item.Unit,
			UnitCost:    item.UnitCost,
			Amount:      item.Amount,
			Remark:      item.Remark,
			CreatedAt:   item.CreatedAt,
			UpdatedAt:   item.UpdatedAt,
		}
	})

	return &PurchaseOrderModel{
		ID:           o.ID,
		Code:         o.Code,
		SupplierName: o.SupplierName,
		OrderDate:    o.OrderDate,
		Status:       string(o.Status),
		Note:         o.Note,
		Items:        items,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
		Version:      o.Version,
	}
}

// RetailInvoiceModel is the GORM model for the retail_invoices table
type RetailInvoiceModel struct {
	ID           uuid.UUID                `gorm:"type:uuid;primary_key"`
	Code         string                   `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerName string                   `gorm:"column:customer_name;type:varchar(200)"`
	SoldAt       time.Time                `gorm:"column:sold_at;not null"`
	Paid         decimal.Decimal          `gorm:"type:decimal(18,0);not null;default:0"`
	Note         string                   `gorm:"type:varchar(500)"`
	Lines        []RetailInvoiceLineModel `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time                `gorm:"not null"`
	UpdatedAt    time.Time                `gorm:"not null"`
	Version      int                      `gorm:"not null;default:1"`
}

// TableName returns the table name for RetailInvoiceModel
func (RetailInvoiceModel) TableName() string {
	return "retail_invoices"
}

// RetailInvoiceLineModel is the GORM model for the retail_invoice_lines table
type RetailInvoiceLineModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	InvoiceID   uuid.UUID       `gorm:"column:invoice_id;type:uuid;not null;index"`
	ProductID   *uuid.UUID      `gorm:"column:product_id;type:uuid"`
	ProductName string          `gorm:"column:product_name;type:varchar(200);not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Unit        string          `gorm:"type:varchar(20);not null"`
	UnitPrice   decimal.Decimal `gorm:"column:unit_price;type:decimal(18,0);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,0);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for RetailInvoiceLineModel
func (RetailInvoiceLineModel) TableName() string {
	return "retail_invoice_lines"
}

// ToDomain converts RetailInvoiceModel to the domain aggregate
func (m *RetailInvoiceModel) ToDomain() *trade.RetailInvoice {
	lines := lo.Map(m.Lines, func(lm RetailInvoiceLineModel, _ int) trade.RetailInvoiceLine {
		return trade.RetailInvoiceLine{
			ID:          lm.ID,
			InvoiceID:   lm.InvoiceID,
			ProductID:   lm.ProductID,
			ProductName: lm.ProductName,
			Quantity:    lm.Quantity,
			Unit:        lm.Unit,
			UnitPrice:   lm.UnitPrice,
			Amount:      lm.Amount,
			CreatedAt:   lm.CreatedAt,
			UpdatedAt:   lm.UpdatedAt,
		}
	})

	return &trade.RetailInvoice{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		Code:         m.Code,
		CustomerName: m.CustomerName,
		SoldAt:       m.SoldAt,
		Paid:         m.Paid,
		Note:         m.Note,
		Lines:        lines,
	}
}

// RetailInvoiceModelFromDomain creates a RetailInvoiceModel from the domain aggregate
func RetailInvoiceModelFromDomain(inv *trade.RetailInvoice) *RetailInvoiceModel {
	lines := lo.Map(inv.Lines, func(line trade.RetailInvoiceLine, _ int) RetailInvoiceLineModel {
		return RetailInvoiceLineModel{
			ID:          line.ID,
			InvoiceID:   line.InvoiceID,
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			Unit:        line.Unit,
			UnitPrice:   line.UnitPrice,
			Amount:      line.Amount,
			CreatedAt:   line.CreatedAt,
			UpdatedAt:   line.UpdatedAt,
		}
	})

	return &RetailInvoiceModel{
		ID:           inv.ID,
		Code:         inv.Code,
		CustomerName: inv.CustomerName,
		SoldAt:       inv.SoldAt,
		Paid:         inv.Paid,
		Note:         inv.Note,
		Lines:        lines,
		CreatedAt:    inv.CreatedAt,
		UpdatedAt:    inv.UpdatedAt,
		Version:      inv.Version,
	}
}
