package trade

import (
	"strings"
	"time"

	"github.com/gaolamthuy/backend/internal/domain/shared"
	"github.com/gaolamthuy/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RetailInvoiceLine is one sold item on a retail invoice
type RetailInvoiceLine struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   *uuid.UUID      `gorm:"type:uuid"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Unit        string          `gorm:"type:varchar(20);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,0);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,0);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (RetailInvoiceLine) TableName() string {
	return "retail_invoice_lines"
}

// NewRetailInvoiceLine creates a new invoice line
func NewRetailInvoiceLine(invoiceID uuid.UUID, productID *uuid.UUID, productName, unit string, quantity decimal.Decimal, unitPrice valueobject.Money) (*RetailInvoiceLine, error) {
	if strings.TrimSpace(productName) == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	now := time.Now()
	return &RetailInvoiceLine{
		ID:          uuid.New(),
		InvoiceID:   invoiceID,
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		Unit:        unit,
		UnitPrice:   unitPrice.Amount(),
		Amount:      quantity.Mul(unitPrice.Amount()).Round(0),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// RetailInvoice is the aggregate root for an over-the-counter sale.
// The receipt printer renders it on thermal paper.
type RetailInvoice struct {
	shared.BaseAggregateRoot
	Code         string              `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerName string              `gorm:"type:varchar(200)"` // empty for walk-in customers
	SoldAt       time.Time           `gorm:"not null"`
	Paid         decimal.Decimal     `gorm:"type:decimal(18,0);not null;default:0"`
	Note         string              `gorm:"type:varchar(500)"`
	Lines        []RetailInvoiceLine `gorm:"foreignKey:InvoiceID"`
}

// TableName returns the table name for GORM
func (RetailInvoice) TableName() string {
	return "retail_invoices"
}

// NewRetailInvoice creates a new retail invoice
func NewRetailInvoice(code, customerName string, soldAt time.Time) (*RetailInvoice, error) {
	if strings.TrimSpace(code) == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Invoice code cannot be empty")
	}
	if soldAt.IsZero() {
		soldAt = time.Now()
	}

	return &RetailInvoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		CustomerName:      customerName,
		SoldAt:            soldAt,
		Paid:              decimal.Zero,
		Lines:             []RetailInvoiceLine{},
	}, nil
}

// AddLine adds a sold item to the invoice
func (inv *RetailInvoice) AddLine(productID *uuid.UUID, productName, unit string, quantity decimal.Decimal, unitPrice valueobject.Money) error {
	line, err := NewRetailInvoiceLine(inv.ID, productID, productName, unit, quantity, unitPrice)
	if err != nil {
		return err
	}

	inv.Lines = append(inv.Lines, *line)
	inv.UpdatedAt = time.Now()
	inv.IncrementVersion()

	return nil
}

// Total returns the sum of all line amounts
func (inv *RetailInvoice) Total() valueobject.Money {
	total := decimal.Zero
	for _, line := range inv.Lines {
		total = total.Add(line.Amount)
	}
	return valueobject.NewMoney(total)
}

// RecordPayment records the amount the customer paid
func (inv *RetailInvoice) RecordPayment(paid valueobject.Money) error {
	if paid.IsNegative() {
		return shared.NewDomainError("INVALID_PAYMENT", "Paid amount cannot be negative")
	}

	inv.Paid = paid.Amount()
	inv.UpdatedAt = time.Now()
	inv.IncrementVersion()

	return nil
}

// Change returns the amount handed back to the customer
func (inv *RetailInvoice) Change() valueobject.Money {
	change := inv.Paid.Sub(inv.Total().Amount())
	if change.IsNegative() {
		return valueobject.Zero()
	}
	return valueobject.NewMoney(change)
}
