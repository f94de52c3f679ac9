package trade

import (
	"strings"
	"time"

	"github.com/gaolamthuy/backend/internal/domain/shared"
	"github.com/gaolamthuy/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus represents the status of a purchase order
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusDraft     PurchaseOrderStatus = "DRAFT"
	PurchaseOrderStatusConfirmed PurchaseOrderStatus = "CONFIRMED"
	PurchaseOrderStatusCompleted PurchaseOrderStatus = "COMPLETED"
	PurchaseOrderStatusCancelled PurchaseOrderStatus = "CANCELLED"
)

// IsValid checks if the status is a valid PurchaseOrderStatus
func (s PurchaseOrderStatus) IsValid() bool {
	switch s {
	case PurchaseOrderStatusDraft, PurchaseOrderStatusConfirmed,
		PurchaseOrderStatusCompleted, PurchaseOrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of PurchaseOrderStatus
func (s PurchaseOrderStatus) String() string {
	return string(s)
}

// PurchaseOrderItem represents a line item in a purchase order
type PurchaseOrderItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   *uuid.UUID      `gorm:"type:uuid"` // nil for off-catalog goods
	ProductName string          `gorm:"type:varchar(200);not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Unit        string          `gorm:"type:varchar(20);not null"`
	UnitCost    decimal.Decimal `gorm:"type:decimal(18,0);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,0);not null"` // Quantity * UnitCost, rounded to whole đồng
	Remark      string          `gorm:"type:varchar(500)"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}

// NewPurchaseOrderItem creates a new purchase order line
func NewPurchaseOrderItem(orderID uuid.UUID, productID *uuid.UUID, productName, unit string, quantity decimal.Decimal, unitCost valueobject.Money) (*PurchaseOrderItem, error) {
	if strings.TrimSpace(productName) == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_COST", "Unit cost cannot be negative")
	}
	if strings.TrimSpace(unit) == "" {
		return nil, shared.NewDomainError("INVALID_UNIT", "Unit cannot be empty")
	}

	now := time.Now()
	return &PurchaseOrderItem{
		ID:          uuid.New(),
		OrderID:     orderID,
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		Unit:        unit,
		UnitCost:    unitCost.Amount(),
		Amount:      quantity.Mul(unitCost.Amount()).Round(0),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// UpdateQuantity updates the quantity and recalculates the amount
func (i *PurchaseOrderItem) UpdateQuantity(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	i.Quantity = quantity
	i.Amount = quantity.Mul(i.UnitCost).Round(0)
	i.UpdatedAt = time.Now()

	return nil
}

// PurchaseOrder is the aggregate root for goods bought from suppliers.
// Each order is printable as a whole or one line at a time.
type PurchaseOrder struct {
	shared.BaseAggregateRoot
	Code         string              `gorm:"type:varchar(50);not null;uniqueIndex"`
	SupplierName string              `gorm:"type:varchar(200);not null"`
	OrderDate    time.Time           `gorm:"not null"`
	Status       PurchaseOrderStatus `gorm:"type:varchar(20);not null;default:'DRAFT'"`
	Note         string              `gorm:"type:varchar(500)"`
	Items        []PurchaseOrderItem `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// NewPurchaseOrder creates a new purchase order in draft status
func NewPurchaseOrder(code, supplierName string, orderDate time.Time) (*PurchaseOrder, error) {
	if strings.TrimSpace(code) == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Order code cannot be empty")
	}
	if strings.TrimSpace(supplierName) == "" {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier name cannot be empty")
	}
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	return &PurchaseOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		SupplierName:      supplierName,
		OrderDate:         orderDate,
		Status:            PurchaseOrderStatusDraft,
		Items:             []PurchaseOrderItem{},
	}, nil
}

// AddItem adds a line to the order
func (o *PurchaseOrder) AddItem(productID *uuid.UUID, productName, unit string, quantity decimal.Decimal, unitCost valueobject.Money) error {
	if o.Status == PurchaseOrderStatusCompleted || o.Status == PurchaseOrderStatusCancelled {
		return shared.ErrInvalidState
	}

	item, err := NewPurchaseOrderItem(o.ID, productID, productName, unit, quantity, unitCost)
	if err != nil {
		return err
	}

	o.Items = append(o.Items, *item)
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// RemoveItem removes a line from the order
func (o *PurchaseOrder) RemoveItem(itemID uuid.UUID) error {
	if o.Status == PurchaseOrderStatusCompleted || o.Status == PurchaseOrderStatusCancelled {
		return shared.ErrInvalidState
	}

	for idx, item := range o.Items {
		if item.ID == itemID {
			o.Items = append(o.Items[:idx], o.Items[idx+1:]...)
			o.UpdatedAt = time.Now()
			o.IncrementVersion()
			return nil
		}
	}
	return shared.ErrNotFound
}

// Total returns the sum of all line amounts
func (o *PurchaseOrder) Total() valueobject.Money {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Amount)
	}
	return valueobject.NewMoney(total)
}

// Confirm moves the order out of draft
func (o *PurchaseOrder) Confirm() error {
	if o.Status != PurchaseOrderStatusDraft {
		return shared.ErrInvalidState
	}
	if len(o.Items) == 0 {
		return shared.NewDomainError("EMPTY_ORDER", "Cannot confirm an order without items")
	}

	o.Status = PurchaseOrderStatusConfirmed
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// Complete marks the order as fully received
func (o *PurchaseOrder) Complete() error {
	if o.Status != PurchaseOrderStatusConfirmed {
		return shared.ErrInvalidState
	}

	o.Status = PurchaseOrderStatusCompleted
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// Cancel cancels the order
func (o *PurchaseOrder) Cancel() error {
	if o.Status == PurchaseOrderStatusCompleted || o.Status == PurchaseOrderStatusCancelled {
		return shared.ErrInvalidState
	}

	o.Status = PurchaseOrderStatusCancelled
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// FindItem returns the line with the given ID
func (o *PurchaseOrder) FindItem(itemID uuid.UUID) (*PurchaseOrderItem, error) {
	for idx := range o.Items {
		if o.Items[idx].ID == itemID {
			return &o.Items[idx], nil
		}
	}
	return nil, shared.ErrNotFound
}
