package catalog

import (
	"strings"
	"time"

	"github.com/gaolamthuy/backend/internal/domain/shared"
	"github.com/gaolamthuy/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// ProductStatus represents the status of a product
type ProductStatus string

const (
	ProductStatusActive       ProductStatus = "active"
	ProductStatusInactive     ProductStatus = "inactive"
	ProductStatusDiscontinued ProductStatus = "discontinued"
)

// Product represents a rice variety (or related good) in the catalog.
// It is the aggregate root for product-related operations and carries
// the fields the label and price-board printers need.
type Product struct {
	shared.BaseAggregateRoot
	Code          string           `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name          string           `gorm:"type:varchar(200);not null"`
	Description   string           `gorm:"type:text"`
	Origin        string           `gorm:"type:varchar(100)"` // growing region, shown on labels
	Unit          string           `gorm:"type:varchar(20);not null"`
	SellingPrice  decimal.Decimal  `gorm:"type:decimal(18,0);not null;default:0"`
	PreviousPrice *decimal.Decimal `gorm:"type:decimal(18,0)"` // price before the last change, for label comparison
	Status        ProductStatus    `gorm:"type:varchar(20);not null;default:'active'"`
	SortOrder     int              `gorm:"not null;default:0"` // position on the printed price board
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(code, name, unit string) (*Product, error) {
	if err := validateProductCode(code); err != nil {
		return nil, err
	}
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if strings.TrimSpace(unit) == "" {
		return nil, shared.NewDomainError("INVALID_UNIT", "Unit cannot be empty")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		Name:              name,
		Unit:              unit,
		SellingPrice:      decimal.Zero,
		Status:            ProductStatusActive,
	}, nil
}

// Update updates the product's basic information
func (p *Product) Update(name, description, origin string) error {
	if err := validateProductName(name); err != nil {
		return err
	}

	p.Name = name
	p.Description = description
	p.Origin = origin
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetPrice updates the selling price, remembering the prior price so
// printed labels can show the change.
func (p *Product) SetPrice(price valueobject.Money) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Selling price cannot be negative")
	}

	if !p.SellingPrice.IsZero() && !p.SellingPrice.Equal(price.Amount()) {
		prev := p.SellingPrice
		p.PreviousPrice = &prev
	}
	p.SellingPrice = price.Amount()
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetSortOrder sets the position on the printed price board
func (p *Product) SetSortOrder(order int) {
	p.SortOrder = order
	p.UpdatedAt = time.Now()
}

// Activate makes the product visible
func (p *Product) Activate() {
	p.Status = ProductStatusActive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// Deactivate hides the product
func (p *Product) Deactivate() {
	p.Status = ProductStatusInactive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// Discontinue marks the product as no longer stocked
func (p *Product) Discontinue() {
	p.Status = ProductStatusDiscontinued
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// IsActive returns true if the product is active
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

func validateProductCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Product code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Product code cannot exceed 50 characters")
	}
	return nil
}

func validateProductName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
