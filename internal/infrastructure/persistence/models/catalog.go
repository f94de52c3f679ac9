package models

import (
	"time"

	"github.com/gaolamthuy/backend/internal/domain/catalog"
	"github.com/gaolamthuy/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel is the GORM model for the products table
type ProductModel struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key"`
	Code          string           `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name          string           `gorm:"type:varchar(200);not null"`
	Description   string           `gorm:"type:text"`
	Origin        string           `gorm:"type:varchar(100)"`
	Unit          string           `gorm:"type:varchar(20);not null"`
	SellingPrice  decimal.Decimal  `gorm:"column:selling_price;type:decimal(18,0);not null;default:0"`
	PreviousPrice *decimal.Decimal `gorm:"column:previous_price;type:decimal(18,0)"`
	Status        string           `gorm:"type:varchar(20);not null;default:'active'"`
	SortOrder     int              `gorm:"column:sort_order;not null;default:0"`
	CreatedAt     time.Time        `gorm:"not null"`
	UpdatedAt     time.Time        `gorm:"not null"`
	Version       int              `gorm:"not null;default:1"`
}

// TableName returns the table name for ProductModel
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts ProductModel to domain Product
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		Code:          m.Code,
		Name:          m.Name,
		Description:   m.Description,
		Origin:        m.Origin,
		Unit:          m.Unit,
		SellingPrice:  m.SellingPrice,
		PreviousPrice: m.PreviousPrice,
		Status:        catalog.ProductStatus(m.Status),
		SortOrder:     m.SortOrder,
	}
}

// ProductModelFromDomain creates a ProductModel from the domain aggregate
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	return &ProductModel{
		ID:            p.ID,
		Code:          p.Code,
		Name:          p.Name,
		Description:   p.Description,
		Origin:        p.Origin,
		Unit:          p.Unit,
		SellingPrice:  p.SellingPrice,
		PreviousPrice: p.PreviousPrice,
		Status:        string(p.Status),
		SortOrder:     p.SortOrder,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Version:       p.Version,
	}
}
