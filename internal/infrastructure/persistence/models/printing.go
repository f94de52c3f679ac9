package models

import (
	"time"

	"github.com/gaolamthuy/backend/internal/domain/printing"
	"github.com/gaolamthuy/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PrintTemplateModel is the GORM model for the print_templates table
type PrintTemplateModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Name         string    `gorm:"type:varchar(100);not null"`
	TemplateType string    `gorm:"column:template_type;type:varchar(50);not null;index"`
	Content      string    `gorm:"type:text;not null"`
	PageSize     string    `gorm:"column:page_size;type:varchar(10);not null;default:'A4'"`
	PageWidth    *float64  `gorm:"column:page_width;type:decimal(8,2)"`
	PageHeight   *float64  `gorm:"column:page_height;type:decimal(8,2)"`
	CustomCSS    string    `gorm:"column:custom_css;type:text"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true"`
	IsDefault    bool      `gorm:"column:is_default;not null;default:false"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
	Version      int       `gorm:"not null;default:1"`
}

// TableName returns the table name for PrintTemplateModel
func (PrintTemplateModel) TableName() string {
	return "print_templates"
}

// ToDomain converts PrintTemplateModel to domain PrintTemplate
func (m *PrintTemplateModel) ToDomain() *printing.PrintTemplate {
	return &printing.PrintTemplate{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		Name:       m.Name,
		Type:       printing.TemplateType(m.TemplateType),
		Content:    m.Content,
		PageSize:   printing.PageSize(m.PageSize),
		PageWidth:  m.PageWidth,
		PageHeight: m.PageHeight,
		CustomCSS:  m.CustomCSS,
		IsActive:   m.IsActive,
		IsDefault:  m.IsDefault,
	}
}

// PrintTemplateModelFromDomain creates a PrintTemplateModel from the domain aggregate
func PrintTemplateModelFromDomain(t *printing.PrintTemplate) *PrintTemplateModel {
	return &PrintTemplateModel{
		ID:           t.ID,
		Name:         t.Name,
		TemplateType: string(t.Type),
		Content:      t.Content,
		PageSize:     string(t.PageSize),
		PageWidth:    t.PageWidth,
		PageHeight:   t.PageHeight,
		CustomCSS:    t.CustomCSS,
		IsActive:     t.IsActive,
		IsDefault:    t.IsDefault,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
		Version:      t.Version,
	}
}
