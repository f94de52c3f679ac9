package printing

import (
	"time"

	domain "github.com/gaolamthuy/backend/internal/domain/printing"
	"github.com/google/uuid"
)

// PrintRequest asks for one document to be printed
type PrintRequest struct {
	// TemplateType selects the template family
	TemplateType string `json:"template_type" binding:"required"`
	// DocumentID identifies the record to print. Ignored by types
	// that print the whole catalog (price table).
	DocumentID uuid.UUID `json:"document_id"`
	// TemplateID pins a specific template instead of the default
	TemplateID *uuid.UUID `json:"template_id"`
}

// PrintLineRequest asks for a single purchase-order line reprint
type PrintLineRequest struct {
	OrderID    uuid.UUID  `json:"order_id" binding:"required"`
	LineID     uuid.UUID  `json:"line_id" binding:"required"`
	TemplateID *uuid.UUID `json:"template_id"`
}

// PrintResult carries the produced PDF and the geometry it targeted
type PrintResult struct {
	PDF          []byte    `json:"-"`
	TemplateID   uuid.UUID `json:"template_id"`
	TemplateType string    `json:"template_type"`
	PageSize     string    `json:"page_size"`
	PageWidthMm  float64   `json:"page_width_mm"`
	PageHeightMm float64   `json:"page_height_mm"`
	PDFBytes     int       `json:"pdf_bytes"`
}

// PreviewRequest asks for the assembled document without printing
type PreviewRequest struct {
	TemplateType string     `json:"template_type" binding:"required"`
	DocumentID   uuid.UUID  `json:"document_id"`
	TemplateID   *uuid.UUID `json:"template_id"`
}

// PreviewResponse is the assembled document plus resolved geometry
type PreviewResponse struct {
	HTML         string  `json:"html"`
	TemplateID   string  `json:"template_id"`
	TemplateType string  `json:"template_type"`
	PageSize     string  `json:"page_size"`
	PageWidthMm  float64 `json:"page_width_mm"`
	PageHeightMm float64 `json:"page_height_mm"`
}

// TemplateResponse describes one print template for listings
type TemplateResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	TemplateType string    `json:"template_type"`
	DisplayName  string    `json:"display_name"`
	Content      string    `json:"content,omitempty"`
	PageSize     string    `json:"page_size"`
	PageWidthMm  *float64  `json:"page_width_mm,omitempty"`
	PageHeightMm *float64  `json:"page_height_mm,omitempty"`
	CustomCSS    string    `json:"custom_css,omitempty"`
	IsActive     bool      `json:"is_active"`
	IsDefault    bool      `json:"is_default"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PageSizeInfo describes one page preset for picker UIs
type PageSizeInfo struct {
	Code     string  `json:"code"`
	WidthMm  float64 `json:"width_mm"`
	HeightMm float64 `json:"height_mm"`
}

// TemplateTypeInfo describes one template type for picker UIs
type TemplateTypeInfo struct {
	Code        string `json:"code"`
	DisplayName string `json:"display_name"`
}

// toTemplateResponse maps a domain template to its DTO. Content is
// included only when withContent is set, keeping listings light.
func toTemplateResponse(tpl *domain.PrintTemplate, withContent bool) TemplateResponse {
	resp := TemplateResponse{
		ID:           tpl.ID.String(),
		Name:         tpl.Name,
		TemplateType: string(tpl.Type),
		DisplayName:  tpl.Type.DisplayName(),
		PageSize:     string(tpl.PageSize),
		PageWidthMm:  tpl.PageWidth,
		PageHeightMm: tpl.PageHeight,
		CustomCSS:    tpl.CustomCSS,
		IsActive:     tpl.IsActive,
		IsDefault:    tpl.IsDefault,
		CreatedAt:    tpl.CreatedAt,
		UpdatedAt:    tpl.UpdatedAt,
	}
	if withContent {
		resp.Content = tpl.Content
	}
	return resp
}
