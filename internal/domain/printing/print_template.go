package printing

import (
	"strings"

	"github.com/gaolamthuy/backend/internal/domain/shared"
)

// Template-specific domain errors
var (
	ErrTemplateNotFound = shared.NewDomainError("NOT_FOUND", "No active print template matched the requested type")
	ErrTemplateInactive = shared.NewDomainError("INVALID_STATE", "Print template is not active")
)

const (
	maxTemplateNameLength = 100
	maxContentLength      = 1024 * 1024 // 1MB
	maxCustomCSSLength    = 256 * 1024  // 256KB
)

// PrintTemplate is the aggregate root for a stored print template:
// an HTML fragment with placeholder syntax plus the page geometry
// metadata the print pipeline needs to lay it out on physical media.
type PrintTemplate struct {
	shared.BaseAggregateRoot
	Name       string
	Type       TemplateType
	Content    string
	PageSize   PageSize
	PageWidth  *float64
	PageHeight *float64
	CustomCSS  string
	IsActive   bool
	IsDefault  bool
}

// NewPrintTemplate creates a new print template aggregate
func NewPrintTemplate(name string, templateType TemplateType, content string) (*PrintTemplate, error) {
	if err := validateTemplateName(name); err != nil {
		return nil, err
	}
	if !templateType.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid template type: "+string(templateType))
	}
	if err := validateTemplateContent(content); err != nil {
		return nil, err
	}

	return &PrintTemplate{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Type:              templateType,
		Content:           content,
		PageSize:          PageSizeA4,
		IsActive:          true,
		IsDefault:         false,
	}, nil
}

// UpdateContent replaces the template body
func (t *PrintTemplate) UpdateContent(content string) error {
	if err := validateTemplateContent(content); err != nil {
		return err
	}
	t.Content = content
	return nil
}

// SetPageSize assigns a named page preset and clears any explicit
// millimeter overrides so the preset takes full effect.
func (t *PrintTemplate) SetPageSize(size PageSize) error {
	if !size.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "Invalid page size: "+string(size))
	}
	t.PageSize = size
	t.PageWidth = nil
	t.PageHeight = nil
	return nil
}

// SetExplicitDimensions pins explicit millimeter dimensions. Either
// value may be zero to keep the preset's dimension for that axis.
func (t *PrintTemplate) SetExplicitDimensions(widthMm, heightMm float64) error {
	if widthMm < 0 || heightMm < 0 {
		return shared.NewDomainError("INVALID_INPUT", "Page dimensions must be positive")
	}
	if widthMm > 0 {
		t.PageWidth = &widthMm
	} else {
		t.PageWidth = nil
	}
	if heightMm > 0 {
		t.PageHeight = &heightMm
	} else {
		t.PageHeight = nil
	}
	return nil
}

// SetCustomCSS replaces the appended stylesheet text
func (t *PrintTemplate) SetCustomCSS(css string) error {
	if len(css) > maxCustomCSSLength {
		return shared.NewDomainError("INVALID_INPUT", "Custom CSS exceeds maximum length")
	}
	t.CustomCSS = css
	return nil
}

// SetAsDefault marks this template as the default for its type
func (t *PrintTemplate) SetAsDefault() {
	t.IsDefault = true
}

// UnsetDefault removes the default flag
func (t *PrintTemplate) UnsetDefault() {
	t.IsDefault = false
}

// Activate makes the template visible to lookup
func (t *PrintTemplate) Activate() {
	t.IsActive = true
}

// Deactivate hides the template from lookup without deleting it
func (t *PrintTemplate) Deactivate() {
	t.IsActive = false
}

// CanBeUsed reports whether the template may be rendered
func (t *PrintTemplate) CanBeUsed() bool {
	return t.IsActive && t.Content != ""
}

// Geometry resolves the template's page geometry, applying explicit
// dimension overrides on top of the preset.
func (t *PrintTemplate) Geometry() PageGeometry {
	return ResolveGeometry(t.PageSize, t.PageWidth, t.PageHeight)
}

func validateTemplateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Template name is required")
	}
	if len(name) > maxTemplateNameLength {
		return shared.NewDomainError("INVALID_INPUT", "Template name exceeds maximum length")
	}
	return nil
}

func validateTemplateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Template content is required")
	}
	if len(content) > maxContentLength {
		return shared.NewDomainError("INVALID_INPUT", "Template content exceeds maximum length")
	}
	return nil
}
