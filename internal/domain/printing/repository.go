package printing

import (
	"context"

	"github.com/gaolamthuy/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TemplateRepository defines persistence operations for print templates
type TemplateRepository interface {
	// FindByID finds a template by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*PrintTemplate, error)

	// FindActiveByType returns all active templates of a type,
	// default-first, so callers see the selected template first.
	FindActiveByType(ctx context.Context, templateType TemplateType) ([]PrintTemplate, error)

	// FindAll returns templates matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]PrintTemplate, error)

	// Save creates or updates a template
	Save(ctx context.Context, template *PrintTemplate) error

	// Delete removes a template
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of templates matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
