package printing

import (
	"context"

	"github.com/gaolamthuy/backend/internal/domain/printing"
	"github.com/gaolamthuy/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TemplateStore resolves print templates. Stored templates come from
// the repository; types with no stored rows fall back to the builtin
// set so a fresh install prints out of the box. Selection itself is the
// pure domain rule, so this type only assembles candidate lists.
type TemplateStore struct {
	repo    printing.TemplateRepository
	builtin []printing.PrintTemplate
}

// NewTemplateStore creates a template store backed by the repository
// plus the builtin templates, optionally overridden from externalDir.
func NewTemplateStore(repo printing.TemplateRepository, externalDir string) (*TemplateStore, error) {
	builtin, err := LoadBuiltinTemplates(externalDir)
	if err != nil {
		return nil, err
	}
	return &TemplateStore{repo: repo, builtin: builtin}, nil
}

// GetTemplate returns the selected template's content only, for
// callers that do not care about geometry metadata.
func (s *TemplateStore) GetTemplate(ctx context.Context, templateType printing.TemplateType, id *uuid.UUID) (string, error) {
	tpl, err := s.GetTemplateWithMetadata(ctx, templateType, id)
	if err != nil {
		return "", err
	}
	return tpl.Content, nil
}

// GetTemplateWithMetadata resolves the template the print path uses:
// content plus page geometry and custom CSS.
func (s *TemplateStore) GetTemplateWithMetadata(ctx context.Context, templateType printing.TemplateType, id *uuid.UUID) (*printing.PrintTemplate, error) {
	candidates, err := s.candidates(ctx, templateType)
	if err != nil {
		return nil, err
	}
	return printing.SelectTemplate(candidates, id)
}

// GetAllTemplates returns all active templates of a type, default
// first, for template-picker listings.
func (s *TemplateStore) GetAllTemplates(ctx context.Context, templateType printing.TemplateType) ([]printing.PrintTemplate, error) {
	return s.candidates(ctx, templateType)
}

// candidates returns the active templates of a type in default-first
// order, falling back to builtins when the type has no stored rows.
func (s *TemplateStore) candidates(ctx context.Context, templateType printing.TemplateType) ([]printing.PrintTemplate, error) {
	stored, err := s.repo.FindActiveByType(ctx, templateType)
	if err != nil {
		return nil, err
	}
	if len(stored) > 0 {
		return stored, nil
	}

	// Builtins cover types nobody has configured yet. A type whose
	// stored templates were all deactivated is configured off, not
	// missing, so lookup must fail rather than print the builtin.
	total, err := s.repo.Count(ctx, shared.Filter{
		Filters: map[string]interface{}{"template_type": string(templateType)},
	})
	if err != nil {
		return nil, err
	}
	if total > 0 {
		return nil, nil
	}

	var fallback []printing.PrintTemplate
	for _, tpl := range s.builtin {
		if tpl.Type == templateType {
			fallback = append(fallback, tpl)
		}
	}
	return fallback, nil
}
