// Package providers wires print-context builders to repositories. Each
// provider loads the record for one template type and hands it to the
// matching pure context builder.
package providers

import (
	"context"
	"fmt"
	"sync"

	"github.com/gaolamthuy/backend/internal/domain/printing"
	infra "github.com/gaolamthuy/backend/internal/infrastructure/printing"
	"github.com/google/uuid"
)

// DataProvider loads and shapes the data one template type renders
type DataProvider interface {
	// TemplateType returns the template type this provider feeds
	TemplateType() printing.TemplateType
	// BuildContext loads the document and shapes its print context
	BuildContext(ctx context.Context, documentID uuid.UUID) (infra.PrintContext, error)
}

// Registry maps template types to their data providers
type Registry struct {
	mu        sync.RWMutex
	providers map[printing.TemplateType]DataProvider
}

// NewRegistry creates an empty provider registry
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[printing.TemplateType]DataProvider),
	}
}

// Register adds a provider, replacing any existing one for its type
func (r *Registry) Register(provider DataProvider) {
	if provider == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[provider.TemplateType()] = provider
}

// Provider returns the provider for a template type
func (r *Registry) Provider(templateType printing.TemplateType) (DataProvider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	provider, ok := r.providers[templateType]
	return provider, ok
}

// BuildContext builds the print context for a template type using its
// registered provider.
func (r *Registry) BuildContext(ctx context.Context, templateType printing.TemplateType, documentID uuid.UUID) (infra.PrintContext, error) {
	provider, ok := r.Provider(templateType)
	if !ok {
		return nil, fmt.Errorf("no data provider registered for template type: %s", templateType)
	}
	return provider.BuildContext(ctx, documentID)
}

// RegisteredTypes returns the template types with a registered provider
func (r *Registry) RegisteredTypes() []printing.TemplateType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]printing.TemplateType, 0, len(r.providers))
	for templateType := range r.providers {
		types = append(types, templateType)
	}
	return types
}
