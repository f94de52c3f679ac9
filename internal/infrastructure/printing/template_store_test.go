package printing

import (
	"context"
	"testing"

	"github.com/gaolamthuy/backend/internal/domain/printing"
	"github.com/gaolamthuy/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTemplateRepo serves canned candidate lists in repository order
type fakeTemplateRepo struct {
	byType map[printing.TemplateType][]printing.PrintTemplate
}

func (r *fakeTemplateRepo) FindByID(ctx context.Context, id uuid.UUID) (*printing.PrintTemplate, error) {
	for _, templates := range r.byType {
		for i := range templates {
			if templates[i].ID == id {
				return &templates[i], nil
			}
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeTemplateRepo) FindActiveByType(ctx context.Context, templateType printing.TemplateType) ([]printing.PrintTemplate, error) {
	var active []printing.PrintTemplate
	for _, tpl := range r.byType[templateType] {
		if tpl.IsActive {
			active = append(active, tpl)
		}
	}
	return active, nil
}

func (r *fakeTemplateRepo) FindAll(ctx context.Context, filter shared.Filter) ([]printing.PrintTemplate, error) {
	var all []printing.PrintTemplate
	for _, templates := range r.byType {
		all = append(all, templates...)
	}
	return all, nil
}

func (r *fakeTemplateRepo) Save(ctx context.Context, template *printing.PrintTemplate) error {
	return nil
}

func (r *fakeTemplateRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fakeTemplateRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	if typ, ok := filter.Filters["template_type"]; ok {
		return int64(len(r.byType[printing.TemplateType(typ.(string))])), nil
	}
	var total int64
	for _, templates := range r.byType {
		total += int64(len(templates))
	}
	return total, nil
}

var _ printing.TemplateRepository = (*fakeTemplateRepo)(nil)

func storeWithTemplates(t *testing.T, templates ...printing.PrintTemplate) *TemplateStore {
	t.Helper()
	byType := make(map[printing.TemplateType][]printing.PrintTemplate)
	for _, tpl := range templates {
		byType[tpl.Type] = append(byType[tpl.Type], tpl)
	}
	store, err := NewTemplateStore(&fakeTemplateRepo{byType: byType}, "")
	require.NoError(t, err)
	return store
}

func storedTemplate(t *testing.T, name string, templateType printing.TemplateType, isDefault bool) printing.PrintTemplate {
	t.Helper()
	tpl, err := printing.NewPrintTemplate(name, templateType, "<div>{{.Code}}</div>")
	require.NoError(t, err)
	if isDefault {
		tpl.SetAsDefault()
	}
	return *tpl
}

func TestTemplateStore_SelectsDefaultFirst(t *testing.T) {
	plain := storedTemplate(t, "Tem thường", printing.TemplateTypeProductLabel, false)
	def := storedTemplate(t, "Tem mặc định", printing.TemplateTypeProductLabel, true)
	store := storeWithTemplates(t, plain, def)

	found, err := store.GetTemplateWithMetadata(context.Background(), printing.TemplateTypeProductLabel, nil)
	require.NoError(t, err)
	assert.Equal(t, def.ID, found.ID)
}

func TestTemplateStore_SelectsByID(t *testing.T) {
	plain := storedTemplate(t, "Tem thường", printing.TemplateTypeProductLabel, false)
	def := storedTemplate(t, "Tem mặc định", printing.TemplateTypeProductLabel, true)
	store := storeWithTemplates(t, plain, def)

	found, err := store.GetTemplateWithMetadata(context.Background(), printing.TemplateTypeProductLabel, &plain.ID)
	require.NoError(t, err)
	assert.Equal(t, plain.ID, found.ID)
}

func TestTemplateStore_FallsBackToBuiltin(t *testing.T) {
	store := storeWithTemplates(t)

	found, err := store.GetTemplateWithMetadata(context.Background(), printing.TemplateTypeRetailInvoice, nil)
	require.NoError(t, err)
	assert.Equal(t, printing.TemplateTypeRetailInvoice, found.Type)
	assert.Equal(t, printing.PageSizeA6, found.PageSize)
	assert.True(t, found.IsDefault)
	assert.NotEmpty(t, found.Content)
}

func TestTemplateStore_BuiltinNotUsedWhenStoredExists(t *testing.T) {
	stored := storedTemplate(t, "Hóa đơn tùy chỉnh", printing.TemplateTypeRetailInvoice, false)
	store := storeWithTemplates(t, stored)

	found, err := store.GetTemplateWithMetadata(context.Background(), printing.TemplateTypeRetailInvoice, nil)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, found.ID)
}

func TestTemplateStore_DeactivatedSetDoesNotFallBack(t *testing.T) {
	stored := storedTemplate(t, "Hóa đơn cũ", printing.TemplateTypeRetailInvoice, true)
	stored.Deactivate()
	store := storeWithTemplates(t, stored)

	// Every stored invoice template is switched off, so lookup fails
	// instead of printing the builtin.
	_, err := store.GetTemplateWithMetadata(context.Background(), printing.TemplateTypeRetailInvoice, nil)
	assert.ErrorIs(t, err, printing.ErrTemplateNotFound)

	all, err := store.GetAllTemplates(context.Background(), printing.TemplateTypeRetailInvoice)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestTemplateStore_UnknownIDFails(t *testing.T) {
	stored := storedTemplate(t, "Tem", printing.TemplateTypeProductLabel, false)
	store := storeWithTemplates(t, stored)

	missing := uuid.New()
	_, err := store.GetTemplateWithMetadata(context.Background(), printing.TemplateTypeProductLabel, &missing)
	assert.ErrorIs(t, err, printing.ErrTemplateNotFound)
}

func TestTemplateStore_GetTemplateReturnsContentOnly(t *testing.T) {
	stored := storedTemplate(t, "Tem", printing.TemplateTypeProductLabel, false)
	store := storeWithTemplates(t, stored)

	content, err := store.GetTemplate(context.Background(), printing.TemplateTypeProductLabel, nil)
	require.NoError(t, err)
	assert.Equal(t, "<div>{{.Code}}</div>", content)
}

func TestTemplateStore_GetAllTemplates(t *testing.T) {
	plain := storedTemplate(t, "Tem thường", printing.TemplateTypeProductLabel, false)
	def := storedTemplate(t, "Tem mặc định", printing.TemplateTypeProductLabel, true)
	store := storeWithTemplates(t, plain, def)

	all, err := store.GetAllTemplates(context.Background(), printing.TemplateTypeProductLabel)
	require.NoError(t, err)
	require.Len(t, all, 2)
}
