package persistence

import (
	"context"
	"errors"

	"github.com/gaolamthuy/backend/internal/domain/printing"
	"github.com/gaolamthuy/backend/internal/domain/shared"
	"github.com/gaolamthuy/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTemplateRepository implements printing.TemplateRepository using GORM
type GormTemplateRepository struct {
	db *gorm.DB
}

// NewGormTemplateRepository creates a new GormTemplateRepository
func NewGormTemplateRepository(db *gorm.DB) *GormTemplateRepository {
	return &GormTemplateRepository{db: db}
}

// FindByID finds a template by ID
func (r *GormTemplateRepository) FindByID(ctx context.Context, id uuid.UUID) (*printing.PrintTemplate, error) {
	var model models.PrintTemplateModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindActiveByType returns all active templates of a type, default-first.
// The ordering mirrors the selection rule so the first row is the one
// a lookup without an explicit id resolves to.
func (r *GormTemplateRepository) FindActiveByType(ctx context.Context, templateType printing.TemplateType) ([]printing.PrintTemplate, error) {
	var templateModels []models.PrintTemplateModel
	if err := r.db.WithContext(ctx).
		Where("template_type = ? AND is_active = ?", string(templateType), true).
		Order("is_default DESC, name ASC").
		Find(&templateModels).Error; err != nil {
		return nil, err
	}

	templates := make([]printing.PrintTemplate, len(templateModels))
	for i, model := range templateModels {
		templates[i] = *model.ToDomain()
	}
	return templates, nil
}

// FindAll finds all templates with optional filtering
func (r *GormTemplateRepository) FindAll(ctx context.Context, filter shared.Filter) ([]printing.PrintTemplate, error) {
	var templateModels []models.PrintTemplateModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.PrintTemplateModel{}), filter)

	if err := query.Find(&templateModels).Error; err != nil {
		return nil, err
	}

	templates := make([]printing.PrintTemplate, len(templateModels))
	for i, model := range templateModels {
		templates[i] = *model.ToDomain()
	}
	return templates, nil
}

// Save saves a template (insert or update)
func (r *GormTemplateRepository) Save(ctx context.Context, template *printing.PrintTemplate) error {
	model := models.PrintTemplateModelFromDomain(template)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a template by ID
func (r *GormTemplateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PrintTemplateModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count returns the total count of templates matching the filter
func (r *GormTemplateRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.PrintTemplateModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormTemplateRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	sortField := ValidateSortField(filter.OrderBy, PrintTemplateSortFields, "created_at")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	return query.Order(sortField + " " + sortOrder)
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormTemplateRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	for key, value := range filter.Filters {
		switch key {
		case "template_type":
			query = query.Where("template_type = ?", value)
		case "is_active":
			query = query.Where("is_active = ?", value)
		case "is_default":
			query = query.Where("is_default = ?", value)
		case "page_size":
			query = query.Where("page_size = ?", value)
		}
	}

	return query
}

// Ensure GormTemplateRepository implements TemplateRepository
var _ printing.TemplateRepository = (*GormTemplateRepository)(nil)
