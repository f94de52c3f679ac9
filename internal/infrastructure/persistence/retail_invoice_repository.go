package persistence

import (
	"context"
	"errors"

	"github.com/gaolamthuy/backend/internal/domain/shared"
	"github.com/gaolamthuy/backend/internal/domain/trade"
	"github.com/gaolamthuy/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRetailInvoiceRepository implements trade.RetailInvoiceRepository using GORM
type GormRetailInvoiceRepository struct {
	db *gorm.DB
}

// NewGormRetailInvoiceRepository creates a new GormRetailInvoiceRepository
func NewGormRetailInvoiceRepository(db *gorm.DB) *GormRetailInvoiceRepository {
	return &GormRetailInvoiceRepository{db: db}
}

// FindByID loads an invoice with its lines
func (r *GormRetailInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.RetailInvoice, error) {
	var model models.RetailInvoiceModel
	if err := r.db.WithContext(ctx).Preload("Lines").First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCode loads an invoice by its code with its lines
func (r *GormRetailInvoiceRepository) FindByCode(ctx context.Context, code string) (*trade.RetailInvoice, error) {
	var model models.RetailInvoiceModel
	if err := r.db.WithContext(ctx).Preload("Lines").First(&model, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all invoices with optional filtering
func (r *GormRetailInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.RetailInvoice, error) {
	var invoiceModels []models.RetailInvoiceModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.RetailInvoiceModel{}), filter)

	if err := query.Preload("Lines").Find(&invoiceModels).Error; err != nil {
		return nil, err
	}

	invoices := make([]trade.RetailInvoice, len(invoiceModels))
	for i, model := range invoiceModels {
		invoices[i] = *model.ToDomain()
	}
	return invoices, nil
}

// Save saves an invoice and its lines in a transaction.
// Lines removed from the aggregate are deleted from the table.
func (r *GormRetailInvoiceRepository) Save(ctx context.Context, invoice *trade.RetailInvoice) error {
	model := models.RetailInvoiceModelFromDomain(invoice)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		keep := make([]uuid.UUID, len(model.Lines))
		for i, line := range model.Lines {
			keep[i] = line.ID
		}
		cleanup := tx.Where("invoice_id = ?", model.ID)
		if len(keep) > 0 {
			cleanup = cleanup.Where("id NOT IN ?", keep)
		}
		if err := cleanup.Delete(&models.RetailInvoiceLineModel{}).Error; err != nil {
			return err
		}
		return tx.Save(model).Error
	})
}

// Delete deletes an invoice by ID
func (r *GormRetailInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.RetailInvoiceModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count returns the total count of invoices matching the filter
func (r *GormRetailInvoiceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.RetailInvoiceModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormRetailInvoiceRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	sortField := ValidateSortField(filter.OrderBy, RetailInvoiceSortFields, "sold_at")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	return query.Order(sortField + " " + sortOrder)
}

func (r *GormRetailInvoiceRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("code LIKE ? OR customer_name LIKE ?", pattern, pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "customer_name":
			query = query.Where("customer_name = ?", value)
		}
	}

	return query
}

// Ensure GormRetailInvoiceRepository implements RetailInvoiceRepository
var _ trade.RetailInvoiceRepository = (*GormRetailInvoiceRepository)(nil)
