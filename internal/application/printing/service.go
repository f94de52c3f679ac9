// Package printing orchestrates the print pipeline: resolve template,
// build context, compile, then drive the print surface.
package printing

import (
	"context"

	domain "github.com/gaolamthuy/backend/internal/domain/printing"
	infra "github.com/gaolamthuy/backend/internal/infrastructure/printing"
	"github.com/gaolamthuy/backend/internal/infrastructure/printing/providers"
	"github.com/gaolamthuy/backend/internal/infrastructure/webhook"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PrintService drives the print pipeline end to end. Every stage must
// succeed before the next one runs: a surface is never opened, and
// nothing is written to it, unless the document already compiled.
type PrintService struct {
	store      *infra.TemplateStore
	engine     *infra.TemplateEngine
	docBuilder *infra.DocumentBuilder
	surface    infra.PrintSurface
	registry   *providers.Registry
	orders     *providers.PurchaseOrderProvider
	notifier   webhook.Notifier
	logger     *zap.Logger
}

// NewPrintService creates a new PrintService
func NewPrintService(
	store *infra.TemplateStore,
	engine *infra.TemplateEngine,
	docBuilder *infra.DocumentBuilder,
	surface infra.PrintSurface,
	registry *providers.Registry,
	orders *providers.PurchaseOrderProvider,
	notifier webhook.Notifier,
	logger *zap.Logger,
) *PrintService {
	if notifier == nil {
		notifier = webhook.NopNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PrintService{
		store:      store,
		engine:     engine,
		docBuilder: docBuilder,
		surface:    surface,
		registry:   registry,
		orders:     orders,
		notifier:   notifier,
		logger:     logger,
	}
}

// PrintDocument renders one document of the requested type and prints
// it through the surface, returning the produced PDF.
func (s *PrintService) PrintDocument(ctx context.Context, req PrintRequest) (*PrintResult, error) {
	templateType := domain.TemplateType(req.TemplateType)
	if !templateType.IsValid() {
		return nil, infra.NewRenderError(infra.ErrCodeInvalidInput,
			"unknown template type: "+req.TemplateType, nil)
	}

	data, err := s.registry.BuildContext(ctx, templateType, req.DocumentID)
	if err != nil {
		return nil, err
	}

	return s.printWithData(ctx, templateType, req.TemplateID, req.DocumentID, data)
}

// PrintPurchaseOrderLine reprints a single line of a purchase order,
// keeping the parent order's header fields on the document.
func (s *PrintService) PrintPurchaseOrderLine(ctx context.Context, req PrintLineRequest) (*PrintResult, error) {
	data, err := s.orders.BuildLineContext(ctx, req.OrderID, req.LineID)
	if err != nil {
		return nil, err
	}

	return s.printWithData(ctx, domain.TemplateTypePurchaseOrder, req.TemplateID, req.OrderID, data)
}

// PreviewDocument assembles the complete printable document without
// touching the print surface, for on-screen preview.
func (s *PrintService) PreviewDocument(ctx context.Context, req PreviewRequest) (*PreviewResponse, error) {
	templateType := domain.TemplateType(req.TemplateType)
	if !templateType.IsValid() {
		return nil, infra.NewRenderError(infra.ErrCodeInvalidInput,
			"unknown template type: "+req.TemplateType, nil)
	}

	data, err := s.registry.BuildContext(ctx, templateType, req.DocumentID)
	if err != nil {
		return nil, err
	}

	tpl, doc, geometry, err := s.compileDocument(ctx, templateType, req.TemplateID, data)
	if err != nil {
		return nil, err
	}

	return &PreviewResponse{
		HTML:         doc,
		TemplateID:   tpl.ID.String(),
		TemplateType: string(tpl.Type),
		PageSize:     string(geometry.Preset),
		PageWidthMm:  geometry.WidthMm,
		PageHeightMm: geometry.HeightMm,
	}, nil
}

// printWithData compiles the document, then opens the surface, writes
// the document, and fires the print. Compile failures happen before
// any surface exists, so a failed print never leaves a blank page.
func (s *PrintService) printWithData(
	ctx context.Context,
	templateType domain.TemplateType,
	templateID *uuid.UUID,
	documentID uuid.UUID,
	data infra.PrintContext,
) (*PrintResult, error) {
	tpl, doc, geometry, err := s.compileDocument(ctx, templateType, templateID, data)
	if err != nil {
		return nil, err
	}

	handle, err := s.surface.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	if err := handle.WriteDocument(ctx, doc); err != nil {
		return nil, err
	}

	pdf, err := handle.TriggerPrint(ctx, geometry)
	if err != nil {
		return nil, err
	}

	s.logger.Info("print job completed",
		zap.String("template_type", string(templateType)),
		zap.String("template_id", tpl.ID.String()),
		zap.Float64("page_width_mm", geometry.WidthMm),
		zap.Float64("page_height_mm", geometry.HeightMm),
		zap.Int("pdf_bytes", len(pdf)))

	s.notifier.NotifyPrintCompleted(ctx, webhook.NewPrintJobEvent(tpl, geometry, documentID, len(pdf)))

	return &PrintResult{
		PDF:          pdf,
		TemplateID:   tpl.ID,
		TemplateType: string(tpl.Type),
		PageSize:     string(geometry.Preset),
		PageWidthMm:  geometry.WidthMm,
		PageHeightMm: geometry.HeightMm,
		PDFBytes:     len(pdf),
	}, nil
}

// compileDocument resolves the template, renders the body, and wraps
// it into a complete standalone HTML document with page CSS.
func (s *PrintService) compileDocument(
	ctx context.Context,
	templateType domain.TemplateType,
	templateID *uuid.UUID,
	data infra.PrintContext,
) (*domain.PrintTemplate, string, domain.PageGeometry, error) {
	tpl, err := s.store.GetTemplateWithMetadata(ctx, templateType, templateID)
	if err != nil {
		return nil, "", domain.PageGeometry{}, err
	}

	body, err := s.engine.Render(tpl, data)
	if err != nil {
		return nil, "", domain.PageGeometry{}, err
	}

	geometry := tpl.Geometry()
	css := infra.GeneratePageCSS(geometry)
	doc := s.docBuilder.Build(tpl.Type, css, tpl.CustomCSS, body)
	return tpl, doc, geometry, nil
}

// ListTemplates returns the active templates of a type, default first
func (s *PrintService) ListTemplates(ctx context.Context, templateType string) ([]TemplateResponse, error) {
	parsed := domain.TemplateType(templateType)
	if !parsed.IsValid() {
		return nil, infra.NewRenderError(infra.ErrCodeInvalidInput,
			"unknown template type: "+templateType, nil)
	}

	templates, err := s.store.GetAllTemplates(ctx, parsed)
	if err != nil {
		return nil, err
	}

	responses := make([]TemplateResponse, 0, len(templates))
	for i := range templates {
		responses = append(responses, toTemplateResponse(&templates[i], false))
	}
	return responses, nil
}

// GetTemplate returns one resolved template including its content
func (s *PrintService) GetTemplate(ctx context.Context, templateType string, id *uuid.UUID) (*TemplateResponse, error) {
	parsed := domain.TemplateType(templateType)
	if !parsed.IsValid() {
		return nil, infra.NewRenderError(infra.ErrCodeInvalidInput,
			"unknown template type: "+templateType, nil)
	}

	tpl, err := s.store.GetTemplateWithMetadata(ctx, parsed, id)
	if err != nil {
		return nil, err
	}
	resp := toTemplateResponse(tpl, true)
	return &resp, nil
}

// PageSizes returns the supported page presets with their dimensions
func (s *PrintService) PageSizes() []PageSizeInfo {
	sizes := domain.AllPageSizes()
	infos := make([]PageSizeInfo, 0, len(sizes))
	for _, size := range sizes {
		w, h := size.Dimensions()
		infos = append(infos, PageSizeInfo{Code: string(size), WidthMm: w, HeightMm: h})
	}
	return infos
}

// TemplateTypes returns the supported template types
func (s *PrintService) TemplateTypes() []TemplateTypeInfo {
	types := domain.AllTemplateTypes()
	infos := make([]TemplateTypeInfo, 0, len(types))
	for _, templateType := range types {
		infos = append(infos, TemplateTypeInfo{
			Code:        string(templateType),
			DisplayName: templateType.DisplayName(),
		})
	}
	return infos
}
