package handler

import (
	"net/http"

	printingapp "github.com/gaolamthuy/backend/internal/application/printing"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PrintHandler exposes the print pipeline endpoints
type PrintHandler struct {
	BaseHandler
	printService *printingapp.PrintService
}

// NewPrintHandler creates a new PrintHandler
func NewPrintHandler(printService *printingapp.PrintService) *PrintHandler {
	return &PrintHandler{printService: printService}
}

// RegisterRoutes registers the print endpoints on the API group
func (h *PrintHandler) RegisterRoutes(rg *gin.RouterGroup) {
	print := rg.Group("/print")
	{
		print.POST("/purchase-orders/:id", h.PrintPurchaseOrder)
		print.POST("/purchase-orders/:id/lines/:line_id", h.PrintPurchaseOrderLine)
		print.POST("/labels/:product_id", h.PrintProductLabel)
		print.POST("/invoices/:id", h.PrintRetailInvoice)
		print.POST("/price-table", h.PrintPriceTable)
		print.POST("/preview", h.Preview)

		print.GET("/templates/by-type/:type", h.ListTemplates)
		print.GET("/templates/by-type/:type/selected", h.GetTemplate)
		print.GET("/page-sizes", h.GetPageSizes)
		print.GET("/template-types", h.GetTemplateTypes)
	}
}

// PreviewHTTPRequest is the request body for the preview endpoint
type PreviewHTTPRequest struct {
	TemplateType string  `json:"template_type" binding:"required"`
	DocumentID   string  `json:"document_id" binding:"omitempty,uuid"`
	TemplateID   *string `json:"template_id" binding:"omitempty,uuid"`
}

// PrintPurchaseOrder prints a full purchase order and streams the PDF
func (h *PrintHandler) PrintPurchaseOrder(c *gin.Context) {
	h.printDocument(c, "purchase_order", c.Param("id"))
}

// PrintPurchaseOrderLine reprints a single purchase-order line
func (h *PrintHandler) PrintPurchaseOrderLine(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}
	lineID, err := uuid.Parse(c.Param("line_id"))
	if err != nil {
		h.BadRequest(c, "Invalid line ID format")
		return
	}
	templateID, ok := h.optionalTemplateID(c)
	if !ok {
		return
	}

	result, err := h.printService.PrintPurchaseOrderLine(c.Request.Context(), printingapp.PrintLineRequest{
		OrderID:    orderID,
		LineID:     lineID,
		TemplateID: templateID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.servePDF(c, result)
}

// PrintProductLabel prints the price label for one product
func (h *PrintHandler) PrintProductLabel(c *gin.Context) {
	h.printDocument(c, "label-product", c.Param("product_id"))
}

// PrintRetailInvoice prints a retail invoice receipt
func (h *PrintHandler) PrintRetailInvoice(c *gin.Context) {
	h.printDocument(c, "invoice", c.Param("id"))
}

// PrintPriceTable prints the shop price board for all active products
func (h *PrintHandler) PrintPriceTable(c *gin.Context) {
	h.printDocument(c, "price-table", "")
}

// printDocument runs the shared print path for one template type
func (h *PrintHandler) printDocument(c *gin.Context, templateType, rawDocumentID string) {
	documentID := uuid.Nil
	if rawDocumentID != "" {
		parsed, err := uuid.Parse(rawDocumentID)
		if err != nil {
			h.BadRequest(c, "Invalid document ID format")
			return
		}
		documentID = parsed
	}
	templateID, ok := h.optionalTemplateID(c)
	if !ok {
		return
	}

	result, err := h.printService.PrintDocument(c.Request.Context(), printingapp.PrintRequest{
		TemplateType: templateType,
		DocumentID:   documentID,
		TemplateID:   templateID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.servePDF(c, result)
}

// Preview renders the document without opening a print surface
func (h *PrintHandler) Preview(c *gin.Context) {
	var req PreviewHTTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	appReq := printingapp.PreviewRequest{TemplateType: req.TemplateType}
	if req.DocumentID != "" {
		documentID, err := uuid.Parse(req.DocumentID)
		if err != nil {
			h.BadRequest(c, "Invalid document ID format")
			return
		}
		appReq.DocumentID = documentID
	}
	if req.TemplateID != nil {
		templateID, err := uuid.Parse(*req.TemplateID)
		if err != nil {
			h.BadRequest(c, "Invalid template ID format")
			return
		}
		appReq.TemplateID = &templateID
	}

	result, err := h.printService.PreviewDocument(c.Request.Context(), appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// ListTemplates lists the active templates of a type, default first
func (h *PrintHandler) ListTemplates(c *gin.Context) {
	result, err := h.printService.ListTemplates(c.Request.Context(), c.Param("type"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// GetTemplate returns the template the print path would select,
// including its content, optionally pinned with ?template_id.
func (h *PrintHandler) GetTemplate(c *gin.Context) {
	templateID, ok := h.optionalTemplateID(c)
	if !ok {
		return
	}

	result, err := h.printService.GetTemplate(c.Request.Context(), c.Param("type"), templateID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// GetPageSizes lists the supported page presets
func (h *PrintHandler) GetPageSizes(c *gin.Context) {
	h.Success(c, h.printService.PageSizes())
}

// GetTemplateTypes lists the supported template types
func (h *PrintHandler) GetTemplateTypes(c *gin.Context) {
	h.Success(c, h.printService.TemplateTypes())
}

// optionalTemplateID parses the template_id query parameter. The second
// return value is false when the request was already rejected.
func (h *PrintHandler) optionalTemplateID(c *gin.Context) (*uuid.UUID, bool) {
	raw := c.Query("template_id")
	if raw == "" {
		return nil, true
	}
	templateID, err := uuid.Parse(raw)
	if err != nil {
		h.BadRequest(c, "Invalid template ID format")
		return nil, false
	}
	return &templateID, true
}

// servePDF streams the produced PDF inline to the caller
func (h *PrintHandler) servePDF(c *gin.Context, result *printingapp.PrintResult) {
	c.Header("Content-Disposition", `inline; filename="`+result.TemplateType+".pdf\"")
	c.Header("X-Template-ID", result.TemplateID.String())
	c.Data(http.StatusOK, "application/pdf", result.PDF)
}
