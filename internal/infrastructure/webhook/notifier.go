// Package webhook posts job events to the shop's n8n workflows.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gaolamthuy/backend/internal/domain/printing"
	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// PrintJobEvent is the payload posted after a print job completes
type PrintJobEvent struct {
	Event        string    `json:"event"`
	TemplateType string    `json:"template_type"`
	TemplateID   uuid.UUID `json:"template_id"`
	DocumentID   uuid.UUID `json:"document_id,omitempty"`
	PageWidthMm  float64   `json:"page_width_mm"`
	PageHeightMm float64   `json:"page_height_mm"`
	PDFBytes     int       `json:"pdf_bytes"`
	CompletedAt  time.Time `json:"completed_at"`
}

// Notifier delivers print-job events to a workflow endpoint
type Notifier interface {
	// NotifyPrintCompleted posts a job-completed event. Delivery
	// failures are the notifier's problem, never the print's.
	NotifyPrintCompleted(ctx context.Context, event PrintJobEvent)
}

// Config configures the n8n notifier
type Config struct {
	// BaseURL is the workflow webhook endpoint
	BaseURL string
	// Secret is sent as a bearer token when set
	Secret string
	// Timeout bounds one delivery attempt
	Timeout time.Duration
	// MaxRetries is the number of retry attempts after the first try
	MaxRetries int
}

// N8NNotifier posts events to an n8n workflow webhook with retries
type N8NNotifier struct {
	config Config
	client *retryablehttp.Client
	logger *zap.Logger
}

// NewN8NNotifier creates a notifier for the configured workflow URL
func NewN8NNotifier(config Config, logger *zap.Logger) *N8NNotifier {
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client := retryablehttp.NewClient()
	client.RetryMax = config.MaxRetries
	client.HTTPClient.Timeout = config.Timeout
	// retryablehttp logs through its own interface; route it nowhere
	// and log outcomes ourselves.
	client.Logger = nil

	return &N8NNotifier{
		config: config,
		client: client,
		logger: logger,
	}
}

// NotifyPrintCompleted posts a job-completed event to the workflow.
// Failures are logged and swallowed: a finished print must never be
// reported as failed because a workflow was unreachable.
func (n *N8NNotifier) NotifyPrintCompleted(ctx context.Context, event PrintJobEvent) {
	if event.Event == "" {
		event.Event = "print.completed"
	}
	if event.CompletedAt.IsZero() {
		event.CompletedAt = time.Now()
	}

	body, err := json.Marshal(event)
	if err != nil {
		n.logger.Error("failed to encode print job event", zap.Error(err))
		return
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, n.config.BaseURL, bytes.NewReader(body))
	if err != nil {
		n.logger.Error("failed to build webhook request", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if n.config.Secret != "" {
		req.Header.Set("Authorization", "Bearer "+n.config.Secret)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.Warn("print job webhook delivery failed",
			zap.String("url", n.config.BaseURL),
			zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		n.logger.Warn("print job webhook rejected",
			zap.String("url", n.config.BaseURL),
			zap.Int("status", resp.StatusCode))
		return
	}

	n.logger.Debug("print job webhook delivered",
		zap.String("template_type", event.TemplateType),
		zap.Int("status", resp.StatusCode))
}

// NopNotifier discards events; used when webhooks are disabled
type NopNotifier struct{}

// NotifyPrintCompleted does nothing
func (NopNotifier) NotifyPrintCompleted(ctx context.Context, event PrintJobEvent) {}

// NewPrintJobEvent builds the payload for a completed print
func NewPrintJobEvent(tpl *printing.PrintTemplate, geometry printing.PageGeometry, documentID uuid.UUID, pdfBytes int) PrintJobEvent {
	return PrintJobEvent{
		Event:        "print.completed",
		TemplateType: string(tpl.Type),
		TemplateID:   tpl.ID,
		DocumentID:   documentID,
		PageWidthMm:  geometry.WidthMm,
		PageHeightMm: geometry.HeightMm,
		PDFBytes:     pdfBytes,
		CompletedAt:  time.Now(),
	}
}

var (
	_ Notifier = (*N8NNotifier)(nil)
	_ Notifier = NopNotifier{}
)
