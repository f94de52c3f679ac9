package printing

import (
	"context"

	"github.com/gaolamthuy/backend/internal/domain/printing"
)

// PrintSurface abstracts the transient output surface a document is
// printed through. The production implementation opens a headless
// Chrome tab; tests use a fake that records calls.
type PrintSurface interface {
	// Open creates a new blank surface. Failure to create one maps to
	// ErrCodePrintWindowBlocked - a user-actionable condition distinct
	// from template and compile errors.
	Open(ctx context.Context) (SurfaceHandle, error)
}

// SurfaceHandle is one open print surface, exclusively owned by the
// invocation that opened it.
type SurfaceHandle interface {
	// WriteDocument writes the complete HTML document into the surface
	// and closes the write stream.
	WriteDocument(ctx context.Context, html string) error
	// TriggerPrint waits for the document to finish loading, then fires
	// the print and returns the produced PDF bytes.
	TriggerPrint(ctx context.Context, geometry printing.PageGeometry) ([]byte, error)
	// Close tears the surface down.
	Close() error
}

// RenderError represents an error raised inside the print pipeline
type RenderError struct {
	Code    string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// Error codes for print pipeline failures
const (
	// ErrCodeParseFailed indicates malformed template syntax, a
	// template-authoring defect surfaced verbatim for diagnosis.
	ErrCodeParseFailed = "TEMPLATE_PARSE_FAILED"
	// ErrCodeRenderFailed indicates the compiled template could not be
	// executed against the supplied data.
	ErrCodeRenderFailed = "RENDER_FAILED"
	// ErrCodePrintWindowBlocked indicates the print surface could not
	// be opened. Remediation is environmental (Chrome missing or
	// blocked), so callers present it differently from template errors.
	ErrCodePrintWindowBlocked = "PRINT_WINDOW_BLOCKED"
	// ErrCodeRenderTimeout indicates the surface did not finish within
	// the configured render timeout.
	ErrCodeRenderTimeout = "RENDER_TIMEOUT"
	// ErrCodeInvalidInput indicates a malformed pipeline request.
	ErrCodeInvalidInput = "INVALID_INPUT"
)

// NewRenderError creates a new RenderError
func NewRenderError(code, message string, cause error) *RenderError {
	return &RenderError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
