package printing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/gaolamthuy/backend/internal/domain/printing"
	"go.uber.org/zap"
)

const defaultRenderTimeout = 30 * time.Second

// ChromeSurfaceConfig configures the headless-Chrome print surface
type ChromeSurfaceConfig struct {
	// RemoteURL points at an already-running Chrome instance. When
	// empty a local browser is launched.
	RemoteURL string
	// ExecPath overrides the Chrome binary path for local launches
	ExecPath string
	// Headless mode (default true)
	Headless bool
	// NoSandbox runs Chrome without sandbox (required in Docker/root)
	NoSandbox bool
	// RenderTimeout bounds a single open-write-print cycle
	RenderTimeout time.Duration
	// Logger for debug output
	Logger *zap.Logger
}

// ChromeSurface opens headless-Chrome tabs as print surfaces. One tab
// per Open call; tabs share the allocator but nothing else, so
// concurrent prints stay independent.
type ChromeSurface struct {
	config      ChromeSurfaceConfig
	logger      *zap.Logger
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

// NewChromeSurface creates a surface factory backed by headless Chrome
func NewChromeSurface(config ChromeSurfaceConfig) *ChromeSurface {
	if config.RenderTimeout == 0 {
		config.RenderTimeout = defaultRenderTimeout
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &ChromeSurface{config: config, logger: logger}
	s.initAllocator()
	return s
}

func (s *ChromeSurface) initAllocator() {
	if s.config.RemoteURL != "" {
		s.allocCtx, s.allocCancel = chromedp.NewRemoteAllocator(context.Background(), s.config.RemoteURL)
		return
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", s.config.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("disable-default-apps", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true), // needed in Docker
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("font-render-hinting", "none"),
	)
	if s.config.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(s.config.ExecPath))
	}
	if s.config.NoSandbox {
		opts = append(opts, chromedp.Flag("no-sandbox", true))
	}

	s.allocCtx, s.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
}

// Open creates a new blank tab. A failure here means no surface exists
// at all, so it maps to ErrCodePrintWindowBlocked.
func (s *ChromeSurface) Open(ctx context.Context) (SurfaceHandle, error) {
	tabCtx, tabCancel := chromedp.NewContext(s.allocCtx,
		chromedp.WithLogf(func(format string, args ...interface{}) {
			s.logger.Debug(fmt.Sprintf(format, args...))
		}),
	)

	runCtx, cancel := context.WithTimeout(tabCtx, s.config.RenderTimeout)
	defer cancel()

	if err := chromedp.Run(runCtx, chromedp.Navigate("about:blank")); err != nil {
		tabCancel()
		return nil, NewRenderError(ErrCodePrintWindowBlocked,
			"failed to open print surface", err)
	}

	return &chromeHandle{
		tabCtx:    tabCtx,
		tabCancel: tabCancel,
		timeout:   s.config.RenderTimeout,
		logger:    s.logger,
	}, nil
}

// Close tears down the shared allocator
func (s *ChromeSurface) Close() error {
	if s.allocCancel != nil {
		s.allocCancel()
	}
	return nil
}

// chromeHandle is one open tab
type chromeHandle struct {
	tabCtx    context.Context
	tabCancel context.CancelFunc
	timeout   time.Duration
	logger    *zap.Logger
}

// WriteDocument replaces the tab's document with the given HTML and
// closes the write stream.
func (h *chromeHandle) WriteDocument(ctx context.Context, html string) error {
	if strings.TrimSpace(html) == "" {
		return NewRenderError(ErrCodeInvalidInput, "document is empty", nil)
	}

	runCtx, cancel := context.WithTimeout(h.tabCtx, h.timeout)
	defer cancel()

	err := chromedp.Run(runCtx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
	)
	if err != nil {
		return h.wrapRunError(runCtx, "failed to write document", err)
	}
	return nil
}

// TriggerPrint waits for the document to finish loading, then prints
// it to PDF at the exact page geometry with zero margins.
func (h *chromeHandle) TriggerPrint(ctx context.Context, geometry printing.PageGeometry) ([]byte, error) {
	runCtx, cancel := context.WithTimeout(h.tabCtx, h.timeout)
	defer cancel()

	start := time.Now()
	var pdf []byte

	err := chromedp.Run(runCtx,
		// Printing before the document fully parses can produce a
		// blank or partial printout, so wait for load first.
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(mmToInches(geometry.WidthMm)).
				WithPaperHeight(mmToInches(geometry.HeightMm)).
				WithMarginTop(0).
				WithMarginRight(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithScale(1.0).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = data
			return nil
		}),
	)
	if err != nil {
		return nil, h.wrapRunError(runCtx, "failed to print document", err)
	}
	if len(pdf) == 0 {
		return nil, NewRenderError(ErrCodeRenderFailed, "generated PDF is empty", nil)
	}

	h.logger.Debug("printed document",
		zap.Int("bytes", len(pdf)),
		zap.Duration("duration", time.Since(start)))

	return pdf, nil
}

// Close tears down the tab
func (h *chromeHandle) Close() error {
	h.tabCancel()
	return nil
}

func (h *chromeHandle) wrapRunError(ctx context.Context, msg string, err error) error {
	if ctx.Err() == context.DeadlineExceeded {
		return NewRenderError(ErrCodeRenderTimeout, msg+": timed out", err)
	}
	return NewRenderError(ErrCodeRenderFailed, msg, err)
}

// mmToInches converts millimeters to inches; Chrome's print API
// measures paper in inches.
func mmToInches(mm float64) float64 {
	return mm / 25.4
}

// Ensure ChromeSurface implements PrintSurface
var _ PrintSurface = (*ChromeSurface)(nil)
