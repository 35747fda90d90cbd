// Package ocr turns raw PDF bytes into the document's full text. Pages that
// already carry enough machine-readable text are passed through as-is; pages
// that look like scanned images are rasterized and run through tesseract.
package ocr

import (
	"context"
	"log/slog"
	"os"
	"time"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	Language      string // tesseract language code, default "spa"
	DPI           int    // rasterization DPI for scanned pages, default 300
	TextThreshold int    // min direct-text runes per page before OCR kicks in, default 100
	MaxPages      int    // 0 = no limit
}

// Result is the outcome of acquiring one document's text.
type Result struct {
	Text     string
	Pages    int
	Origins  []string // per-page: constants.OriginDirect | OriginOCR | OriginOCRFallback
	Language string
	Duration time.Duration
	Warnings []string
}

// Extractor implements the text-acquisition stage.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Language == "" {
		cfg.Language = "spa"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if cfg.TextThreshold <= 0 {
		cfg.TextThreshold = 100
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Acquire extracts the full text of the PDF held in data. The byte buffer is
// written to a temp file for the duration of the call because the poppler
// tools read from disk.
func (e *Extractor) Acquire(ctx context.Context, data []byte) (Result, error) {
	start := time.Now()

	tmp, err := os.CreateTemp("", "contrato-*.pdf")
	if err != nil {
		return Result{}, err
	}
	defer func() {
		if err := os.Remove(tmp.Name()); err != nil {
			e.logger.Warn("failed to remove temp file", "path", tmp.Name(), "error", err)
		}
	}()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return Result{}, err
	}
	if err := tmp.Close(); err != nil {
		return Result{}, err
	}

	res, err := e.acquireFile(ctx, tmp.Name())
	res.Language = e.cfg.Language
	res.Duration = time.Since(start)
	return res, err
}
