package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Flea-03/proyecto-contratos/constants"
	"github.com/Flea-03/proyecto-contratos/internal/common"
)

func (e *Extractor) acquireFile(ctx context.Context, path string) (Result, error) {
	pages, err := e.directPageTexts(ctx, path)
	if err != nil {
		return Result{}, err
	}

	var res Result
	if e.cfg.MaxPages > 0 && len(pages) > e.cfg.MaxPages {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("document has %d pages, truncated to %d", len(pages), e.cfg.MaxPages))
		pages = pages[:e.cfg.MaxPages]
	}

	var b strings.Builder
	for i, raw := range pages {
		direct := strings.TrimSpace(raw)

		// Pages with enough embedded text are trusted as-is; short pages are
		// treated as scans and rasterized for OCR.
		if utf8.RuneCountInString(direct) >= e.cfg.TextThreshold {
			b.WriteString(direct)
			b.WriteString("\n")
			res.Origins = append(res.Origins, constants.OriginDirect)
			continue
		}

		ocrText, err := e.ocrPage(ctx, path, i+1)
		if err != nil {
			// OCR failure never kills the document; keep whatever direct
			// text the page had.
			e.logger.Warn("page ocr failed, keeping direct text", "page", i+1, "error", err)
			res.Warnings = append(res.Warnings, fmt.Sprintf("page %d: %v", i+1, err))
			b.WriteString(direct)
			b.WriteString("\n")
			res.Origins = append(res.Origins, constants.OriginOCRFallback)
			continue
		}
		b.WriteString(ocrText)
		b.WriteString("\n")
		res.Origins = append(res.Origins, constants.OriginOCR)
	}

	res.Text = b.String()
	res.Pages = len(pages)
	return res, nil
}

// directPageTexts extracts the embedded text of every page in one pdftotext
// run. Pages arrive separated by form feeds.
func (e *Extractor) directPageTexts(ctx context.Context, path string) ([]string, error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return nil, fmt.Errorf("%w: pdftotext: %s", common.ErrDocumentParse, firstLine(errb))
	}
	pages := strings.Split(string(out), "\f")
	// pdftotext terminates every page with \f, leaving an empty trailing element
	if n := len(pages); n > 1 && pages[n-1] == "" {
		pages = pages[:n-1]
	}
	return pages, nil
}

// ocrPage rasterizes a single page and runs tesseract on the image.
func (e *Extractor) ocrPage(ctx context.Context, path string, page int) (string, error) {
	tmpDir, err := os.MkdirTemp("", "contrato-pp-*")
	if err != nil {
		return "", err
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			e.logger.Warn("failed to remove temp dir", "dir", tmpDir, "error", err)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	n := strconv.Itoa(page)
	// pdftoppm -f N -l N -r 300 -png <in.pdf> <tmp/page>
	if _, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm,
		"-f", n, "-l", n, "-r", strconv.Itoa(e.cfg.DPI), "-png", path, prefix); err != nil {
		return "", fmt.Errorf("pdftoppm: %s: %w", firstLine(errb), err)
	}

	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if len(matches) == 0 {
		return "", fmt.Errorf("pdftoppm produced no image for page %d", page)
	}

	// tesseract <img> stdout -l <lang>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, matches[0], "stdout", "-l", e.cfg.Language)
	if err != nil {
		return "", fmt.Errorf("tesseract: %s: %w", firstLine(errb), err)
	}
	return string(out), nil
}
