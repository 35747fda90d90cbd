// Package pipeline orchestrates text acquisition and field extraction across
// a batch of uploaded files.
package pipeline

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Flea-03/proyecto-contratos/constants"
	"github.com/Flea-03/proyecto-contratos/internal/common"
	"github.com/Flea-03/proyecto-contratos/internal/ocr"
)

// Input is one uploaded file: its display name and raw content.
type Input struct {
	Name string
	Data []byte
}

// Record holds the extracted fields of one successfully processed document.
// Archivo is the document identifier: the upload name or the in-archive path.
type Record struct {
	Archivo string
	Fields  map[string]string
}

// Outcome aggregates one batch run. Records and Errors both preserve input
// order; every accepted input lands in exactly one of the two.
type Outcome struct {
	Records []Record
	Errors  []string
}

// TextAcquirer yields the full text of a PDF document.
type TextAcquirer interface {
	Acquire(ctx context.Context, data []byte) (ocr.Result, error)
}

// FieldExtractor maps contract text to the fixed field set.
type FieldExtractor interface {
	Extract(text string) map[string]string
}

// Pipeline coordinates acquisition then extraction for every input, isolating
// failures per document and per archive entry.
type Pipeline struct {
	acquirer  TextAcquirer
	extractor FieldExtractor
	logger    *slog.Logger
}

func New(acquirer TextAcquirer, extractor FieldExtractor, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{acquirer: acquirer, extractor: extractor, logger: logger}
}

// Run processes every input in order. A failing document never aborts the
// rest of the batch; if nothing at all produced a record, Run returns the
// collected errors alongside common.ErrNoRecords.
func (p *Pipeline) Run(ctx context.Context, inputs []Input) (Outcome, error) {
	var out Outcome
	for _, in := range inputs {
		switch constants.ExtOf(in.Name) {
		case constants.ArchiveExt:
			p.runArchive(ctx, in, &out)
		case constants.DocumentExt:
			p.runDocument(ctx, in.Name, in.Data, &out)
		default:
			// not an accepted type: skipped, not failed
			p.logger.Debug("skipping unsupported file", "name", in.Name)
		}
	}
	if len(out.Records) == 0 {
		return out, common.ErrNoRecords
	}
	return out, nil
}

func (p *Pipeline) runDocument(ctx context.Context, name string, data []byte, out *Outcome) {
	res, err := p.acquirer.Acquire(ctx, data)
	if err != nil {
		out.Errors = append(out.Errors, fmt.Sprintf("%q: %v", name, err))
		return
	}
	out.Records = append(out.Records, Record{
		Archivo: name,
		Fields:  p.extractor.Extract(res.Text),
	})
	p.logger.Info("document processed",
		"name", name,
		"pages", res.Pages,
		"page_warnings", len(res.Warnings),
	)
}

func (p *Pipeline) runArchive(ctx context.Context, in Input, out *Outcome) {
	zr, err := zip.NewReader(bytes.NewReader(in.Data), int64(len(in.Data)))
	if err != nil {
		out.Errors = append(out.Errors, fmt.Sprintf("%q: %v", in.Name, common.ErrArchiveFormat))
		return
	}
	for _, f := range zr.File {
		if !archiveEntryWanted(f.Name) {
			continue
		}
		data, err := readEntry(f)
		if err != nil {
			out.Errors = append(out.Errors, fmt.Sprintf("%q (in %q): %v", f.Name, in.Name, err))
			continue
		}
		res, err := p.acquirer.Acquire(ctx, data)
		if err != nil {
			out.Errors = append(out.Errors, fmt.Sprintf("%q (in %q): %v", f.Name, in.Name, err))
			continue
		}
		out.Records = append(out.Records, Record{
			Archivo: f.Name,
			Fields:  p.extractor.Extract(res.Text),
		})
	}
}

// archiveEntryWanted filters archive members to PDFs outside the macOS
// metadata tree.
func archiveEntryWanted(name string) bool {
	if strings.HasPrefix(name, constants.MacOSMetadataPrefix) {
		return false
	}
	return constants.ExtOf(name) == constants.DocumentExt
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return io.ReadAll(rc)
}
