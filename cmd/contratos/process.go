package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Flea-03/proyecto-contratos/internal/common"
	"github.com/Flea-03/proyecto-contratos/internal/export"
	"github.com/Flea-03/proyecto-contratos/internal/fields"
	"github.com/Flea-03/proyecto-contratos/internal/ocr"
	"github.com/Flea-03/proyecto-contratos/internal/pipeline"
)

func newProcessCmd() *cobra.Command {
	var (
		out     string
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "process <file-or-dir>...",
		Short: "Run the extraction pipeline over PDF and ZIP files",
		Long: `Process reads each given PDF or ZIP of PDFs, extracts the contract
fields, and writes one XLSX report row per document. Failing documents are
reported on stderr without aborting the batch.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd.Context(), args, out, verbose)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", export.DefaultFileName, "output XLSX path")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func runProcess(ctx context.Context, args []string, out string, verbose bool) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	inputs, err := collectInputs(args)
	if err != nil {
		return err
	}

	acquirer := ocr.NewExtractor(ocr.Config{
		Pdftotext:     cfg.OCR.Pdftotext,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		Language:      cfg.OCR.Language,
		DPI:           cfg.OCR.DPI,
		TextThreshold: cfg.OCR.TextThreshold,
		MaxPages:      cfg.OCR.MaxPages,
	}, logger)

	pipe := pipeline.New(acquirer, fields.NewExtractor(), logger)
	outcome, runErr := pipe.Run(ctx, inputs)
	for _, e := range outcome.Errors {
		fmt.Fprintln(os.Stderr, "error:", e)
	}
	if runErr != nil {
		return runErr
	}

	svc := export.NewService(cfg.Export.SheetName, logger)
	data, err := svc.BuildWorkbook(outcome.Records)
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	fmt.Printf("%d record(s) written to %s, %d error(s)\n", len(outcome.Records), out, len(outcome.Errors))
	return nil
}

// collectInputs reads each argument into memory; directory arguments
// contribute their immediate files. Type filtering belongs to the pipeline.
func collectInputs(args []string) ([]pipeline.Input, error) {
	var inputs []pipeline.Input
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			data, err := os.ReadFile(arg)
			if err != nil {
				return nil, err
			}
			inputs = append(inputs, pipeline.Input{Name: filepath.Base(arg), Data: data})
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			data, err := os.ReadFile(filepath.Join(arg, e.Name()))
			if err != nil {
				return nil, err
			}
			inputs = append(inputs, pipeline.Input{Name: e.Name(), Data: data})
		}
	}
	return inputs, nil
}
