package common

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.OCR.Language != "spa" {
		t.Errorf("Language = %q, want spa", cfg.OCR.Language)
	}
	if cfg.OCR.DPI != 300 {
		t.Errorf("DPI = %d, want 300", cfg.OCR.DPI)
	}
	if cfg.OCR.TextThreshold != 100 {
		t.Errorf("TextThreshold = %d, want 100", cfg.OCR.TextThreshold)
	}
	if cfg.Export.SheetName != "Resultados" {
		t.Errorf("SheetName = %q, want Resultados", cfg.Export.SheetName)
	}
	if cfg.Export.TTL != 15*time.Minute {
		t.Errorf("TTL = %v, want 15m", cfg.Export.TTL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults: %v", err)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("OCR_DPI", "150")
	t.Setenv("OCR_LANG", "eng")
	t.Setenv("EXPORT_TTL", "1m")

	cfg := LoadConfig()
	if cfg.OCR.DPI != 150 {
		t.Errorf("DPI = %d, want 150", cfg.OCR.DPI)
	}
	if cfg.OCR.Language != "eng" {
		t.Errorf("Language = %q, want eng", cfg.OCR.Language)
	}
	if cfg.Export.TTL != time.Minute {
		t.Errorf("TTL = %v, want 1m", cfg.Export.TTL)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := LoadConfig()
	cfg.OCR.DPI = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted DPI=0")
	}

	cfg = LoadConfig()
	cfg.OCR.Language = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted empty language")
	}
}
