package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	OCR    OCRConfig
	Export ExportConfig
}

// OCRConfig holds text-acquisition configuration
type OCRConfig struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	Language      string // tesseract language code, default "spa"
	DPI           int    // rasterization DPI for scanned pages, default 300
	TextThreshold int    // min direct-text runes per page before OCR kicks in, default 100
	MaxPages      int    // 0 = no limit
}

// ExportConfig holds report-assembly configuration
type ExportConfig struct {
	SheetName string
	TTL       time.Duration // lifetime of an unclaimed report handle
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		OCR: OCRConfig{
			Pdftotext:     getEnv("OCR_PDFTOTEXT", "pdftotext"),
			Pdftoppm:      getEnv("OCR_PDFTOPPM", "pdftoppm"),
			Tesseract:     getEnv("OCR_TESSERACT", "tesseract"),
			Language:      getEnv("OCR_LANG", "spa"),
			DPI:           getEnvAsInt("OCR_DPI", 300),
			TextThreshold: getEnvAsInt("OCR_TEXT_THRESHOLD", 100),
			MaxPages:      getEnvAsInt("OCR_MAX_PAGES", 0),
		},
		Export: ExportConfig{
			SheetName: getEnv("EXPORT_SHEET_NAME", "Resultados"),
			TTL:       getEnvAsDuration("EXPORT_TTL", 15*time.Minute),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.OCR.Language == "" {
		return NewAppError("CONFIG_ERROR", "OCR_LANG is required", ErrInvalidInput)
	}
	if c.OCR.DPI <= 0 {
		return NewAppError("CONFIG_ERROR", "OCR_DPI must be positive", ErrInvalidInput)
	}
	if c.OCR.TextThreshold < 0 {
		return NewAppError("CONFIG_ERROR", "OCR_TEXT_THRESHOLD must not be negative", ErrInvalidInput)
	}
	return nil
}
