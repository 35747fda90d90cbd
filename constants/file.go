package constants

import (
	"path/filepath"
	"strings"
)

// Accepted upload suffixes in normalized (lowercase, no-dot) form.
const (
	DocumentExt = "pdf"
	ArchiveExt  = "zip"
)

// MacOSMetadataPrefix marks zip entries created by macOS Finder; they never
// hold real documents.
const MacOSMetadataPrefix = "__MACOSX"

// Page-text origin values recorded by the acquirer.
const (
	OriginDirect      = "direct"
	OriginOCR         = "ocr"
	OriginOCRFallback = "ocr-failed-fallback"
)

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// ExtOf returns the normalized extension of a file name or path.
func ExtOf(name string) string {
	return NormalizeExt(filepath.Ext(name))
}
