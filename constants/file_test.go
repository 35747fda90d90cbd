package constants

import "testing"

func TestNormalizeExt(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{".PDF", "pdf"},
		{".pdf", "pdf"},
		{"Zip", "zip"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeExt(tt.in); got != tt.want {
			t.Errorf("NormalizeExt(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtOf(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"contrato.pdf", "pdf"},
		{"CONTRATO.PDF", "pdf"},
		{"lote.Zip", "zip"},
		{"carpeta/interno.pdf", "pdf"},
		{"sin_extension", ""},
	}
	for _, tt := range tests {
		if got := ExtOf(tt.in); got != tt.want {
			t.Errorf("ExtOf(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
