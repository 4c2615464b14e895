package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/docpipe/document-processor/internal/domain"
)

func TestLocate_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Locate(path)
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if got != path {
		t.Errorf("Locate() = %q, want %q", got, path)
	}
}

func TestLocate_NormalizesPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatal(err)
	}

	messy := dir + string(filepath.Separator) + "." + string(filepath.Separator) + "doc.pdf"
	got, err := Locate(messy)
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if got != path {
		t.Errorf("Locate() = %q, want %q", got, path)
	}
}

func TestLocate_Failures(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantType domain.ErrorType
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.pdf"), domain.ErrorTypeNotFound},
		{"empty path", "", domain.ErrorTypeInvalidArgument},
		{"blank path", "   ", domain.ErrorTypeInvalidArgument},
		{"directory", t.TempDir(), domain.ErrorTypeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Locate(tt.path)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !domain.IsType(err, tt.wantType) {
				t.Errorf("Expected %s error, got %v", tt.wantType, err)
			}
		})
	}
}
