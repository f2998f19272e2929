package upload

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestMediaType(t *testing.T) {
	tests := []struct {
		name string
		file string
		head []byte
		want string
	}{
		{name: "txt extension", file: "notes.txt", want: MediaPlain},
		{name: "upper case extension", file: "NOTES.TXT", want: MediaPlain},
		{name: "pdf extension", file: "a.pdf", want: MediaPDF},
		{name: "doc extension", file: "a.doc", want: MediaDOC},
		{name: "docx extension", file: "a.docx", want: MediaDOCX},
		{name: "sniffed text", file: "README", head: []byte("just some text"), want: MediaPlain},
		{name: "sniffed pdf", file: "scan", head: []byte("%PDF-1.7\n"), want: MediaPDF},
		{name: "sniffed png", file: "img", head: []byte("\x89PNG\r\n\x1a\n"), want: "image/png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MediaType(tt.file, tt.head); got != tt.want {
				t.Errorf("MediaType(%q) = %q, want %q", tt.file, got, tt.want)
			}
		})
	}
}

func TestRead_PlainText(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/in/hello.txt", []byte("Bonjour le monde"), 0644)

	f, err := Read(fs, "/in/hello.txt", 5000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Name != "hello.txt" {
		t.Errorf("expected name 'hello.txt', got %q", f.Name)
	}
	if f.Text != "Bonjour le monde" {
		t.Errorf("unexpected text %q", f.Text)
	}
}

func TestRead_ClampsLongText(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/big.txt", []byte(strings.Repeat("ü", 6000)), 0644)

	f, err := Read(fs, "/big.txt", 5000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := len([]rune(f.Text)); n != 5000 {
		t.Errorf("expected 5000 runes, got %d", n)
	}
}

func TestRead_RichDocument(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/report.docx", []byte("PK\x03\x04"), 0644)

	f, err := Read(fs, "/report.docx", 5000)
	if !errors.Is(err, ErrRichDocument) {
		t.Fatalf("expected ErrRichDocument, got %v", err)
	}
	if f.Text != "" {
		t.Error("rich documents must not be extracted")
	}
	if f.Name != "report.docx" {
		t.Errorf("expected name to be kept, got %q", f.Name)
	}
}

func TestRead_Unsupported(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/photo.png", []byte("\x89PNG\r\n\x1a\n0000"), 0644)

	_, err := Read(fs, "/photo.png", 5000)
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(afero.NewMemMapFs(), "/nope.txt", 5000)
	if err == nil {
		t.Error("expected error for missing file")
	}
	if errors.Is(err, ErrUnsupported) || errors.Is(err, ErrRichDocument) {
		t.Error("missing file must not be reported as a type error")
	}
}
