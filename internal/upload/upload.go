// Package upload turns a user-chosen file into input text. Only plain text is
// read; word-processor and PDF files are recognised but not extracted.
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"

	"github.com/valpere/tlumach/internal/textutil"
)

const (
	MediaPlain = "text/plain"
	MediaPDF   = "application/pdf"
	MediaDOC   = "application/msword"
	MediaDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var (
	// ErrRichDocument is returned for PDF and Word files.
	ErrRichDocument = errors.New("only text content can be extracted from these file types")
	// ErrUnsupported is returned for every other media type.
	ErrUnsupported = errors.New("unsupported file type")
)

var byExtension = map[string]string{
	".txt":  MediaPlain,
	".text": MediaPlain,
	".pdf":  MediaPDF,
	".doc":  MediaDOC,
	".docx": MediaDOCX,
}

// File is an accepted upload.
type File struct {
	Name      string
	MediaType string
	Text      string
}

// MediaType resolves the media type from the extension, falling back to
// sniffing the first bytes of content.
func MediaType(name string, head []byte) string {
	if mt, ok := byExtension[strings.ToLower(filepath.Ext(name))]; ok {
		return mt
	}
	mt, _, err := mime.ParseMediaType(http.DetectContentType(head))
	if err != nil {
		return "application/octet-stream"
	}
	return mt
}

// IsRichDocument reports whether mediaType is one of the PDF/Word types.
func IsRichDocument(mediaType string) bool {
	switch mediaType {
	case MediaPDF, MediaDOC, MediaDOCX:
		return true
	}
	return false
}

// Read opens path on fs and returns its text, NFC-normalised and limited to
// maxChars runes (maxChars <= 0 means no limit). The returned File carries the
// base name even when an error is returned, so callers can display it.
func Read(fs afero.Fs, path string, maxChars int) (*File, error) {
	file := &File{Name: filepath.Base(path)}

	f, err := fs.Open(path)
	if err != nil {
		return file, fmt.Errorf("failed to open %s: %w", file.Name, err)
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return file, fmt.Errorf("failed to read %s: %w", file.Name, err)
	}
	head = head[:n]

	file.MediaType = MediaType(path, head)
	switch {
	case file.MediaType == MediaPlain:
	case IsRichDocument(file.MediaType):
		return file, ErrRichDocument
	default:
		return file, fmt.Errorf("%w: %s", ErrUnsupported, file.MediaType)
	}

	var rest io.Reader = f
	if maxChars > 0 {
		rest = io.LimitReader(f, int64(maxChars*utf8.UTFMax))
	}
	body, err := io.ReadAll(io.MultiReader(strings.NewReader(string(head)), rest))
	if err != nil {
		return file, fmt.Errorf("failed to read %s: %w", file.Name, err)
	}

	file.Text = textutil.Prepare(string(body), maxChars)
	return file, nil
}
