// Package download saves the translated text as a plain-text file.
package download

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/valpere/tlumach/internal/textutil"
)

// ErrNothingToSave is returned when the output is empty or whitespace.
var ErrNothingToSave = errors.New("there is no translated text to download")

// FileName builds translated-to-<lang>-<timestamp>.txt. The timestamp is the
// UTC ISO-8601 time with millisecond precision, ':' and '.' replaced by '-'.
func FileName(targetLang string, now time.Time) string {
	ts := now.UTC().Format("2006-01-02T15:04:05.000Z")
	ts = strings.NewReplacer(":", "-", ".", "-").Replace(ts)
	return fmt.Sprintf("translated-to-%s-%s.txt", targetLang, ts)
}

// Save writes text into dir and returns the full path of the new file.
func Save(fs afero.Fs, dir, targetLang, text string, now time.Time) (string, error) {
	if textutil.IsBlank(text) {
		return "", ErrNothingToSave
	}
	if dir == "" {
		dir = "."
	}
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, FileName(targetLang, now))
	f, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}
	return path, nil
}
