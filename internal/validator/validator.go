// Package validator checks that a translation is written in the requested
// output language.
package validator

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// minValidationLength is the minimum rune count required to attempt detection.
// Shorter texts produce unreliable results and are accepted without validation.
const minValidationLength = 20

var ErrMismatch = errors.New("translation language mismatch")

// Detector guesses the registry code of a text.
type Detector interface {
	DetectISO(text string) (string, bool)
}

type Validator struct {
	det Detector
}

func New(det Detector) *Validator {
	return &Validator{det: det}
}

// Check returns ErrMismatch when text is confidently in a language other
// than targetLang. Regional variants of the same language match.
func (v *Validator) Check(text, targetLang string) error {
	if targetLang == "" {
		return nil
	}
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < minValidationLength {
		return nil
	}

	detected, ok := v.det.DetectISO(text)
	if !ok {
		return nil
	}
	if !strings.EqualFold(base(detected), base(targetLang)) {
		return fmt.Errorf("%w: expected %s but detected %s", ErrMismatch, targetLang, detected)
	}
	return nil
}

func base(code string) string {
	b, _, _ := strings.Cut(code, "-")
	return b
}
