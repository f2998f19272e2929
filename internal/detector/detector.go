// Package detector guesses the language of input text locally, used to label
// the "Detect language" picker before the endpoint answers.
package detector

import (
	"strings"
	"sync"
	"unicode/utf8"

	lingua "github.com/pemistahl/lingua-go"

	"github.com/valpere/tlumach/internal/langs"
)

// minRunes below which detection is not attempted.
const minRunes = 3

// Detector builds its lingua model on first use. Models load lazily and only
// for languages in the registry; share one instance.
type Detector struct {
	once     sync.Once
	detector lingua.LanguageDetector
}

func New() *Detector {
	return &Detector{}
}

func (d *Detector) model() lingua.LanguageDetector {
	d.once.Do(func() {
		d.detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(registryLanguages()...).
			Build()
	})
	return d.detector
}

// registryLanguages lists the lingua languages that map to a registry option.
func registryLanguages() []lingua.Language {
	var out []lingua.Language
	for _, lang := range lingua.AllLanguages() {
		if _, ok := langs.Lookup(strings.ToLower(lang.IsoCode639_1().String())); ok {
			out = append(out, lang)
		}
	}
	return out
}

func (d *Detector) Detect(text string) (lingua.Language, bool) {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < minRunes {
		return lingua.Unknown, false
	}
	return d.model().DetectLanguageOf(text)
}

// DetectISO returns the registry code of the detected language. Languages
// missing from the registry are reported as not detected.
func (d *Detector) DetectISO(text string) (string, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return "", false
	}
	opt, found := langs.Lookup(strings.ToLower(lang.IsoCode639_1().String()))
	if !found || opt.Code == langs.Auto {
		return "", false
	}
	return opt.Code, true
}
