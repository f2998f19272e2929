// Package widget is the translation widget's application state and the event
// handlers that mutate it. Every state change re-renders through OnChange.
package widget

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/valpere/tlumach/internal/debounce"
	"github.com/valpere/tlumach/internal/dictation"
	"github.com/valpere/tlumach/internal/langs"
	"github.com/valpere/tlumach/internal/textutil"
	"github.com/valpere/tlumach/internal/translator"
	"github.com/valpere/tlumach/internal/validator"
)

const (
	DefaultDebounce = 500 * time.Millisecond
	refusedCue      = 500 * time.Millisecond
	swapCue         = 300 * time.Millisecond
)

// ErrInvalidOutput is returned by New when the output default is not a
// selectable output language.
var ErrInvalidOutput = errors.New("invalid output language")

// PreferenceStore persists the dark-mode flag.
type PreferenceStore interface {
	GetBool(ctx context.Context, key string) (bool, error)
	SetBool(ctx context.Context, key string, value bool) error
}

// LanguageDetector gives a local guess for auto input.
type LanguageDetector interface {
	DetectISO(text string) (string, bool)
}

type Options struct {
	Service  translator.TranslationService
	Prefs    PreferenceStore
	Mic      *dictation.Mic
	Detector LanguageDetector
	Fs       afero.Fs
	Logger   *logrus.Logger

	DownloadDir   string
	Debounce      time.Duration
	MaxChars      int
	DefaultSource string
	DefaultTarget string

	// OnChange receives a snapshot after every state change. It must not call
	// back into the widget.
	OnChange func(State)
	// Notify shows a blocking notice.
	Notify func(msg string)
	Now    func() time.Time
}

type Widget struct {
	svc       translator.TranslationService
	prefs     PreferenceStore
	mic       *dictation.Mic
	detector  LanguageDetector
	validator *validator.Validator
	fs        afero.Fs
	logger    *logrus.Logger
	dir       string
	onChange  func(State)
	notifyFn  func(string)
	now       func() time.Time

	typing *debounce.Debouncer[context.Context]

	mu       sync.Mutex
	state    State
	seq      uint64
	inflight context.CancelFunc
	closed   bool
	// detectedBy is the run whose endpoint reported the source language.
	detectedBy uint64

	renderMu sync.Mutex
	wg       sync.WaitGroup
}

func New(opts Options) (*Widget, error) {
	if opts.Service == nil {
		return nil, fmt.Errorf("translation service is required")
	}
	if opts.Logger == nil {
		opts.Logger = logrus.New()
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Mic == nil {
		opts.Mic = dictation.NewMic(nil, "")
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.MaxChars <= 0 {
		opts.MaxChars = textutil.MaxChars
	}
	if opts.DefaultSource == "" {
		opts.DefaultSource = langs.Auto
	}
	if opts.DefaultTarget == "" {
		opts.DefaultTarget = "en"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	w := &Widget{
		svc:      opts.Service,
		prefs:    opts.Prefs,
		mic:      opts.Mic,
		detector: opts.Detector,
		fs:       opts.Fs,
		logger:   opts.Logger,
		dir:      opts.DownloadDir,
		onChange: opts.OnChange,
		notifyFn: opts.Notify,
		now:      opts.Now,
	}
	w.typing = debounce.New(opts.Debounce, w.trigger)
	if opts.Detector != nil {
		w.validator = validator.New(opts.Detector)
	}

	w.state = State{
		MaxChars:     opts.MaxChars,
		UploadTitle:  DefaultUploadTitle,
		MicAvailable: opts.Mic.Available(),
	}
	// The input default applies only when present in the registry; the
	// output must always have a selection.
	if o, ok := langs.Lookup(opts.DefaultSource); ok {
		w.state.Input = selectionOf(o)
	}
	o, ok := langs.Lookup(opts.DefaultTarget)
	if !ok || o.Code == langs.Auto {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOutput, opts.DefaultTarget)
	}
	w.state.Output = selectionOf(o)
	return w, nil
}

// Snapshot returns a copy of the current state.
func (w *Widget) Snapshot() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// changed renders the latest state. Renders are serialised so the last one
// always reflects the newest state.
func (w *Widget) changed() {
	w.renderMu.Lock()
	defer w.renderMu.Unlock()
	if w.onChange == nil {
		return
	}
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	s := w.state
	w.mu.Unlock()
	w.onChange(s)
}

// update applies fn under the state lock and re-renders.
func (w *Widget) update(fn func(s *State)) {
	w.mu.Lock()
	fn(&w.state)
	w.mu.Unlock()
	w.changed()
}

func (w *Widget) notify(msg string) {
	w.update(func(s *State) { s.Notice = msg })
	if w.notifyFn != nil {
		w.notifyFn(msg)
	}
}

// DismissNotice clears the current notice.
func (w *Widget) DismissNotice() {
	w.update(func(s *State) { s.Notice = "" })
}

// cue sets a transient flag and clears it after d.
func (w *Widget) cue(flag func(s *State) *bool, d time.Duration) {
	w.update(func(s *State) { *flag(s) = true })
	time.AfterFunc(d, func() {
		w.update(func(s *State) { *flag(s) = false })
	})
}

// Wait blocks until every background translation has finished.
func (w *Widget) Wait() {
	w.wg.Wait()
}

// Close drops pending input, stops dictation and cancels the in-flight
// request. Later state changes are no longer rendered.
func (w *Widget) Close() {
	w.typing.Stop()
	w.mic.Stop()
	w.mu.Lock()
	w.closed = true
	if w.inflight != nil {
		w.inflight()
		w.inflight = nil
	}
	w.mu.Unlock()
	w.wg.Wait()
}
