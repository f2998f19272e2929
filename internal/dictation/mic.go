package dictation

import (
	"context"
	"sync"

	"github.com/valpere/tlumach/internal/langs"
)

// DefaultLang is used when the input language is unset or auto.
const DefaultLang = "en"

// Handlers receive session events. Any of them may be nil.
type Handlers struct {
	OnStart  func()
	OnResult func(transcript string)
	OnError  func(err error)
	OnEnd    func()
}

// Mic holds the idle/listening state of the dictation button. A Mic without a
// Recognizer is permanently unavailable.
type Mic struct {
	rec      Recognizer
	fallback string

	mu        sync.Mutex
	listening bool
	session   uint64
	cancel    context.CancelFunc
}

func NewMic(rec Recognizer, fallbackLang string) *Mic {
	if fallbackLang == "" {
		fallbackLang = DefaultLang
	}
	return &Mic{rec: rec, fallback: fallbackLang}
}

func (m *Mic) Available() bool {
	return m.rec != nil
}

func (m *Mic) Listening() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listening
}

// Lang picks the recognition language for the current input selection.
func (m *Mic) Lang(inputCode string) string {
	if inputCode == "" || inputCode == langs.Auto {
		return m.fallback
	}
	return inputCode
}

// Toggle stops the running session, or starts a new single-shot session when
// idle. It reports whether a session was started. Results of a stopped
// session are dropped.
func (m *Mic) Toggle(ctx context.Context, inputCode string, h Handlers) bool {
	if m.rec == nil {
		return false
	}

	m.mu.Lock()
	if m.listening {
		m.cancel()
		m.listening = false
		m.cancel = nil
		m.mu.Unlock()
		if h.OnEnd != nil {
			h.OnEnd()
		}
		return false
	}

	sctx, cancel := context.WithCancel(ctx)
	m.session++
	id := m.session
	m.listening = true
	m.cancel = cancel
	m.mu.Unlock()

	if h.OnStart != nil {
		h.OnStart()
	}

	lang := m.Lang(inputCode)
	go func() {
		defer cancel()
		transcript, err := m.rec.Recognize(sctx, lang)

		m.mu.Lock()
		current := m.session == id && m.listening
		if current {
			m.listening = false
			m.cancel = nil
		}
		m.mu.Unlock()

		if !current {
			return
		}
		if err != nil {
			if h.OnError != nil {
				h.OnError(err)
			}
		} else if h.OnResult != nil {
			h.OnResult(transcript)
		}
		if h.OnEnd != nil {
			h.OnEnd()
		}
	}()
	return true
}

// Stop ends the running session, if any, without delivering its result.
func (m *Mic) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listening {
		m.cancel()
		m.listening = false
		m.cancel = nil
	}
}
