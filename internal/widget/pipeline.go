package widget

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/valpere/tlumach/internal/langs"
	"github.com/valpere/tlumach/internal/textutil"
	"github.com/valpere/tlumach/internal/translator"
)

// SetInput replaces the input text as typed by the user. The text is clamped
// immediately; translation follows after the debounce window.
func (w *Widget) SetInput(ctx context.Context, text string) {
	w.update(func(s *State) {
		s.InputText = textutil.Clamp(text, s.MaxChars)
	})
	w.typing.Call(ctx)
}

// Submit replaces the input as a paste would and translates it before
// returning.
func (w *Widget) Submit(ctx context.Context, text string) {
	w.update(func(s *State) {
		s.InputText = textutil.Prepare(text, s.MaxChars)
	})
	w.Translate(ctx)
}

// Translate runs the pipeline and blocks until the output is final. It never
// fails: every outcome is written to the output text.
func (w *Widget) Translate(ctx context.Context) {
	if job := w.begin(ctx); job != nil {
		job()
	}
}

// trigger runs the synchronous steps of the pipeline now and the network call
// in the background.
func (w *Widget) trigger(ctx context.Context) {
	job := w.begin(ctx)
	if job == nil {
		return
	}
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		job()
	}()
}

// begin starts pipeline run number seq. Empty input and identical languages
// finish here; otherwise the returned job performs the request. Every run
// supersedes older ones: their in-flight request is canceled and their
// result dropped.
func (w *Widget) begin(ctx context.Context) func() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.seq++
	seq := w.seq
	if w.inflight != nil {
		w.inflight()
		w.inflight = nil
	}

	s := &w.state
	text := s.InputText
	src, tgt := s.Input.Code, s.Output.Code

	if textutil.IsBlank(text) {
		s.OutputText = ""
		s.DetectedSource = ""
		w.mu.Unlock()
		w.changed()
		return nil
	}

	if src == tgt && src != langs.Auto {
		s.OutputText = text
		s.DetectedSource = ""
		w.mu.Unlock()
		w.changed()
		return nil
	}

	s.OutputText = MsgTranslating
	if src != langs.Auto {
		s.DetectedSource = ""
	}
	rctx, cancel := context.WithCancel(ctx)
	w.inflight = cancel
	w.mu.Unlock()
	w.changed()

	req := translator.TranslateRequest{
		ID:         uuid.New().String(),
		Text:       text,
		SourceLang: src,
		TargetLang: tgt,
	}
	return func() {
		defer cancel()
		if src == langs.Auto && w.detector != nil {
			w.background(func() { w.hint(seq, text) })
		}
		w.finish(rctx, seq, req)
	}
}

// background runs fn alongside the request; Wait and Close wait for it.
func (w *Widget) background(fn func()) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		fn()
	}()
}

// hint shows the local guess for an auto input unless the endpoint already
// reported the source language for the same run.
func (w *Widget) hint(seq uint64, text string) {
	code, ok := w.detector.DetectISO(text)
	if !ok {
		return
	}
	w.mu.Lock()
	if seq != w.seq || w.detectedBy == seq {
		w.mu.Unlock()
		return
	}
	w.state.DetectedSource = code
	w.mu.Unlock()
	w.changed()
}

func (w *Widget) finish(ctx context.Context, seq uint64, req translator.TranslateRequest) {
	log := w.logger.WithFields(logrus.Fields{
		"request_id":  req.ID,
		"seq":         seq,
		"service":     w.svc.Name(),
		"source_lang": req.SourceLang,
		"target_lang": req.TargetLang,
		"text_length": textutil.Len(req.Text),
	})

	res, err := w.svc.Translate(ctx, req)

	w.mu.Lock()
	if seq != w.seq {
		w.mu.Unlock()
		log.Debug("Dropping superseded translation result")
		return
	}
	w.inflight = nil

	s := &w.state
	switch {
	case err == nil:
		s.OutputText = res.TranslatedText
		if req.SourceLang == langs.Auto && res.DetectedSource != "" {
			if o, ok := langs.Lookup(res.DetectedSource); ok {
				s.DetectedSource = o.Code
				w.detectedBy = seq
			}
		}
		log.WithField("latency", res.Latency).Debug("Translation complete")
	case errors.Is(err, translator.ErrUnexpectedResponse):
		s.OutputText = MsgUnexpected
		log.WithError(err).Warn("Unexpected translation response")
	default:
		s.OutputText = MsgFailed
		log.WithError(err).Warn("Translation failed")
	}
	w.mu.Unlock()
	w.changed()

	if err == nil && w.validator != nil {
		w.background(func() {
			if err := w.validator.Check(res.TranslatedText, req.TargetLang); err != nil {
				log.WithError(err).Info("Output language differs from target")
			}
		})
	}
}
