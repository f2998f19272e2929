package widget

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/valpere/tlumach/internal/translator"
)

func TestTranslate_EmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t "} {
		svc := &mockService{}
		w, _ := newTestWidget(t, svc)
		setState(w, func(s *State) {
			s.InputText = text
			s.OutputText = "stale"
		})

		w.Translate(context.Background())

		if got := w.Snapshot().OutputText; got != "" {
			t.Errorf("input %q: expected empty output, got %q", text, got)
		}
		if svc.callCount.Load() != 0 {
			t.Errorf("input %q: expected no network call", text)
		}
	}
}

func TestTranslate_IdentityShortCircuit(t *testing.T) {
	for _, code := range []string{"en", "fr", "uk"} {
		svc := &mockService{}
		w, _ := newTestWidget(t, svc)
		setState(w, func(s *State) {
			s.Input = Selection{Code: code}
			s.Output = Selection{Code: code}
			s.InputText = "  Same text  "
		})

		w.Translate(context.Background())

		if got := w.Snapshot().OutputText; got != "  Same text  " {
			t.Errorf("%s: expected verbatim copy, got %q", code, got)
		}
		if svc.callCount.Load() != 0 {
			t.Errorf("%s: expected no network call", code)
		}
	}
}

func TestTranslate_AutoToSameCodeCallsService(t *testing.T) {
	svc := &mockService{}
	w, _ := newTestWidget(t, svc)
	setState(w, func(s *State) { s.InputText = "hello" })

	w.Translate(context.Background())

	if svc.callCount.Load() != 1 {
		t.Errorf("expected one call for auto source, got %d", svc.callCount.Load())
	}
	req := svc.lastRequest(t)
	if req.SourceLang != "auto" || req.TargetLang != "en" || req.Text != "hello" {
		t.Errorf("unexpected request %+v", req)
	}
	if req.ID == "" {
		t.Error("expected request id")
	}
}

func TestTranslate_ShowsPlaceholderWhileWaiting(t *testing.T) {
	release := make(chan struct{})
	svc := &mockService{translateFunc: func(ctx context.Context, req translator.TranslateRequest) (*translator.ServiceResult, error) {
		<-release
		return &translator.ServiceResult{TranslatedText: "Bonjour"}, nil
	}}
	w, _ := newTestWidget(t, svc)
	setState(w, func(s *State) { s.InputText = "Hello" })

	w.trigger(context.Background())
	if got := w.Snapshot().OutputText; got != MsgTranslating {
		t.Errorf("expected %q, got %q", MsgTranslating, got)
	}

	close(release)
	w.Wait()
	if got := w.Snapshot().OutputText; got != "Bonjour" {
		t.Errorf("expected 'Bonjour', got %q", got)
	}
}

func TestTranslate_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "unexpected shape", err: fmt.Errorf("%w: bad", translator.ErrUnexpectedResponse), want: MsgUnexpected},
		{name: "request failed", err: fmt.Errorf("%w: status 500", translator.ErrRequestFailed), want: MsgFailed},
		{name: "unclassified error", err: errors.New("boom"), want: MsgFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{translateFunc: func(ctx context.Context, req translator.TranslateRequest) (*translator.ServiceResult, error) {
				return &translator.ServiceResult{Error: tt.err.Error()}, tt.err
			}}
			w, _ := newTestWidget(t, svc)
			setState(w, func(s *State) { s.InputText = "Hello" })

			w.Translate(context.Background())

			if got := w.Snapshot().OutputText; got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTranslate_AgainstEndpoint(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{name: "segments joined", status: 200, body: `[[["Hola ","Hello "],["Mundo","World"]]]`, want: "Hola Mundo"},
		{name: "server error with valid body", status: 500, body: `[[["Hola","Hello"]]]`, want: MsgFailed},
		{name: "not found", status: 404, body: `nope`, want: MsgFailed},
		{name: "malformed shape", status: 200, body: `{"sentences":[]}`, want: MsgUnexpected},
		{name: "invalid json", status: 200, body: `<html>`, want: MsgFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			svc := translator.NewGTXService(translator.ServiceConfig{Endpoint: server.URL}, quietLogger())
			w, _ := newTestWidget(t, svc)
			setState(w, func(s *State) {
				s.Input = Selection{Code: "en"}
				s.Output = Selection{Code: "es"}
				s.InputText = "Hello World"
			})

			w.Translate(context.Background())

			if got := w.Snapshot().OutputText; got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTranslate_StaleResponseDropped(t *testing.T) {
	releaseFirst := make(chan struct{})
	firstStarted := make(chan struct{})
	svc := &mockService{translateFunc: func(ctx context.Context, req translator.TranslateRequest) (*translator.ServiceResult, error) {
		if req.Text == "first" {
			close(firstStarted)
			<-releaseFirst
			return &translator.ServiceResult{TranslatedText: "FIRST"}, nil
		}
		return &translator.ServiceResult{TranslatedText: "SECOND"}, nil
	}}
	w, _ := newTestWidget(t, svc)

	setState(w, func(s *State) { s.InputText = "first" })
	w.trigger(context.Background())
	<-firstStarted

	setState(w, func(s *State) { s.InputText = "second" })
	w.Translate(context.Background())
	if got := w.Snapshot().OutputText; got != "SECOND" {
		t.Fatalf("expected 'SECOND', got %q", got)
	}

	close(releaseFirst)
	w.Wait()

	if got := w.Snapshot().OutputText; got != "SECOND" {
		t.Errorf("stale response overwrote output: got %q", got)
	}
}

func TestTranslate_NewerRunCancelsInflight(t *testing.T) {
	canceled := make(chan struct{})
	started := make(chan struct{})
	svc := &mockService{translateFunc: func(ctx context.Context, req translator.TranslateRequest) (*translator.ServiceResult, error) {
		close(started)
		<-ctx.Done()
		close(canceled)
		return &translator.ServiceResult{}, fmt.Errorf("%w: %v", translator.ErrRequestFailed, ctx.Err())
	}}
	w, _ := newTestWidget(t, svc)
	setState(w, func(s *State) { s.InputText = "slow" })
	w.trigger(context.Background())
	<-started

	// Clearing the input supersedes the request without a new call.
	setState(w, func(s *State) { s.InputText = "" })
	w.Translate(context.Background())

	select {
	case <-canceled:
	case <-time.After(2 * time.Second):
		t.Fatal("superseded request was not canceled")
	}
	w.Wait()
	if got := w.Snapshot().OutputText; got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestSetInput_DebouncesTranslation(t *testing.T) {
	svc := &mockService{}
	w, _ := newTestWidget(t, svc)

	for _, s := range []string{"H", "He", "Hel", "Hell", "Hello"} {
		w.SetInput(context.Background(), s)
	}
	if svc.callCount.Load() != 0 {
		t.Error("expected no call inside the debounce window")
	}

	deadline := time.Now().Add(2 * time.Second)
	for svc.callCount.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(50 * time.Millisecond)
	w.Wait()

	if got := svc.callCount.Load(); got != 1 {
		t.Fatalf("expected exactly 1 call, got %d", got)
	}
	if req := svc.lastRequest(t); req.Text != "Hello" {
		t.Errorf("expected latest text 'Hello', got %q", req.Text)
	}
}

func TestSetInput_ClampsImmediately(t *testing.T) {
	w, _ := newTestWidget(t, &mockService{})
	w.SetInput(context.Background(), strings.Repeat("a", 5100))

	if n := len([]rune(w.Snapshot().InputText)); n != 5000 {
		t.Errorf("expected 5000 characters, got %d", n)
	}
}

func TestTranslate_RequestTextNeverExceedsLimit(t *testing.T) {
	svc := &mockService{}
	w, _ := newTestWidget(t, svc)

	w.SetInput(context.Background(), strings.Repeat("ж", 7000))
	w.Translate(context.Background())

	if n := len([]rune(svc.lastRequest(t).Text)); n != 5000 {
		t.Errorf("expected request text of 5000 characters, got %d", n)
	}
}

type fixedDetector struct{ code string }

func (d fixedDetector) DetectISO(string) (string, bool) { return d.code, d.code != "" }

func TestTranslate_DetectedSource(t *testing.T) {
	svc := &mockService{translateFunc: func(ctx context.Context, req translator.TranslateRequest) (*translator.ServiceResult, error) {
		return &translator.ServiceResult{TranslatedText: "Hello", DetectedSource: "fr"}, nil
	}}
	w, _ := newTestWidget(t, svc, func(o *Options) { o.Detector = fixedDetector{code: "it"} })
	setState(w, func(s *State) { s.InputText = "Bonjour" })

	w.Translate(context.Background())
	w.Wait()

	if got := w.Snapshot().DetectedSource; got != "fr" {
		t.Errorf("expected endpoint detection 'fr' to win, got %q", got)
	}
}

func TestTranslate_DetectorHintWithoutEndpointDetection(t *testing.T) {
	w, _ := newTestWidget(t, &mockService{}, func(o *Options) { o.Detector = fixedDetector{code: "it"} })
	setState(w, func(s *State) { s.InputText = "Ciao a tutti" })

	w.Translate(context.Background())
	w.Wait()

	if got := w.Snapshot().DetectedSource; got != "it" {
		t.Errorf("expected local hint 'it', got %q", got)
	}
}

func TestSubmit_TranslatesWithoutDebounce(t *testing.T) {
	svc := &mockService{}
	w, _ := newTestWidget(t, svc, func(o *Options) { o.Debounce = time.Hour })

	w.Submit(context.Background(), "cafe\u0301")

	s := w.Snapshot()
	if s.InputText != "caf\u00e9" {
		t.Errorf("expected NFC input, got %q", s.InputText)
	}
	if s.OutputText != "mock result" {
		t.Errorf("expected translated output, got %q", s.OutputText)
	}
	if svc.callCount.Load() != 1 {
		t.Errorf("expected 1 call, got %d", svc.callCount.Load())
	}
}

func TestTranslate_LogsOutputLanguageMismatch(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	svc := &mockService{translateFunc: func(ctx context.Context, req translator.TranslateRequest) (*translator.ServiceResult, error) {
		return &translator.ServiceResult{TranslatedText: "Ceci est une phrase assez longue pour la détection."}, nil
	}}
	w, _ := newTestWidget(t, svc, func(o *Options) {
		o.Logger = logger
		o.Detector = fixedDetector{code: "fr"}
	})
	setState(w, func(s *State) {
		s.Output = Selection{Code: "uk", Label: "Ukrainian (Українська)"}
		s.InputText = "This is a sentence long enough for detection."
	})

	w.Translate(context.Background())
	w.Wait()

	found := false
	for _, e := range hook.AllEntries() {
		if e.Message == "Output language differs from target" {
			found = true
		}
	}
	if !found {
		t.Error("expected mismatch to be logged")
	}
	if got := w.Snapshot().OutputText; !strings.HasPrefix(got, "Ceci") {
		t.Errorf("mismatch must not alter the output, got %q", got)
	}
}

type blockingDetector struct{ release chan struct{} }

func (d blockingDetector) DetectISO(string) (string, bool) {
	<-d.release
	return "it", true
}

func TestTranslate_SlowDetectorDoesNotDelayRequest(t *testing.T) {
	det := blockingDetector{release: make(chan struct{})}
	svc := &mockService{}
	w, _ := newTestWidget(t, svc, func(o *Options) { o.Detector = det })
	setState(w, func(s *State) { s.InputText = "Ciao a tutti" })

	done := make(chan struct{})
	go func() {
		w.Translate(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		close(det.release)
		t.Fatal("translation waited for language detection")
	}
	if svc.callCount.Load() != 1 {
		t.Errorf("expected 1 call, got %d", svc.callCount.Load())
	}
	if got := w.Snapshot().OutputText; got != "mock result" {
		t.Errorf("expected 'mock result', got %q", got)
	}

	close(det.release)
	w.Wait()
	if got := w.Snapshot().DetectedSource; got != "it" {
		t.Errorf("expected hint 'it' once detection finished, got %q", got)
	}
}

func TestTranslate_LateHintKeepsEndpointDetection(t *testing.T) {
	det := blockingDetector{release: make(chan struct{})}
	svc := &mockService{translateFunc: func(ctx context.Context, req translator.TranslateRequest) (*translator.ServiceResult, error) {
		return &translator.ServiceResult{TranslatedText: "Hello", DetectedSource: "fr"}, nil
	}}
	w, _ := newTestWidget(t, svc, func(o *Options) { o.Detector = det })
	setState(w, func(s *State) { s.InputText = "Bonjour" })

	w.Translate(context.Background())
	close(det.release)
	w.Wait()

	if got := w.Snapshot().DetectedSource; got != "fr" {
		t.Errorf("expected endpoint detection 'fr', got %q", got)
	}
}

func TestTranslate_LogsTextLengthInCharacters(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	w, _ := newTestWidget(t, &mockService{}, func(o *Options) { o.Logger = logger })
	setState(w, func(s *State) { s.InputText = "Привіт" })

	w.Translate(context.Background())

	for _, e := range hook.AllEntries() {
		if n, ok := e.Data["text_length"]; ok {
			if n != 6 {
				t.Errorf("expected text_length 6, got %v", n)
			}
			return
		}
	}
	t.Error("expected a log entry with text_length")
}
