package cmd

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/valpere/tlumach/internal/store"
	"github.com/valpere/tlumach/internal/translator"
	"github.com/valpere/tlumach/internal/widget"
)

func newTestRepl(t *testing.T) (*repl, *bytes.Buffer) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[[["Bonjour","Hello",null,null]],null,"en"]`))
	}))
	t.Cleanup(server.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)

	w, err := widget.New(widget.Options{
		Service:  translator.NewGTXService(translator.ServiceConfig{Endpoint: server.URL}, log),
		Fs:       afero.NewMemMapFs(),
		Logger:   log,
		Debounce: 10 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("failed to create widget: %v", err)
	}
	t.Cleanup(w.Close)

	var out bytes.Buffer
	return &repl{w: w, out: &out}, &out
}

func TestRepl_Commands(t *testing.T) {
	r, out := newTestRepl(t)
	ctx := context.Background()

	if r.run(ctx, ":tgt fr") {
		t.Fatal(":tgt must not end the session")
	}
	r.run(ctx, "Hello")
	time.Sleep(50 * time.Millisecond)
	r.w.Wait()

	s := r.w.Snapshot()
	if s.Output.Code != "fr" {
		t.Errorf("expected output fr, got %q", s.Output.Code)
	}
	if s.OutputText != "Bonjour" {
		t.Errorf("expected 'Bonjour', got %q", s.OutputText)
	}

	r.run(ctx, ":tgt auto")
	if !strings.Contains(out.String(), "Error:") {
		t.Errorf("expected error for auto output, got %q", out.String())
	}

	r.run(ctx, ":open tgt")
	if !r.w.Snapshot().OutputExpanded {
		t.Error("expected output list to open")
	}
	r.run(ctx, ":close")
	if r.w.Snapshot().OutputExpanded {
		t.Error("expected output list to close")
	}

	out.Reset()
	r.run(ctx, ":bogus")
	if !strings.Contains(out.String(), "Unknown command") {
		t.Errorf("unexpected output %q", out.String())
	}

	if !r.run(ctx, ":quit") {
		t.Error(":quit must end the session")
	}
}

func TestRepl_KeyAndMic(t *testing.T) {
	r, out := newTestRepl(t)
	ctx := context.Background()

	r.run(ctx, ":key ctrl+shift+s")
	if !r.w.Snapshot().SwapRefused {
		t.Error("expected swap to be refused for auto input")
	}

	r.run(ctx, ":key alt+x")
	if !strings.Contains(out.String(), "Error:") {
		t.Errorf("expected parse error, got %q", out.String())
	}

	out.Reset()
	r.run(ctx, ":mic")
	if !strings.Contains(out.String(), "not available") {
		t.Errorf("expected mic unavailable message, got %q", out.String())
	}
}

func TestSetDarkMode(t *testing.T) {
	db, err := store.New(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer db.Close()
	ctx := context.Background()

	steps := []struct {
		action string
		want   bool
	}{
		{"", false},
		{"on", true},
		{"", true},
		{"toggle", false},
		{"toggle", true},
		{"off", false},
	}
	for _, st := range steps {
		got, err := setDarkMode(ctx, db, st.action)
		if err != nil {
			t.Fatalf("action %q failed: %v", st.action, err)
		}
		if got != st.want {
			t.Errorf("action %q: expected %v, got %v", st.action, st.want, got)
		}
	}

	if _, err := setDarkMode(ctx, db, "dim"); err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestPrintLangs(t *testing.T) {
	var out bytes.Buffer
	printLangs(&out)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if !strings.HasPrefix(lines[0], "CODE") {
		t.Errorf("expected header, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "auto") {
		t.Errorf("expected auto first, got %q", lines[1])
	}
}
