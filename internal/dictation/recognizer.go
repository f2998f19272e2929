// Package dictation runs one-shot speech-to-text sessions whose transcript
// replaces the input text.
package dictation

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"
)

// ErrNoSpeech is returned when a session ends without a transcript.
var ErrNoSpeech = errors.New("no speech recognized")

// Recognizer transcribes a single utterance in lang. It must return when ctx
// is canceled.
type Recognizer interface {
	Recognize(ctx context.Context, lang string) (string, error)
}

// ExecRecognizer runs an external speech-to-text command once per session.
// Every "{lang}" in Args is replaced by the session language; the trimmed
// stdout is the transcript.
type ExecRecognizer struct {
	Command string
	Args    []string
}

func NewExecRecognizer(command string, args []string) *ExecRecognizer {
	return &ExecRecognizer{Command: command, Args: args}
}

func (r *ExecRecognizer) Recognize(ctx context.Context, lang string) (string, error) {
	args := make([]string, len(r.Args))
	for i, a := range r.Args {
		args[i] = strings.ReplaceAll(a, "{lang}", lang)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.Command, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("%s failed: %w: %s", r.Command, err, msg)
		}
		return "", fmt.Errorf("%s failed: %w", r.Command, err)
	}

	transcript := strings.TrimSpace(stdout.String())
	if transcript == "" {
		return "", ErrNoSpeech
	}
	return transcript, nil
}

// StubRecognizer returns a fixed transcript after Delay. Useful for tests and
// for running the interactive session without a microphone.
type StubRecognizer struct {
	Transcript string
	Err        error
	Delay      time.Duration

	mu       sync.Mutex
	lastLang string
}

// LastLang is the language of the most recent session.
func (s *StubRecognizer) LastLang() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastLang
}

func (s *StubRecognizer) Recognize(ctx context.Context, lang string) (string, error) {
	s.mu.Lock()
	s.lastLang = lang
	s.mu.Unlock()
	if s.Delay > 0 {
		select {
		case <-time.After(s.Delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if s.Err != nil {
		return "", s.Err
	}
	if s.Transcript == "" {
		return "", ErrNoSpeech
	}
	return s.Transcript, nil
}
