package widget

import (
	"context"

	"github.com/valpere/tlumach/internal/langs"
	"github.com/valpere/tlumach/internal/textutil"
)

// Swap exchanges the two languages and the two texts, then translates the
// new pair. It is refused while the input language is auto.
func (w *Widget) Swap(ctx context.Context) bool {
	w.mu.Lock()
	if w.state.Input.Code == langs.Auto {
		w.mu.Unlock()
		w.cue(func(s *State) *bool { return &s.SwapRefused }, refusedCue)
		return false
	}

	s := &w.state
	s.Input, s.Output = s.Output, s.Input
	s.InputText, s.OutputText = textutil.Clamp(s.OutputText, s.MaxChars), s.InputText
	s.DetectedSource = ""
	w.mu.Unlock()

	w.cue(func(s *State) *bool { return &s.Swapping }, swapCue)
	w.trigger(ctx)
	return true
}
