package widget

import (
	"context"
	"fmt"

	"github.com/valpere/tlumach/internal/store"
)

// LoadPreferences applies the persisted theme. Called once at start-up.
func (w *Widget) LoadPreferences(ctx context.Context) error {
	if w.prefs == nil {
		return nil
	}
	dark, err := w.prefs.GetBool(ctx, store.DarkModeKey)
	if err != nil {
		return fmt.Errorf("failed to read preferences: %w", err)
	}
	w.update(func(s *State) { s.DarkMode = dark })
	return nil
}

// ToggleDarkMode flips the theme and persists it before returning.
func (w *Widget) ToggleDarkMode(ctx context.Context) error {
	var dark bool
	w.update(func(s *State) {
		s.DarkMode = !s.DarkMode
		dark = s.DarkMode
	})
	if w.prefs == nil {
		return nil
	}
	if err := w.prefs.SetBool(ctx, store.DarkModeKey, dark); err != nil {
		w.logger.WithError(err).Warn("Failed to save theme preference")
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}
