package widget

import (
	"context"
	"errors"
	"fmt"

	"github.com/valpere/tlumach/internal/langs"
)

var (
	ErrUnknownLanguage = errors.New("unknown language")
	// ErrAutoOutput is returned when auto is chosen as the target.
	ErrAutoOutput = errors.New("auto detection is only valid for the input language")
)

// Toggle flips the expansion of one picker.
func (w *Widget) Toggle(side Side) {
	w.update(func(s *State) {
		e := s.expanded(side)
		*e = !*e
	})
}

func (w *Widget) Expand(side Side) {
	w.update(func(s *State) { *s.expanded(side) = true })
}

func (w *Widget) Collapse(side Side) {
	w.update(func(s *State) { *s.expanded(side) = false })
}

// ClickOutside collapses every picker except target. NoSide collapses both.
func (w *Widget) ClickOutside(target Side) {
	w.update(func(s *State) {
		for _, side := range []Side{InputSide, OutputSide} {
			if side != target {
				*s.expanded(side) = false
			}
		}
	})
}

// Click is a click on a picker: it toggles that picker and collapses the other.
func (w *Widget) Click(side Side) {
	w.update(func(s *State) {
		e := s.expanded(side)
		*e = !*e
		other := InputSide
		if side == InputSide {
			other = OutputSide
		}
		*s.expanded(other) = false
	})
}

// Select makes code the active option of side, collapses the picker and
// translates right away.
func (w *Widget) Select(ctx context.Context, side Side, code string) error {
	o, ok := langs.Lookup(code)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownLanguage, code)
	}
	if side == OutputSide && o.Code == langs.Auto {
		return ErrAutoOutput
	}

	w.update(func(s *State) {
		*s.selection(side) = selectionOf(o)
		*s.expanded(side) = false
	})
	w.trigger(ctx)
	return nil
}
