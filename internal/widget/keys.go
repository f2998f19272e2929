package widget

import (
	"context"
	"fmt"
	"strings"
)

// Key is a key press with its modifiers. Name follows the browser convention:
// "Enter", or the produced character ("s", or "S" with shift).
type Key struct {
	Ctrl  bool
	Shift bool
	Name  string
}

// KeyResult says whether a shortcut ran and whether the host must suppress its
// default action for the key.
type KeyResult struct {
	Handled        bool
	PreventDefault bool
}

// ParseKey reads combinations like "ctrl+enter" or "ctrl+shift+s".
func ParseKey(combo string) (Key, error) {
	var k Key
	parts := strings.Split(strings.TrimSpace(combo), "+")
	for i, p := range parts {
		p = strings.TrimSpace(p)
		last := i == len(parts)-1
		switch {
		case !last && strings.EqualFold(p, "ctrl"):
			k.Ctrl = true
		case !last && strings.EqualFold(p, "shift"):
			k.Shift = true
		case last && strings.EqualFold(p, "enter"):
			k.Name = "Enter"
		case last && len(p) == 1:
			k.Name = strings.ToLower(p)
		default:
			return Key{}, fmt.Errorf("invalid key combination %q", combo)
		}
	}
	if k.Shift && len(k.Name) == 1 {
		k.Name = strings.ToUpper(k.Name)
	}
	return k, nil
}

// HandleKey dispatches the widget shortcuts:
//
//	Ctrl+Enter      translate
//	Ctrl+S          download
//	Ctrl+Shift+S    swap languages
func (w *Widget) HandleKey(ctx context.Context, k Key) KeyResult {
	if !k.Ctrl {
		return KeyResult{}
	}
	switch {
	case k.Name == "Enter":
		w.trigger(ctx)
		return KeyResult{Handled: true}
	case k.Name == "s" && !k.Shift:
		w.Download()
		return KeyResult{Handled: true, PreventDefault: true}
	case k.Name == "S" && k.Shift:
		w.Swap(ctx)
		return KeyResult{Handled: true, PreventDefault: true}
	}
	return KeyResult{}
}
