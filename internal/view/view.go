// Package view turns widget state into what the user sees. Render is pure:
// the same State always yields the same Model.
package view

import (
	"fmt"
	"strings"

	"github.com/valpere/tlumach/internal/langs"
	"github.com/valpere/tlumach/internal/textutil"
	"github.com/valpere/tlumach/internal/widget"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	MicListeningColor = "#e74c3c"
	MicIdleColor      = "primary"

	TipListening   = "Listening..."
	TipIdle        = "Click to speak"
	TipUnsupported = "Speech recognition not available"

	SwapDisabled  = "swap-disabled"
	SwapAnimation = "swap-animation"
)

type Option struct {
	Code   string
	Label  string
	Active bool
}

type Picker struct {
	Label    string
	Expanded bool
	Options  []Option
}

type Mic struct {
	Enabled bool
	Color   string
	Tooltip string
}

type Model struct {
	Theme       string
	Input       Picker
	Output      Picker
	InputText   string
	OutputText  string
	CharCounter string
	SwapState   string
	UploadTitle string
	LastSaved   string
	Mic         Mic
	Notice      string
}

func Render(s widget.State) Model {
	m := Model{
		Theme:       ThemeLight,
		Input:       picker(langs.All(), s.Input, s.InputExpanded),
		Output:      picker(langs.Outputs(), s.Output, s.OutputExpanded),
		InputText:   s.InputText,
		OutputText:  s.OutputText,
		CharCounter: fmt.Sprintf("%d/%d", textutil.Len(s.InputText), s.MaxChars),
		UploadTitle: s.UploadTitle,
		LastSaved:   s.LastSaved,
		Mic:         mic(s),
		Notice:      s.Notice,
	}
	if s.DarkMode {
		m.Theme = ThemeDark
	}
	switch {
	case s.SwapRefused:
		m.SwapState = SwapDisabled
	case s.Swapping:
		m.SwapState = SwapAnimation
	}
	if s.Input.Code == langs.Auto && s.DetectedSource != "" {
		if o, ok := langs.Lookup(s.DetectedSource); ok {
			m.Input.Label = fmt.Sprintf("%s, %s detected", s.Input.Label, o.Name)
		}
	}
	return m
}

func picker(options []langs.Option, sel widget.Selection, expanded bool) Picker {
	p := Picker{Label: sel.Label, Expanded: expanded}
	if p.Label == "" {
		if o, ok := langs.Lookup(sel.Code); ok {
			p.Label = o.Label()
		}
	}
	// The option list is only materialised while the picker is open.
	if expanded {
		p.Options = make([]Option, len(options))
		for i, o := range options {
			p.Options[i] = Option{Code: o.Code, Label: o.Label(), Active: o.Code == sel.Code}
		}
	}
	return p
}

func mic(s widget.State) Mic {
	switch {
	case !s.MicAvailable:
		return Mic{Tooltip: TipUnsupported}
	case s.Listening:
		return Mic{Enabled: true, Color: MicListeningColor, Tooltip: TipListening}
	default:
		return Mic{Enabled: true, Color: MicIdleColor, Tooltip: TipIdle}
	}
}

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorDim    = "\033[2m"
)

// String draws the model as a terminal frame.
func (m Model) String() string {
	var b strings.Builder
	rule := strings.Repeat("─", 60)

	fmt.Fprintf(&b, "%s\n", rule)
	swap := "⇄"
	switch m.SwapState {
	case SwapDisabled:
		swap = colorRed + "⇄" + colorReset
	case SwapAnimation:
		swap = colorBlue + "⇄" + colorReset
	}
	fmt.Fprintf(&b, " %s  %s  %s\n", m.Input.Label, swap, m.Output.Label)
	writeOptions(&b, m.Input)
	writeOptions(&b, m.Output)
	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, " %s\n", m.InputText)
	fmt.Fprintf(&b, " %s%s%s\n", colorDim, m.CharCounter, colorReset)
	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, " %s\n", m.OutputText)
	fmt.Fprintf(&b, "%s\n", rule)

	micState := m.Mic.Tooltip
	if m.Mic.Color == MicListeningColor {
		micState = colorRed + micState + colorReset
	}
	fmt.Fprintf(&b, " [%s] [mic: %s] [theme: %s]\n", m.UploadTitle, micState, m.Theme)
	if m.LastSaved != "" {
		fmt.Fprintf(&b, " saved: %s\n", m.LastSaved)
	}
	if m.Notice != "" {
		fmt.Fprintf(&b, " %s! %s%s\n", colorYellow, m.Notice, colorReset)
	}
	return b.String()
}

func writeOptions(b *strings.Builder, p Picker) {
	for _, o := range p.Options {
		marker := " "
		if o.Active {
			marker = "*"
		}
		fmt.Fprintf(b, "   %s %-6s %s\n", marker, o.Code, o.Label)
	}
}
