package widget

import (
	"github.com/valpere/tlumach/internal/langs"
)

// Side identifies one of the two language pickers.
type Side int

const (
	NoSide Side = iota - 1
	InputSide
	OutputSide
)

func (s Side) String() string {
	switch s {
	case InputSide:
		return "input"
	case OutputSide:
		return "output"
	}
	return "none"
}

// User-visible strings written to the output or shown as notices.
const (
	MsgTranslating       = "Translating..."
	MsgUnexpected        = "Translation error: Unexpected API response"
	MsgFailed            = "Translation failed. Please try again later."
	MsgRichDocument      = "Note: Only text content can be extracted from these file types. For best results, use plain text files."
	MsgRichPlaceholder   = "File format requires additional processing.\nPlease copy and paste the text directly for best results."
	MsgInvalidFile       = "Please upload a valid file (TXT, PDF, DOC, or DOCX)"
	MsgNothingToDownload = "There is no translated text to download"
	DefaultUploadTitle   = "Upload a Document"
)

// Selection is the active option of one picker.
type Selection struct {
	Code  string
	Label string
}

func selectionOf(o langs.Option) Selection {
	return Selection{Code: o.Code, Label: o.Label()}
}

// State is everything the view renders. Snapshots are plain values.
type State struct {
	Input  Selection
	Output Selection

	InputExpanded  bool
	OutputExpanded bool

	InputText  string
	OutputText string
	MaxChars   int

	// DetectedSource is the language guessed for an auto input, if known.
	DetectedSource string

	UploadTitle string
	LastSaved   string

	SwapRefused bool
	Swapping    bool

	MicAvailable bool
	Listening    bool

	DarkMode bool

	// Notice is the last blocking message, cleared by DismissNotice.
	Notice string
}

func (s *State) selection(side Side) *Selection {
	if side == OutputSide {
		return &s.Output
	}
	return &s.Input
}

func (s *State) expanded(side Side) *bool {
	if side == OutputSide {
		return &s.OutputExpanded
	}
	return &s.InputExpanded
}
