package widget

import (
	"context"
	"errors"
	"fmt"

	"github.com/valpere/tlumach/internal/dictation"
	"github.com/valpere/tlumach/internal/download"
	"github.com/valpere/tlumach/internal/textutil"
	"github.com/valpere/tlumach/internal/upload"
)

// Upload loads a file as input. Plain text is translated; PDF and Word files
// get a placeholder input; anything else is rejected.
func (w *Widget) Upload(ctx context.Context, path string) {
	maxChars := w.Snapshot().MaxChars
	f, err := upload.Read(w.fs, path, maxChars)

	switch {
	case err == nil:
		w.update(func(s *State) {
			s.UploadTitle = f.Name
			s.InputText = f.Text
		})
		w.trigger(ctx)
	case errors.Is(err, upload.ErrRichDocument):
		w.notify(MsgRichDocument)
		w.update(func(s *State) {
			s.UploadTitle = f.Name
			s.InputText = MsgRichPlaceholder
		})
	case errors.Is(err, upload.ErrUnsupported):
		w.logger.WithField("file", f.Name).WithError(err).Info("Rejected upload")
		w.notify(MsgInvalidFile)
		w.update(func(s *State) { s.UploadTitle = DefaultUploadTitle })
	default:
		w.logger.WithField("file", path).WithError(err).Warn("Upload failed")
		w.notify(fmt.Sprintf("Could not read %s", f.Name))
		w.update(func(s *State) { s.UploadTitle = DefaultUploadTitle })
	}
}

// Download saves the output as a text file and returns its path, or "" when
// there is nothing to save or writing failed.
func (w *Widget) Download() string {
	snap := w.Snapshot()
	path, err := download.Save(w.fs, w.dir, snap.Output.Code, snap.OutputText, w.now())
	if errors.Is(err, download.ErrNothingToSave) {
		w.notify(MsgNothingToDownload)
		return ""
	}
	if err != nil {
		w.logger.WithError(err).Warn("Download failed")
		w.notify(fmt.Sprintf("Could not save the translation: %v", err))
		return ""
	}
	w.logger.WithField("path", path).Info("Saved translation")
	w.update(func(s *State) { s.LastSaved = path })
	return path
}

// Dictate toggles speech input. A successful transcript replaces the input
// and is translated immediately.
func (w *Widget) Dictate(ctx context.Context) {
	if !w.mic.Available() {
		return
	}
	input := w.Snapshot().Input.Code

	w.mic.Toggle(ctx, input, dictation.Handlers{
		OnStart: func() {
			w.update(func(s *State) { s.Listening = true })
		},
		OnResult: func(transcript string) {
			w.update(func(s *State) {
				s.InputText = textutil.Prepare(transcript, s.MaxChars)
			})
			w.trigger(ctx)
		},
		OnError: func(err error) {
			w.logger.WithError(err).Info("Dictation ended without result")
		},
		OnEnd: func() {
			w.update(func(s *State) { s.Listening = false })
		},
	})
}
