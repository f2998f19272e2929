/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/valpere/tlumach/internal/detector"
	"github.com/valpere/tlumach/internal/dictation"
	"github.com/valpere/tlumach/internal/store"
	"github.com/valpere/tlumach/internal/translator"
	"github.com/valpere/tlumach/internal/widget"
)

type sessionOptions struct {
	withPrefs    bool
	withMic      bool
	withDetector bool
	onChange     func(widget.State)
	notify       func(string)
}

// session is a widget wired to the configured backend and, optionally, the
// preference database and the speech recognizer.
type session struct {
	widget *widget.Widget
	prefs  *store.Store
}

func openSession(ctx context.Context, opts sessionOptions) (*session, error) {
	svc, err := translator.New(appCfg.Backend, appCfg.Service(), logger)
	if err != nil {
		return nil, err
	}
	if err := svc.IsAvailable(ctx); err != nil {
		return nil, fmt.Errorf("%s backend unavailable: %w", svc.Name(), err)
	}

	s := &session{}
	wopts := widget.Options{
		Service:       svc,
		Fs:            afero.NewOsFs(),
		Logger:        logger,
		DownloadDir:   appCfg.DownloadDir,
		Debounce:      appCfg.Debounce,
		MaxChars:      appCfg.MaxChars,
		DefaultSource: appCfg.Source,
		DefaultTarget: appCfg.Target,
		OnChange:      opts.onChange,
		Notify:        opts.notify,
	}

	// The local language hint is only rendered by live sessions.
	if opts.withDetector {
		wopts.Detector = detector.New()
	}
	if opts.withPrefs {
		s.prefs, err = store.New(appCfg.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		wopts.Prefs = s.prefs
	}
	if opts.withMic {
		var rec dictation.Recognizer
		if appCfg.Dictation.Command != "" {
			rec = dictation.NewExecRecognizer(appCfg.Dictation.Command, appCfg.Dictation.Args)
		}
		wopts.Mic = dictation.NewMic(rec, appCfg.Dictation.Lang)
	}

	s.widget, err = widget.New(wopts)
	if err != nil {
		s.Close()
		return nil, err
	}
	if err := s.widget.LoadPreferences(ctx); err != nil {
		logger.WithError(err).Warn("Using default theme")
	}
	return s, nil
}

func (s *session) Close() {
	if s.widget != nil {
		s.widget.Close()
	}
	if s.prefs != nil {
		s.prefs.Close()
	}
}
