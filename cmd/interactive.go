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
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/valpere/tlumach/internal/view"
	"github.com/valpere/tlumach/internal/widget"
)

const interactiveHelp = `Type text to translate it. Commands:
  :src CODE       select the input language
  :tgt CODE       select the output language
  :open src|tgt   toggle a language list
  :close          close open language lists
  :swap           swap languages and texts
  :upload PATH    load a text file
  :download       save the translation
  :mic            start or stop dictation
  :dark           toggle dark mode
  :key COMBO      press a shortcut, e.g. ctrl+enter, ctrl+s, ctrl+shift+s
  :ok             dismiss the current notice
  :langs          list languages
  :quit           leave`

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Start a live translation session",
	Long:    "Start a live translation session.\n\n" + interactiveHelp,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		frames := &frameWriter{out: os.Stdout}
		sess, err := openSession(ctx, sessionOptions{
			withPrefs:    true,
			withMic:      true,
			withDetector: true,
			onChange:     frames.render,
		})
		if err != nil {
			return err
		}
		defer sess.Close()

		fmt.Println(interactiveHelp)
		frames.render(sess.widget.Snapshot())

		r := &repl{w: sess.widget, out: os.Stdout}
		lines := make(chan string)
		go func() {
			defer close(lines)
			scanner := bufio.NewScanner(os.Stdin)
			scanner.Buffer(make([]byte, 64*1024), 1024*1024)
			for scanner.Scan() {
				lines <- scanner.Text()
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return nil
			case line, ok := <-lines:
				if !ok || r.run(ctx, line) {
					return nil
				}
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

// frameWriter prints one rendered frame per state change.
type frameWriter struct {
	mu  sync.Mutex
	out io.Writer
}

func (f *frameWriter) render(s widget.State) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fmt.Fprint(f.out, view.Render(s).String())
}

type repl struct {
	w   *widget.Widget
	out io.Writer
}

// run handles one input line and reports whether the session should end.
func (r *repl) run(ctx context.Context, line string) bool {
	if !strings.HasPrefix(line, ":") {
		r.w.SetInput(ctx, line)
		return false
	}

	name, arg, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "quit", "q":
		return true
	case "help", "h":
		fmt.Fprintln(r.out, interactiveHelp)
	case "src", "tgt":
		side := widget.InputSide
		if name == "tgt" {
			side = widget.OutputSide
		}
		if err := r.w.Select(ctx, side, arg); err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
		}
	case "open":
		switch arg {
		case "src":
			r.w.Click(widget.InputSide)
		case "tgt":
			r.w.Click(widget.OutputSide)
		default:
			fmt.Fprintln(r.out, "Usage: :open src|tgt")
		}
	case "close":
		r.w.ClickOutside(widget.NoSide)
	case "swap":
		r.w.Swap(ctx)
	case "upload":
		if arg == "" {
			fmt.Fprintln(r.out, "Usage: :upload PATH")
			break
		}
		r.w.Upload(ctx, arg)
	case "download":
		r.w.Download()
	case "mic":
		if !r.w.Snapshot().MicAvailable {
			fmt.Fprintln(r.out, view.TipUnsupported)
			break
		}
		r.w.Dictate(ctx)
	case "dark":
		if err := r.w.ToggleDarkMode(ctx); err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
		}
	case "key":
		k, err := widget.ParseKey(arg)
		if err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
			break
		}
		if !r.w.HandleKey(ctx, k).Handled {
			fmt.Fprintf(r.out, "No shortcut for %s\n", arg)
		}
	case "ok":
		r.w.DismissNotice()
	case "langs":
		printLangs(r.out)
	default:
		fmt.Fprintf(r.out, "Unknown command :%s, try :help\n", name)
	}
	return false
}
