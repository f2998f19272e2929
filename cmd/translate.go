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
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/valpere/tlumach/internal/langs"
	"github.com/valpere/tlumach/internal/widget"
)

var inputFile string

var translateCmd = &cobra.Command{
	Use:   "translate [text]",
	Short: "Translate text or a file once",
	Long: `Translate the given text, or the content of a plain text file, and print the result.

With --output the translation is saved as translated-to-<lang>-<timestamp>.txt
in the given directory instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if inputFile == "" && len(args) == 0 {
			return errors.New("nothing to translate: pass text or --input")
		}
		if inputFile != "" && len(args) > 0 {
			return errors.New("pass either text or --input, not both")
		}

		ctx := cmd.Context()
		sess, err := openSession(ctx, sessionOptions{
			notify: func(msg string) { fmt.Fprintln(os.Stderr, msg) },
		})
		if err != nil {
			return err
		}
		defer sess.Close()
		w := sess.widget

		if inputFile != "" {
			w.Upload(ctx, inputFile)
			w.Wait()
		} else {
			w.Submit(ctx, args[0])
		}

		s := w.Snapshot()
		switch s.OutputText {
		case "":
			return errors.New("nothing was translated")
		case widget.MsgFailed, widget.MsgUnexpected:
			return errors.New(s.OutputText)
		}

		if s.Input.Code == langs.Auto && s.DetectedSource != "" {
			fmt.Fprintf(os.Stderr, "Detected source language: %s\n", s.DetectedSource)
		}

		if cmd.Flags().Changed("output") {
			path := w.Download()
			if path == "" {
				return errors.New("failed to save translation")
			}
			fmt.Printf("Saved translation to %s\n", path)
			return nil
		}

		fmt.Println(s.OutputText)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Plain text file to translate")
	translateCmd.Flags().StringP("output", "o", ".", "Directory to save the translation in")

	viper.BindPFlag("download_dir", translateCmd.Flags().Lookup("output"))
}
