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
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/valpere/tlumach/internal/langs"
)

var langsCmd = &cobra.Command{
	Use:   "langs",
	Short: "List the supported languages",
	Run: func(cmd *cobra.Command, args []string) {
		printLangs(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(langsCmd)
}

func printLangs(out io.Writer) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tNATIVE")
	for _, o := range langs.All() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", o.Code, o.Name, o.Native)
	}
	w.Flush()
}
