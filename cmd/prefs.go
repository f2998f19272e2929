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

	"github.com/spf13/cobra"

	"github.com/valpere/tlumach/internal/store"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change stored preferences",
}

var darkModeCmd = &cobra.Command{
	Use:       "dark-mode [on|off|toggle]",
	Short:     "Show or set the dark mode preference",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"on", "off", "toggle"},
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.New(appCfg.DB)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		action := ""
		if len(args) > 0 {
			action = args[0]
		}
		dark, err := setDarkMode(cmd.Context(), db, action)
		if err != nil {
			return err
		}
		state := "off"
		if dark {
			state = "on"
		}
		fmt.Printf("Dark mode: %s\n", state)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(prefsCmd)
	prefsCmd.AddCommand(darkModeCmd)
}

// setDarkMode applies action ("" only reads) and returns the stored value.
func setDarkMode(ctx context.Context, db *store.Store, action string) (bool, error) {
	dark, err := db.GetBool(ctx, store.DarkModeKey)
	if err != nil {
		return false, fmt.Errorf("failed to read preference: %w", err)
	}
	switch action {
	case "":
		return dark, nil
	case "on":
		dark = true
	case "off":
		dark = false
	case "toggle":
		dark = !dark
	default:
		return dark, fmt.Errorf("unknown action %q", action)
	}
	if err := db.SetBool(ctx, store.DarkModeKey, dark); err != nil {
		return dark, fmt.Errorf("failed to save preference: %w", err)
	}
	return dark, nil
}
