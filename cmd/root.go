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
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/valpere/tlumach/internal/config"
)

var version = "0.1.0"

var (
	cfgFile string
	appCfg  *config.Config
	logger  *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tlumach",
	Short: "Terminal translation widget",
	Long: `A translation widget for the terminal: pick an input and an output language,
type or upload text, and get it translated through the Google Translate endpoint.

Use "tlumach interactive" for a live session or "tlumach translate" for one-shot use.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v := viper.GetViper()
		if err := config.Init(v, cfgFile); err != nil {
			return err
		}
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}
		appCfg = cfg
		logger = cfg.Logger()
		if used := v.ConfigFileUsed(); used != "" {
			logger.WithField("file", used).Debug("Loaded config")
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default ./tlumach.yaml or ~/.config/tlumach/tlumach.yaml)")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("backend", "gtx", "Translation backend: gtx or cloud")
	flags.String("endpoint", "", "Translate endpoint URL for the gtx backend")
	flags.StringP("credentials", "c", "", "Path to Google Cloud credentials (cloud backend)")
	flags.StringP("project", "p", "", "Google Cloud project ID (cloud backend)")
	flags.String("db", "", "Preference database path")

	flags.StringP("source", "s", "auto", "Input language code")
	flags.StringP("target", "t", "en", "Output language code")

	viper.BindPFlag("log_level", flags.Lookup("log-level"))
	viper.BindPFlag("backend", flags.Lookup("backend"))
	viper.BindPFlag("endpoint", flags.Lookup("endpoint"))
	viper.BindPFlag("credentials", flags.Lookup("credentials"))
	viper.BindPFlag("project", flags.Lookup("project"))
	viper.BindPFlag("db", flags.Lookup("db"))
	viper.BindPFlag("source", flags.Lookup("source"))
	viper.BindPFlag("target", flags.Lookup("target"))
}
