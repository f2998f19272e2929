// Package config decodes tlumach settings from flags, environment and the
// optional tlumach.yaml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/valpere/tlumach/internal/langs"
	"github.com/valpere/tlumach/internal/textutil"
	"github.com/valpere/tlumach/internal/translator"
)

const (
	Name      = "tlumach"
	EnvPrefix = "TLUMACH"
)

type Dictation struct {
	Command string   `mapstructure:"command"`
	Args    []string `mapstructure:"args"`
	Lang    string   `mapstructure:"lang"`
}

type Config struct {
	Backend     string        `mapstructure:"backend"`
	Endpoint    string        `mapstructure:"endpoint"`
	Client      string        `mapstructure:"client"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Credentials string        `mapstructure:"credentials"`
	Project     string        `mapstructure:"project"`

	Source   string        `mapstructure:"source"`
	Target   string        `mapstructure:"target"`
	Debounce time.Duration `mapstructure:"debounce"`
	MaxChars int           `mapstructure:"max_chars"`

	DB          string    `mapstructure:"db"`
	DownloadDir string    `mapstructure:"download_dir"`
	Dictation   Dictation `mapstructure:"dictation"`
	LogLevel    string    `mapstructure:"log_level"`
}

// Dir is where the config file and the preference database live by default.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", Name)
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("backend", translator.BackendGTX)
	v.SetDefault("endpoint", translator.DefaultEndpoint)
	v.SetDefault("client", translator.DefaultClient)
	v.SetDefault("timeout", translator.DefaultTimeout)
	v.SetDefault("source", langs.Auto)
	v.SetDefault("target", "en")
	v.SetDefault("debounce", 500*time.Millisecond)
	v.SetDefault("max_chars", textutil.MaxChars)
	v.SetDefault("db", filepath.Join(Dir(), Name+".db"))
	v.SetDefault("download_dir", ".")
	v.SetDefault("dictation.lang", "en")
	v.SetDefault("log_level", "info")
}

// Init wires the file search path and environment lookup. A missing config
// file is not an error.
func Init(v *viper.Viper, file string) error {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(Name)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(Dir())
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Backend {
	case translator.BackendGTX, translator.BackendCloud:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if _, ok := langs.Lookup(c.Source); !ok {
		return fmt.Errorf("unknown source language %q", c.Source)
	}
	target, ok := langs.Lookup(c.Target)
	if !ok {
		return fmt.Errorf("unknown target language %q", c.Target)
	}
	if target.Code == langs.Auto {
		return fmt.Errorf("target language cannot be %q", c.Target)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.Debounce < 0 {
		return fmt.Errorf("debounce cannot be negative, got %s", c.Debounce)
	}
	if c.MaxChars <= 0 {
		return fmt.Errorf("max_chars must be positive, got %d", c.MaxChars)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	return nil
}

func (c *Config) Service() translator.ServiceConfig {
	return translator.ServiceConfig{
		Credentials: c.Credentials,
		Endpoint:    c.Endpoint,
		Client:      c.Client,
		Timeout:     c.Timeout,
		ProjectID:   c.Project,
	}
}

// Logger builds the process logger at the configured level.
func (c *Config) Logger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}
