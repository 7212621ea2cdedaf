package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/featurekit/vue-feature/internal/branding"
	"github.com/featurekit/vue-feature/internal/logging"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Configuration keys.
const (
	KeyOutputDir    = "output_dir"
	KeyTable        = "table"
	KeyForm         = "form"
	KeyStore        = "store"
	KeyTemplatesDir = "templates_dir"
	KeyLogLevel     = "log_level"
	KeyLogFormat    = "log_format"
)

var defaults = map[string]any{
	KeyOutputDir:    "src",
	KeyTable:        true,
	KeyForm:         true,
	KeyStore:        false,
	KeyTemplatesDir: "",
	KeyLogLevel:     "warn",
	KeyLogFormat:    "text",
}

// Settings is the resolved configuration for one invocation.
type Settings struct {
	OutputDir    string
	Table        bool
	Form         bool
	Store        bool
	TemplatesDir string
	LogLevel     string
	LogFormat    string
}

// Dir returns the path to the config directory (~/.vue-feature/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// A missing config file is not an error; a malformed one is.
func Load() error {
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		if _, statErr := os.Stat(FilePath()); os.IsNotExist(statErr) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return nil
}

// Current returns the settings as resolved by Viper.
func Current() Settings {
	return Settings{
		OutputDir:    viper.GetString(KeyOutputDir),
		Table:        viper.GetBool(KeyTable),
		Form:         viper.GetBool(KeyForm),
		Store:        viper.GetBool(KeyStore),
		TemplatesDir: viper.GetString(KeyTemplatesDir),
		LogLevel:     viper.GetString(KeyLogLevel),
		LogFormat:    viper.GetString(KeyLogFormat),
	}
}

// IsKnown reports whether key is a recognised configuration key.
func IsKnown(key string) bool {
	_, ok := defaults[strings.ToLower(key)]
	return ok
}

// Keys returns the recognised configuration keys.
func Keys() []string {
	return []string{KeyOutputDir, KeyTable, KeyForm, KeyStore, KeyTemplatesDir, KeyLogLevel, KeyLogFormat}
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Validate checks that value is acceptable for key.
func Validate(key, value string) error {
	key = strings.ToLower(key)
	if !IsKnown(key) {
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys(), ", "))
	}
	switch key {
	case KeyTable, KeyForm, KeyStore:
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf("invalid value %q for %s: must be true or false", value, key)
		}
	case KeyLogLevel:
		if _, err := logging.ParseLevel(value); err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
	case KeyLogFormat:
		if _, err := logging.ParseFormat(value); err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
	}
	return nil
}

// Set writes a config key-value pair and saves the config file. Boolean
// keys are stored as booleans.
func Set(key, value string) error {
	if err := Validate(key, value); err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	key = strings.ToLower(key)
	switch key {
	case KeyTable, KeyForm, KeyStore:
		b, _ := strconv.ParseBool(value)
		viper.Set(key, b)
	default:
		viper.Set(key, value)
	}

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
