// Package config manages user-level settings stored at
// ~/.pico-installer/config.yaml, with PICO_* environment overrides. It
// carries tool-level knobs such as the default project directory and a
// vendor-dir override; per-project resolution configuration lives in the
// project's own root config, not here.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/picocms/composer-installer/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Well-known keys.
const (
	KeyVendorDir  = "vendor-dir"
	KeyProjectDir = "project-dir"
)

// Dir returns the path to the config directory (~/.pico-installer/).
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
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

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

// VendorDir returns the dependency storage root for a project directory,
// honoring the vendor-dir override from config or environment.
func VendorDir(projectDir string) string {
	if v := Get(KeyVendorDir); v != "" {
		if filepath.IsAbs(v) {
			return v
		}
		return filepath.Join(projectDir, v)
	}
	return filepath.Join(projectDir, "vendor")
}

// ProjectDir returns the project directory to operate on: the explicit
// argument if non-empty, else the configured default, else the current
// directory.
func ProjectDir(arg string) string {
	if arg != "" {
		return arg
	}
	if v := Get(KeyProjectDir); v != "" {
		return v
	}
	return "."
}
