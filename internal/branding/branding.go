// Package branding provides compile-time identity values for the installer.
//
// Forkers edit branding.yaml in this package before building; Go's
// //go:embed bakes it into the binary. Hard defaults cover a missing or
// partial file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName          string `yaml:"cli_name"`
	DisplayName      string `yaml:"display_name"`
	Description      string `yaml:"description"`
	InstallerPackage string `yaml:"installer_package"`
	PluginType       string `yaml:"plugin_type"`
	ThemeType        string `yaml:"theme_type"`
	ManifestFile     string `yaml:"manifest_file"`
	EnvPrefix        string `yaml:"env_prefix"`
	HomeDir          string `yaml:"home_dir"`
	ActivateHook     string `yaml:"activate_hook"`
	DumpHook         string `yaml:"dump_hook"`
	DumpCallback     string `yaml:"dump_callback"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:          "pico-installer",
			DisplayName:      "Pico Installer",
			Description:      "Install-path and plugin-manifest resolver for Pico packages",
			InstallerPackage: "picocms/composer-installer",
			PluginType:       "pico-plugin",
			ThemeType:        "pico-theme",
			ManifestFile:     "pico-plugin.php",
			EnvPrefix:        "PICO",
			HomeDir:          ".pico-installer",
			ActivateHook:     "installer-activated",
			DumpHook:         "post-dependency-resolution",
			DumpCallback:     "picocms/composer-installer:dump-manifest",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "pico-installer").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// InstallerPackage returns the installer's own package id as it appears in a
// root project's require block (e.g., "picocms/composer-installer").
func InstallerPackage() string { load(); return defaults.InstallerPackage }

// PluginType returns the package type string handled as a plugin.
func PluginType() string { load(); return defaults.PluginType }

// ThemeType returns the package type string handled as a theme.
func ThemeType() string { load(); return defaults.ThemeType }

// ManifestFile returns the generated manifest filename (e.g., "pico-plugin.php").
func ManifestFile() string { load(); return defaults.ManifestFile }

// EnvPrefix returns the environment variable prefix (e.g., "PICO").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// HomeDir returns the dot-directory name under $HOME.
func HomeDir() string { load(); return defaults.HomeDir }

// ActivateHook returns the lifecycle hook fired when the installer is activated.
func ActivateHook() string { load(); return defaults.ActivateHook }

// DumpHook returns the lifecycle hook that triggers manifest generation.
func DumpHook() string { load(); return defaults.DumpHook }

// DumpCallback returns the callback id a root project lists under the dump
// hook to register manifest generation explicitly.
func DumpCallback() string { load(); return defaults.DumpCallback }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("VENDOR_DIR") → "PICO_VENDOR_DIR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
