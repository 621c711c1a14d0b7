//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/picocms/composer-installer/internal/branding"
)

// testProject holds paths to an isolated synthetic project.
type testProject struct {
	Dir       string // project root, contains composer.json
	VendorDir string // dependency storage root
}

// setupProject creates a temp project with a root config and an
// installed-packages file. The PICO_* env overrides are cleared so the
// project layout alone drives resolution.
func setupProject(t *testing.T, rootConfig, installed string) *testProject {
	t.Helper()

	dir := t.TempDir()
	proj := &testProject{
		Dir:       dir,
		VendorDir: filepath.Join(dir, "vendor"),
	}

	t.Setenv(branding.EnvVar("VENDOR_DIR"), "")
	t.Setenv(branding.EnvVar("PROJECT_DIR"), "")

	writeFile(t, filepath.Join(dir, "composer.json"), rootConfig)
	if installed != "" {
		writeFile(t, filepath.Join(proj.VendorDir, "composer", "installed.json"), installed)
	} else {
		if err := os.MkdirAll(proj.VendorDir, 0755); err != nil {
			t.Fatal(err)
		}
	}

	return proj
}

// writeFile writes content to path, creating parent directories.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if path does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file %s: %v", path, err)
	}
}

// assertNotExists fails the test if path exists.
func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to be absent", path)
	}
}

// optInRootConfig is a root config that passes the manifest gate.
const optInRootConfig = `{
  "name": "example/site",
  "type": "project",
  "require": {
    "picocms/composer-installer": "^1.0",
    "vendor/my-plugin": "^2.0"
  }
}`

// installedPlugins is a two-package repository with one override.
const installedPlugins = `{
  "packages": [
    {
      "name": "vendor/my-plugin",
      "version": "2.1.0",
      "type": "pico-plugin"
    },
    {
      "name": "vendor/fancy-theme",
      "version": "1.0.0",
      "type": "pico-theme"
    },
    {
      "name": "vendor/other-plugin",
      "version": "0.9.0",
      "type": "pico-plugin",
      "extra": {
        "installer-name": "Other",
        "pico-plugin": ["Other", "OtherAdmin"]
      }
    }
  ]
}`
