package composer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRootConfig(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, RootConfigFile)
	src := `{
  "name": "example/site",
  "type": "project",
  "require": {"picocms/composer-installer": "^1.0"},
  "scripts": {"post-dependency-resolution": "picocms/composer-installer:dump-manifest"},
  "extra": {"pico-plugin-dir": "plugins"}
}`
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRootConfig(path)
	if err != nil {
		t.Fatalf("LoadRootConfig: %v", err)
	}

	if cfg.Name != "example/site" || cfg.Type != "project" {
		t.Errorf("loaded (%q, %q), want (example/site, project)", cfg.Name, cfg.Type)
	}
	if !cfg.Requires("picocms/composer-installer") {
		t.Error("require block not loaded")
	}
	if dir, ok := cfg.Extra.String("pico-plugin-dir"); !ok || dir != "plugins" {
		t.Errorf("extra pico-plugin-dir = (%q, %v), want (plugins, true)", dir, ok)
	}
}

func TestLoadRootConfigMissingFile(t *testing.T) {
	if _, err := LoadRootConfig(filepath.Join(t.TempDir(), "composer.json")); err == nil {
		t.Error("LoadRootConfig succeeded on a missing file")
	}
}

func TestParseRepositoryArrayLayout(t *testing.T) {
	src := `[
  {"name": "a/one-plugin", "version": "1.0.0", "type": "pico-plugin"},
  {"name": "a/two-theme", "version": "2.1.0", "type": "pico-theme"}
]`
	repo, err := ParseRepository([]byte(src), "installed.json")
	if err != nil {
		t.Fatalf("ParseRepository: %v", err)
	}

	if repo.Len() != 2 {
		t.Fatalf("Len = %d, want 2", repo.Len())
	}
	if repo.Packages()[0].PrettyName != "a/one-plugin" {
		t.Errorf("first package = %q, want a/one-plugin", repo.Packages()[0].PrettyName)
	}
}

func TestParseRepositoryObjectLayout(t *testing.T) {
	src := `{"packages": [
  {"name": "a/one-plugin", "version": "1.0.0", "type": "pico-plugin", "extra": {"installer-name": "One"}}
], "dev": false}`
	repo, err := ParseRepository([]byte(src), "installed.json")
	if err != nil {
		t.Fatalf("ParseRepository: %v", err)
	}

	if repo.Len() != 1 {
		t.Fatalf("Len = %d, want 1", repo.Len())
	}
	if name, ok := repo.Packages()[0].Extra.String("installer-name"); !ok || name != "One" {
		t.Errorf("extra installer-name = (%q, %v), want (One, true)", name, ok)
	}
}

func TestLoadRepositoryFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "installed.json")
	if err := os.WriteFile(path, []byte(`[]`), 0644); err != nil {
		t.Fatal(err)
	}

	repo, err := LoadRepository(path)
	if err != nil {
		t.Fatalf("LoadRepository: %v", err)
	}
	if repo.Len() != 0 {
		t.Errorf("Len = %d, want 0", repo.Len())
	}
}

func TestLintRepository(t *testing.T) {
	repo := NewRepository([]*Package{
		{PrettyName: "a/good", Version: "1.2.3"},
		{PrettyName: "a/tagged", Version: "v2.0.0"},
		{PrettyName: "a/branch", Version: "dev-main"},
		{PrettyName: "a/bad-version", Version: "not-a-version"},
		{PrettyName: "no-vendor", Version: "1.0.0"},
	})

	issues := LintRepository(repo)
	if len(issues) != 2 {
		t.Fatalf("got %d issues (%v), want 2", len(issues), issues)
	}
	if issues[0].Package != "a/bad-version" {
		t.Errorf("first issue package = %q, want a/bad-version", issues[0].Package)
	}
	if issues[1].Package != "no-vendor" {
		t.Errorf("second issue package = %q, want no-vendor", issues[1].Package)
	}
}

func TestPathHelpers(t *testing.T) {
	if got := RootConfigPath("proj"); got != filepath.Join("proj", "composer.json") {
		t.Errorf("RootConfigPath = %q", got)
	}
	if got := RepositoryPath("proj/vendor"); got != filepath.Join("proj", "vendor", "composer", "installed.json") {
		t.Errorf("RepositoryPath = %q", got)
	}
}
