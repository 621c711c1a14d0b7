//go:build integration

package integration_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/gookit/event"

	"github.com/picocms/composer-installer/internal/branding"
	"github.com/picocms/composer-installer/internal/composer"
	"github.com/picocms/composer-installer/internal/manifest"
	"github.com/picocms/composer-installer/internal/plugin"
	"github.com/picocms/composer-installer/internal/resolver"
)

// runPipeline loads the project and runs a full activation + dump cycle,
// the way the generate command does.
func runPipeline(t *testing.T, proj *testProject, force bool) *plugin.Installer {
	t.Helper()

	root, err := composer.LoadRootConfig(composer.RootConfigPath(proj.Dir))
	if err != nil {
		t.Fatalf("LoadRootConfig: %v", err)
	}

	repo := composer.NewRepository(nil)
	repoPath := composer.RepositoryPath(proj.VendorDir)
	if _, statErr := os.Stat(repoPath); statErr == nil {
		repo, err = composer.LoadRepository(repoPath)
		if err != nil {
			t.Fatalf("LoadRepository: %v", err)
		}
	}

	inst := plugin.New(root, repo, proj.VendorDir, plugin.Options{
		ForceManifest: force,
		Out:           io.Discard,
	})

	bus := event.NewManager(branding.CLIName())
	reg := composer.NewInstallerRegistry()
	inst.Activate(bus, reg)

	if err := plugin.FireDump(bus); err != nil {
		t.Fatalf("FireDump: %v", err)
	}
	return inst
}

func TestGenerateWritesManifest(t *testing.T) {
	proj := setupProject(t, optInRootConfig, installedPlugins)

	inst := runPipeline(t, proj, false)

	assertFileExists(t, inst.ManifestPath())
	entries, err := manifest.ParseFile(inst.ManifestPath())
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}

	// Only the two plugin-type packages, in repository order.
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].PackageName != "vendor/my-plugin" || entries[0].InstallerName != "My" {
		t.Errorf("first entry = %+v", entries[0])
	}
	if entries[1].InstallerName != "Other" || len(entries[1].ClassNames) != 2 {
		t.Errorf("second entry = %+v", entries[1])
	}
}

func TestGenerateRemovesManifestWhenNotOptedIn(t *testing.T) {
	proj := setupProject(t, optInRootConfig, installedPlugins)
	first := runPipeline(t, proj, false)
	assertFileExists(t, first.ManifestPath())

	// Drop the require entry; the next run must delete the manifest.
	writeFile(t, filepath.Join(proj.Dir, "composer.json"), `{
  "name": "example/site",
  "type": "project"
}`)

	second := runPipeline(t, proj, false)
	assertNotExists(t, second.ManifestPath())
}

func TestGenerateForceBypassesGate(t *testing.T) {
	proj := setupProject(t, `{"name": "example/site", "type": "library"}`, installedPlugins)

	inst := runPipeline(t, proj, true)
	assertFileExists(t, inst.ManifestPath())
}

func TestGenerateRespectsRootOverrides(t *testing.T) {
	rootConfig := `{
  "name": "example/site",
  "type": "project",
  "require": {"picocms/composer-installer": "^1.0"},
  "extra": {
    "installer-name": {"vendor/my-plugin": "Renamed"},
    "pico-plugin": {"name:other-plugin": "Single"}
  }
}`
	proj := setupProject(t, rootConfig, installedPlugins)

	inst := runPipeline(t, proj, false)

	entries, err := manifest.ParseFile(inst.ManifestPath())
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if entries[0].InstallerName != "Renamed" {
		t.Errorf("first entry installer name = %q, want Renamed", entries[0].InstallerName)
	}
	if len(entries[1].ClassNames) != 1 || entries[1].ClassNames[0] != "Single" {
		t.Errorf("second entry class names = %v, want [Single]", entries[1].ClassNames)
	}
}

func TestInstallPathsThroughRegistry(t *testing.T) {
	proj := setupProject(t, optInRootConfig, installedPlugins)

	root, err := composer.LoadRootConfig(composer.RootConfigPath(proj.Dir))
	if err != nil {
		t.Fatalf("LoadRootConfig: %v", err)
	}
	repo, err := composer.LoadRepository(composer.RepositoryPath(proj.VendorDir))
	if err != nil {
		t.Fatalf("LoadRepository: %v", err)
	}

	inst := plugin.New(root, repo, proj.VendorDir, plugin.Options{})
	reg := composer.NewInstallerRegistry()
	inst.Activate(event.NewManager(branding.CLIName()), reg)

	for _, pkg := range repo.Packages() {
		handler, ok := reg.HandlerFor(pkg.Type)
		if pkg.Type == "library" {
			continue
		}
		if !ok {
			t.Fatalf("no handler for type %s", pkg.Type)
		}
		path, err := handler.InstallPath(pkg)
		if err != nil {
			t.Fatalf("InstallPath(%s): %v", pkg.PrettyName, err)
		}
		wantBase := resolver.InstallName(pkg, root)
		if filepath.Base(path) != wantBase {
			t.Errorf("InstallPath(%s) = %q, want base %q", pkg.PrettyName, path, wantBase)
		}
	}
}
