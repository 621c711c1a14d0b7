// Package plugin is the lifecycle component that plugs the installer into
// the host package manager: it registers itself for the package types it
// manages, hooks manifest generation onto dependency resolution, and runs
// the write-or-delete decision for the manifest file.
package plugin

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/gookit/event"

	"github.com/picocms/composer-installer/internal/branding"
	"github.com/picocms/composer-installer/internal/composer"
	"github.com/picocms/composer-installer/internal/manifest"
	"github.com/picocms/composer-installer/internal/resolver"
)

// Installer resolves install paths for the plugin and theme package types
// and maintains the generated manifest. The manifest gate is decided once
// at construction and never revisited for the installer's lifetime.
type Installer struct {
	root        *composer.RootConfig
	repo        *composer.Repository
	vendorDir   string
	paths       *resolver.PathResolver
	useManifest bool
	out         io.Writer
}

// Options carries the optional constructor knobs.
type Options struct {
	// Types overrides the package-type table; nil means the defaults.
	Types resolver.TypeTable
	// ForceManifest enables manifest generation regardless of the root
	// config checks, the way an explicitly registered hook callback does.
	ForceManifest bool
	// Out receives informational output; nil discards it.
	Out io.Writer
}

// New builds an installer for one project run. The manifest decision is
// computed here, once, from the root config and options.
func New(root *composer.RootConfig, repo *composer.Repository, vendorDir string, opts Options) *Installer {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	return &Installer{
		root:        root,
		repo:        repo,
		vendorDir:   vendorDir,
		paths:       resolver.NewPathResolver(root, vendorDir, opts.Types),
		useManifest: opts.ForceManifest || DecideUseManifest(root),
		out:         out,
	}
}

// DecideUseManifest computes the manifest gate from the root config alone.
// A root config that explicitly lists the dump callback on the dump hook is
// trusted as an opt-in and enables generation unconditionally, bypassing
// the remaining checks. Otherwise the hook registration happens implicitly
// during activation, and the gate comes down to the project declaring
// itself a project and requiring this installer.
func DecideUseManifest(root *composer.RootConfig) bool {
	if root.HasHookScript(branding.DumpHook(), branding.DumpCallback()) {
		return true
	}
	if root == nil || root.Type != "project" {
		return false
	}
	return root.Requires(branding.InstallerPackage())
}

// UseManifest reports the decision made at construction.
func (i *Installer) UseManifest() bool { return i.useManifest }

// ManifestPath returns the manifest location: a sibling of the dependency
// storage root.
func (i *Installer) ManifestPath() string {
	return filepath.Join(i.vendorDir, branding.ManifestFile())
}

// InstallPath implements composer.InstallHandler for the registered types.
func (i *Installer) InstallPath(pkg *composer.Package) (string, error) {
	return i.paths.InstallPath(pkg)
}

// Activate wires the installer into the host: it registers as the install
// handler for the plugin and theme types and appends itself to the dump
// hook on the event bus. The return value reports whether the root config
// had already listed the dump callback explicitly; callers treat that as an
// opt-in that force-enables generation even when DecideUseManifest's other
// checks fail.
func (i *Installer) Activate(bus *event.Manager, reg *composer.InstallerRegistry) bool {
	reg.Register(branding.PluginType(), i)
	reg.Register(branding.ThemeType(), i)

	bus.On(branding.DumpHook(), event.ListenerFunc(func(e event.Event) error {
		return i.DumpManifest()
	}), event.Normal)
	bus.MustFire(branding.ActivateHook(), event.M{"vendorDir": i.vendorDir})

	return i.root.HasHookScript(branding.DumpHook(), branding.DumpCallback())
}

// Deactivate removes the install handler registrations.
func (i *Installer) Deactivate(reg *composer.InstallerRegistry) {
	reg.Unregister(branding.PluginType())
	reg.Unregister(branding.ThemeType())
}

// DumpManifest runs the per-event state machine with two terminal outcomes.
// With the gate closed it deletes any existing manifest; with the gate open
// it resolves every plugin-type package and rewrites the file in full, in
// repository order. Validation failures abort before the file is touched.
func (i *Installer) DumpManifest() error {
	path := i.ManifestPath()

	if !i.useManifest {
		removed, err := manifest.Delete(path)
		if err != nil {
			return err
		}
		if removed {
			fmt.Fprintf(i.out, "Removed %s\n", path)
		}
		return nil
	}

	var entries []manifest.Entry
	for _, pkg := range i.repo.ByType(branding.PluginType()) {
		entries = append(entries, manifest.Entry{
			PackageName:   pkg.Name(),
			InstallerName: resolver.InstallName(pkg, i.root),
			ClassNames:    resolver.PluginClassNames(pkg, i.root),
		})
	}

	if err := manifest.Write(path, entries); err != nil {
		return err
	}
	fmt.Fprintf(i.out, "Wrote %s (%d packages)\n", path, len(entries))
	return nil
}

// FireDump dispatches the dump hook on the bus, running every registered
// listener. Listener errors abort the dispatch and are returned.
func FireDump(bus *event.Manager) error {
	err, _ := bus.Fire(branding.DumpHook(), nil)
	return err
}
