package composer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Package is one installed unit as recorded by the package manager. The
// declared name keeps the author's casing; Name lowercases it for the
// canonical form used in require maps and manifest keys.
type Package struct {
	PrettyName string `json:"name"`
	Version    string `json:"version"`
	Type       string `json:"type"`
	Extra      Extra  `json:"extra"`
}

// Name returns the canonical lowercase package name.
func (p *Package) Name() string {
	return strings.ToLower(p.PrettyName)
}

// Vendor returns the part of the pretty name before the first slash, or ""
// when the name has no vendor prefix.
func (p *Package) Vendor() string {
	vendor, _ := SplitName(p.PrettyName)
	return vendor
}

// SplitName splits a package name into vendor and project on the first
// slash. Names without a slash yield an empty vendor.
func SplitName(name string) (vendor, project string) {
	if i := strings.Index(name, "/"); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}

// ScriptList is a lifecycle hook's callback list. Root configs may declare a
// single callback as a plain string; decoding normalizes it to a list.
type ScriptList []string

// UnmarshalJSON accepts a string, an array of strings, or null.
func (s *ScriptList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*s = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(trimmed, &single); err == nil {
		*s = ScriptList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(trimmed, &many); err != nil {
		return fmt.Errorf("decoding script list: expected string or array of strings")
	}
	*s = ScriptList(many)
	return nil
}

// RootConfig is the top-level project's own configuration. All accessors are
// nil-safe so resolution code can treat "no root config" as "nothing set".
type RootConfig struct {
	Name    string                `json:"name"`
	Type    string                `json:"type"`
	Require map[string]string     `json:"require"`
	Scripts map[string]ScriptList `json:"scripts"`
	Extra   Extra                 `json:"extra"`
}

// Requires reports whether the project requires the given package name.
func (c *RootConfig) Requires(name string) bool {
	if c == nil {
		return false
	}
	_, ok := c.Require[name]
	return ok
}

// HookScripts returns the callback list registered for a lifecycle hook.
func (c *RootConfig) HookScripts(hook string) []string {
	if c == nil {
		return nil
	}
	return c.Scripts[hook]
}

// HasHookScript reports whether a hook's callback list names the callback.
func (c *RootConfig) HasHookScript(hook, callback string) bool {
	for _, cb := range c.HookScripts(hook) {
		if cb == callback {
			return true
		}
	}
	return false
}

// ExtraConfig returns the root extra block, empty when the config is nil.
func (c *RootConfig) ExtraConfig() Extra {
	if c == nil {
		return Extra{}
	}
	return c.Extra
}

// Repository is an ordered collection of installed packages. Order is the
// package manager's enumeration order and is preserved through to the
// generated manifest.
type Repository struct {
	packages []*Package
}

// NewRepository builds a repository over the given packages.
func NewRepository(packages []*Package) *Repository {
	return &Repository{packages: packages}
}

// Packages returns all packages in repository order.
func (r *Repository) Packages() []*Package {
	if r == nil {
		return nil
	}
	return r.packages
}

// ByType returns the packages of the given type, preserving order.
func (r *Repository) ByType(packageType string) []*Package {
	var out []*Package
	for _, p := range r.Packages() {
		if p.Type == packageType {
			out = append(out, p)
		}
	}
	return out
}

// Len returns the number of packages.
func (r *Repository) Len() int { return len(r.Packages()) }

// InstallHandler resolves the install path for a package. The installer
// component registers itself as the handler for the types it manages.
type InstallHandler interface {
	InstallPath(pkg *Package) (string, error)
}

// InstallerRegistry maps package type strings to their install handlers.
// It stands in for the host package manager's installation registry.
type InstallerRegistry struct {
	handlers map[string]InstallHandler
}

// NewInstallerRegistry returns an empty registry.
func NewInstallerRegistry() *InstallerRegistry {
	return &InstallerRegistry{handlers: make(map[string]InstallHandler)}
}

// Register sets the handler for a package type, replacing any previous one.
func (r *InstallerRegistry) Register(packageType string, h InstallHandler) {
	r.handlers[packageType] = h
}

// Unregister removes the handler for a package type.
func (r *InstallerRegistry) Unregister(packageType string) {
	delete(r.handlers, packageType)
}

// HandlerFor returns the handler registered for a package type.
func (r *InstallerRegistry) HandlerFor(packageType string) (InstallHandler, bool) {
	h, ok := r.handlers[packageType]
	return h, ok
}
