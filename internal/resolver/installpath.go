package resolver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/picocms/composer-installer/internal/branding"
	"github.com/picocms/composer-installer/internal/composer"
)

// TypeTable maps recognized package types to their default install
// directory names. It is injected so forks can support additional types
// without touching the resolver.
type TypeTable map[string]string

// DefaultTypes returns the built-in table for the plugin and theme types.
func DefaultTypes() TypeTable {
	return TypeTable{
		branding.PluginType(): "plugins",
		branding.ThemeType():  "themes",
	}
}

// PathResolver combines name resolution with per-type base directories to
// produce concrete install paths. Resolving a directory creates it if
// missing and canonicalizes it, so resolution has a filesystem side effect.
type PathResolver struct {
	root      *composer.RootConfig
	vendorDir string
	types     TypeTable
}

// NewPathResolver builds a resolver for one project. A nil types table
// falls back to DefaultTypes.
func NewPathResolver(root *composer.RootConfig, vendorDir string, types TypeTable) *PathResolver {
	if types == nil {
		types = DefaultTypes()
	}
	return &PathResolver{root: root, vendorDir: vendorDir, types: types}
}

// InstallDir resolves the base directory for a package type. The root
// config's "<type>-dir" extra overrides the built-in default; without an
// override an unrecognized type is a fatal configuration error. Relative
// directories are anchored at the parent of the vendor directory. The
// directory is created if missing and returned symlink-resolved and
// absolute.
func (r *PathResolver) InstallDir(packageType string) (string, error) {
	dir, ok := r.root.ExtraConfig().String(packageType + "-dir")
	if ok && dir != "" {
		dir = strings.TrimRight(dir, "/\\")
	} else {
		dir, ok = r.types[packageType]
		if !ok {
			return "", fmt.Errorf("unsupported package type %q", packageType)
		}
	}

	if !filepath.IsAbs(dir) {
		dir = filepath.Join(filepath.Dir(r.vendorDir), dir)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating install directory %s: %w", dir, err)
	}

	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return "", fmt.Errorf("canonicalizing install directory %s: %w", dir, err)
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", fmt.Errorf("canonicalizing install directory %s: %w", resolved, err)
	}
	return abs, nil
}

// InstallPath returns the full install path for a package: the type's base
// directory joined with the resolved install name. An empty install name is
// passed through as-is, matching the name-resolution contract.
func (r *PathResolver) InstallPath(pkg *composer.Package) (string, error) {
	dir, err := r.InstallDir(pkg.Type)
	if err != nil {
		return "", err
	}
	return dir + "/" + InstallName(pkg, r.root), nil
}
