package resolver

import (
	"encoding/json"

	"github.com/picocms/composer-installer/internal/composer"
)

// installerNameKey is the extra key carrying an explicit install name, both
// at root scope (as a pretty-name-keyed mapping) and at package scope (as a
// plain string).
const installerNameKey = "installer-name"

// InstallName resolves the directory name a package installs under.
// Precedence: root-level override mapping, package-level declaration,
// guessed from the package name. Resolution never fails; missing or
// unusable sources simply fall through.
func InstallName(pkg *composer.Package, root *composer.RootConfig) string {
	if mapping, ok := root.ExtraConfig().Mapping(installerNameKey); ok {
		if raw, ok := ResolveMapping(mapping, pkg.PrettyName); ok {
			var name string
			if err := json.Unmarshal(raw, &name); err == nil && name != "" {
				return name
			}
		}
	}

	if name, ok := pkg.Extra.String(installerNameKey); ok && name != "" {
		return name
	}

	return Guess(pkg.Name())
}

// PluginClassNames resolves the entry-point class names the host loads for
// a package. Precedence: root-level override mapping keyed by the package
// type, the package's own declaration under its type key, then a single
// class named after the install name. Either declared source may be a
// single string or a list; the first source yielding a non-empty list wins.
func PluginClassNames(pkg *composer.Package, root *composer.RootConfig) []string {
	if mapping, ok := root.ExtraConfig().Mapping(pkg.Type); ok {
		if raw, ok := ResolveMapping(mapping, pkg.PrettyName); ok {
			if names, ok := composer.DecodeClassList(raw); ok && len(names) > 0 {
				return names
			}
		}
	}

	if raw, ok := pkg.Extra.Get(pkg.Type); ok {
		if names, ok := composer.DecodeClassList(raw); ok && len(names) > 0 {
			return names
		}
	}

	return []string{InstallName(pkg, root)}
}
