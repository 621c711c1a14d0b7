package resolver

import (
	"encoding/json"
	"strings"

	"github.com/picocms/composer-installer/internal/composer"
)

// ResolveMapping looks up a value for a package in a root-level override
// mapping. An exact key match on the package's pretty name wins outright,
// even for empty values. Otherwise the entries are scanned once in
// declaration order; for each entry a "name:"-scoped match is checked before
// a "vendor:"-scoped one, and the first hit of either wins. The boolean
// reports whether any source matched.
func ResolveMapping(mapping composer.Extra, prettyName string) (json.RawMessage, bool) {
	if raw, ok := mapping.Get(prettyName); ok {
		return raw, true
	}

	vendor, name := composer.SplitName(prettyName)
	for _, entry := range mapping.Entries() {
		if rest, ok := strings.CutPrefix(entry.Key, "name:"); ok && rest == name {
			return entry.Value, true
		}
		if rest, ok := strings.CutPrefix(entry.Key, "vendor:"); ok && rest == vendor {
			return entry.Value, true
		}
	}
	return nil, false
}
