package resolver

import (
	"regexp"
	"strings"

	"github.com/picocms/composer-installer/internal/composer"
)

var (
	typeSuffix = regexp.MustCompile(`(?i)[.\-_]?(?:plugin|theme)$`)
	separators = regexp.MustCompile(`[.\-_]+`)
)

// Guess derives a code-style install name from a raw package identifier.
// The vendor prefix is dropped, a trailing "plugin" or "theme" suffix is
// stripped, and the remaining separator-delimited segments are joined in
// StudlyCase. Stripping everything yields an empty string, which callers
// use as-is.
//
//	"vendor/my-plugin"    -> "My"
//	"vendor/foo-bar_baz"  -> "FooBarBaz"
//	"vendor/FooBar"       -> "FooBar"
func Guess(packageName string) string {
	_, name := composer.SplitName(packageName)
	name = typeSuffix.ReplaceAllString(name, "")

	var b strings.Builder
	for _, segment := range separators.Split(name, -1) {
		if segment == "" {
			continue
		}
		b.WriteString(strings.ToUpper(segment[:1]))
		b.WriteString(segment[1:])
	}
	return b.String()
}
