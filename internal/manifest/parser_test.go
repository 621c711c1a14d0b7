package manifest

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	entries := []Entry{
		{
			PackageName:   "vendor/one-plugin",
			InstallerName: "One",
			ClassNames:    []string{"One", "OneAdmin"},
		},
		{
			PackageName:   "vendor/two-plugin",
			InstallerName: "Two",
		},
	}

	data, err := Render(entries)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	parsed, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !reflect.DeepEqual(parsed, entries) {
		t.Errorf("round trip mismatch:\ngot:  %+v\nwant: %+v", parsed, entries)
	}
}

func TestParseFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pico-plugin.php")
	entries := []Entry{{PackageName: "a/b", InstallerName: "B", ClassNames: []string{"B"}}}

	if err := Write(path, entries); err != nil {
		t.Fatalf("Write: %v", err)
	}

	parsed, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if !reflect.DeepEqual(parsed, entries) {
		t.Errorf("round trip mismatch: %+v", parsed)
	}
}

func TestParseEmptyManifest(t *testing.T) {
	data, err := Render(nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	parsed, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(parsed) != 0 {
		t.Errorf("parsed %d entries from an empty manifest", len(parsed))
	}
}

func TestParseUnescapesQuotedStrings(t *testing.T) {
	src := `<?php

// pico-plugin.php @generated by picocms/composer-installer

return array(
    'vendor/it\'s' => array(
        'installerName' => 'Back\\slash',
    ),
);
`
	parsed, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed[0].PackageName != "vendor/it's" {
		t.Errorf("PackageName = %q", parsed[0].PackageName)
	}
	if parsed[0].InstallerName != `Back\slash` {
		t.Errorf("InstallerName = %q", parsed[0].InstallerName)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"no return", "<?php\n"},
		{"truncated entry", "<?php\nreturn array(\n    'a/b' => array(\n"},
		{"unquoted key", "<?php\nreturn array(\n    a/b => array(\n    ),\n);\n"},
		{"unterminated string", "<?php\nreturn array(\n    'a/b => array(\n    ),\n);\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.src)); err == nil {
				t.Error("Parse accepted malformed input")
			}
		})
	}
}
