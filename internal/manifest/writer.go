package manifest

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"
	"text/template"

	"github.com/picocms/composer-installer/internal/branding"
)

// Entry is one package's resolved mapping: the directory it installs under
// and the entry-point class names the host loads for it.
type Entry struct {
	PackageName   string
	InstallerName string
	ClassNames    []string
}

// Name format rules, enforced at serialization time only. Resolution may
// produce values that violate them; they are rejected here, before any file
// mutation, so a failed write never corrupts an existing manifest.
var (
	packageNamePattern   = regexp.MustCompile(`^[a-z0-9_.-]+/[a-z0-9_.-]+$`)
	installerNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
	classNamePattern     = regexp.MustCompile(`^[a-zA-Z_\x7f-\x{10ffff}][a-zA-Z0-9_\x7f-\x{10ffff}]*$`)
)

// fileTemplate renders the manifest as a self-contained PHP array literal.
// The layout is fixed: consumers and tests rely on it byte-for-byte.
var fileTemplate = template.Must(template.New("manifest").Funcs(template.FuncMap{
	"phpq": phpQuote,
}).Parse(`<?php

// {{ .File }} @generated by {{ .Tool }}

return array({{ range .Entries }}
    {{ phpq .PackageName }} => array(
        'installerName' => {{ phpq .InstallerName }},{{ if .ClassNames }}
        'classNames' => array({{ range .ClassNames }}
            {{ phpq . }},{{ end }}
        ),{{ end }}
    ),{{ end }}
);
`))

// phpQuote renders s as a single-quoted PHP string literal.
func phpQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}

// Validate checks every entry against the name format rules. The first
// violation fails the whole set.
func Validate(entries []Entry) error {
	for _, e := range entries {
		if !packageNamePattern.MatchString(e.PackageName) {
			return fmt.Errorf("invalid package name %q", e.PackageName)
		}
		if !installerNamePattern.MatchString(e.InstallerName) {
			return fmt.Errorf("package %s: invalid installer name %q", e.PackageName, e.InstallerName)
		}
		for _, class := range e.ClassNames {
			if !classNamePattern.MatchString(class) {
				return fmt.Errorf("package %s: invalid class name %q", e.PackageName, class)
			}
		}
	}
	return nil
}

// Render validates the entries and serializes them in the given order.
func Render(entries []Entry) ([]byte, error) {
	if err := Validate(entries); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		File    string
		Tool    string
		Entries []Entry
	}{
		File:    branding.ManifestFile(),
		Tool:    branding.InstallerPackage(),
		Entries: entries,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// Write renders the entries and replaces the file at path in full. The
// previous contents are irrelevant; nothing is patched incrementally.
// Validation happens before the file is touched.
func Write(path string, entries []Entry) error {
	data, err := Render(entries)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}

// Delete removes the manifest file if it exists, unlinking symlinks rather
// than their targets. A missing file is a no-op. The boolean reports
// whether a file was actually removed.
func Delete(path string) (bool, error) {
	if _, err := os.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("checking manifest %s: %w", path, err)
	}
	if err := os.Remove(path); err != nil {
		return false, fmt.Errorf("deleting manifest %s: %w", path, err)
	}
	return true, nil
}
