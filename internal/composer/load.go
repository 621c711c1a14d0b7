package composer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// RootConfigFile is the conventional root config filename in a project
// directory.
const RootConfigFile = "composer.json"

// RootConfigPath returns the root config location for a project directory.
func RootConfigPath(projectDir string) string {
	return filepath.Join(projectDir, RootConfigFile)
}

// RepositoryPath returns the installed-packages file location for a vendor
// directory.
func RepositoryPath(vendorDir string) string {
	return filepath.Join(vendorDir, "composer", "installed.json")
}

// LoadRootConfig reads and decodes a project's root configuration file.
func LoadRootConfig(path string) (*RootConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading root config %s: %w", path, err)
	}

	var cfg RootConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing root config %s: %w", path, err)
	}
	return &cfg, nil
}

// repositoryDoc is the newer installed-packages layout, which nests the
// package list under a "packages" key.
type repositoryDoc struct {
	Packages []*Package `json:"packages"`
}

// LoadRepository reads the installed-packages file. Both layouts are
// accepted: a top-level array and an object with a "packages" array.
// File order is preserved.
func LoadRepository(path string) (*Repository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading installed packages %s: %w", path, err)
	}
	return ParseRepository(data, path)
}

// ParseRepository decodes installed-packages data. The name parameter is
// used in error messages only.
func ParseRepository(data []byte, name string) (*Repository, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var packages []*Package
		if err := json.Unmarshal(data, &packages); err != nil {
			return nil, fmt.Errorf("parsing installed packages %s: %w", name, err)
		}
		return NewRepository(packages), nil
	}

	var doc repositoryDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing installed packages %s: %w", name, err)
	}
	return NewRepository(doc.Packages), nil
}

// LintIssue is a non-fatal finding about an installed package record.
type LintIssue struct {
	Package string
	Message string
}

// LintRepository checks package records for malformed names and versions.
// Findings are advisory: loading and resolution never reject them, but the
// validate command surfaces them before a manifest write would fail.
func LintRepository(repo *Repository) []LintIssue {
	var issues []LintIssue
	for _, p := range repo.Packages() {
		if !strings.Contains(p.PrettyName, "/") {
			issues = append(issues, LintIssue{
				Package: p.PrettyName,
				Message: "package name has no vendor prefix",
			})
		}

		version := strings.TrimPrefix(p.Version, "v")
		if version == "" || strings.HasPrefix(version, "dev-") || strings.HasSuffix(version, "-dev") {
			// Branch aliases carry no comparable version.
			continue
		}
		if _, err := semver.NewVersion(version); err != nil {
			issues = append(issues, LintIssue{
				Package: p.PrettyName,
				Message: fmt.Sprintf("version %q is not a valid semantic version", p.Version),
			})
		}
	}
	return issues
}
