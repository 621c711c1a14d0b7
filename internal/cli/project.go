package cli

import (
	"fmt"
	"os"

	"github.com/picocms/composer-installer/internal/composer"
	"github.com/picocms/composer-installer/internal/config"
)

// projectContext is everything a command needs to operate on one project.
type projectContext struct {
	Dir       string
	VendorDir string
	Root      *composer.RootConfig
	Repo      *composer.Repository
}

// loadProject resolves the project directory and loads its root config and
// installed-package repository. A missing repository file is treated as an
// empty repository; a missing root config is an error.
func loadProject(arg string) (*projectContext, error) {
	dir := config.ProjectDir(arg)
	vendorDir := config.VendorDir(dir)

	root, err := composer.LoadRootConfig(composer.RootConfigPath(dir))
	if err != nil {
		return nil, err
	}

	repoPath := composer.RepositoryPath(vendorDir)
	repo := composer.NewRepository(nil)
	if _, statErr := os.Stat(repoPath); statErr == nil {
		repo, err = composer.LoadRepository(repoPath)
		if err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(statErr) {
		return nil, fmt.Errorf("checking installed packages %s: %w", repoPath, statErr)
	}

	return &projectContext{
		Dir:       dir,
		VendorDir: vendorDir,
		Root:      root,
		Repo:      repo,
	}, nil
}

// findPackage looks a package up by name (case-insensitive canonical form).
func (p *projectContext) findPackage(name string) (*composer.Package, error) {
	for _, pkg := range p.Repo.Packages() {
		if pkg.Name() == name || pkg.PrettyName == name {
			return pkg, nil
		}
	}
	return nil, fmt.Errorf("package %q is not installed", name)
}
