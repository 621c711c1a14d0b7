// Package composer models the host package manager's view of a project:
// the root configuration, installed packages, and their author-declared
// extra configuration.
package composer
