// Package resolver computes install names, plugin class names, and install
// paths for packages from layered configuration sources.
package resolver
