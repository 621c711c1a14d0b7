// Package manifest validates, serializes, and parses the generated plugin
// manifest file consumed by the host application at runtime.
package manifest
