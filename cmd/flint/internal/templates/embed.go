// Package templates provides embedded template files for project creation.
package templates

import "embed"

//go:embed init/*
var fs embed.FS

// ReadFile returns the embedded template at path.
func ReadFile(path string) ([]byte, error) {
	return fs.ReadFile(path)
}
