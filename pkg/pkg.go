//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version is the semantic version of the line module embedded at build time.
var Version = strings.TrimSpace(version)

const (
	// Name is the canonical command identifier. It appears in help text and in
	// the default configuration and cache paths.
	Name = "line"
	// Description is a short summary of the command used in help output.
	Description = "Print selected lines of input by position"
)
