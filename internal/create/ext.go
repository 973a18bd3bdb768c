package create

import (
	"os"
	"path/filepath"
	"strings"
)

// WellKnownFiles are conventional file names that carry no extension.
var WellKnownFiles = []string{
	// Build tools
	"Makefile", "GNUmakefile", "CMakeLists", "Rakefile", "Jakefile", "Gruntfile", "Gulpfile",

	// Containers and VMs
	"Dockerfile", "Containerfile", "Vagrantfile",

	// CI/CD
	"Jenkinsfile", "Procfile", "Buildfile",

	// Package managers
	"Gemfile", "Podfile", "Cartfile", "Brewfile",

	// Documentation
	"README", "LICENSE", "CHANGELOG", "CONTRIBUTING", "AUTHORS", "CONTRIBUTORS",
	"COPYING", "INSTALL", "NEWS", "TODO", "HISTORY", "NOTICE",

	// Misc
	"Cakefile", "Capfile", "Guardfile", "CODEOWNERS",
}

// HasExtension reports whether the final segment of path has a non-empty
// extension. A single leading dot marks a hidden name, not an extension, so
// ".config" has none while ".env.local" does. "foo." has none either.
func HasExtension(path string) bool {
	base := strings.TrimPrefix(filepath.Base(path), ".")
	i := strings.LastIndexByte(base, '.')
	return i >= 0 && i < len(base)-1
}

// IsFile reports whether c would create path as a file. A trailing path
// separator always means a directory.
func (c *Creator) IsFile(path string) bool {
	if hasTrailingSeparator(path) {
		return false
	}
	if HasExtension(path) {
		return true
	}
	_, ok := c.knownFiles[strings.ToLower(filepath.Base(path))]
	return ok
}

func hasTrailingSeparator(path string) bool {
	return len(path) > 1 && os.IsPathSeparator(path[len(path)-1])
}

func trimTrailingSeparators(path string) string {
	for hasTrailingSeparator(path) {
		path = path[:len(path)-1]
	}
	return path
}
