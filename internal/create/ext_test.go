package create

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasExtension(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"file.txt", true},
		{"a/b/file.txt", true},
		{"archive.tar.gz", true},
		{".env.local", true},
		{"..hidden", true},
		{"dir", false},
		{"a/b/dir", false},
		{".config", false},
		{"foo.", false},
		{"...", false},
		{".", false},
		{"a.d/sub", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, HasExtension(tt.path))
		})
	}
}

func TestCreator_IsFile(t *testing.T) {
	plain := NewCreator(Options{})
	known := NewCreator(Options{KnownFiles: append([]string{"Justfile"}, WellKnownFiles...)})

	tests := []struct {
		name      string
		path      string
		plain     bool
		withKnown bool
	}{
		{"extension", "src/main.go", true, true},
		{"directory", "src/pkg", false, false},
		{"trailing slash", "src/main.go/", false, false},
		{"makefile", "Makefile", false, true},
		{"case insensitive", "build/dockerfile", false, true},
		{"extra name", "Justfile", false, true},
		{"unknown name", "Whatever", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.plain, plain.IsFile(tt.path))
			assert.Equal(t, tt.withKnown, known.IsFile(tt.path))
		})
	}
}
