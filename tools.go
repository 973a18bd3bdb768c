//go:build tools

package tools

// Keeps cobra/doc in go.mod for cmd/gendoc, which is build-ignored.
import (
	_ "github.com/spf13/cobra/doc"
)
