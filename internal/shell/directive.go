package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// DirectiveFileEnv names the file the init wrapper sources after burrow
// exits. burrow appends shell commands to it for the parent shell to run.
const DirectiveFileEnv = "BURROW_DIRECTIVE_FILE"

var openDirectiveFile = func(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o600)
}

// WriteDirective appends a shell command to the directive file.
// If the environment variable is not set, this is a no-op.
func WriteDirective(cmd string) error {
	path := os.Getenv(DirectiveFileEnv)
	if path == "" {
		return nil
	}

	f, err := openDirectiveFile(path)
	if err != nil {
		return fmt.Errorf("failed to open directive file: %w", err)
	}

	// The shell sources this file, so a lost close error means a lost directive.
	_, werr := io.WriteString(f, cmd+"\n")
	cerr := f.Close()
	if err := errors.Join(werr, cerr); err != nil {
		return fmt.Errorf("failed to write directive: %w", err)
	}
	return nil
}

// ChangeDirectory asks the parent shell to cd into path.
func ChangeDirectory(path string) error {
	return WriteDirective("\\builtin cd -- " + Quote(path))
}

// Quote single-quotes s for POSIX shells.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}
